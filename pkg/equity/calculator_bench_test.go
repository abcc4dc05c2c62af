package equity

import (
	"context"
	"fmt"
	"testing"
)

func BenchmarkEnumerateFlop(b *testing.B) {
	calc := NewCalculator()
	req := scenarioRequest(b, "AsKs|QQ+,AQs|Ah5h2c", Enumeration, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Enumerate(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimulatePreflop(b *testing.B) {
	req := scenarioRequest(b, "AsAh|KK,QQ/??|-", MonteCarlo, 10_000)

	for _, workers := range []int{1, 4} {
		calc := NewCalculator(WithWorkers(workers), WithSeed(1))
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := calc.Simulate(context.Background(), req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
