package poker_test

import (
	"context"
	"math"
	"testing"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/equity"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// TestIntegration_RangeIsAverageOfCombos validates that equity against a
// range equals the scenario-weighted average over its combos
func TestIntegration_RangeIsAverageOfCombos(t *testing.T) {
	opp, err := notation.ParseRange("QQ,JJ,AKo")
	if err != nil {
		t.Fatalf("ParseRange failed: %v", err)
	}

	calc := equity.NewCalculator()
	whole := mustCalculate(t, calc, "AsKs|QQ,JJ,AKo|Td7h2c")

	dead := cards.NewCardSet(cards.MustParseCards("AsKsTd7h2c")...)
	var wins, ties, total float64
	for _, combo := range opp.Combos() {
		if combo.Set().Overlaps(dead) {
			continue
		}
		part := mustCalculate(t, calc, "AsKs|"+combo.String()+"|Td7h2c")
		n := float64(part.SampleSize)
		wins += part.WinProbability * n
		ties += part.TieProbability * n
		total += n
	}

	if int64(total) != whole.SampleSize {
		t.Fatalf("Expected %d scenarios, got %d", int64(total), whole.SampleSize)
	}
	if math.Abs(wins/total-whole.WinProbability) > 1e-9 {
		t.Errorf("Win %.6f != combo average %.6f", whole.WinProbability, wins/total)
	}
	if math.Abs(ties/total-whole.TieProbability) > 1e-9 {
		t.Errorf("Tie %.6f != combo average %.6f", whole.TieProbability, ties/total)
	}
}

// TestIntegration_RangeVsRange_Multiway tests two ranges against one hand
func TestIntegration_RangeVsRange_Multiway(t *testing.T) {
	sc, err := notation.ParseScenario("7h6h|AA,KK/QQ,JJ|9h8c2h")
	if err != nil {
		t.Fatalf("Failed to parse scenario: %v", err)
	}

	calc := equity.NewCalculator(equity.WithWorkers(4), equity.WithSeed(5))
	exact, err := calc.Calculate(context.Background(), equity.NewRequest(sc, equity.Enumeration, 0))
	if err != nil {
		t.Fatalf("Enumeration failed: %v", err)
	}
	sampled, err := calc.Calculate(context.Background(), equity.NewRequest(sc, equity.MonteCarlo, 40000))
	if err != nil {
		t.Fatalf("Monte Carlo failed: %v", err)
	}

	// 12 x 12 deals, each leaving C(43,2) runouts
	if exact.SampleSize != 144*903 {
		t.Errorf("Expected %d scenarios, got %d", 144*903, exact.SampleSize)
	}
	if diff := math.Abs(exact.WinProbability - sampled.WinProbability); diff > 0.02 {
		t.Errorf("Monte Carlo win %.4f too far from exact %.4f", sampled.WinProbability, exact.WinProbability)
	}

	t.Logf("Open-ended straight flush draw vs two ranges: equity %.4f", exact.Equity())
}

// TestIntegration_AnyTwoOpponent compares a random hand against its known
// preflop equity band
func TestIntegration_AnyTwoOpponent(t *testing.T) {
	sc, err := notation.ParseScenario("AsAh|??|-")
	if err != nil {
		t.Fatalf("Failed to parse scenario: %v", err)
	}
	if got := sc.Opponents[0].Len(); got != 1326 {
		t.Fatalf("Expected 1326 combos before pruning, got %d", got)
	}

	calc := equity.NewCalculator(equity.WithSeed(99))
	result, err := calc.Calculate(context.Background(), equity.NewRequest(sc, equity.MonteCarlo, 60000))
	if err != nil {
		t.Fatalf("Monte Carlo failed: %v", err)
	}

	// Aces hold about 85% against a random hand
	if eq := result.Equity(); eq < 0.83 || eq > 0.87 {
		t.Errorf("Expected AA vs any two near 0.85, got %.4f", eq)
	}
}
