//go:build js && wasm
// +build js,wasm

package main

import (
	"context"
	"fmt"
	"sync"
	"syscall/js"
	"time"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/equity"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// Cancels the calculation in flight, if any
var (
	mu     sync.Mutex
	cancel context.CancelFunc
)

// maxCalculateDuration keeps a runaway enumeration from freezing the page
const maxCalculateDuration = 30 * time.Second

func main() {
	// Register JavaScript functions
	js.Global().Set("pokerEquity", makePokerEquityAPI())

	// Prevent the Go program from exiting
	select {}
}

// makePokerEquityAPI creates the JavaScript API object
func makePokerEquityAPI() js.Value {
	api := make(map[string]interface{})

	api["calculate"] = js.FuncOf(calculateWrapper)
	api["evaluate"] = js.FuncOf(evaluateWrapper)
	api["parseScenario"] = js.FuncOf(parseScenarioWrapper)
	api["cancel"] = js.FuncOf(cancelWrapper)
	api["version"] = "1.0.0"

	return js.ValueOf(api)
}

// calculateWrapper wraps the equity calculator for JavaScript
// Arguments: scenario (string), method (string, optional), iterations (number, optional)
// Returns: Promise that resolves to the result object
func calculateWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{
			"error": "Usage: calculate(scenario, method?, iterations?)",
		})
	}

	scenarioStr := args[0].String()
	methodStr := "enumeration"
	if len(args) >= 2 && args[1].Type() == js.TypeString {
		methodStr = args[1].String()
	}
	iterations := 100000
	if len(args) >= 3 && args[2].Type() == js.TypeNumber {
		iterations = args[2].Int()
	}

	// Create a promise
	promiseConstructor := js.Global().Get("Promise")
	handler := js.FuncOf(func(this js.Value, promiseArgs []js.Value) interface{} {
		resolve := promiseArgs[0]
		reject := promiseArgs[1]

		// Run calculation in goroutine
		go func() {
			defer func() {
				if r := recover(); r != nil {
					reject.Invoke(js.ValueOf(fmt.Sprintf("Calculation panicked: %v", r)))
				}
			}()

			result, err := runCalculation(scenarioStr, methodStr, iterations)
			if err != nil {
				reject.Invoke(js.ValueOf(err.Error()))
				return
			}

			resolve.Invoke(js.ValueOf(result))
		}()

		return nil
	})

	return promiseConstructor.New(handler)
}

// runCalculation performs the actual calculation
func runCalculation(scenarioStr, methodStr string, iterations int) (map[string]interface{}, error) {
	scenario, err := notation.ParseScenario(scenarioStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	method, err := equity.ParseMethod(methodStr)
	if err != nil {
		return nil, err
	}

	ctx, stop := context.WithTimeout(context.Background(), maxCalculateDuration)
	mu.Lock()
	if cancel != nil {
		cancel()
	}
	cancel = stop
	mu.Unlock()
	defer stop()

	// js/wasm runs on one thread
	calc := equity.NewCalculator(equity.WithWorkers(1))

	start := time.Now()
	result, err := calc.Calculate(ctx, equity.NewRequest(scenario, method, iterations))
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"win":        result.WinProbability,
		"tie":        result.TieProbability,
		"loss":       result.LossProbability(),
		"equity":     result.Equity(),
		"sampleSize": float64(result.SampleSize),
		"method":     method.String(),
		"street":     scenario.Street().String(),
		"elapsedMs":  float64(time.Since(start).Milliseconds()),
	}
	if method == equity.MonteCarlo {
		low, high := result.ConfidenceInterval(0.95)
		out["ci95"] = []interface{}{low, high}
	}
	return out, nil
}

// evaluateWrapper wraps the hand evaluator for JavaScript
// Arguments: cards (string, 5-7 cards)
func evaluateWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{
			"error": "Usage: evaluate(cards)",
		})
	}

	input, err := cards.ParseCards(args[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{
			"error": err.Error(),
		})
	}
	if cards.NewCardSet(input...).Len() != len(input) {
		return js.ValueOf(map[string]interface{}{
			"error": "duplicate card",
		})
	}

	hand, err := cards.EvaluateBest(input)
	if err != nil {
		return js.ValueOf(map[string]interface{}{
			"error": err.Error(),
		})
	}

	kickers := make([]interface{}, len(hand.Kickers))
	for i, k := range hand.Kickers {
		kickers[i] = k.String()
	}

	return js.ValueOf(map[string]interface{}{
		"rank":    hand.Rank.String(),
		"weight":  hand.Rank.Weight(),
		"best":    cards.FormatCards(hand.Cards[:]),
		"kickers": kickers,
	})
}

// parseScenarioWrapper wraps the scenario parser for JavaScript
func parseScenarioWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{
			"error": "Usage: parseScenario(scenario)",
		})
	}

	scenario, err := notation.ParseScenario(args[0].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{
			"error": err.Error(),
		})
	}

	opponents := make([]interface{}, len(scenario.Opponents))
	for i, r := range scenario.Opponents {
		opponents[i] = map[string]interface{}{
			"combos": r.Len(),
			"exact":  r.IsExact(),
		}
	}

	// Convert to JavaScript-friendly format
	return js.ValueOf(map[string]interface{}{
		"hero":      cards.FormatCards(scenario.Hero),
		"board":     cards.FormatCards(scenario.Board),
		"street":    scenario.Street().String(),
		"opponents": opponents,
	})
}

// cancelWrapper lets JS cancel the calculation in flight
func cancelWrapper(this js.Value, args []js.Value) interface{} {
	mu.Lock()
	if cancel != nil {
		cancel()
	}
	mu.Unlock()
	return js.ValueOf(map[string]interface{}{
		"status": "cancelled",
	})
}
