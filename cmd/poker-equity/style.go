package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/config"
	"github.com/behrlich/poker-equity/pkg/equity"
	"github.com/behrlich/poker-equity/pkg/notation"
)

// render writes report in the requested format; table builds the
// human-readable form
func render(w io.Writer, format string, report any, table func() (string, error)) error {
	var (
		out []byte
		err error
	)
	switch format {
	case config.FormatJSON:
		out, err = json.MarshalIndent(report, "", "  ")
		out = append(out, '\n')
	case config.FormatYAML:
		out, err = yaml.Marshal(report)
	default:
		var s string
		s, err = table()
		out = []byte(s)
	}
	if err != nil {
		return fmt.Errorf("rendering %s output: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

type opponentReport struct {
	Range  string `json:"range" yaml:"range"`
	Combos int    `json:"combos" yaml:"combos"`
}

type equityReport struct {
	Hero            string           `json:"hero" yaml:"hero"`
	Opponents       []opponentReport `json:"opponents" yaml:"opponents"`
	Board           string           `json:"board" yaml:"board"`
	Street          string           `json:"street" yaml:"street"`
	Method          string           `json:"method" yaml:"method"`
	Win             float64          `json:"win" yaml:"win"`
	Tie             float64          `json:"tie" yaml:"tie"`
	Loss            float64          `json:"loss" yaml:"loss"`
	Equity          float64          `json:"equity" yaml:"equity"`
	SampleSize      int64            `json:"sample_size" yaml:"sample_size"`
	ConfidenceLow   *float64         `json:"ci95_low,omitempty" yaml:"ci95_low,omitempty"`
	ConfidenceHigh  *float64         `json:"ci95_high,omitempty" yaml:"ci95_high,omitempty"`
	ElapsedMillisec int64            `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func newEquityReport(sc notation.Scenario, method equity.Method, result equity.Result, elapsed time.Duration) equityReport {
	report := equityReport{
		Hero: cards.FormatCards(sc.Hero),
		Opponents: lo.Map(sc.Opponents, func(r notation.Range, _ int) opponentReport {
			return opponentReport{Range: summarizeRange(r), Combos: r.Len()}
		}),
		Board:           cards.FormatCards(sc.Board),
		Street:          sc.Street().String(),
		Method:          method.String(),
		Win:             result.WinProbability,
		Tie:             result.TieProbability,
		Loss:            result.LossProbability(),
		Equity:          result.Equity(),
		SampleSize:      result.SampleSize,
		ElapsedMillisec: elapsed.Milliseconds(),
	}
	if method == equity.MonteCarlo && result.SampleSize > 0 {
		low, high := result.ConfidenceInterval(0.95)
		report.ConfidenceLow, report.ConfidenceHigh = &low, &high
	}
	return report
}

// summarizeRange shows short ranges in full and long ones by size
func summarizeRange(r notation.Range) string {
	if r.Len() <= 4 {
		return r.String()
	}
	return fmt.Sprintf("%d combos", r.Len())
}

func pct(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

func (r equityReport) table() (string, error) {
	board := r.Board
	if board == "" {
		board = "-"
	}

	header := pterm.DefaultSection.Sprintf("%s vs %d opponent(s) | board %s (%s)",
		pterm.LightCyan(r.Hero), len(r.Opponents), board, r.Street)

	opponents := pterm.TableData{{"Opponent", "Range", "Combos"}}
	for i, opp := range r.Opponents {
		opponents = append(opponents, []string{fmt.Sprint(i + 1), opp.Range, fmt.Sprint(opp.Combos)})
	}
	oppTable, err := pterm.DefaultTable.WithHasHeader().WithData(opponents).Srender()
	if err != nil {
		return "", err
	}

	results := pterm.TableData{
		{"Method", "Win", "Tie", "Loss", "Equity", "Samples"},
		{r.Method, pterm.LightGreen(pct(r.Win)), pct(r.Tie), pterm.LightRed(pct(r.Loss)), pct(r.Equity), fmt.Sprint(r.SampleSize)},
	}
	resultTable, err := pterm.DefaultTable.WithHasHeader().WithData(results).Srender()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(oppTable)
	sb.WriteString("\n\n")
	sb.WriteString(resultTable)
	sb.WriteString("\n")
	if r.ConfidenceLow != nil {
		sb.WriteString(pterm.Sprintfln("95%% confidence: %s - %s", pct(*r.ConfidenceLow), pct(*r.ConfidenceHigh)))
	}
	sb.WriteString(pterm.Sprintfln("Elapsed: %dms", r.ElapsedMillisec))
	return sb.String(), nil
}

type evalReport struct {
	Cards   string   `json:"cards" yaml:"cards"`
	Rank    string   `json:"rank" yaml:"rank"`
	Weight  int      `json:"weight" yaml:"weight"`
	Best    string   `json:"best" yaml:"best"`
	Kickers []string `json:"kickers" yaml:"kickers"`
}

func newEvalReport(input []cards.Card, hand cards.Hand) evalReport {
	return evalReport{
		Cards:  cards.FormatCards(input),
		Rank:   hand.Rank.String(),
		Weight: hand.Rank.Weight(),
		Best:   cards.FormatCards(hand.Cards[:]),
		Kickers: lo.Map(hand.Kickers, func(r cards.Rank, _ int) string {
			return r.String()
		}),
	}
}

func (r evalReport) table() (string, error) {
	kickers := strings.Join(r.Kickers, " ")
	if kickers == "" {
		kickers = "-"
	}
	data := pterm.TableData{
		{"Cards", "Hand", "Best five", "Kickers"},
		{r.Cards, pterm.LightGreen(r.Rank), r.Best, kickers},
	}
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	return s + "\n", nil
}
