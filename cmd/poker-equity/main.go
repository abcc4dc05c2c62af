package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/behrlich/poker-equity/pkg/cards"
	"github.com/behrlich/poker-equity/pkg/config"
	"github.com/behrlich/poker-equity/pkg/equity"
	"github.com/behrlich/poker-equity/pkg/notation"
)

func main() {
	var cfg config.Config
	if err := cfg.Load(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(os.Stdout)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogging(cfg.Debug)

	args := cfg.Args()
	if len(args) < 1 {
		usage(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if args[0] == "eval" {
		err = runEval(os.Stdout, args[1:], cfg.Format)
	} else {
		err = runEquity(ctx, os.Stdout, args[0], &cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: poker-equity [flags] <scenario>\n")
	fmt.Fprintf(w, "       poker-equity [flags] eval <cards>\n")
	fmt.Fprintf(w, "\nScenario: <hero>|<opponent>/<opponent>/...|<board>\n")
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  # Heads-up preflop, exact\n")
	fmt.Fprintf(w, "  poker-equity \"AsAh|KsKh|-\"\n\n")
	fmt.Fprintf(w, "  # Against two ranges on the flop, sampled\n")
	fmt.Fprintf(w, "  poker-equity -method montecarlo -iterations 200000 \"AsKs|QQ+,AKs/??|Ah5h2c\"\n\n")
	fmt.Fprintf(w, "  # Best five-card hand\n")
	fmt.Fprintf(w, "  poker-equity -format json eval \"Ah Kh Qh Jh 10h 2c 3d\"\n")
	fmt.Fprintf(w, "\nFlags (also POKER_EQUITY_<FLAG> or -config file):\n")
	fmt.Fprintf(w, "  -method string      enumeration or montecarlo (default \"enumeration\")\n")
	fmt.Fprintf(w, "  -iterations int     Monte Carlo trials (default 100000)\n")
	fmt.Fprintf(w, "  -workers int        parallel workers (default: number of CPUs)\n")
	fmt.Fprintf(w, "  -seed uint          seed for reproducible Monte Carlo runs\n")
	fmt.Fprintf(w, "  -format string      table, json or yaml (default \"table\")\n")
	fmt.Fprintf(w, "  -config string      YAML or JSON config file\n")
	fmt.Fprintf(w, "  -debug              debug logging\n")
}

// setupLogging installs a console logger on stderr as both the global
// logger and the default context logger
func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
}

func runEquity(ctx context.Context, w io.Writer, scenarioStr string, cfg *config.Config) error {
	scenario, err := notation.ParseScenario(scenarioStr)
	if err != nil {
		return fmt.Errorf("parsing scenario: %w", err)
	}

	method, err := cfg.EquityMethod()
	if err != nil {
		return err
	}

	log.Debug().
		Str("scenario", scenario.String()).
		Stringer("street", scenario.Street()).
		Stringer("method", method).
		Msg("calculating-equity")

	calc := equity.NewCalculator(cfg.CalculatorOptions()...)
	start := time.Now()
	result, err := calc.Calculate(ctx, equity.NewRequest(scenario, method, cfg.Iterations))
	if err != nil {
		return err
	}

	report := newEquityReport(scenario, method, result, time.Since(start))
	return render(w, cfg.Format, report, report.table)
}

func runEval(w io.Writer, args []string, format string) error {
	if len(args) < 1 {
		return fmt.Errorf("eval needs cards, e.g. eval \"Ah Kh Qh Jh 10h 2c 3d\"")
	}

	var input []cards.Card
	for _, arg := range args {
		cs, err := cards.ParseCards(arg)
		if err != nil {
			return fmt.Errorf("parsing cards: %w", err)
		}
		input = append(input, cs...)
	}

	if cards.NewCardSet(input...).Len() != len(input) {
		return fmt.Errorf("duplicate card in %q", cards.FormatCards(input))
	}

	hand, err := cards.EvaluateBest(input)
	if err != nil {
		return err
	}

	report := newEvalReport(input, hand)
	return render(w, format, report, report.table)
}
