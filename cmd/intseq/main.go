// Command intseq generates integer sequences from the command line: primes,
// composites, polygonal numbers, and the Fibonacci/Pell/Lucas recurrence
// families. It is a thin demonstration shell over the library packages.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/intseq/internal/config"
	apperrors "github.com/agbru/intseq/internal/errors"
	"github.com/agbru/intseq/internal/logging"
	"github.com/agbru/intseq/polygonal"
	"github.com/agbru/intseq/prime"
	"github.com/agbru/intseq/recurrence"
	"github.com/agbru/intseq/sequence"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	cfg, err := config.ParseFlags(args, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "intseq:", err)
		return apperrors.ExitCode(err)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	logger := logging.NewZerologAdapter(
		zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var spin *spinner.Spinner
	if !cfg.NoColor && !cfg.JSONOutput {
		spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		spin.Suffix = fmt.Sprintf(" generating %d %s terms...", cfg.Count, cfg.Sequence)
		spin.Start()
		defer spin.Stop()
	}

	results, err := generate(ctx, cfg)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		logger.Error("generation failed", err, logging.String("seq", cfg.Sequence))
		return apperrors.ExitCode(err)
	}

	if err := render(os.Stdout, cfg, results); err != nil {
		logger.Error("output failed", err)
		return apperrors.ExitCode(err)
	}
	logger.Debug("done",
		logging.String("seq", cfg.Sequence),
		logging.Int("count", cfg.Count))
	return apperrors.ExitSuccess
}

// newStream constructs the stream selected by name from the configuration.
func newStream(name string, cfg config.AppConfig) (sequence.Stream, error) {
	switch name {
	case "prime":
		return prime.NewSieve(), nil
	case "composite":
		return prime.NewCompositeStream(), nil
	case "fibonacci":
		return recurrence.NewStream(recurrence.Fibonacci()), nil
	case "pell":
		spec, err := recurrence.Pell()
		if err != nil {
			return nil, err
		}
		return recurrence.NewStream(spec), nil
	case "lucas":
		spec, err := recurrence.Lucas(cfg.P, cfg.Q)
		if err != nil {
			return nil, err
		}
		return recurrence.NewStream(spec), nil
	case "polygonal":
		return polygonal.NewStream(cfg.Sides)
	default:
		return nil, apperrors.NewConfigError("unknown sequence %q", name)
	}
}

// generate produces the requested terms. With -seq=all, every sequence is
// generated concurrently; each goroutine owns an independent stream, so no
// synchronization is needed beyond the errgroup itself.
func generate(ctx context.Context, cfg config.AppConfig) (map[string][]*big.Int, error) {
	names := []string{cfg.Sequence}
	if cfg.Sequence == "all" {
		names = []string{"prime", "composite", "fibonacci", "pell", "lucas", "polygonal"}
	}

	collected := make([][]*big.Int, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			s, err := newStream(name, cfg)
			if err != nil {
				return err
			}
			terms, err := sequence.Take(gctx, s, cfg.Count)
			if err != nil {
				return apperrors.WrapError(err, "generating %s", name)
			}
			collected[i] = terms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	results := make(map[string][]*big.Int, len(names))
	for i, name := range names {
		results[name] = collected[i]
	}
	return results, nil
}

// render writes the results as text or JSON.
func render(w *os.File, cfg config.AppConfig, results map[string][]*big.Int) error {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	if cfg.JSONOutput {
		out := make(map[string][]string, len(results))
		for _, name := range names {
			terms := make([]string, len(results[name]))
			for i, t := range results[name] {
				terms[i] = t.String()
			}
			out[name] = terms
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, name := range names {
		fmt.Fprintf(w, "%s:", name)
		for _, t := range results[name] {
			fmt.Fprintf(w, " %s", t.String())
		}
		fmt.Fprintln(w)
	}
	return nil
}
