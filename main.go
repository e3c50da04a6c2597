package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bismuthsalamander/beacongap/gapgo"
	"github.com/google/uuid"
	"github.com/pkg/profile"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.New(os.Stderr, "beacongap: ", 0)
	cfg, opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Print(err)
		return 2
	}
	if opts.ListFixtures {
		if err := listFixtures(os.Stdout); err != nil {
			logger.Print(err)
			return 1
		}
		return 0
	}

	switch cfg.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &runner{
		cfg:      cfg,
		logger:   logger,
		out:      os.Stdout,
		progress: cfg.Progress && isTerminal(os.Stderr),
	}
	sol, err := r.solveOnce(ctx)
	if err != nil {
		logger.Print(err)
		if !cfg.Watch {
			return 1
		}
	}

	if cfg.Watch {
		w, err := newInputWatcher(cfg.Input, logger)
		if err != nil {
			logger.Print(err)
			return 1
		}
		logger.Printf("watching %s, interrupt to stop", cfg.Input)
		err = w.Run(ctx, func() {
			if _, err := r.solveOnce(ctx); err != nil {
				logger.Print(err)
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Print(err)
			return 1
		}
		return 0
	}

	if cfg.Draw && sol != nil {
		if err := showMap(sol.sensors, sol.dimension, sol.gap); err != nil {
			logger.Print(err)
			return 1
		}
	}
	return 0
}

// runner solves the configured input and writes one report line per solver.
type runner struct {
	cfg      Config
	logger   *log.Logger
	out      io.Writer
	progress bool
}

type solution struct {
	sensors   []gapgo.Sensor
	dimension int32
	gap       *gapgo.Vec2
}

func (r *runner) solveOnce(ctx context.Context) (*solution, error) {
	readings, dimension, expected, row, err := r.load()
	if err != nil {
		return nil, err
	}
	sensors := gapgo.SensorsFromReadings(readings)
	watch := gapgo.NewStopwatch()
	opts := gapgo.Options{
		MaxIterations: r.cfg.MaxIterations,
		Workers:       r.cfg.Workers,
		Watch:         watch,
	}

	var wg sync.WaitGroup
	if r.progress {
		opts.Progress = make(chan gapgo.ProgressUpdate, 64)
		wg.Add(1)
		go PrintUpdates(opts.Progress, os.Stderr, &wg)
	}
	start := time.Now()
	outcomes, solveErr := gapgo.SolveAll(ctx, sensors, dimension, opts, r.cfg.Strategies()...)
	if opts.Progress != nil {
		close(opts.Progress)
		wg.Wait()
	}

	id := uuid.New()
	sol := &solution{sensors: sensors, dimension: dimension}
	var failed int
	for _, rep := range newReports(id, outcomes) {
		fmt.Fprintln(r.out, rep)
		if rep.Err != nil {
			failed++
			continue
		}
		if sol.gap == nil {
			p := rep.Result.Point
			sol.gap = &p
		}
	}
	if row != nil {
		fmt.Fprintf(r.out, "run %s row=%d excluded=%d\n", id, *row, gapgo.CountExcluded(readings, *row))
	}
	r.logger.Printf("run %s finished in %v\n%s", id, time.Since(start), watch.Results())

	if solveErr != nil {
		return sol, solveErr
	}
	if failed > 0 {
		return sol, fmt.Errorf("run %s: %d of %d solvers failed", id, failed, len(outcomes))
	}
	if expected != nil && sol.gap != nil && *sol.gap != *expected {
		return sol, fmt.Errorf("run %s: found %v, fixture expects %v", id, *sol.gap, *expected)
	}
	return sol, nil
}

// load returns the readings to solve. Fixtures bring their own dimension,
// expected answer and part one row; a row from the config wins.
func (r *runner) load() (readings []gapgo.Reading, dimension int32, expected *gapgo.Vec2, row *int32, err error) {
	if r.cfg.Fixture != "" {
		f, err := gapgo.FixtureByName(r.cfg.Fixture)
		if err != nil {
			return nil, 0, nil, nil, err
		}
		row = f.Row
		if r.cfg.Row != nil {
			row = r.cfg.Row
		}
		return f.Readings, f.Dimension, &f.Expected, row, nil
	}
	readings, err = gapgo.ReadingsFromFile(r.cfg.Input)
	if err != nil {
		return nil, 0, nil, nil, err
	}
	return readings, r.cfg.Dimension, nil, r.cfg.Row, nil
}

func listFixtures(w io.Writer) error {
	fixtures, err := gapgo.LoadFixtures()
	if err != nil {
		return err
	}
	for _, f := range fixtures {
		slow := ""
		if f.Slow {
			slow = " (slow)"
		}
		fmt.Fprintf(w, "%-14s dimension=%d sensors=%d expected=%v%s\n", f.Name, f.Dimension, len(f.Readings), f.Expected, slow)
	}
	return nil
}
