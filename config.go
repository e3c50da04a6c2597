package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bismuthsalamander/beacongap/gapgo"
	"github.com/pelletier/go-toml/v2"
)

const defaultConfigPath = "beacongap.toml"

// Config holds everything a run needs. Values come from the config file and
// are overridden by flags given on the command line.
type Config struct {
	Solver        string `toml:"solver"`
	Dimension     int32  `toml:"dimension"`
	Input         string `toml:"input"`
	Fixture       string `toml:"fixture"`
	Row           *int32 `toml:"row"`
	Workers       int    `toml:"workers"`
	MaxIterations int64  `toml:"max_iterations"`
	Progress      bool   `toml:"progress"`
	Draw          bool   `toml:"draw"`
	Watch         bool   `toml:"watch"`
	Profile       string `toml:"profile"`
}

func DefaultConfig() Config {
	return Config{
		Solver:    gapgo.RangeExclusion.String(),
		Dimension: 4000000,
		Workers:   1,
	}
}

// LoadConfig reads a TOML config on top of the defaults. A missing file is
// only an error when the path was asked for explicitly.
func LoadConfig(path string, explicit bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return cfg, fmt.Errorf("%s:%d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Solver != "all" {
		if _, err := gapgo.ParseStrategy(c.Solver); err != nil {
			return err
		}
	}
	if c.Input != "" && c.Fixture != "" {
		return errors.New("input and fixture are mutually exclusive")
	}
	if c.Input == "" && c.Fixture == "" {
		return errors.New("one of input or fixture is required")
	}
	if c.Watch && c.Input == "" {
		return errors.New("watch needs an input file")
	}
	if c.Dimension < 0 || c.Dimension > gapgo.MaxDimension {
		return fmt.Errorf("dimension %d out of range", c.Dimension)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must not be negative, got %d", c.MaxIterations)
	}
	switch c.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("invalid profile %q (must be cpu or mem)", c.Profile)
	}
	return nil
}

// Strategies lists the solvers the config selects.
func (c Config) Strategies() []gapgo.Strategy {
	if c.Solver == "all" {
		return gapgo.Strategies()
	}
	st, _ := gapgo.ParseStrategy(c.Solver)
	return []gapgo.Strategy{st}
}

type cliOptions struct {
	ConfigPath   string
	ListFixtures bool
}

// parseArgs loads the config named by -config (or the default file) and
// applies every flag that was set explicitly.
func parseArgs(args []string, stderr io.Writer) (Config, cliOptions, error) {
	var opts cliOptions
	var flags Config
	var row int
	fs := flag.NewFlagSet("beacongap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to TOML configuration file (default "+defaultConfigPath+" if present)")
	fs.BoolVar(&opts.ListFixtures, "list-fixtures", false, "List the built-in fixtures and exit")
	fs.StringVar(&flags.Input, "input", "", "Puzzle input file")
	fs.StringVar(&flags.Fixture, "fixture", "", "Built-in fixture to solve instead of an input file")
	dim := fs.Int("dimension", 0, "Search square is [0,dimension]x[0,dimension]")
	fs.StringVar(&flags.Solver, "solver", "", "Solver: brute-force, column-skipping, range-exclusion, border-intersection or all")
	fs.IntVar(&row, "row", 0, "Also count positions on this row where no beacon can be")
	fs.IntVar(&flags.Workers, "workers", 0, "Row bands scanned concurrently by column-skipping")
	fs.Int64Var(&flags.MaxIterations, "max-iterations", 0, "Iteration cap (0 for the solver default)")
	fs.BoolVar(&flags.Progress, "progress", false, "Show a progress bar on a terminal")
	fs.BoolVar(&flags.Draw, "draw", false, "Show the coverage map after solving")
	fs.BoolVar(&flags.Watch, "watch", false, "Solve again whenever the input file changes")
	fs.StringVar(&flags.Profile, "profile", "", "Write a cpu or mem profile")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "beacongap - find the one point no sensor covers\n\n")
		fmt.Fprintf(stderr, "Usage: beacongap [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  beacongap -input day15.txt                 Solve with range exclusion\n")
		fmt.Fprintf(stderr, "  beacongap -fixture example -solver all     Cross-check every solver\n")
		fmt.Fprintf(stderr, "  beacongap -input day15.txt -row 2000000    Also answer part one\n")
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, opts, err
	}
	if fs.NArg() > 0 {
		return Config{}, opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *dim < 0 || *dim > gapgo.MaxDimension {
		return Config{}, opts, fmt.Errorf("dimension %d out of range", *dim)
	}

	path, explicit := defaultConfigPath, false
	if opts.ConfigPath != "" {
		path, explicit = opts.ConfigPath, true
	}
	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return Config{}, opts, err
	}

	var gotInput, gotFixture bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = flags.Input
			gotInput = true
		case "fixture":
			cfg.Fixture = flags.Fixture
			gotFixture = true
		case "dimension":
			cfg.Dimension = int32(*dim)
		case "solver":
			cfg.Solver = flags.Solver
		case "row":
			r := int32(row)
			cfg.Row = &r
		case "workers":
			cfg.Workers = flags.Workers
		case "max-iterations":
			cfg.MaxIterations = flags.MaxIterations
		case "progress":
			cfg.Progress = flags.Progress
		case "draw":
			cfg.Draw = flags.Draw
		case "watch":
			cfg.Watch = flags.Watch
		case "profile":
			cfg.Profile = flags.Profile
		}
	})
	// A source given on the command line replaces the one from the file.
	if gotInput && !gotFixture {
		cfg.Fixture = ""
	}
	if gotFixture && !gotInput {
		cfg.Input = ""
	}
	if opts.ListFixtures {
		return cfg, opts, nil
	}
	return cfg, opts, cfg.Validate()
}
