// Command pathviz runs one pathfinding visualization on a grid board and
// prints the marked board.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/internal/config"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/visualizer"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:], os.LookupEnv); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flags mirrors config.Config for the command line; only flags named in
// set override the other sources.
type flags struct {
	envFile, layout string
	cfg             config.Config
	set             map[string]bool
}

func parse(args []string, output io.Writer) (*flags, bool, error) {
	fs := flag.NewFlagSet("pathviz", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
pathviz - visualize BFS, DFS and Dijkstra on a grid board.

Usage:
  pathviz [options]

Environment:
  PATHVIZ_ROWS, PATHVIZ_COLS, PATHVIZ_ALGORITHM, PATHVIZ_MAZE, PATHVIZ_SEED,
  PATHVIZ_RANDOM_WEIGHTS, PATHVIZ_PATH_MODE, PATHVIZ_FRONTIER, PATHVIZ_PNG,
  PATHVIZ_CELL_PIXELS, PATHVIZ_LOG_LEVEL, PATHVIZ_LAYOUT

Options:
`)
		fs.PrintDefaults()
	}

	f := &flags{}
	fs.StringVar(&f.envFile, "env", ".env", "Path to a .env file. Empty disables it.")
	fs.StringVar(&f.layout, "layout", "", "Path to a YAML board layout.")
	fs.IntVar(&f.cfg.Rows, "rows", 0, "Board rows.")
	fs.IntVar(&f.cfg.Cols, "cols", 0, "Board columns.")
	fs.StringVar(&f.cfg.Algorithm, "algorithm", "", "Search algorithm: 'bfs', 'dfs' or 'dijkstra'.")
	fs.BoolVar(&f.cfg.Maze, "maze", false, "Carve a random maze before searching.")
	fs.BoolVar(&f.cfg.RandomWeights, "random-weights", false, "Make about 30% of the nodes heavy.")
	fs.Int64Var(&f.cfg.Seed, "seed", 0, "Random seed. 0 seeds from the clock.")
	fs.StringVar(&f.cfg.PathMode, "path-mode", "", "DFS path: 'reverse-journey' or 'predecessors'.")
	fs.StringVar(&f.cfg.Frontier, "frontier", "", "Dijkstra frontier: 'heap' or 'scan'.")
	fs.StringVar(&f.cfg.PNG, "png", "", "Write the marked board as PNG to this path.")
	fs.IntVar(&f.cfg.CellPixels, "cell", 0, "PNG cell size in pixels.")
	fs.StringVar(&f.cfg.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}

	f.set = map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, false, nil
}

// resolve merges defaults, the .env file, PATHVIZ_* variables, the layout
// file and the flags, in that order.
func resolve(f *flags, lookup func(string) (string, bool)) (config.Config, error) {
	if f.envFile != "" {
		if err := config.LoadDotEnv(f.envFile); err != nil {
			return config.Config{}, err
		}
	}
	cfg := config.Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return config.Config{}, err
	}
	layout := f.layout
	if layout == "" {
		layout, _ = lookup(config.EnvPrefix + "LAYOUT")
	}
	if layout != "" {
		if err := cfg.LoadLayoutFile(layout); err != nil {
			return config.Config{}, err
		}
	}

	o := f.cfg
	override := map[string]func(){
		"rows":           func() { cfg.Rows = o.Rows },
		"cols":           func() { cfg.Cols = o.Cols },
		"algorithm":      func() { cfg.Algorithm = o.Algorithm },
		"maze":           func() { cfg.Maze = o.Maze },
		"random-weights": func() { cfg.RandomWeights = o.RandomWeights },
		"seed":           func() { cfg.Seed = o.Seed },
		"path-mode":      func() { cfg.PathMode = o.PathMode },
		"frontier":       func() { cfg.Frontier = o.Frontier },
		"png":            func() { cfg.PNG = o.PNG },
		"cell":           func() { cfg.CellPixels = o.CellPixels },
		"log-level":      func() { cfg.LogLevel = o.LogLevel },
	}
	for name, apply := range override {
		if f.set[name] {
			apply()
		}
	}
	return cfg, cfg.Validate()
}

// run encapsulates the command for testing: output goes to outW, JSON logs
// to logW.
func run(outW, logW io.Writer, args []string, lookup func(string) (string, bool)) error {
	f, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := resolve(f, lookup)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	log, err := newLogger(logW, cfg.LogLevel)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer func() { _ = log.Sync() }()

	opts, err := cfg.SessionOptions(log)
	if err != nil {
		return err
	}
	s, err := visualizer.New(opts...)
	if err != nil {
		return errors.Wrap(err, "pathviz: new session")
	}
	if err := cfg.ApplyBoard(s); err != nil {
		return err
	}

	algo, _ := cfg.AlgorithmValue()
	res, err := s.Visualize(algo)
	if err != nil {
		return errors.Wrap(err, "pathviz: visualize")
	}
	board := s.Grid()

	fmt.Fprintln(outW, visualizer.RenderASCII(board))
	fmt.Fprintf(outW, "algorithm=%s found=%t visited=%d path=%d cost=%d duration=%s\n",
		res.Algorithm, res.Found, len(res.Journey), len(res.Path), res.Cost,
		visualizer.Duration(res.Schedule))

	if cfg.PNG != "" {
		if err := writePNG(cfg.PNG, s, cfg.CellPixels); err != nil {
			return err
		}
	}
	return s.Finish()
}

func writePNG(path string, s *visualizer.Session, cell int) error {
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "pathviz: create png")
	}
	if err := visualizer.WritePNG(out, s.Grid(), cell); err != nil {
		out.Close()
		return errors.Wrap(err, "pathviz: encode png")
	}
	return errors.Wrap(out.Close(), "pathviz: close png")
}
