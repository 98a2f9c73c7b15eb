package config

import (
	"io"
	"io/fs"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/dfs"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/dijkstra"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/visualizer"
)

// ErrInvalid marks a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "PATHVIZ_"

// Point is a YAML coordinate: {row: 3, col: 7}.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Coord converts p to a grid coordinate.
func (p Point) Coord() grid.Coord { return grid.Coord{Row: p.Row, Col: p.Col} }

// Weight assigns a weight to one node.
type Weight struct {
	Row    int `yaml:"row"`
	Col    int `yaml:"col"`
	Weight int `yaml:"weight"`
}

// Config is the merged command configuration.
type Config struct {
	Rows          int      `yaml:"rows"`
	Cols          int      `yaml:"cols"`
	Start         *Point   `yaml:"start"`
	End           *Point   `yaml:"end"`
	Walls         []Point  `yaml:"walls"`
	Weights       []Weight `yaml:"weights"`
	Algorithm     string   `yaml:"algorithm"`
	Maze          bool     `yaml:"maze"`
	RandomWeights bool     `yaml:"random_weights"`
	Seed          int64    `yaml:"seed"`
	PathMode      string   `yaml:"path_mode"`
	Frontier      string   `yaml:"frontier"`
	PNG           string   `yaml:"png"`
	CellPixels    int      `yaml:"cell_pixels"`
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the built-in configuration: the 25×50 reference board,
// BFS, no maze and info logging.
func Default() Config {
	return Config{
		Rows:       grid.DefaultRows,
		Cols:       grid.DefaultCols,
		Algorithm:  visualizer.BFS.String(),
		PathMode:   dfs.PathReverseJourney.String(),
		Frontier:   dijkstra.FrontierHeap.String(),
		CellPixels: visualizer.DefaultCellPixels,
		LogLevel:   "info",
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "config: load %s", p)
		}
	}
	return nil
}

// ApplyEnv overrides c with PATHVIZ_* variables found through lookup
// (os.LookupEnv in production). Variables are read in a fixed order and
// the first malformed one is reported.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &c.Rows},
		{"COLS", &c.Cols},
		{"CELL_PIXELS", &c.CellPixels},
	}
	for _, f := range ints {
		if v, ok := get(f.key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.Wrapf(err, "config: %s%s", EnvPrefix, f.key)
			}
			*f.dst = n
		}
	}
	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "config: %sSEED", EnvPrefix)
		}
		c.Seed = seed
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{"MAZE", &c.Maze},
		{"RANDOM_WEIGHTS", &c.RandomWeights},
	}
	for _, f := range bools {
		if v, ok := get(f.key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(err, "config: %s%s", EnvPrefix, f.key)
			}
			*f.dst = b
		}
	}
	strs := []struct {
		key string
		dst *string
	}{
		{"ALGORITHM", &c.Algorithm},
		{"PATH_MODE", &c.PathMode},
		{"FRONTIER", &c.Frontier},
		{"PNG", &c.PNG},
		{"LOG_LEVEL", &c.LogLevel},
	}
	for _, f := range strs {
		if v, ok := get(f.key); ok {
			*f.dst = v
		}
	}
	return nil
}

// ApplyLayout decodes a YAML document from r over c. Keys absent from the
// document keep their current value; unknown keys are rejected.
func (c *Config) ApplyLayout(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "config: decode layout")
	}
	return nil
}

// LoadLayoutFile applies the YAML layout stored at path.
func (c *Config) LoadLayoutFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "config: open layout")
	}
	defer f.Close()
	return errors.WithMessagef(c.ApplyLayout(f), "file %s", path)
}

// Validate checks that every field can be turned into a session.
func (c *Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return errors.Wrapf(ErrInvalid, "board %dx%d", c.Rows, c.Cols)
	}
	if c.CellPixels < 0 {
		return errors.Wrapf(ErrInvalid, "cell_pixels %d", c.CellPixels)
	}
	if _, err := c.AlgorithmValue(); err != nil {
		return err
	}
	if _, err := c.PathModeValue(); err != nil {
		return err
	}
	if _, err := c.FrontierValue(); err != nil {
		return err
	}
	for _, w := range c.Weights {
		if w.Weight < 1 {
			return errors.Wrapf(ErrInvalid, "weight %d at %d-%d", w.Weight, w.Row, w.Col)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}
	return nil
}

// AlgorithmValue parses Algorithm.
func (c *Config) AlgorithmValue() (visualizer.Algorithm, error) {
	a, err := visualizer.ParseAlgorithm(c.Algorithm)
	return a, errors.Wrap(err, "config: algorithm")
}

// PathModeValue parses PathMode.
func (c *Config) PathModeValue() (dfs.PathMode, error) {
	for _, m := range []dfs.PathMode{dfs.PathReverseJourney, dfs.PathPredecessors} {
		if strings.EqualFold(c.PathMode, m.String()) {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalid, "path_mode %q", c.PathMode)
}

// FrontierValue parses Frontier.
func (c *Config) FrontierValue() (dijkstra.Frontier, error) {
	for _, f := range []dijkstra.Frontier{dijkstra.FrontierHeap, dijkstra.FrontierScan} {
		if strings.EqualFold(c.Frontier, f.String()) {
			return f, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalid, "frontier %q", c.Frontier)
}

// SessionOptions turns c into visualizer options. A zero Seed seeds from the
// clock.
func (c *Config) SessionOptions(log *zap.Logger) ([]visualizer.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := c.PathModeValue()
	frontier, _ := c.FrontierValue()
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := []visualizer.Option{
		visualizer.WithSize(c.Rows, c.Cols),
		visualizer.WithRand(rand.New(rand.NewSource(seed))),
		visualizer.WithDFSPathMode(mode),
		visualizer.WithFrontier(frontier),
		visualizer.WithLogger(log),
	}
	if c.Start != nil || c.End != nil {
		def := grid.DefaultOptions(c.Rows, c.Cols)
		start, end := def.Start, def.End
		if c.Start != nil {
			start = c.Start.Coord()
		}
		if c.End != nil {
			end = c.End.Coord()
		}
		opts = append(opts, visualizer.WithEndpoints(start, end))
	}
	return opts, nil
}

// ApplyBoard draws the configured walls and weights onto s, then the maze
// and random weights when enabled. The maze replaces the drawn walls.
func (c *Config) ApplyBoard(s *visualizer.Session) error {
	for _, p := range c.Walls {
		if err := s.SetWall(p.Coord(), true); err != nil {
			return errors.Wrapf(err, "config: wall %s", p.Coord())
		}
	}
	for _, w := range c.Weights {
		at := grid.Coord{Row: w.Row, Col: w.Col}
		if err := s.SetWeight(at, w.Weight); err != nil {
			return errors.Wrapf(err, "config: weight %s", at)
		}
	}
	if c.RandomWeights {
		if err := s.RandomWeights(); err != nil {
			return errors.Wrap(err, "config: random weights")
		}
	}
	if c.Maze {
		if err := s.GenerateMaze(); err != nil {
			return errors.Wrap(err, "config: maze")
		}
	}
	return nil
}
