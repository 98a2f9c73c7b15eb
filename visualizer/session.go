package visualizer

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/bfs"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/dfs"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/dijkstra"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
	"github.com/Aidan-Simard/Pathfinding-Visualizer/maze"
)

var (
	// ErrBusy is returned for any edit or run requested while a
	// visualization is in flight.
	ErrBusy = errors.New("visualizer: visualization in progress")

	// ErrUnknownAlgorithm is returned for an unsupported algorithm.
	ErrUnknownAlgorithm = errors.New("visualizer: unknown algorithm")

	// ErrNotBusy is returned by Finish when no visualization is in flight.
	ErrNotBusy = errors.New("visualizer: no visualization in progress")
)

// Run is the outcome of one visualization.
type Run struct {
	ID        uuid.UUID
	Algorithm Algorithm
	Start     grid.Coord
	End       grid.Coord
	Journey   []grid.Coord
	Path      []grid.Coord
	Found     bool
	// Cost is the summed weight of the path nodes and the end node.
	Cost     int
	Schedule []Step
}

// Option configures a Session.
type Option func(*Session)

// WithSize sets the board dimensions used by New and Reset.
func WithSize(rows, cols int) Option {
	return func(s *Session) {
		s.rows, s.cols = rows, cols
	}
}

// WithEndpoints overrides the default start and end placement.
func WithEndpoints(start, end grid.Coord) Option {
	return func(s *Session) {
		s.gridOpts = []grid.Option{grid.WithStart(start), grid.WithEnd(end)}
	}
}

// WithLogger routes session logs to l. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the randomness used for weights and mazes.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithDFSPathMode selects DFS path reconstruction.
func WithDFSPathMode(m dfs.PathMode) Option {
	return func(s *Session) {
		s.dfsMode = m
	}
}

// WithFrontier selects the Dijkstra frontier.
func WithFrontier(f dijkstra.Frontier) Option {
	return func(s *Session) {
		s.frontier = f
	}
}

// Session is a headless board: it owns a grid, gates edits while a
// visualization is in flight and turns search results into timed runs.
// It is safe for concurrent use.
type Session struct {
	mu   sync.Mutex
	grid *grid.Grid
	busy bool
	last *Run

	rows, cols int
	gridOpts   []grid.Option
	dfsMode    dfs.PathMode
	frontier   dijkstra.Frontier
	rng        *rand.Rand
	log        *zap.Logger
}

// New builds a session with a fresh board, 25×50 by default.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		rows: grid.DefaultRows,
		cols: grid.DefaultCols,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	g, err := grid.New(s.rows, s.cols, s.gridOpts...)
	if err != nil {
		return nil, err
	}
	s.grid = g
	return s, nil
}

// Grid returns a snapshot of the board.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Busy reports whether a visualization is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Last returns the most recent run, or nil.
func (s *Session) Last() *Run {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// edit runs fn on the board unless a visualization is in flight.
func (s *Session) edit(op string, fn func(g *grid.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		s.log.Debug("edit rejected", zap.String("op", op))
		return fmt.Errorf("%w: %s", ErrBusy, op)
	}
	return fn(s.grid)
}

// ToggleWall flips the wall at c.
func (s *Session) ToggleWall(c grid.Coord) error {
	return s.edit("toggle wall", func(g *grid.Grid) error { return g.ToggleWall(c) })
}

// SetWall sets or clears the wall at c.
func (s *Session) SetWall(c grid.Coord, wall bool) error {
	return s.edit("set wall", func(g *grid.Grid) error { return g.SetWall(c, wall) })
}

// SetWeight sets the weight of the node at c.
func (s *Session) SetWeight(c grid.Coord, w int) error {
	return s.edit("set weight", func(g *grid.Grid) error { return g.SetWeight(c, w) })
}

// MoveStart moves the start node to c.
func (s *Session) MoveStart(c grid.Coord) error {
	return s.edit("move start", func(g *grid.Grid) error { return g.MoveStart(c) })
}

// MoveEnd moves the end node to c.
func (s *Session) MoveEnd(c grid.Coord) error {
	return s.edit("move end", func(g *grid.Grid) error { return g.MoveEnd(c) })
}

// RandomWeights gives each node weight grid.HeavyWeight with probability
// grid.HeavyProbability.
func (s *Session) RandomWeights() error {
	return s.edit("random weights", func(g *grid.Grid) error {
		return g.RandomizeWeights(s.rng, grid.HeavyProbability, grid.HeavyWeight)
	})
}

// GenerateMaze carves a maze into the board.
func (s *Session) GenerateMaze() error {
	return s.edit("maze", func(g *grid.Grid) error {
		g.ClearMarks()
		stats, err := maze.GenerateStats(g, maze.WithRand(s.rng))
		if err != nil {
			return err
		}
		s.log.Info("maze generated",
			zap.Int("rooms", stats.Rooms),
			zap.Int("candidates", stats.Candidates),
			zap.Int("removed", stats.Removed))
		return nil
	})
}

// Clear wipes the visited and path marks.
func (s *Session) Clear() error {
	return s.edit("clear", func(g *grid.Grid) error {
		g.ClearMarks()
		return nil
	})
}

// Reset replaces the board with a fresh one at the configured size. The
// start and end nodes stay where they are.
func (s *Session) Reset() error {
	return s.edit("reset", func(cur *grid.Grid) error {
		opts := append([]grid.Option(nil), s.gridOpts...)
		if start, ok := cur.Start(); ok {
			opts = append(opts, grid.WithStart(start))
		}
		if end, ok := cur.End(); ok {
			opts = append(opts, grid.WithEnd(end))
		}
		g, err := grid.New(s.rows, s.cols, opts...)
		if err != nil {
			return err
		}
		s.grid = g
		s.last = nil
		return nil
	})
}

// Visualize runs a on the board, marks the result on it and enters the busy
// state until Finish is called. Earlier marks are cleared once the search
// succeeds; a failed search leaves the board untouched.
func (s *Session) Visualize(a Algorithm) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return nil, fmt.Errorf("%w: visualize", ErrBusy)
	}

	start, ok := s.grid.Start()
	if !ok {
		return nil, fmt.Errorf("%w: no start node", grid.ErrInvalidGridState)
	}

	run, err := s.search(a, start)
	if err != nil {
		s.log.Warn("search failed", zap.Stringer("algorithm", a), zap.Error(err))
		return nil, err
	}
	s.grid.ClearMarks()
	run.Schedule = NewSchedule(run.Start, run.End, run.Journey, run.Path, run.Found)
	Apply(s.grid, run)

	s.busy = true
	s.last = run
	s.log.Info("visualization started",
		zap.Stringer("run_id", run.ID),
		zap.Stringer("algorithm", a),
		zap.Int("journey", len(run.Journey)),
		zap.Int("path", len(run.Path)),
		zap.Bool("found", run.Found),
		zap.Duration("duration", Duration(run.Schedule)))

	return run, nil
}

// Finish ends the in-flight visualization and re-enables edits.
func (s *Session) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.busy {
		return ErrNotBusy
	}
	s.busy = false
	if s.last != nil {
		s.log.Info("visualization finished", zap.Stringer("run_id", s.last.ID))
	}
	return nil
}

// search dispatches to the selected algorithm and normalizes its result.
func (s *Session) search(a Algorithm, start grid.Coord) (*Run, error) {
	end, _ := s.grid.End()
	run := &Run{ID: uuid.New(), Algorithm: a, Start: start, End: end}

	switch a {
	case BFS:
		res, err := bfs.BFS(s.grid, start)
		if err != nil {
			return nil, err
		}
		run.Journey, run.Path, run.Found = res.Journey, res.Path, res.Found
	case DFS:
		res, err := dfs.DFS(s.grid, start, dfs.WithPathMode(s.dfsMode))
		if err != nil {
			return nil, err
		}
		run.Journey, run.Path, run.Found = res.Journey, res.Path, res.Found
	case Dijkstra:
		res, err := dijkstra.Dijkstra(s.grid, start, dijkstra.WithFrontier(s.frontier))
		if err != nil {
			return nil, err
		}
		run.Journey, run.Path, run.Found = res.Journey, res.Path, res.Found
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}

	if run.Found {
		run.Cost = s.grid.Cost(run.Path, end)
	}
	return run, nil
}

// Apply marks the journey and start visited and, when the end was found,
// the path and both endpoints as path on g.
func Apply(g *grid.Grid, run *Run) {
	for _, st := range run.Schedule {
		n := g.Node(st.Node)
		if n == nil {
			continue
		}
		switch st.Kind {
		case StepVisit:
			n.IsVisited = true
		case StepPath:
			n.IsPath = true
		}
	}
}
