package visualizer

import (
	"time"

	"github.com/Aidan-Simard/Pathfinding-Visualizer/grid"
)

// Animation timings of the interactive board.
const (
	// VisitInterval separates consecutive journey steps.
	VisitInterval = 10 * time.Millisecond
	// PathInterval separates consecutive path steps.
	PathInterval = 50 * time.Millisecond
)

// StepKind is the presentation change a Step applies.
type StepKind int

const (
	// StepVisit marks a node visited.
	StepVisit StepKind = iota
	// StepPath marks a node as part of the path.
	StepPath
)

// String returns "visit" or "path".
func (k StepKind) String() string {
	if k == StepPath {
		return "path"
	}
	return "visit"
}

// Step is one timed presentation change, At measured from the start of
// playback.
type Step struct {
	At   time.Duration
	Kind StepKind
	Node grid.Coord
}

// NewSchedule lays out the playback of a run:
//
//  1. the start node is marked visited at 0;
//  2. journey node i is marked visited at i·VisitInterval;
//  3. when found, at T = len(journey)·VisitInterval the end node turns to
//     path, path node j at T + j·PathInterval and finally the start node at
//     T + len(path)·PathInterval.
//
// Steps are returned in non-decreasing At order.
func NewSchedule(start, end grid.Coord, journey, path []grid.Coord, found bool) []Step {
	steps := make([]Step, 0, len(journey)+len(path)+3)
	steps = append(steps, Step{At: 0, Kind: StepVisit, Node: start})
	for i, c := range journey {
		steps = append(steps, Step{At: time.Duration(i) * VisitInterval, Kind: StepVisit, Node: c})
	}
	if !found {
		return steps
	}

	t := time.Duration(len(journey)) * VisitInterval
	steps = append(steps, Step{At: t, Kind: StepPath, Node: end})
	for j, c := range path {
		steps = append(steps, Step{At: t + time.Duration(j)*PathInterval, Kind: StepPath, Node: c})
	}
	return append(steps, Step{At: t + time.Duration(len(path))*PathInterval, Kind: StepPath, Node: start})
}

// Duration returns the time of the last step, or 0 for an empty schedule.
func Duration(steps []Step) time.Duration {
	if len(steps) == 0 {
		return 0
	}
	return steps[len(steps)-1].At
}
