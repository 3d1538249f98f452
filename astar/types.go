package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search configuration.
var (
	// ErrConfiguration is the parent of every problem-definition error.
	// Use errors.Is(err, ErrConfiguration) to catch them all.
	ErrConfiguration = errors.New("astar: invalid configuration")

	// ErrStartUnset indicates Problem.Start is nil.
	ErrStartUnset = fmt.Errorf("%w: start position is not set", ErrConfiguration)

	// ErrGoalUnset indicates Problem.Goal is nil.
	ErrGoalUnset = fmt.Errorf("%w: goal position is not set", ErrConfiguration)

	// ErrBadStepSize indicates a step size that is zero or negative.
	ErrBadStepSize = fmt.Errorf("%w: step size must be positive", ErrConfiguration)

	// ErrBadBorders indicates a border dimension that is zero or negative.
	ErrBadBorders = fmt.Errorf("%w: borders must be positive", ErrConfiguration)

	// ErrBadConnectivity indicates an unknown Connectivity tag.
	ErrBadConnectivity = fmt.Errorf("%w: unknown connectivity", ErrConfiguration)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Position is a point on the integer plane.
// Alignment to the step size is a caller convention, not enforced here.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Obstacles reports whether a position is blocked.
// walls.Set and walls.Index both satisfy it.
type Obstacles interface {
	Contains(p Position) bool
}

// Problem is the immutable input of one search.
//
// Borders holds the exclusive upper bounds (width, height); coordinate 0 is
// also excluded. Start and Goal are pointers so that an unset marker can be
// rejected with ErrStartUnset / ErrGoalUnset. A nil Walls means an empty plane.
type Problem struct {
	Borders Position
	Walls   Obstacles
	Start   *Position
	Goal    *Position
}

// Connectivity selects the successor pattern.
type Connectivity int

const (
	// FourWay moves by one step along a single axis: W, N, E, S.
	FourWay Connectivity = iota
	// EightWay moves by one step along both axes at once (diagonals only).
	EightWay
	// AllEight combines FourWay and EightWay moves.
	AllEight
)

// String returns the tag name.
func (c Connectivity) String() string {
	switch c {
	case FourWay:
		return "FourWay"
	case EightWay:
		return "EightWay"
	case AllEight:
		return "AllEight"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// VisitHook is called synchronously once per frontier pop, in pop order, with
// the popped position and its updated visit count. The returned value is an
// opaque render handle stored in the trace; the engine never inspects it.
// The hook must not mutate the Problem.
type VisitHook func(pos Position, count int) any

// Options holds the search configuration.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// StepSize is the move distance and the half-width of the goal window.
	StepSize int

	// Connectivity chooses FourWay, EightWay or AllEight successors.
	Connectivity Connectivity

	// Heuristic ranks frontier entries. Defaults to Manhattan.
	Heuristic Heuristic

	// RecordVisits enables visit counting and the trace.
	RecordVisits bool

	// OnVisit, if non-nil, receives every recorded visit.
	OnVisit VisitHook

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - context.Background()
//   - StepSize 1
//   - FourWay connectivity
//   - Manhattan heuristic
//   - no visit recording, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		StepSize:     1,
		Connectivity: FourWay,
		Heuristic:    Manhattan,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepSize sets the step size. Non-positive values are rejected by
// Search with ErrBadStepSize.
func WithStepSize(step int) Option {
	return func(o *Options) {
		o.StepSize = step
	}
}

// WithConnectivity selects the successor pattern.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Connectivity = c
	}
}

// WithHeuristic replaces the ranking estimator. A nil heuristic is recorded
// and surfaced as ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithRecordVisits enables the visit trace without a hook.
func WithRecordVisits() Option {
	return func(o *Options) {
		o.RecordVisits = true
	}
}

// WithOnVisit installs a visit hook and enables visit recording.
func WithOnVisit(fn VisitHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
			o.RecordVisits = true
		}
	}
}

// Visit is one entry of the trace, in pop order.
type Visit struct {
	Pos    Position
	Count  int
	Handle any
}

// VisitTrace holds per-position visit counts and the ordered visit log.
// Counts also contains zero entries for positions pushed but never popped.
type VisitTrace struct {
	Counts map[Position]int
	Order  []Visit
}

// Result is the outcome of a search.
//   - Path: positions from the first step after Start to the position that
//     satisfied the goal test; empty when Start already does, nil when not Found.
//   - Found: false means the frontier was exhausted.
//   - Trace: the visit trace (empty unless recording was enabled).
//   - Pops: number of frontier pops performed.
type Result struct {
	Path  []Position
	Found bool
	Trace VisitTrace
	Pops  int
}
