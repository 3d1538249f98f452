package astar

import (
	"container/heap"
	"fmt"
)

// Search runs A* over the plane described by p and returns the first path
// whose terminal position satisfies IsGoal.
//
// Preconditions and validation (in order):
//  1. Option arguments must be valid (ErrOptionViolation).
//  2. Start and Goal must be set (ErrStartUnset, ErrGoalUnset).
//  3. StepSize must be positive (ErrBadStepSize).
//  4. Borders must be positive in both dimensions (ErrBadBorders).
//  5. Connectivity must be a known tag (ErrBadConnectivity).
//
// Behavior:
//
//   - The start entry is pushed with priority 0, not 0+h(start).
//   - Each pop takes the smallest (priority, sequence) pair.
//   - With visit recording, the popped position's count is incremented and
//     the hook is called before the goal test, on every pop.
//   - A popped position that is already closed is discarded unexpanded.
//   - Successors of an open position are pushed with priority
//     cost+1+h(successor, goal); closed successors are skipped.
//
// An exhausted frontier returns Found == false and a nil error.
// A cancelled context returns the partial Result with the wrapped ctx error.
func Search(p Problem, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := validate(p, cfg); err != nil {
		return nil, err
	}

	r := newRunner(p, cfg)
	r.init()
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// validate surfaces ConfigurationError values before any search work.
func validate(p Problem, cfg Options) error {
	switch {
	case p.Start == nil:
		return ErrStartUnset
	case p.Goal == nil:
		return ErrGoalUnset
	case cfg.StepSize <= 0:
		return fmt.Errorf("%w (%d)", ErrBadStepSize, cfg.StepSize)
	case p.Borders.X <= 0 || p.Borders.Y <= 0:
		return fmt.Errorf("%w (%d×%d)", ErrBadBorders, p.Borders.X, p.Borders.Y)
	case cfg.Connectivity < FourWay || cfg.Connectivity > AllEight:
		return fmt.Errorf("%w (%d)", ErrBadConnectivity, int(cfg.Connectivity))
	}

	return nil
}

// searchNode is a frontier payload: position, accumulated cost and the node
// it was pushed from. The start node has a nil parent.
type searchNode struct {
	pos    Position
	cost   int
	parent *searchNode
}

// runner holds the mutable state of a single search invocation.
type runner struct {
	problem Problem
	goal    Position
	opts    Options
	closed  map[Position]struct{}
	pq      frontier
	seq     int // next insertion sequence
	res     *Result
}

func newRunner(p Problem, cfg Options) *runner {
	r := &runner{
		problem: p,
		goal:    *p.Goal,
		opts:    cfg,
		closed:  make(map[Position]struct{}),
		pq:      make(frontier, 0, 64),
		res:     &Result{},
	}
	if cfg.RecordVisits {
		r.res.Trace.Counts = make(map[Position]int)
	}

	return r
}

// init pushes the start node with the bootstrapped priority 0.
func (r *runner) init() {
	heap.Init(&r.pq)
	start := *r.problem.Start
	r.push(0, &searchNode{pos: start, cost: 0})
	if r.opts.RecordVisits {
		r.res.Trace.Counts[start] = 0
	}
}

// push enqueues node with the next sequence number.
func (r *runner) push(priority float64, node *searchNode) {
	heap.Push(&r.pq, &frontierEntry{
		priority: priority,
		sequence: r.seq,
		node:     node,
	})
	r.seq++
}

// process is the main loop: pop, record, test, expand.
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-ctx.Done():
			return fmt.Errorf("astar: search interrupted after %d pops: %w", r.res.Pops, ctx.Err())
		default:
		}

		entry := heap.Pop(&r.pq).(*frontierEntry)
		node := entry.node
		r.res.Pops++

		if r.opts.RecordVisits {
			r.visit(node.pos)
		}

		if IsGoal(node.pos, r.goal, r.opts.StepSize) {
			r.res.Found = true
			r.res.Path = reconstructPath(node)
			return nil
		}

		if _, done := r.closed[node.pos]; done {
			continue
		}
		r.expand(node)
		r.closed[node.pos] = struct{}{}
	}

	return nil
}

// visit increments the visit count of pos, calls the hook and logs the visit.
func (r *runner) visit(pos Position) {
	tr := &r.res.Trace
	tr.Counts[pos]++
	count := tr.Counts[pos]
	var handle any
	if r.opts.OnVisit != nil {
		handle = r.opts.OnVisit(pos, count)
	}
	tr.Order = append(tr.Order, Visit{Pos: pos, Count: count, Handle: handle})
}

// expand pushes every successor of node that is not closed yet.
func (r *runner) expand(node *searchNode) {
	succ := Successors(node.pos, r.opts.StepSize, r.opts.Connectivity, r.problem.Walls, r.problem.Borders)
	for _, s := range succ {
		if _, done := r.closed[s]; done {
			continue
		}
		newCost := node.cost + 1
		r.push(float64(newCost)+r.opts.Heuristic(s, r.goal), &searchNode{pos: s, cost: newCost, parent: node})
		if r.opts.RecordVisits {
			if _, seen := r.res.Trace.Counts[s]; !seen {
				r.res.Trace.Counts[s] = 0
			}
		}
	}
}

// reconstructPath walks the parent chain back to the start and returns the
// positions after the start, in travel order. The result is never nil.
func reconstructPath(node *searchNode) []Position {
	path := make([]Position, 0, node.cost)
	for n := node; n.parent != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// frontierEntry orders nodes by (priority, sequence).
type frontierEntry struct {
	priority float64
	sequence int
	node     *searchNode
}

// frontier is a min-heap of *frontierEntry. Duplicate positions are allowed;
// stale entries are discarded on pop via the closed set.
type frontier []*frontierEntry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].sequence < f[j].sequence
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierEntry)) }

// Pop removes the last element; called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
