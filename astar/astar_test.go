package astar_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
)

// blocked is a minimal Obstacles implementation for engine tests.
type blocked map[astar.Position]struct{}

func (b blocked) Contains(p astar.Position) bool {
	_, ok := b[p]
	return ok
}

func pos(x, y int) astar.Position { return astar.Position{X: x, Y: y} }

func problem(w, h int, walls astar.Obstacles, start, goal astar.Position) astar.Problem {
	return astar.Problem{
		Borders: pos(w, h),
		Walls:   walls,
		Start:   &start,
		Goal:    &goal,
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_ConfigurationErrors(t *testing.T) {
	s, g := pos(10, 10), pos(20, 20)
	cases := []struct {
		name string
		p    astar.Problem
		opts []astar.Option
		err  error
	}{
		{"StartUnset", astar.Problem{Borders: pos(50, 50), Goal: &g}, nil, astar.ErrStartUnset},
		{"GoalUnset", astar.Problem{Borders: pos(50, 50), Start: &s}, nil, astar.ErrGoalUnset},
		{"ZeroWidth", astar.Problem{Borders: pos(0, 50), Start: &s, Goal: &g}, nil, astar.ErrBadBorders},
		{"NegativeHeight", astar.Problem{Borders: pos(50, -1), Start: &s, Goal: &g}, nil, astar.ErrBadBorders},
		{"ZeroStep", astar.Problem{Borders: pos(50, 50), Start: &s, Goal: &g},
			[]astar.Option{astar.WithStepSize(0)}, astar.ErrBadStepSize},
		{"NegativeStep", astar.Problem{Borders: pos(50, 50), Start: &s, Goal: &g},
			[]astar.Option{astar.WithStepSize(-5)}, astar.ErrBadStepSize},
		{"UnknownConnectivity", astar.Problem{Borders: pos(50, 50), Start: &s, Goal: &g},
			[]astar.Option{astar.WithConnectivity(astar.Connectivity(9))}, astar.ErrBadConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(tc.p, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, astar.ErrConfiguration)
		})
	}
}

func TestSearch_OptionViolation(t *testing.T) {
	res, err := astar.Search(problem(50, 50, nil, pos(10, 10), pos(20, 20)), astar.WithHeuristic(nil))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
	assert.False(t, errors.Is(err, astar.ErrConfiguration))
}

// ------------------------------------------------------------------------
// 2. Exact traces on tiny planes
// ------------------------------------------------------------------------

// TestSearch_ShortLine walks two steps east with step 10.
// (20,10) is not inside the open window (20,40)×(0,20) around (30,10).
func TestSearch_ShortLine(t *testing.T) {
	res, err := astar.Search(
		problem(100, 100, nil, pos(10, 10), pos(30, 10)),
		astar.WithStepSize(10),
		astar.WithRecordVisits(),
	)
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, []astar.Position{pos(20, 10), pos(30, 10)}, res.Path)
	assert.Equal(t, 3, res.Pops)
	assert.Equal(t, []astar.Visit{
		{Pos: pos(10, 10), Count: 1},
		{Pos: pos(20, 10), Count: 1},
		{Pos: pos(30, 10), Count: 1},
	}, res.Trace.Order)
	assert.Equal(t, map[astar.Position]int{
		pos(10, 10): 1,
		pos(20, 10): 1,
		pos(30, 10): 1,
		pos(10, 20): 0,
		pos(20, 20): 0,
	}, res.Trace.Counts)
}

// TestSearch_CornerTurn checks that equal priorities fall back to insertion order.
func TestSearch_CornerTurn(t *testing.T) {
	res, err := astar.Search(
		problem(40, 40, nil, pos(10, 10), pos(30, 30)),
		astar.WithStepSize(10),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []astar.Position{pos(20, 10), pos(30, 10), pos(30, 20), pos(30, 30)}, res.Path)
	assert.Equal(t, 5, res.Pops)
	assert.Nil(t, res.Trace.Counts, "no trace without recording")
	assert.Empty(t, res.Trace.Order)
}

// TestSearch_ExhaustedWithRepop seals the goal corner off and drains the plane.
// (10,20) is pushed twice before it is closed, so it is popped twice.
//
//	y=10:  S  .  .
//	y=20:  .  .  #
//	y=30:  .  #  G
func TestSearch_ExhaustedWithRepop(t *testing.T) {
	walls := blocked{pos(20, 30): {}, pos(30, 20): {}}
	res, err := astar.Search(
		problem(40, 40, walls, pos(10, 10), pos(30, 30)),
		astar.WithStepSize(10),
		astar.WithRecordVisits(),
	)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 7, res.Pops)

	order := make([]astar.Position, 0, len(res.Trace.Order))
	for _, v := range res.Trace.Order {
		order = append(order, v.Pos)
	}
	assert.Equal(t, []astar.Position{
		pos(10, 10), pos(20, 10), pos(30, 10), pos(20, 20), pos(10, 20), pos(10, 30), pos(10, 20),
	}, order)
	assert.Equal(t, 2, res.Trace.Counts[pos(10, 20)])
	assert.Equal(t, astar.Visit{Pos: pos(10, 20), Count: 2}, res.Trace.Order[6])
}

// ------------------------------------------------------------------------
// 3. Properties
// ------------------------------------------------------------------------

// TestSearch_OpenField runs (10,10)→(90,90) with step 5 on an empty 100×100 plane.
// Every pop moves one step closer, east before north on ties.
func TestSearch_OpenField(t *testing.T) {
	res, err := astar.Search(
		problem(100, 100, nil, pos(10, 10), pos(90, 90)),
		astar.WithStepSize(5),
		astar.WithConnectivity(astar.FourWay),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.Path, (80+80)/5)

	last := res.Path[len(res.Path)-1]
	assert.True(t, last.X > 85 && last.X < 95 && last.Y > 85 && last.Y < 95, "last=%v", last)
	assert.Equal(t, pos(15, 10), res.Path[0])
	assert.Equal(t, pos(90, 10), res.Path[15])
	assert.Equal(t, pos(90, 90), last)
	assert.Equal(t, len(res.Path)+1, res.Pops)
}

// TestSearch_OpenFieldDirections checks that aligned pairs on an empty plane
// are joined by a shortest 4-way path whatever the direction of travel.
func TestSearch_OpenFieldDirections(t *testing.T) {
	tests := []struct {
		name        string
		start, goal astar.Position
		step        int
	}{
		{"DownRight", pos(10, 10), pos(90, 90), 5},
		{"UpLeft", pos(90, 90), pos(10, 10), 5},
		{"DownLeft", pos(80, 20), pos(20, 80), 5},
		{"UpRight", pos(20, 80), pos(80, 20), 5},
		{"StraightUp", pos(50, 50), pos(50, 10), 5},
		{"StraightLeft", pos(70, 30), pos(15, 30), 5},
		{"FarCorners", pos(15, 85), pos(95, 5), 5},
		{"CoarseStepUpLeft", pos(90, 70), pos(30, 10), 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(
				problem(100, 100, nil, tc.start, tc.goal),
				astar.WithStepSize(tc.step),
			)
			require.NoError(t, err)
			require.True(t, res.Found)

			want := (abs(tc.goal.X-tc.start.X) + abs(tc.goal.Y-tc.start.Y)) / tc.step
			require.Len(t, res.Path, want)
			assert.Equal(t, tc.goal, res.Path[len(res.Path)-1])
			assert.Equal(t, want+1, res.Pops)

			prev := tc.start
			for _, p := range res.Path {
				assert.Equal(t, tc.step, abs(p.X-prev.X)+abs(p.Y-prev.Y), "%v -> %v", prev, p)
				prev = p
			}
		})
	}
}

// TestSearch_LargeExhaustedPlaneMemory drains a 400×400 plane at step 1.
// Total allocation must stay linear in the number of pushes.
func TestSearch_LargeExhaustedPlaneMemory(t *testing.T) {
	if testing.Short() {
		t.Skip("large plane")
	}
	p := problem(400, 400, nil, pos(1, 1), pos(1000, 1000))

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	res, err := astar.Search(p)
	runtime.ReadMemStats(&after)

	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.GreaterOrEqual(t, res.Pops, 399*399)

	allocated := after.TotalAlloc - before.TotalAlloc
	assert.Less(t, allocated, uint64(256<<20), "allocated %d bytes", allocated)
}

func TestSearch_StartInGoalRegion(t *testing.T) {
	res, err := astar.Search(
		problem(100, 100, nil, pos(50, 50), pos(50, 52)),
		astar.WithStepSize(5),
		astar.WithRecordVisits(),
	)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Equal(t, 1, res.Pops)
	assert.Equal(t, []astar.Visit{{Pos: pos(50, 50), Count: 1}}, res.Trace.Order)
}

// TestSearch_EnclosedGoal walls off every approach to the goal window.
func TestSearch_EnclosedGoal(t *testing.T) {
	walls := blocked{}
	for x := 20; x <= 40; x += 5 {
		for y := 20; y <= 40; y += 5 {
			if x == 20 || x == 40 || y == 20 || y == 40 {
				walls[pos(x, y)] = struct{}{}
			}
		}
	}
	res, err := astar.Search(
		problem(60, 60, walls, pos(5, 5), pos(30, 30)),
		astar.WithStepSize(5),
	)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)

	// Free aligned cells: 11×11 minus the 16-cell ring minus the 9 enclosed ones.
	assert.LessOrEqual(t, res.Pops, 4*(11*11-16-9)+1)
}

func TestSearch_EnclosedGoalEightWay(t *testing.T) {
	walls := blocked{}
	for x := 20; x <= 40; x += 5 {
		for y := 20; y <= 40; y += 5 {
			if x == 20 || x == 40 || y == 20 || y == 40 {
				walls[pos(x, y)] = struct{}{}
			}
		}
	}
	res, err := astar.Search(
		problem(60, 60, walls, pos(5, 5), pos(30, 30)),
		astar.WithStepSize(5),
		astar.WithConnectivity(astar.AllEight),
	)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_Deterministic(t *testing.T) {
	walls := blocked{}
	for y := 10; y < 80; y += 2 {
		walls[pos(50, y)] = struct{}{}
	}
	run := func() *astar.Result {
		res, err := astar.Search(
			problem(100, 100, walls, pos(10, 40), pos(90, 40)),
			astar.WithStepSize(2),
			astar.WithConnectivity(astar.AllEight),
			astar.WithRecordVisits(),
		)
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	require.True(t, a.Found)
	assert.Equal(t, a.Path, b.Path)
	assert.Equal(t, a.Trace.Order, b.Trace.Order)
	assert.Equal(t, a.Pops, b.Pops)
	for _, p := range a.Path {
		assert.False(t, walls.Contains(p), "path crosses wall at %v", p)
	}
}

// TestSearch_PathIsConnected checks every path step is one legal move.
func TestSearch_PathIsConnected(t *testing.T) {
	walls := blocked{}
	for x := 6; x < 60; x += 3 {
		walls[pos(x, 30)] = struct{}{}
	}
	start, goal := pos(30, 9), pos(30, 57)
	res, err := astar.Search(problem(70, 70, walls, start, goal), astar.WithStepSize(3))
	require.NoError(t, err)
	require.True(t, res.Found)

	prev := start
	for _, p := range res.Path {
		dx, dy := p.X-prev.X, p.Y-prev.Y
		assert.Equal(t, 3, abs(dx)+abs(dy), "step %v→%v", prev, p)
		prev = p
	}
	assert.True(t, astar.IsGoal(prev, goal, 3))
}

func TestSearch_EuclideanHeuristic(t *testing.T) {
	res, err := astar.Search(
		problem(100, 100, nil, pos(10, 10), pos(90, 90)),
		astar.WithStepSize(5),
		astar.WithHeuristic(astar.Euclidean),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.GreaterOrEqual(t, len(res.Path), 32)
	assert.Equal(t, pos(90, 90), res.Path[len(res.Path)-1])
}

func TestSearch_DiagonalOnlyParity(t *testing.T) {
	// Diagonal moves keep the parity of (x+y)/step, so (40,35) is out of reach from (10,10).
	res, err := astar.Search(
		problem(60, 60, nil, pos(10, 10), pos(40, 35)),
		astar.WithStepSize(5),
		astar.WithConnectivity(astar.EightWay),
	)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_DiagonalOnlyReachable(t *testing.T) {
	res, err := astar.Search(
		problem(60, 60, nil, pos(10, 10), pos(40, 40)),
		astar.WithStepSize(5),
		astar.WithConnectivity(astar.EightWay),
	)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []astar.Position{pos(15, 15), pos(20, 20), pos(25, 25), pos(30, 30), pos(35, 35), pos(40, 40)}, res.Path)
}

// ------------------------------------------------------------------------
// 4. Hooks and cancellation
// ------------------------------------------------------------------------

func TestSearch_OnVisitHandles(t *testing.T) {
	var calls []astar.Position
	hook := func(p astar.Position, count int) any {
		calls = append(calls, p)
		return len(calls) * 10
	}
	res, err := astar.Search(
		problem(100, 100, nil, pos(10, 10), pos(30, 10)),
		astar.WithStepSize(10),
		astar.WithOnVisit(hook),
	)
	require.NoError(t, err)
	require.Len(t, res.Trace.Order, 3)
	assert.Equal(t, []astar.Position{pos(10, 10), pos(20, 10), pos(30, 10)}, calls)
	for i, v := range res.Trace.Order {
		assert.Equal(t, (i+1)*10, v.Handle)
	}
}

func TestSearch_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := astar.Search(problem(100, 100, nil, pos(10, 10), pos(90, 90)), astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Found)
	assert.Zero(t, res.Pops)
}

func TestSearch_CancelledFromHook(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hook := func(_ astar.Position, _ int) any {
		cancel()
		return nil
	}
	// The goal sits outside the plane, so only cancellation can stop this search early.
	res, err := astar.Search(
		problem(2000, 2000, nil, pos(1, 1), pos(5000, 5000)),
		astar.WithContext(ctx),
		astar.WithOnVisit(hook),
	)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Pops)
	assert.Len(t, res.Trace.Order, 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
