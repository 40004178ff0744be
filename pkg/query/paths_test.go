package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

func collect(f func(cb PathCallback) error) ([][]string, error) {
	var paths [][]string
	err := f(func(path []string) bool {
		cp := make([]string, len(path))
		copy(cp, path)
		paths = append(paths, cp)
		return true
	})
	return paths, err
}

// S1: trivial chain, a.c::a calls b.c::b.
func TestFindPathsTrivialChain(t *testing.T) {
	g := xref.New()
	a := g.AddSymbol("a.c::a", xref.Function)
	b := g.AddSymbol("b.c::b", xref.Function)
	g.AddCall(a, b)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.FindPaths("a.c::a", "b.c::b", cb) })
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a.c::a", "b.c::b"}}, paths)
}

// S2: forward trace to the synthetic END sink.
func TestForwardTraceToEnd(t *testing.T) {
	g := xref.New()
	caller := g.AddSymbol("main.c::caller", xref.Function)
	leaf := g.AddSymbol("main.c::leaf", xref.Function)
	g.AddCall(caller, leaf)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.ForwardTrace("main.c::caller", cb) })
	require.NoError(t, err)
	require.Equal(t, [][]string{{"main.c::caller", "main.c::leaf", "END"}}, paths)
}

// S3: backtrace from a symbol with two callers, both roots.
func TestBacktraceTwoCallers(t *testing.T) {
	g := xref.New()
	target := g.AddSymbol("x.c::t", xref.Function)
	p := g.AddSymbol("x.c::p", xref.Function)
	q := g.AddSymbol("x.c::q", xref.Function)
	g.AddCall(p, target)
	g.AddCall(q, target)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.Backtrace("x.c::t", "", cb) })
	require.NoError(t, err)
	require.ElementsMatch(t, [][]string{
		{"x.c::p", "x.c::t"},
		{"x.c::q", "x.c::t"},
	}, paths)
}

// S4: mutual recursion terminates with exactly one path, no duplication.
func TestFindPathsCycleTolerance(t *testing.T) {
	g := xref.New()
	f := g.AddSymbol("c.c::f", xref.Function)
	gg := g.AddSymbol("c.c::g", xref.Function)
	g.AddCall(f, gg)
	g.AddCall(gg, f)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.FindPaths("c.c::f", "c.c::g", cb) })
	require.NoError(t, err)
	require.Equal(t, [][]string{{"c.c::f", "c.c::g"}}, paths)
}

// Q1/Q2: diamond graph enumerates exactly the two simple paths, with
// correct endpoints and no repeated node within a single path.
func TestFindPathsDiamondSimplePaths(t *testing.T) {
	g := xref.New()
	start := g.AddSymbol("start", xref.Function)
	left := g.AddSymbol("left", xref.Function)
	right := g.AddSymbol("right", xref.Function)
	end := g.AddSymbol("end", xref.Function)
	g.AddCall(start, left)
	g.AddCall(start, right)
	g.AddCall(left, end)
	g.AddCall(right, end)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.FindPaths("start", "end", cb) })
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		require.Equal(t, "start", p[0])
		require.Equal(t, "end", p[len(p)-1])
		seen := make(map[string]bool)
		for _, name := range p {
			require.False(t, seen[name], "path repeats a node: %v", p)
			seen[name] = true
		}
	}
	require.ElementsMatch(t, [][]string{
		{"start", "left", "end"},
		{"start", "right", "end"},
	}, paths)
}

// Unreachable end: nothing is emitted.
func TestFindPathsUnreachableEndEmitsNothing(t *testing.T) {
	g := xref.New()
	a := g.AddSymbol("a", xref.Function)
	b := g.AddSymbol("b", xref.Function)
	g.AddSymbol("c", xref.Function)
	g.AddCall(a, b)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.FindPaths("a", "c", cb) })
	require.NoError(t, err)
	require.Empty(t, paths)
}

// T12: returning false from the callback halts enumeration immediately.
func TestFindPathsCallbackFalseStopsEnumeration(t *testing.T) {
	g := xref.New()
	start := g.AddSymbol("start", xref.Function)
	left := g.AddSymbol("left", xref.Function)
	right := g.AddSymbol("right", xref.Function)
	end := g.AddSymbol("end", xref.Function)
	g.AddCall(start, left)
	g.AddCall(start, right)
	g.AddCall(left, end)
	g.AddCall(right, end)
	g.Finalize()

	e := New(g)
	calls := 0
	err := e.FindPaths("start", "end", func(path []string) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

// Both sentinels given is an invalid query shape.
func TestFindPathsBothSentinelsIsError(t *testing.T) {
	g := xref.New()
	g.Finalize()
	e := New(g)
	err := e.FindPaths(Start, End, func(path []string) bool { return true })
	require.Error(t, err)
}

func TestFindDataFlowPathsDirectEdge(t *testing.T) {
	g := xref.New()
	makeUID := g.AddSymbol("make", xref.Function)
	xUID := g.AddSymbol("use.x", xref.Variable)
	g.AddDataFlow(makeUID, xUID)
	g.Finalize()

	e := New(g)
	paths, err := collect(func(cb PathCallback) error { return e.FindDataFlowPaths("make", "use.x", cb) })
	require.NoError(t, err)
	require.Equal(t, [][]string{{"make", "use.x"}}, paths)
}
