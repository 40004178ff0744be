package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	perrors "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

func TestHasSymbolAndFindSymbols(t *testing.T) {
	g := xref.New()
	g.AddSymbol("pkg.widget.Render", xref.Function)
	g.AddSymbol("pkg.widget.Resize", xref.Function)
	g.AddSymbol("pkg.gadget.Render", xref.Function)
	g.Finalize()

	e := New(g)
	require.True(t, e.HasSymbol("pkg.widget.Render"))
	require.False(t, e.HasSymbol("pkg.widget.Missing"))

	got := e.FindSymbols([]string{"widget", "Re"})
	require.ElementsMatch(t, []string{"pkg.widget.Render", "pkg.widget.Resize"}, got)
}

func TestVariablesIn(t *testing.T) {
	g := xref.New()
	g.AddSymbol("use.x", xref.Variable)
	g.AddSymbol("use.y", xref.Variable)
	g.AddSymbol("other.z", xref.Variable)
	g.AddSymbol("use.fn", xref.Function)
	g.Finalize()

	e := New(g)
	got := e.VariablesIn("use.")
	require.ElementsMatch(t, []string{"use.x", "use.y"}, got)
}

func TestDataSourcesAndSinks(t *testing.T) {
	g := xref.New()
	makeUID := g.AddSymbol("make", xref.Function)
	xUID := g.AddSymbol("use.x", xref.Variable)
	g.AddDataFlow(makeUID, xUID)
	g.Finalize()

	e := New(g)
	sources, err := e.DataSources("use.x")
	require.NoError(t, err)
	require.Equal(t, []string{"make"}, sources)

	sinks, err := e.DataSinks("make")
	require.NoError(t, err)
	require.Equal(t, []string{"use.x"}, sinks)
}

func TestMembersExcludesTopLevelAndCSyntheticPrefix(t *testing.T) {
	g := xref.New()
	g.AddSymbol("Widget.render", xref.Function)      // python member
	g.AddSymbol("render", xref.Function)              // python top-level
	g.AddSymbol("ns::Widget::render", xref.Function)  // c++ member
	g.AddSymbol("a.c::render", xref.Function)         // c synthetic top-level
	g.Finalize()

	e := New(g)
	got := e.Members([]string{"render"})
	require.ElementsMatch(t, []string{"Widget.render", "ns::Widget::render"}, got)
}

func TestDataSourcesNotFoundCarriesSuggestions(t *testing.T) {
	g := xref.New()
	g.AddSymbol("use.x", xref.Variable)
	g.Finalize()

	e := New(g)
	_, err := e.DataSources("use.xx")
	require.Error(t, err)
	ue, ok := err.(*perrors.UserError)
	require.True(t, ok)
	require.Equal(t, perrors.KindSymbolNotFound, ue.Kind)
	require.Contains(t, ue.Suggestion, "use.x")
}
