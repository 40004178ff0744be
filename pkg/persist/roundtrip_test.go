package persist

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// buildSampleGraph mirrors spec scenario S3: two files, two callers of
// one callee, one data-flow edge, then Finalize.
func buildSampleGraph(t *testing.T) *xref.Graph {
	t.Helper()
	g := xref.New()
	p := g.AddSymbolWithFile("x.c::p", "x.c", xref.Function)
	q := g.AddSymbolWithFile("x.c::q", "x.c", xref.Function)
	target := g.AddSymbolWithFile("x.c::t", "x.c", xref.Function)
	g.AddCall(p, target)
	g.AddCall(q, target)

	useVar := g.AddSymbolWithFile("use.x", "m.py", xref.Variable)
	makeFn := g.AddSymbolWithFile("make", "m.py", xref.Function)
	g.AddDataFlow(makeFn, useVar)

	g.Finalize()
	return g
}

func dump(t *testing.T, g *xref.Graph) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, g))
	return buf.Bytes()
}

// T6: load(save(G)) == G up to set-iteration order.
func TestRoundTripFullPreservesGraph(t *testing.T) {
	g := buildSampleGraph(t)
	data := dump(t, g)

	loaded, err := Load(bytes.NewReader(data), Full)
	require.NoError(t, err)

	require.Equal(t, g.SymbolCount(), loaded.SymbolCount())
	require.Equal(t, g.FileCount(), loaded.FileCount())
	require.Equal(t, g.EndUID(), loaded.EndUID())
	require.True(t, loaded.Finalized())

	pUID, ok := g.GetUID("x.c::p")
	require.True(t, ok)
	lpUID, ok := loaded.GetUID("x.c::p")
	require.True(t, ok)
	require.Equal(t, pUID, lpUID)

	require.ElementsMatch(t, g.GetCallees(lpUID), loaded.GetCallees(lpUID))

	tUID, _ := g.GetUID("x.c::t")
	require.ElementsMatch(t, g.GetCallers(tUID), loaded.GetCallers(tUID))

	xUID, _ := g.GetUID("use.x")
	require.ElementsMatch(t, g.GetDataSources(xUID), loaded.GetDataSources(xUID))

	path, ok := loaded.GetSymbol(pUID)
	require.True(t, ok)
	loadedPath, ok := loaded.GetFilePath(path.FileUID)
	require.True(t, ok)
	require.Equal(t, "x.c", loadedPath)
}

// T7: SymbolsOnly load equals the {names, uids, types} projection of G.
func TestRoundTripSymbolsOnlyProjection(t *testing.T) {
	g := buildSampleGraph(t)
	data := dump(t, g)

	loaded, err := Load(bytes.NewReader(data), SymbolsOnly)
	require.NoError(t, err)

	require.Equal(t, g.SymbolCount(), loaded.SymbolCount())

	pUID, _ := g.GetUID("x.c::p")
	sym, ok := loaded.GetSymbol(pUID)
	require.True(t, ok)
	require.Equal(t, "x.c::p", sym.QualifiedName)
	require.Equal(t, xref.Function, sym.Type)

	// Edges and file tables must not be materialized.
	require.Empty(t, loaded.GetCallees(pUID))
	require.Equal(t, 0, loaded.FileCount())
}

// T8: WithPaths load adds file tables on top of the SymbolsOnly projection.
func TestRoundTripWithPathsLoadsFileTables(t *testing.T) {
	g := buildSampleGraph(t)
	data := dump(t, g)

	loaded, err := Load(bytes.NewReader(data), WithPaths)
	require.NoError(t, err)

	require.Equal(t, g.SymbolCount(), loaded.SymbolCount())
	require.Equal(t, g.FileCount(), loaded.FileCount())

	pUID, _ := g.GetUID("x.c::p")
	sym, ok := loaded.GetSymbol(pUID)
	require.True(t, ok)
	path, ok := loaded.GetFilePath(sym.FileUID)
	require.True(t, ok)
	require.Equal(t, "x.c", path)

	// Edges must still be absent in this mode.
	require.Empty(t, loaded.GetCallees(pUID))
}

// S6: a persisted index claiming an incompatible schema version is
// rejected with both versions named; a freshly-written index then loads.
func TestLoadRejectsIncompatibleSchema(t *testing.T) {
	stale := []byte(`{"metadata":{"version":"0.9.0","counts":{"symbols":0,"functions":0,"variables":0,"files":0},"end_uid":0,"names":{}},"symbol_types":{},"call_mapping":{},"data_flow":{},"file_paths":{},"file_symbols":{},"symbol_files":{},"path_trie":{"files":[]}}`)

	_, err := Load(bytes.NewReader(stale), Full)
	require.Error(t, err)
	require.Contains(t, err.Error(), "0.9.0")
	require.Contains(t, err.Error(), Version)

	g := xref.New()
	g.Finalize()
	data := dump(t, g)
	_, err = Load(bytes.NewReader(data), Full)
	require.NoError(t, err)
}
