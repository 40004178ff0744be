package indexer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// Two C functions sharing the synthetic "file.c::name" qualified name but
// differing in parameter types are overloads (spec §6.3, §9): each must
// get its own symbol, suffixed with its normalized parameter-type
// signature, and each one's own calls must attribute to the right
// overload rather than colliding on the shared pre-suffix name.
func TestPipelineDisambiguatesOverloadsWithinFile(t *testing.T) {
	root := t.TempDir()
	src := "void b1(){}\nvoid b2(){}\nvoid over(int x){ b1(); }\nvoid over(char c){ b2(); }\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.c"), []byte(src), 0o644))

	p := New(Config{Root: root}, nil)
	g, _, err := p.Run(context.Background())
	require.NoError(t, err)

	intUID, ok := g.GetUID("a.c::over(int)")
	require.True(t, ok, "expected a.c::over(int) overload symbol to exist")
	charUID, ok := g.GetUID("a.c::over(char)")
	require.True(t, ok, "expected a.c::over(char) overload symbol to exist")
	require.NotEqual(t, intUID, charUID)

	_, bareOK := g.GetUID("a.c::over")
	require.False(t, bareOK, "unsuffixed over should not also exist once disambiguated")

	require.Contains(t, g.GetCallees(intUID), "a.c::b1")
	require.Contains(t, g.GetCallees(charUID), "a.c::b2")
}

// Two functions in different files sharing a qualified name (here both
// files define Widget.render) are also overloads once their signatures
// differ (spec §6.3, §9's "same repository" scope, not just the same file).
func TestPipelineDisambiguatesOverloadsAcrossFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "widget.py"), []byte("class Widget:\n    def render(self):\n        pass\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "panel.py"), []byte("class Widget:\n    def render(self, ctx):\n        pass\n"), 0o644))

	p := New(Config{Root: root, Workers: 2}, nil)
	g, _, err := p.Run(context.Background())
	require.NoError(t, err)

	_, widgetBareOK := g.GetUID("Widget.render")
	_, ctxOverloadOK := g.GetUID("Widget.render(self, ctx)")
	require.False(t, widgetBareOK, "Widget.render should be suffixed once disambiguated")
	require.True(t, ctxOverloadOK, "expected the Widget.render(self, ctx) overload symbol to exist")

	var renderOverloads []string
	g.RangeSymbols(func(s xref.Symbol) {
		if strings.HasPrefix(s.QualifiedName, "Widget.render(") {
			renderOverloads = append(renderOverloads, s.QualifiedName)
		}
	})
	require.Len(t, renderOverloads, 2)
	require.NotEqual(t, renderOverloads[0], renderOverloads[1])
}

// A plain literal/expression right-hand side (no call, no known symbol)
// still mints a synthetic Variable source and a data-flow edge, rather
// than being silently dropped (spec §3, §4.C Phase 3 step 3).
func TestPipelineMintsSyntheticSourceForLiteralAssignment(t *testing.T) {
	root := t.TempDir()
	src := "def make():\n    y = 1\n    return y\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "mod.py"), []byte(src), 0o644))

	p := New(Config{Root: root}, nil)
	g, _, err := p.Run(context.Background())
	require.NoError(t, err)

	yUID, ok := g.GetUID("make.y")
	require.True(t, ok, "expected variable 'make.y' to exist")

	sources := g.GetDataSources(yUID)
	require.NotEmpty(t, sources, "expected a synthetic source for the literal assignment")

	litUID, ok := g.GetUID("1")
	require.True(t, ok, "expected a synthetic symbol named after the literal text")
	sym, ok := g.GetSymbol(litUID)
	require.True(t, ok)
	require.Equal(t, "1", sym.QualifiedName)
}
