package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserErrorFormatHuman(t *testing.T) {
	err := IndexMissing(".pioneer.json")
	out := err.Format(false)
	require.Contains(t, out, "No index found")
	require.Contains(t, out, ".pioneer.json")
	require.Contains(t, out, "pioneer index")
}

func TestUserErrorFormatJSON(t *testing.T) {
	err := BadRegex("(unterminated", nil)
	out := err.Format(true)
	require.Contains(t, out, `"kind":"BadRegex"`)
	require.Contains(t, out, "unterminated")
}

func TestSchemaIncompatibleIsError(t *testing.T) {
	err := SchemaIncompatible("index schema version 0.9.0 is older than the minimum supported 1.0.0")
	require.Error(t, err)
	ue, ok := err.(*UserError)
	require.True(t, ok)
	require.Equal(t, KindSchemaIncompatible, ue.Kind)
}

func TestSuggestionsForRanksByDistance(t *testing.T) {
	candidates := []string{"compute", "compote", "computer", "banana"}
	got := SuggestionsFor("comput", candidates, 2)
	require.Len(t, got, 2)
	require.Contains(t, got, "compute")
}

func TestSuggestionsForCapsAtFive(t *testing.T) {
	candidates := []string{"aa", "ab", "ac", "ad", "ae", "af", "ag"}
	got := SuggestionsFor("aa", candidates, 10)
	require.Len(t, got, maxSuggestions)
}

func TestFatalErrorExitsNonFatalPathsUnaffected(t *testing.T) {
	// FatalError calls os.Exit and cannot be exercised directly in-process;
	// Format and the constructors below it are the testable surface.
	err := SymbolNotFound("mian", []string{"main"})
	require.Contains(t, err.Format(false), "Did you mean")
	require.Contains(t, err.Format(false), "main")
}
