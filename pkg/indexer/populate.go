package indexer

import (
	"strings"

	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// shortNameIndex maps a symbol's short name (the segment after the final
// "::" or ".") to the qualified name it first resolved to. Binding is
// first-writer-wins (spec §9): once a short name is claimed, later
// functions sharing it are still indexed under their own qualified name
// but do not displace the existing short-name binding.
type shortNameIndex struct {
	byQualified map[string]uint64
	byShort     map[string]uint64
}

func newShortNameIndex() *shortNameIndex {
	return &shortNameIndex{
		byQualified: make(map[string]uint64),
		byShort:     make(map[string]uint64),
	}
}

func (s *shortNameIndex) record(qualifiedName string, uid uint64) {
	s.byQualified[qualifiedName] = uid
	short := shortNameOf(qualifiedName)
	if _, claimed := s.byShort[short]; !claimed {
		s.byShort[short] = uid
	}
}

// resolve looks up a callee reference, preferring an exact qualified-name
// match before falling back to the short-name index.
func (s *shortNameIndex) resolve(name string) (uint64, bool) {
	if uid, ok := s.byQualified[name]; ok {
		return uid, true
	}
	short := shortNameOf(name)
	uid, ok := s.byShort[short]
	return uid, ok
}

func shortNameOf(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// populateBatch applies one batch of file results to the graph, in the
// three-step order required by spec §4.C Phase 3: functions, then calls,
// then variables. Processing functions for the whole batch before any
// call in the batch is resolved lets same-batch forward references
// resolve; a callee defined in a later batch falls back to an
// unqualified symbol, which is accepted imprecision (spec §4.C, §9).
func populateBatch(g *xref.Graph, idx *shortNameIndex, batch []fileResult) {
	for _, fr := range batch {
		for _, fn := range fr.functions {
			uid := g.AddSymbolWithFile(fn.QualifiedName, fr.path, xref.Function)
			idx.record(fn.QualifiedName, uid)
		}
	}
	for _, fr := range batch {
		for _, call := range fr.calls {
			callerUID, ok := idx.resolve(call.CallerName)
			if !ok {
				callerUID = g.AddSymbol(call.CallerName, xref.Function)
				idx.record(call.CallerName, callerUID)
			}
			calleeUID, ok := idx.resolve(call.CalleeName)
			if !ok {
				calleeUID = g.AddSymbol(call.CalleeName, xref.Function)
				idx.record(call.CalleeName, calleeUID)
			}
			g.AddCall(callerUID, calleeUID)
		}
	}
	for _, fr := range batch {
		for _, v := range fr.variables {
			varUID := g.AddSymbolWithFile(v.QualifiedName, fr.path, xref.Variable)
			idx.record(v.QualifiedName, varUID)

			if v.ValueSource == "" {
				continue
			}
			var sourceUID uint64
			if v.FromFunctionCall {
				uid, ok := idx.resolve(v.ValueSource)
				if !ok {
					uid = g.AddSymbol(v.ValueSource, xref.Function)
					idx.record(v.ValueSource, uid)
				}
				sourceUID = uid
			} else {
				uid, ok := idx.resolve(v.ValueSource)
				if !ok {
					// A literal or expression right-hand side textually
					// names a source that was never declared anywhere
					// (spec §3: "a newly-minted synthetic symbol naming a
					// literal/expression textually"). Mint it as a
					// Variable rather than dropping the edge (spec §4.C
					// Phase 3 step 3).
					uid = g.AddSymbol(v.ValueSource, xref.Variable)
					idx.record(v.ValueSource, uid)
				}
				sourceUID = uid
			}
			g.AddDataFlow(sourceUID, varUID)
		}
	}
}
