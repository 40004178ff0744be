// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//

// Package query implements the read-only operations over a finalized
// cross-reference graph described in spec §4.E: symbol lookups, data-flow
// one-hop queries, and the path-enumeration family built on the
// bidirectional search in §4.E.1.
package query

import (
	"strings"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// Sentinel names recognized by FindPaths (spec §4.E).
const (
	Start = "START"
	End   = "END"
)

// PathCallback receives one enumerated path at a time, as a snapshot of
// qualified names from start to end. Returning false stops enumeration.
type PathCallback func(path []string) bool

// Engine holds a reference to a finalized graph; every method is a pure
// read over it.
type Engine struct {
	g *xref.Graph
}

// New wraps a finalized graph for querying.
func New(g *xref.Graph) *Engine {
	return &Engine{g: g}
}

// HasSymbol reports whether name exists in the graph.
func (e *Engine) HasSymbol(name string) bool {
	_, ok := e.g.GetUID(name)
	return ok
}

// FindSymbols returns every symbol whose qualified name contains every
// pattern as a substring, narrowing conjunctively left to right.
func (e *Engine) FindSymbols(patterns []string) []string {
	var out []string
	e.g.RangeSymbols(func(s xref.Symbol) {
		if matchesAll(s.QualifiedName, patterns) {
			out = append(out, s.QualifiedName)
		}
	})
	return out
}

// VariablesIn returns every Variable symbol whose qualified name contains
// pattern as a substring.
func (e *Engine) VariablesIn(pattern string) []string {
	var out []string
	e.g.RangeSymbols(func(s xref.Symbol) {
		if s.Type == xref.Variable && strings.Contains(s.QualifiedName, pattern) {
			out = append(out, s.QualifiedName)
		}
	})
	return out
}

// sourceExtensions are the scope prefixes pkg/indexer synthesizes for
// top-level C functions ("file.c::func", spec §6.3) — isMember below must
// not mistake that file-name prefix for a class/namespace scope.
var sourceExtensions = []string{".c", ".h"}

// isMember reports whether qualified looks like a class or namespace
// member rather than a top-level function: it has a scope prefix before
// the last "::" or "." separator, and that prefix isn't a source file
// name (the C top-level synthetic qualification).
func isMember(qualified string) bool {
	sep := strings.LastIndex(qualified, "::")
	if sep < 0 {
		sep = strings.LastIndex(qualified, ".")
	}
	if sep < 0 {
		return false
	}
	prefix := qualified[:sep]
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(prefix, ext) {
			return false
		}
	}
	return true
}

// Members returns every Function symbol that looks like a class or
// namespace member (spec §6.1 `member <pat…>`) whose qualified name
// contains every pattern as a substring.
func (e *Engine) Members(patterns []string) []string {
	var out []string
	e.g.RangeSymbols(func(s xref.Symbol) {
		if s.Type == xref.Function && isMember(s.QualifiedName) && matchesAll(s.QualifiedName, patterns) {
			out = append(out, s.QualifiedName)
		}
	})
	return out
}

// DataSources returns the direct one-hop sources flowing into variable.
func (e *Engine) DataSources(variable string) ([]string, error) {
	uid, ok := e.g.GetUID(variable)
	if !ok {
		return nil, e.notFound(variable)
	}
	return e.g.GetDataSources(uid), nil
}

// DataSinks returns the direct one-hop variables src flows into.
func (e *Engine) DataSinks(src string) ([]string, error) {
	uid, ok := e.g.GetUID(src)
	if !ok {
		return nil, e.notFound(src)
	}
	return e.g.GetDataSinks(uid), nil
}

func matchesAll(name string, patterns []string) bool {
	for _, p := range patterns {
		if !strings.Contains(name, p) {
			return false
		}
	}
	return true
}

// notFound builds a SymbolNotFound error carrying up to 5 "did you mean"
// suggestions ranked by edit distance against every indexed name.
func (e *Engine) notFound(name string) error {
	var candidates []string
	e.g.RangeSymbols(func(s xref.Symbol) {
		candidates = append(candidates, s.QualifiedName)
	})
	return perr.SymbolNotFound(name, perr.SuggestionsFor(name, candidates, 5))
}

func (e *Engine) names(uids []uint64) []string {
	out := make([]string, len(uids))
	for i, uid := range uids {
		sym, ok := e.g.GetSymbol(uid)
		if !ok {
			out[i] = ""
			continue
		}
		out[i] = sym.QualifiedName
	}
	return out
}
