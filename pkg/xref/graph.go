// Package xref implements the cross-reference graph: a UID-keyed,
// string-interned, bidirectional graph of symbols, call edges, data-flow
// edges, and file provenance.
//
// The graph is build-time mutable under a single writer (the indexing
// pipeline), then Finalize freezes it: Finalize allocates the synthetic END
// symbol, wires every leaf function to it, and the result is treated as
// read-only from then on. The query engine holds a non-owning reference to
// a finalized Graph for its whole lifetime.
package xref

import (
	"fmt"

	"github.com/BiradarSiddhant02/pioneer/pkg/strpool"
)

// Graph owns both string pools, both UID tables, the four adjacency maps,
// and the file tables. It is the sole mutator of its own state; nothing
// outside this package reaches into its internals.
type Graph struct {
	namePool *strpool.Pool // symbol qualified names
	pathPool *strpool.Pool // file paths

	nameToUID map[string]uint64
	symbols   map[uint64]*symbolRecord

	pathToFileUID  map[string]uint64
	fileToPathIdx  map[uint64]uint32
	fileSymbols    map[uint64][]uint64 // insertion order
	symbolToFile   map[uint64]uint64   // convenience mirror of symbolRecord.fileUID

	callFwd map[uint64]*edgeSet
	callRev map[uint64]*edgeSet
	dataFwd map[uint64]*edgeSet
	dataRev map[uint64]*edgeSet

	nextSymbolUID uint64
	nextFileUID   uint64
	endUID        uint64 // 0 until Finalize

	finalized bool
}

// New returns an empty, build-time-mutable graph. Symbol and file UIDs are
// assigned densely starting at 1 (0 is the reserved InvalidUID).
func New() *Graph {
	return &Graph{
		namePool:      strpool.New(),
		pathPool:      strpool.New(),
		nameToUID:     make(map[string]uint64),
		symbols:       make(map[uint64]*symbolRecord),
		pathToFileUID: make(map[string]uint64),
		fileToPathIdx: make(map[uint64]uint32),
		fileSymbols:   make(map[uint64][]uint64),
		symbolToFile:  make(map[uint64]uint64),
		callFwd:       make(map[uint64]*edgeSet),
		callRev:       make(map[uint64]*edgeSet),
		dataFwd:       make(map[uint64]*edgeSet),
		dataRev:       make(map[uint64]*edgeSet),
		nextSymbolUID: 1,
		nextFileUID:   1,
	}
}

// AddSymbol inserts (or looks up) a symbol by its qualified name.
//
// Idempotent on name: the first call assigns a fresh UID and interns the
// name; a repeated call returns the existing UID but, matching the source
// behavior flagged in spec §9, the type argument on a repeated call
// OVERWRITES the existing type (last-write-wins). File provenance is never
// touched here (attach_file semantics live in AddSymbolWithFile).
func (g *Graph) AddSymbol(name string, typ SymbolType) uint64 {
	if uid, ok := g.nameToUID[name]; ok {
		g.symbols[uid].typ = typ
		return uid
	}
	uid := g.nextSymbolUID
	g.nextSymbolUID++
	idx := g.namePool.Intern(name)
	g.nameToUID[name] = uid
	g.symbols[uid] = &symbolRecord{nameIdx: idx, typ: typ}
	return uid
}

// AddSymbolWithFile is AddSymbol followed by attachFile: the first
// attachment wins, subsequent attachments with a different path are
// ignored (spec §9).
func (g *Graph) AddSymbolWithFile(name, path string, typ SymbolType) uint64 {
	uid := g.AddSymbol(name, typ)
	g.attachFile(uid, path)
	return uid
}

// attachFile records uid's owning file, first-writer-wins.
func (g *Graph) attachFile(uid uint64, path string) {
	rec, ok := g.symbols[uid]
	if !ok {
		return
	}
	if rec.fileUID != 0 {
		return // first attachment wins
	}
	fileUID := g.GetOrCreateFileUID(path)
	rec.fileUID = fileUID
	g.symbolToFile[uid] = fileUID
	g.fileSymbols[fileUID] = append(g.fileSymbols[fileUID], uid)
}

// GetOrCreateFileUID is idempotent on path: the first call assigns a fresh
// file UID (from a namespace disjoint from symbol UIDs) and interns the
// path; repeats return the same UID.
func (g *Graph) GetOrCreateFileUID(path string) uint64 {
	if uid, ok := g.pathToFileUID[path]; ok {
		return uid
	}
	uid := g.nextFileUID
	g.nextFileUID++
	idx := g.pathPool.Intern(path)
	g.pathToFileUID[path] = uid
	g.fileToPathIdx[uid] = idx
	return uid
}

// AddCall inserts caller → callee into both the forward and reverse call
// adjacency (set semantics: idempotent). Callers must not be the END
// symbol; once Finalize has run, END can never appear as a caller because
// Finalize only ever adds edges *to* it, so this is simply a no-op guard
// rather than an error path callers need to check.
func (g *Graph) AddCall(caller, callee uint64) {
	if g.finalized && caller == g.endUID {
		return
	}
	g.addEdge(g.callFwd, g.callRev, caller, callee)
}

// AddDataFlow inserts source → variable into both the forward and reverse
// data-flow adjacency (set semantics: idempotent).
func (g *Graph) AddDataFlow(source, variable uint64) {
	g.addEdge(g.dataFwd, g.dataRev, source, variable)
}

func (g *Graph) addEdge(fwd, rev map[uint64]*edgeSet, from, to uint64) {
	f := fwd[from]
	if f == nil {
		f = &edgeSet{}
		fwd[from] = f
	}
	f.add(to)

	r := rev[to]
	if r == nil {
		r = &edgeSet{}
		rev[to] = r
	}
	r.add(from)
}

// Finalize allocates the synthetic END symbol, connects every function
// with no outgoing call edge to it, and marks the graph read-only.
//
// Calling Finalize twice is a no-op (idempotent), matching the general
// idempotent-where-possible design of this package.
func (g *Graph) Finalize() {
	if g.finalized {
		return
	}
	endUID := g.AddSymbol("END", End)
	g.endUID = endUID

	// END is added before the loop and skipped inside it, so only the
	// original symbols are checked for being leaves; the loop adds edges
	// but never adds symbols.
	for uid, rec := range g.symbols {
		if uid == endUID {
			continue
		}
		if rec.typ != Function {
			continue
		}
		if g.callFwd[uid].len() == 0 {
			g.addEdge(g.callFwd, g.callRev, uid, endUID)
		}
	}
	g.finalized = true
}

// EndUID returns the synthetic END symbol's UID, or InvalidUID if
// Finalize has not run yet.
func (g *Graph) EndUID() uint64 {
	return g.endUID
}

// Finalized reports whether Finalize has run.
func (g *Graph) Finalized() bool {
	return g.finalized
}

// GetUID returns the UID for a qualified name, or (InvalidUID, false) on miss.
func (g *Graph) GetUID(name string) (uint64, bool) {
	uid, ok := g.nameToUID[name]
	return uid, ok
}

// GetSymbol returns the symbol record for uid, or (Symbol{}, false) on miss.
func (g *Graph) GetSymbol(uid uint64) (Symbol, bool) {
	rec, ok := g.symbols[uid]
	if !ok {
		return Symbol{}, false
	}
	return Symbol{
		UID:           uid,
		QualifiedName: g.namePool.Get(rec.nameIdx),
		Type:          rec.typ,
		FileUID:       rec.fileUID,
	}, true
}

// GetCallees returns the names of uid's direct callees, in insertion order.
func (g *Graph) GetCallees(uid uint64) []string {
	return g.namesOf(g.callFwd[uid])
}

// GetCallers returns the names of uid's direct callers, in insertion order.
func (g *Graph) GetCallers(uid uint64) []string {
	return g.namesOf(g.callRev[uid])
}

// GetDataSources returns the names of variableUID's direct data-flow
// sources, in insertion order.
func (g *Graph) GetDataSources(variableUID uint64) []string {
	return g.namesOf(g.dataRev[variableUID])
}

// GetDataSinks returns the names of the variables that srcUID flows into
// directly, in insertion order.
func (g *Graph) GetDataSinks(srcUID uint64) []string {
	return g.namesOf(g.dataFwd[srcUID])
}

func (g *Graph) namesOf(set *edgeSet) []string {
	if set.len() == 0 {
		return nil
	}
	out := make([]string, 0, set.len())
	for _, uid := range set.order {
		if rec, ok := g.symbols[uid]; ok {
			out = append(out, g.namePool.Get(rec.nameIdx))
		}
	}
	return out
}

// IsVariable reports whether uid names a Variable symbol.
func (g *Graph) IsVariable(uid uint64) bool {
	rec, ok := g.symbols[uid]
	return ok && rec.typ == Variable
}

// GetFilePath returns the path for fileUID, or ("", false) on miss.
func (g *Graph) GetFilePath(fileUID uint64) (string, bool) {
	idx, ok := g.fileToPathIdx[fileUID]
	if !ok {
		return "", false
	}
	return g.pathPool.Get(idx), true
}

// GetSymbolFileUID returns uid's owning file UID, or (0, false) if the
// symbol has no owning file.
func (g *Graph) GetSymbolFileUID(uid uint64) (uint64, bool) {
	rec, ok := g.symbols[uid]
	if !ok || rec.fileUID == 0 {
		return 0, false
	}
	return rec.fileUID, true
}

// FileSymbols returns the symbols owned by fileUID, in insertion order.
func (g *Graph) FileSymbols(fileUID uint64) []uint64 {
	return g.fileSymbols[fileUID]
}

// SymbolCount returns the number of live symbols, including END once
// Finalize has run.
func (g *Graph) SymbolCount() int {
	return len(g.symbols)
}

// FileCount returns the number of live files.
func (g *Graph) FileCount() int {
	return len(g.pathToFileUID)
}

// NextSymbolUID returns the UID that would be assigned to the next new
// symbol (exposed for the persistence layer's metadata section).
func (g *Graph) NextSymbolUID() uint64 {
	return g.nextSymbolUID
}

// String implements fmt.Stringer for debugging/log output.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph{symbols=%d files=%d finalized=%v}", len(g.symbols), len(g.pathToFileUID), g.finalized)
}
