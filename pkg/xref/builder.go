package xref

// Builder reconstructs a Graph from a persisted index, where UIDs are
// already fixed by what was written to disk and must not be reassigned.
// It is the load-path counterpart to the build-time AddSymbol/AddCall API,
// used exclusively by pkg/persist's reader.
type Builder struct {
	g *Graph
}

// NewBuilder returns a Builder around a fresh, empty Graph.
func NewBuilder() *Builder {
	return &Builder{g: New()}
}

// SetSymbol installs a symbol at exactly uid (not the next auto-assigned
// one), interning its name.
func (b *Builder) SetSymbol(uid uint64, name string, typ SymbolType) {
	idx := b.g.namePool.Intern(name)
	b.g.nameToUID[name] = uid
	b.g.symbols[uid] = &symbolRecord{nameIdx: idx, typ: typ}
}

// SetFile installs a file at exactly fileUID, interning its path.
func (b *Builder) SetFile(fileUID uint64, path string) {
	idx := b.g.pathPool.Intern(path)
	b.g.pathToFileUID[path] = fileUID
	b.g.fileToPathIdx[fileUID] = idx
}

// SetSymbolFile records that symbolUID is owned by fileUID, appending to
// that file's owned-symbol list.
func (b *Builder) SetSymbolFile(symbolUID, fileUID uint64) {
	rec, ok := b.g.symbols[symbolUID]
	if !ok {
		return
	}
	rec.fileUID = fileUID
	b.g.symbolToFile[symbolUID] = fileUID
	b.g.fileSymbols[fileUID] = append(b.g.fileSymbols[fileUID], symbolUID)
}

// AddCallEdge installs caller → callee in both call adjacencies.
func (b *Builder) AddCallEdge(caller, callee uint64) {
	b.g.addEdge(b.g.callFwd, b.g.callRev, caller, callee)
}

// AddDataFlowEdge installs source → destination in both data-flow adjacencies.
func (b *Builder) AddDataFlowEdge(source, destination uint64) {
	b.g.addEdge(b.g.dataFwd, b.g.dataRev, source, destination)
}

// SetEndUID records the loaded graph's synthetic END UID.
func (b *Builder) SetEndUID(uid uint64) {
	b.g.endUID = uid
}

// SetNextSymbolUID records the next-symbol-UID counter read from metadata.
func (b *Builder) SetNextSymbolUID(n uint64) {
	b.g.nextSymbolUID = n
}

// SetNextFileUID records the next-file-UID counter.
func (b *Builder) SetNextFileUID(n uint64) {
	b.g.nextFileUID = n
}

// Finish returns the assembled graph, marked read-only: a loaded graph is
// always in the finalized phase, mutation operations are simply never
// called on it again.
func (b *Builder) Finish() *Graph {
	b.g.finalized = true
	return b.g
}
