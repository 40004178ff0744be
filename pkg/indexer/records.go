package indexer

// FunctionRecord is one extracted function, prior to graph insertion.
type FunctionRecord struct {
	QualifiedName string
	FilePath      string
	ParamTypes    []string
	StartLine     int
	EndLine       int
}

// CallRecord is one extracted call site, referring to its caller and
// callee by the names seen in source (callee may be a short name that
// still needs resolution in Phase 3). CallerIndex pins the record to its
// owning FunctionRecord's position in the same fileResult, so a later
// overload-disambiguation rename (spec §6.3, §9) can keep CallerName in
// sync without relying on string matching against a name that, before
// disambiguation, may be shared by more than one function in the file.
type CallRecord struct {
	CallerName  string
	CallerIndex int
	CalleeName  string
}

// VariableRecord is one extracted local variable assignment. FuncIndex
// mirrors CallRecord.CallerIndex for ContainingFunc.
type VariableRecord struct {
	QualifiedName    string
	ContainingFunc   string
	FuncIndex        int
	ValueSource      string
	FromFunctionCall bool
}

// fileResult holds everything extracted from a single source file, kept
// together so Phase 3 can batch by file in discovery order (spec §4.C).
type fileResult struct {
	index     int // position in the sorted discovery list
	path      string
	functions []FunctionRecord
	calls     []CallRecord
	variables []VariableRecord
	parseErr  error
}
