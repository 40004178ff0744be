// Package extract defines the extraction-adapter contract (spec §6.3): the
// small capability interface through which the indexing pipeline consumes
// a syntactic-tree producer, without depending on any particular parser
// library directly.
//
// The three concrete adapters in this package (python.go, c.go, cpp.go)
// wrap github.com/smacker/go-tree-sitter. They are the only files in this
// repository that import tree-sitter; pkg/indexer sees only the Adapter
// interface.
package extract

// FunctionDef describes one extracted function/method definition.
type FunctionDef struct {
	SimpleName      string
	QualifiedName   string
	ContainingClass string
	NamespacePath   string
	ParamTypes      []string
	StartLine       int
	EndLine         int
	NodeHandle      any
}

// FunctionCall describes one extracted call site inside a function body.
// Name is the callee exactly as written; QualifiedName is best-effort
// (often just equal to Name — true resolution is the core's job, not the
// extractor's).
type FunctionCall struct {
	Name          string
	QualifiedName string
	Line          int
	NodeHandle    any
}

// VariableDef describes one extracted assignment target.
type VariableDef struct {
	Name             string
	QualifiedName    string
	ContainingFunc   string
	ValueSource      string
	FromFunctionCall bool
	Line             int
	NodeHandle       any
}

// Adapter is a language extractor: a polymorphic capability with four
// operations, consumed by pkg/indexer through this interface alone.
type Adapter interface {
	// Parse parses sourceBytes into an opaque internal tree, returning
	// false if the producer could not build one (spec §7: ParseError,
	// source file — the indexer skips the file and continues).
	Parse(sourceBytes []byte) bool

	// ExtractFunctions returns every function/method definition found by
	// the most recent successful Parse.
	ExtractFunctions() []FunctionDef

	// ExtractCalls returns every call site textually inside fn's body.
	ExtractCalls(fn FunctionDef) []FunctionCall

	// ExtractVariables returns every assignment target textually inside
	// fn's body.
	ExtractVariables(fn FunctionDef) []VariableDef
}

// Language identifies one of the three languages the core targets.
type Language int

const (
	Python Language = iota
	C
	Cpp
)

// ForExtension maps a file extension (including the leading dot) to a
// Language, matching spec §4.C's table exactly. ok is false for unknown
// extensions.
func ForExtension(ext string) (Language, bool) {
	switch ext {
	case ".py":
		return Python, true
	case ".c", ".h":
		return C, true
	case ".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx":
		return Cpp, true
	default:
		return 0, false
	}
}

// New returns a fresh adapter for lang. Each call returns an independent
// instance so that parallel workers never share mutable parser state.
func New(lang Language) Adapter {
	switch lang {
	case Python:
		return newPythonAdapter()
	case C:
		return newCAdapter()
	case Cpp:
		return newCppAdapter()
	default:
		return newCAdapter()
	}
}
