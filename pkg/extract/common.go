package extract

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// nodeText returns the source text spanned by node.
func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// walk calls visit for node and every descendant, depth-first,
// pre-order. visit returning false skips node's children.
func walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		walk(node.Child(i), visit)
	}
}

// bodyOf returns the AST node recorded in fn.NodeHandle (the whole
// function definition node), so calls/variables can be walked without
// re-parsing.
func bodyOf(root *sitter.Node, fn FunctionDef) *sitter.Node {
	handle, _ := fn.NodeHandle.(*sitter.Node)
	return handle
}

// lineOf returns the 1-based source line a node starts on.
func lineOf(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// joinScope builds a qualified name from non-empty scope components and a
// name, using sep as the scope separator (spec §6.3: "::" for C/C++,
// "." for Python).
func joinScope(sep string, name string, scopes ...string) string {
	var parts []string
	for _, s := range scopes {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, name)
	return strings.Join(parts, sep)
}

// shortName returns the tail of a qualified name after the final scope
// separator ("::" or "."), per spec §4.C/GLOSSARY.
func shortName(qualified string) string {
	if idx := strings.LastIndex(qualified, "::"); idx >= 0 {
		return qualified[idx+2:]
	}
	if idx := strings.LastIndex(qualified, "."); idx >= 0 {
		return qualified[idx+1:]
	}
	return qualified
}

// anonLabel produces a deterministic synthetic name for an anonymous
// function/lambda, distinguished by source position.
func anonLabel(prefix string, line int) string {
	return prefix + "$" + strconv.Itoa(line)
}
