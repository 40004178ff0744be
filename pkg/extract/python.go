package extract

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// pythonParserPool pools tree-sitter parsers for Python. Parsers are not
// thread-safe, so each worker goroutine borrows one for the duration of a
// single file and returns it when done — the same pooling shape as the
// teacher's TreeSitterParser (pkg/ingestion/parser_treesitter.go), just
// split per adapter instead of per language field on one big struct.
var pythonParserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(python.GetLanguage())
		return p
	},
}

type pythonAdapter struct {
	source []byte
	root   *sitter.Node
	tree   *sitter.Tree
}

func newPythonAdapter() Adapter {
	return &pythonAdapter{}
}

func (a *pythonAdapter) Parse(sourceBytes []byte) bool {
	p := pythonParserPool.Get().(*sitter.Parser)
	defer pythonParserPool.Put(p)

	tree, err := p.ParseCtx(context.Background(), nil, sourceBytes)
	if err != nil || tree == nil {
		return false
	}
	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return false
	}
	a.source = sourceBytes
	a.root = root
	a.tree = tree
	return true
}

// Close releases the underlying tree-sitter tree's native memory.
func (a *pythonAdapter) Close() error {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
	return nil
}

func (a *pythonAdapter) ExtractFunctions() []FunctionDef {
	if a.root == nil {
		return nil
	}
	var out []FunctionDef
	anon := 0
	var visit func(node *sitter.Node, classPrefix string)
	visit = func(node *sitter.Node, classPrefix string) {
		if node == nil {
			return
		}
		switch node.Type() {
		case "class_definition":
			className := nodeText(node.ChildByFieldName("name"), a.source)
			if block := childOfType(node, "block"); block != nil {
				for i := 0; i < int(block.ChildCount()); i++ {
					visit(block.Child(i), joinScope(".", className, classPrefix))
				}
			}
			return
		case "function_definition":
			nameNode := node.ChildByFieldName("name")
			name := nodeText(nameNode, a.source)
			qualified := joinScope(".", name, classPrefix)
			out = append(out, FunctionDef{
				SimpleName:      name,
				QualifiedName:   qualified,
				ContainingClass: classPrefix,
				ParamTypes:      pythonParamNames(node.ChildByFieldName("parameters"), a.source),
				StartLine:       lineOf(node),
				EndLine:         int(node.EndPoint().Row) + 1,
				NodeHandle:      node,
			})
		case "lambda":
			anon++
			name := anonLabel("lambda", lineOf(node))
			out = append(out, FunctionDef{
				SimpleName:    name,
				QualifiedName: joinScope(".", name, classPrefix),
				StartLine:     lineOf(node),
				EndLine:       int(node.EndPoint().Row) + 1,
				NodeHandle:    node,
			})
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			visit(node.Child(i), classPrefix)
		}
	}
	visit(a.root, "")
	return out
}

func (a *pythonAdapter) ExtractCalls(fn FunctionDef) []FunctionCall {
	body := bodyOf(a.root, fn)
	if body == nil {
		return nil
	}
	var out []FunctionCall
	walk(body, func(n *sitter.Node) bool {
		if n != body && (n.Type() == "function_definition" || n.Type() == "lambda") {
			return false // nested defs get their own ExtractCalls pass
		}
		if n.Type() == "call" {
			if fnNode := n.ChildByFieldName("function"); fnNode != nil {
				name := pythonCalleeName(fnNode, a.source)
				if name != "" {
					out = append(out, FunctionCall{Name: name, QualifiedName: name, Line: lineOf(n), NodeHandle: n})
				}
			}
		}
		return true
	})
	return out
}

func (a *pythonAdapter) ExtractVariables(fn FunctionDef) []VariableDef {
	body := bodyOf(a.root, fn)
	if body == nil {
		return nil
	}
	var out []VariableDef
	walk(body, func(n *sitter.Node) bool {
		if n != body && (n.Type() == "function_definition" || n.Type() == "lambda") {
			return false
		}
		if n.Type() != "assignment" {
			return true
		}
		left := n.ChildByFieldName("left")
		right := n.ChildByFieldName("right")
		if left == nil || right == nil || left.Type() != "identifier" {
			return true
		}
		name := nodeText(left, a.source)
		qualified := joinScope(".", name, fn.QualifiedName)
		v := VariableDef{
			Name:           name,
			QualifiedName:  qualified,
			ContainingFunc: fn.QualifiedName,
			Line:           lineOf(n),
			NodeHandle:     n,
		}
		if right.Type() == "call" {
			if fnNode := right.ChildByFieldName("function"); fnNode != nil {
				v.ValueSource = pythonCalleeName(fnNode, a.source)
				v.FromFunctionCall = true
			}
		} else {
			v.ValueSource = nodeText(right, a.source)
		}
		out = append(out, v)
		return true
	})
	return out
}

func pythonCalleeName(fnNode *sitter.Node, source []byte) string {
	switch fnNode.Type() {
	case "identifier":
		return nodeText(fnNode, source)
	case "attribute":
		obj := fnNode.ChildByFieldName("object")
		attr := fnNode.ChildByFieldName("attribute")
		if obj != nil && attr != nil {
			return nodeText(obj, source) + "." + nodeText(attr, source)
		}
	}
	return ""
}

func pythonParamNames(params *sitter.Node, source []byte) []string {
	if params == nil {
		return nil
	}
	var out []string
	count := int(params.ChildCount())
	for i := 0; i < count; i++ {
		child := params.Child(i)
		switch child.Type() {
		case "identifier", "typed_parameter", "default_parameter":
			out = append(out, nodeText(child, source))
		}
	}
	return out
}

func childOfType(node *sitter.Node, typ string) *sitter.Node {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		if child := node.Child(i); child.Type() == typ {
			return child
		}
	}
	return nil
}
