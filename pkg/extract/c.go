package extract

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

var cParserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(c.GetLanguage())
		return p
	},
}

type cAdapter struct {
	source []byte
	root   *sitter.Node
	tree   *sitter.Tree
}

func newCAdapter() Adapter {
	return &cAdapter{}
}

func (a *cAdapter) Parse(sourceBytes []byte) bool {
	p := cParserPool.Get().(*sitter.Parser)
	defer cParserPool.Put(p)

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

func (a *cAdapter) Close() error {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
	return nil
}

// ExtractFunctions finds top-level function_definitions. Per spec §6.3, a C
// top-level function is prefixed with the file basename ("file::func") by
// the indexer if the extractor did not supply a scope — this adapter
// leaves QualifiedName equal to SimpleName and lets the indexer apply that
// prefix, since the adapter has no notion of "which file" beyond the bytes
// it was handed.
func (a *cAdapter) ExtractFunctions() []FunctionDef {
	if a.root == nil {
		return nil
	}
	var out []FunctionDef
	walk(a.root, func(n *sitter.Node) bool {
		if n.Type() != "function_definition" {
			return true
		}
		declarator := n.ChildByFieldName("declarator")
		name, params := cFunctionNameAndParams(declarator, a.source)
		if name == "" {
			return false
		}
		out = append(out, FunctionDef{
			SimpleName:    name,
			QualifiedName: name,
			ParamTypes:    params,
			StartLine:     lineOf(n),
			EndLine:       int(n.EndPoint().Row) + 1,
			NodeHandle:    n,
		})
		return false // don't descend into nested declarators
	})
	return out
}

func (a *cAdapter) ExtractCalls(fn FunctionDef) []FunctionCall {
	body := bodyOf(a.root, fn)
	if body == nil {
		return nil
	}
	var out []FunctionCall
	walk(body, func(n *sitter.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		callee := n.ChildByFieldName("function")
		if callee != nil && callee.Type() == "identifier" {
			name := nodeText(callee, a.source)
			out = append(out, FunctionCall{Name: name, QualifiedName: name, Line: lineOf(n), NodeHandle: n})
		}
		return true
	})
	return out
}

func (a *cAdapter) ExtractVariables(fn FunctionDef) []VariableDef {
	body := bodyOf(a.root, fn)
	if body == nil {
		return nil
	}
	var out []VariableDef
	walk(body, func(n *sitter.Node) bool {
		switch n.Type() {
		case "init_declarator":
			name := nodeText(n.ChildByFieldName("declarator"), a.source)
			value := n.ChildByFieldName("value")
			out = append(out, cVariableFromAssignment(name, value, fn, a.source, n))
		case "assignment_expression":
			left := n.ChildByFieldName("left")
			right := n.ChildByFieldName("right")
			if left != nil && left.Type() == "identifier" {
				out = append(out, cVariableFromAssignment(nodeText(left, a.source), right, fn, a.source, n))
			}
		}
		return true
	})
	return out
}

func cVariableFromAssignment(name string, value *sitter.Node, fn FunctionDef, source []byte, site *sitter.Node) VariableDef {
	qualified := joinScope("::", name, fn.QualifiedName)
	v := VariableDef{
		Name:           name,
		QualifiedName:  qualified,
		ContainingFunc: fn.QualifiedName,
		Line:           lineOf(site),
		NodeHandle:     site,
	}
	if value == nil {
		return v
	}
	if value.Type() == "call_expression" {
		if callee := value.ChildByFieldName("function"); callee != nil && callee.Type() == "identifier" {
			v.ValueSource = nodeText(callee, source)
			v.FromFunctionCall = true
			return v
		}
	}
	v.ValueSource = nodeText(value, source)
	return v
}

func cFunctionNameAndParams(declarator *sitter.Node, source []byte) (string, []string) {
	for declarator != nil && declarator.Type() == "pointer_declarator" {
		declarator = declarator.ChildByFieldName("declarator")
	}
	if declarator == nil || declarator.Type() != "function_declarator" {
		return "", nil
	}
	nameNode := declarator.ChildByFieldName("declarator")
	name := nodeText(nameNode, source)
	paramsNode := declarator.ChildByFieldName("parameters")
	return name, cParamTypes(paramsNode, source)
}

func cParamTypes(params *sitter.Node, source []byte) []string {
	if params == nil {
		return nil
	}
	var out []string
	count := int(params.ChildCount())
	for i := 0; i < count; i++ {
		child := params.Child(i)
		if child.Type() != "parameter_declaration" {
			continue
		}
		typeNode := child.ChildByFieldName("type")
		out = append(out, strings.TrimSpace(nodeText(typeNode, source)))
	}
	return out
}
