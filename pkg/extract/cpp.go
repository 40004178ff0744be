package extract

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

var cppParserPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(cpp.GetLanguage())
		return p
	},
}

type cppAdapter struct {
	source []byte
	root   *sitter.Node
	tree   *sitter.Tree
}

func newCppAdapter() Adapter {
	return &cppAdapter{}
}

func (a *cppAdapter) Parse(sourceBytes []byte) bool {
	p := cppParserPool.Get().(*sitter.Parser)
	defer cppParserPool.Put(p)

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

func (a *cppAdapter) Close() error {
	if a.tree != nil {
		a.tree.Close()
		a.tree = nil
	}
	return nil
}

// ExtractFunctions walks namespace_definition and class_specifier nesting
// to build "Namespace::Class::method" qualified names (spec §6.3), then
// free functions and out-of-line method definitions ("Class::method(...)").
func (a *cppAdapter) ExtractFunctions() []FunctionDef {
	if a.root == nil {
		return nil
	}
	var out []FunctionDef
	var visit func(node *sitter.Node, scope string)
	visit = func(node *sitter.Node, scope string) {
		if node == nil {
			return
		}
		switch node.Type() {
		case "namespace_definition":
			name := nodeText(node.ChildByFieldName("name"), a.source)
			if body := node.ChildByFieldName("body"); body != nil {
				count := int(body.ChildCount())
				for i := 0; i < count; i++ {
					visit(body.Child(i), joinScope("::", name, scope))
				}
			}
			return
		case "class_specifier", "struct_specifier":
			name := nodeText(node.ChildByFieldName("name"), a.source)
			if body := node.ChildByFieldName("body"); body != nil {
				count := int(body.ChildCount())
				for i := 0; i < count; i++ {
					visit(body.Child(i), joinScope("::", name, scope))
				}
			}
			return
		case "function_definition":
			declarator := node.ChildByFieldName("declarator")
			name, outOfLineScope, params := cppFunctionNameAndParams(declarator, a.source)
			if name == "" {
				return
			}
			fullScope := scope
			if outOfLineScope != "" {
				fullScope = joinScope("::", outOfLineScope, scope)
			}
			out = append(out, FunctionDef{
				SimpleName:      name,
				QualifiedName:   joinScope("::", name, fullScope),
				ContainingClass: fullScope,
				ParamTypes:      params,
				StartLine:       lineOf(node),
				EndLine:         int(node.EndPoint().Row) + 1,
				NodeHandle:      node,
			})
			return
		}
		count := int(node.ChildCount())
		for i := 0; i < count; i++ {
			visit(node.Child(i), scope)
		}
	}
	visit(a.root, "")
	return out
}

func (a *cppAdapter) ExtractCalls(fn FunctionDef) []FunctionCall {
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
		name := cppCalleeName(callee, a.source)
		if name != "" {
			out = append(out, FunctionCall{Name: name, QualifiedName: name, Line: lineOf(n), NodeHandle: n})
		}
		return true
	})
	return out
}

func (a *cppAdapter) ExtractVariables(fn FunctionDef) []VariableDef {
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
			out = append(out, cppVariableFromAssignment(name, value, fn, a.source, n))
		case "assignment_expression":
			left := n.ChildByFieldName("left")
			right := n.ChildByFieldName("right")
			if left != nil && left.Type() == "identifier" {
				out = append(out, cppVariableFromAssignment(nodeText(left, a.source), right, fn, a.source, n))
			}
		}
		return true
	})
	return out
}

func cppVariableFromAssignment(name string, value *sitter.Node, fn FunctionDef, source []byte, site *sitter.Node) VariableDef {
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
		if callee := value.ChildByFieldName("function"); callee != nil {
			v.ValueSource = cppCalleeName(callee, source)
			v.FromFunctionCall = v.ValueSource != ""
			if v.FromFunctionCall {
				return v
			}
		}
	}
	v.ValueSource = nodeText(value, source)
	return v
}

func cppCalleeName(callee *sitter.Node, source []byte) string {
	if callee == nil {
		return ""
	}
	switch callee.Type() {
	case "identifier", "qualified_identifier":
		return nodeText(callee, source)
	case "field_expression":
		obj := callee.ChildByFieldName("argument")
		field := callee.ChildByFieldName("field")
		if obj != nil && field != nil {
			return nodeText(obj, source) + "::" + nodeText(field, source)
		}
	}
	return ""
}

// cppFunctionNameAndParams handles both in-class and out-of-line
// ("Class::method(...)") function declarators.
func cppFunctionNameAndParams(declarator *sitter.Node, source []byte) (name, outOfLineScope string, params []string) {
	for declarator != nil && declarator.Type() == "pointer_declarator" {
		declarator = declarator.ChildByFieldName("declarator")
	}
	if declarator == nil || declarator.Type() != "function_declarator" {
		return "", "", nil
	}
	inner := declarator.ChildByFieldName("declarator")
	paramsNode := declarator.ChildByFieldName("parameters")
	params = cppParamTypes(paramsNode, source)

	if inner == nil {
		return "", "", params
	}
	if inner.Type() == "qualified_identifier" {
		scopeNode := inner.ChildByFieldName("scope")
		nameNode := inner.ChildByFieldName("name")
		return nodeText(nameNode, source), nodeText(scopeNode, source), params
	}
	return nodeText(inner, source), "", params
}

func cppParamTypes(params *sitter.Node, source []byte) []string {
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
