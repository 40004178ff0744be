package extract

import "testing"

func TestForExtension(t *testing.T) {
	cases := map[string]Language{
		".py":  Python,
		".c":   C,
		".h":   C,
		".cpp": Cpp,
		".hh":  Cpp,
	}
	for ext, want := range cases {
		got, ok := ForExtension(ext)
		if !ok || got != want {
			t.Fatalf("ForExtension(%q) = %v,%v want %v", ext, got, ok, want)
		}
	}
	if _, ok := ForExtension(".rs"); ok {
		t.Fatalf("expected .rs to be unknown")
	}
}

func TestShortName(t *testing.T) {
	cases := map[string]string{
		"a.b.c":        "c",
		"A::B::method": "method",
		"plain":        "plain",
	}
	for in, want := range cases {
		if got := shortName(in); got != want {
			t.Fatalf("shortName(%q) = %q want %q", in, got, want)
		}
	}
}

func TestPythonExtractFunctionsAndVariables(t *testing.T) {
	src := []byte("def make():\n    return 1\n\ndef use():\n    x = make()\n")
	a := New(Python)
	if !a.Parse(src) {
		t.Fatalf("Parse failed")
	}
	fns := a.ExtractFunctions()
	if len(fns) != 2 {
		t.Fatalf("expected 2 functions, got %d", len(fns))
	}
	var use FunctionDef
	for _, fn := range fns {
		if fn.SimpleName == "use" {
			use = fn
		}
	}
	if use.SimpleName == "" {
		t.Fatalf("did not find 'use' function")
	}
	vars := a.ExtractVariables(use)
	if len(vars) != 1 {
		t.Fatalf("expected 1 variable, got %d", len(vars))
	}
	if vars[0].Name != "x" || vars[0].ValueSource != "make" || !vars[0].FromFunctionCall {
		t.Fatalf("unexpected variable record: %+v", vars[0])
	}
}
