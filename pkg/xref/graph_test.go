package xref

import "testing"

func TestAddSymbolIdempotent(t *testing.T) {
	g := New()
	a := g.AddSymbol("foo", Function)
	b := g.AddSymbol("foo", Function)
	if a != b {
		t.Fatalf("AddSymbol not idempotent: %d != %d", a, b)
	}
}

func TestAddSymbolTypeOverwrite(t *testing.T) {
	// Spec §9: repeated AddSymbol with a different type overwrites the
	// type (last-write-wins), preserved deliberately rather than "fixed".
	g := New()
	uid := g.AddSymbol("x", Function)
	g.AddSymbol("x", Variable)
	sym, ok := g.GetSymbol(uid)
	if !ok || sym.Type != Variable {
		t.Fatalf("expected type overwritten to Variable, got %v", sym.Type)
	}
}

func TestAddSymbolWithFileFirstWriterWins(t *testing.T) {
	g := New()
	uid := g.AddSymbolWithFile("foo", "a.c", Function)
	g.AddSymbolWithFile("foo", "b.c", Function)
	sym, _ := g.GetSymbol(uid)
	path, _ := g.GetFilePath(sym.FileUID)
	if path != "a.c" {
		t.Fatalf("expected first-writer-wins path a.c, got %s", path)
	}
}

func TestFileUIDNamespaceDisjointFromSymbolUID(t *testing.T) {
	g := New()
	sUID := g.AddSymbol("foo", Function)
	fUID := g.GetOrCreateFileUID("foo") // same string, different namespace
	if sUID != 1 || fUID != 1 {
		t.Fatalf("expected both namespaces to start at 1 independently: sym=%d file=%d", sUID, fUID)
	}
}

func TestAddCallBidirectional(t *testing.T) {
	g := New()
	a := g.AddSymbol("a", Function)
	b := g.AddSymbol("b", Function)
	g.AddCall(a, b)
	g.AddCall(a, b) // idempotent

	callees := g.CalleeUIDs(a)
	if len(callees) != 1 || callees[0] != b {
		t.Fatalf("expected one callee b, got %v", callees)
	}
	callers := g.CallerUIDs(b)
	if len(callers) != 1 || callers[0] != a {
		t.Fatalf("expected one caller a, got %v", callers)
	}
}

func TestAddDataFlowBidirectional(t *testing.T) {
	g := New()
	src := g.AddSymbol("make", Function)
	v := g.AddSymbol("use.x", Variable)
	g.AddDataFlow(src, v)

	if sinks := g.DataSinkUIDs(src); len(sinks) != 1 || sinks[0] != v {
		t.Fatalf("expected one sink v, got %v", sinks)
	}
	if sources := g.DataSourceUIDs(v); len(sources) != 1 || sources[0] != src {
		t.Fatalf("expected one source, got %v", sources)
	}
}

func TestFinalizeConnectsLeavesToEnd(t *testing.T) {
	g := New()
	leaf := g.AddSymbol("leaf", Function)
	caller := g.AddSymbol("caller", Function)
	g.AddCall(caller, leaf)
	g.Finalize()

	end := g.EndUID()
	if end == InvalidUID {
		t.Fatalf("expected END to be allocated")
	}
	if callees := g.CalleeUIDs(leaf); len(callees) != 1 || callees[0] != end {
		t.Fatalf("expected leaf's only callee to be END, got %v", callees)
	}
	if callees := g.CalleeUIDs(caller); len(callees) != 1 || callees[0] != leaf {
		t.Fatalf("caller should still point only at leaf, got %v", callees)
	}
	if callees := g.CalleeUIDs(end); len(callees) != 0 {
		t.Fatalf("END must have no outgoing call edges, got %v", callees)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	g := New()
	g.AddSymbol("f", Function)
	g.Finalize()
	end1 := g.EndUID()
	g.Finalize()
	if g.EndUID() != end1 {
		t.Fatalf("Finalize should be idempotent")
	}
}

// T1: for all symbols s, GetUID(GetSymbol(s.UID).QualifiedName) == s.UID.
func TestInvariantT1(t *testing.T) {
	g := New()
	names := []string{"a", "b", "c"}
	for _, n := range names {
		g.AddSymbol(n, Function)
	}
	g.Finalize()
	for uid := uint64(1); uid < g.NextSymbolUID(); uid++ {
		sym, ok := g.GetSymbol(uid)
		if !ok {
			continue
		}
		got, ok := g.GetUID(sym.QualifiedName)
		if !ok || got != uid {
			t.Fatalf("T1 violated for uid %d: got %d", uid, got)
		}
	}
}

// T3/T4: every function has >=1 outgoing edge after finalize, or exactly
// one to END; END has none.
func TestInvariantT3T4(t *testing.T) {
	g := New()
	f1 := g.AddSymbol("f1", Function)
	f2 := g.AddSymbol("f2", Function)
	g.AddCall(f1, f2)
	g.Finalize()
	end := g.EndUID()

	if callees := g.CalleeUIDs(end); len(callees) != 0 {
		t.Fatalf("T4 violated: END has outgoing edges %v", callees)
	}
	if callees := g.CalleeUIDs(f2); len(callees) != 1 || callees[0] != end {
		t.Fatalf("T3 violated for leaf f2: %v", callees)
	}
	if callees := g.CalleeUIDs(f1); len(callees) == 0 {
		t.Fatalf("T3 violated for f1: expected >=1 outgoing edge")
	}
}

func TestLookupMissReturnsEmpty(t *testing.T) {
	g := New()
	if _, ok := g.GetUID("nope"); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := g.GetSymbol(9999); ok {
		t.Fatalf("expected miss")
	}
	if callees := g.CalleeUIDs(9999); callees != nil {
		t.Fatalf("expected nil for miss, got %v", callees)
	}
}
