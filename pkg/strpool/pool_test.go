package strpool

import "testing"

func TestInternIdempotent(t *testing.T) {
	p := New()
	a := p.Intern("foo")
	b := p.Intern("bar")
	c := p.Intern("foo")
	if a != c {
		t.Fatalf("Intern not idempotent: %d != %d", a, c)
	}
	if a == b {
		t.Fatalf("distinct strings got same index")
	}
	if p.Get(a) != "foo" || p.Get(b) != "bar" {
		t.Fatalf("Get returned wrong values")
	}
}

func TestFind(t *testing.T) {
	p := New()
	p.Intern("x")
	if idx, ok := p.Find("x"); !ok || p.Get(idx) != "x" {
		t.Fatalf("Find(x) failed: idx=%d ok=%v", idx, ok)
	}
	if _, ok := p.Find("y"); ok {
		t.Fatalf("Find(y) should miss")
	}
}

func TestInsertionOrder(t *testing.T) {
	p := New()
	want := []string{"a", "b", "c"}
	for _, s := range want {
		p.Intern(s)
	}
	got := p.All()
	if len(got) != len(want) {
		t.Fatalf("len mismatch: %d != %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: %s != %s", i, got[i], want[i])
		}
	}
}
