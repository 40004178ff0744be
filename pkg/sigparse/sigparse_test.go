// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package sigparse

import "testing"

func TestNormalizeType(t *testing.T) {
	cases := map[string]string{
		"*Querier":      "Querier",
		"const Foo&":    "Foo",
		"std::string":   "string",
		"tools.Querier": "Querier",
		"[]Querier":     "Querier",
		"...string":     "string",
		"int":           "int",
		"func(int) int": "func",
	}
	for in, want := range cases {
		if got := NormalizeType(in); got != want {
			t.Errorf("NormalizeType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisambiguationSuffix(t *testing.T) {
	got := DisambiguationSuffix([]string{"int", "char *"})
	want := "(int, char)"
	if got != want {
		t.Fatalf("DisambiguationSuffix = %q, want %q", got, want)
	}
	if got := DisambiguationSuffix(nil); got != "()" {
		t.Fatalf("DisambiguationSuffix(nil) = %q, want ()", got)
	}
}

func TestDisambiguate(t *testing.T) {
	got := Disambiguate("ns::f", []string{"int", "const Foo&"})
	want := "ns::f(int, Foo)"
	if got != want {
		t.Fatalf("Disambiguate = %q, want %q", got, want)
	}
}
