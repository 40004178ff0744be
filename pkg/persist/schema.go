// Package persist implements the on-disk cross-reference index format: a
// compact streaming JSON writer and an event-driven (SAX-style) reader with
// partial-load modes, following spec §4.D/§6.2.
//
// The wire format itself has no teacher analog — grounded directly on
// spec.md — but the schema-version constant and compatibility-check shape
// follow pkg/ingestion/schema.go's convention of a package-level version
// string plus an explicit compatibility guard.
package persist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BiradarSiddhant02/pioneer/internal/errors"
)

// Version is the schema version this writer emits.
const Version = "1.0.0"

// MinCompatible is the oldest schema version this reader accepts.
const MinCompatible = "1.0.0"

// CheckCompatible rejects a major-version mismatch or a version older than
// MinCompatible (spec §4.D.1).
func CheckCompatible(version string) error {
	got, err := parseMajorMinor(version)
	if err != nil {
		return errors.SchemaIncompatible(fmt.Sprintf("malformed schema version %q: %v", version, err))
	}
	want, _ := parseMajorMinor(MinCompatible)

	if got[0] != want[0] {
		return errors.SchemaIncompatible(fmt.Sprintf("index schema version %s is incompatible with this build's schema version %s (major version mismatch)", version, Version))
	}
	if compareVersions(got, want) < 0 {
		return errors.SchemaIncompatible(fmt.Sprintf("index schema version %s is older than the minimum supported %s", version, MinCompatible))
	}
	return nil
}

func parseMajorMinor(v string) ([3]int, error) {
	var out [3]int
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return out, fmt.Errorf("expected MAJOR.MINOR.PATCH")
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, err
		}
		out[i] = n
	}
	return out, nil
}

func compareVersions(a, b [3]int) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return 0
}

// LoadMode selects which sections of a persisted index the reader
// materializes (spec §4.D).
type LoadMode int

const (
	// Full loads everything except path_trie.
	Full LoadMode = iota
	// WithPaths loads symbols, types, and file tables but skips the edges
	// (call_mapping, data_flow) and path_trie.
	WithPaths
	// SymbolsOnly loads symbol names, UIDs, and types only.
	SymbolsOnly
)

func (m LoadMode) String() string {
	switch m {
	case Full:
		return "Full"
	case WithPaths:
		return "WithPaths"
	case SymbolsOnly:
		return "SymbolsOnly"
	default:
		return "Unknown"
	}
}
