// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//

package persist

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// flushThreshold is the writer's buffer size: the bufio.Writer auto-flushes
// whenever it fills, giving the "flush every ~32MiB" behavior from spec
// §4.D without a hand-rolled byte counter.
const flushThreshold = 32 * 1024 * 1024

// Save streams g to w as the eight-section JSON index format (spec §4.D).
func Save(w io.Writer, g *xref.Graph) error {
	bw := bufio.NewWriterSize(w, flushThreshold)
	enc := &encoder{w: bw}

	enc.raw("{")
	writeMetadata(enc, g)
	enc.raw(",")
	writeSymbolTypes(enc, g)
	enc.raw(",")
	writeCallMapping(enc, g)
	enc.raw(",")
	writeDataFlow(enc, g)
	enc.raw(",")
	writeFilePaths(enc, g)
	enc.raw(",")
	writeFileSymbols(enc, g)
	enc.raw(",")
	writeSymbolFiles(enc, g)
	enc.raw(",")
	writePathTrie(enc, g)
	enc.raw("}")

	if enc.err != nil {
		return errors.IOError("Failed to write index", enc.err)
	}
	if err := bw.Flush(); err != nil {
		return errors.IOError("Failed to flush index to disk", err)
	}
	return nil
}

// encoder is a thin helper over bufio.Writer that tracks the first write
// error so call sites don't need to check one after every field.
type encoder struct {
	w   *bufio.Writer
	err error
}

func (e *encoder) raw(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

// key writes a JSON object key, escaping it the same way str escapes
// values: symbol qualified names (C++ disambiguation suffixes especially)
// can contain quotes or backslashes that an unescaped write would corrupt.
func (e *encoder) key(name string) {
	if e.err != nil {
		return
	}
	b, err := json.Marshal(name)
	if err != nil {
		e.err = err
		return
	}
	if _, err := e.w.Write(b); err != nil {
		e.err = err
		return
	}
	e.raw(":")
}

func (e *encoder) str(s string) {
	if e.err != nil {
		return
	}
	b, err := json.Marshal(s)
	if err != nil {
		e.err = err
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *encoder) uint(n uint64) {
	e.raw(fmt.Sprintf("%d", n))
}

func (e *encoder) int(n int) {
	e.raw(fmt.Sprintf("%d", n))
}

func writeMetadata(enc *encoder, g *xref.Graph) {
	symbolCount, variableCount := 0, 0
	g.RangeSymbols(func(s xref.Symbol) {
		symbolCount++
		if s.Type == xref.Variable {
			variableCount++
		}
	})
	functionCount := symbolCount - variableCount

	enc.key("metadata")
	enc.raw("{")
	enc.key("version")
	enc.str(Version)
	enc.raw(",")
	enc.key("counts")
	enc.raw("{")
	enc.key("symbols")
	enc.int(symbolCount)
	enc.raw(",")
	enc.key("functions")
	enc.int(functionCount)
	enc.raw(",")
	enc.key("variables")
	enc.int(variableCount)
	enc.raw(",")
	enc.key("files")
	enc.int(g.FileCount())
	enc.raw("}")
	enc.raw(",")
	enc.key("end_uid")
	enc.uint(g.EndUID())
	enc.raw(",")
	enc.key("names")
	enc.raw("{")
	first := true
	g.RangeSymbols(func(s xref.Symbol) {
		if !first {
			enc.raw(",")
		}
		first = false
		enc.key(s.QualifiedName)
		enc.uint(s.UID)
	})
	enc.raw("}")
	enc.raw("}")
}

func writeSymbolTypes(enc *encoder, g *xref.Graph) {
	enc.key("symbol_types")
	enc.raw("{")
	first := true
	g.RangeSymbols(func(s xref.Symbol) {
		if !first {
			enc.raw(",")
		}
		first = false
		enc.key(fmt.Sprintf("%d", s.UID))
		enc.int(int(s.Type))
	})
	enc.raw("}")
}

func writeCallMapping(enc *encoder, g *xref.Graph) {
	writeUIDAdjacency(enc, "call_mapping", g.RangeCallEdges)
}

func writeDataFlow(enc *encoder, g *xref.Graph) {
	writeUIDAdjacency(enc, "data_flow", g.RangeDataFlowEdges)
}

// writeUIDAdjacency streams a uid -> [uid...] section from a Range*Edges
// callback. RangeCallEdges/RangeDataFlowEdges both emit edges grouped
// consecutively by source, so one pass is enough: the section never needs
// to buffer more than one source's callee list at a time.
func writeUIDAdjacency(enc *encoder, section string, rangeFn func(fn func(from, to uint64))) {
	enc.key(section)
	enc.raw("{")
	var current uint64
	open := false
	firstEntry := true
	firstInList := true
	rangeFn(func(from, to uint64) {
		if !open || from != current {
			if open {
				enc.raw("]")
			}
			if !firstEntry {
				enc.raw(",")
			}
			firstEntry = false
			enc.key(fmt.Sprintf("%d", from))
			enc.raw("[")
			current = from
			open = true
			firstInList = true
		}
		if !firstInList {
			enc.raw(",")
		}
		firstInList = false
		enc.uint(to)
	})
	if open {
		enc.raw("]")
	}
	enc.raw("}")
}

func writeFilePaths(enc *encoder, g *xref.Graph) {
	enc.key("file_paths")
	enc.raw("{")
	first := true
	g.RangeFiles(func(f xref.File) {
		if !first {
			enc.raw(",")
		}
		first = false
		enc.key(fmt.Sprintf("%d", f.UID))
		enc.str(f.Path)
	})
	enc.raw("}")
}

func writeFileSymbols(enc *encoder, g *xref.Graph) {
	enc.key("file_symbols")
	enc.raw("{")
	first := true
	g.RangeFileSymbols(func(fileUID uint64, symbolUIDs []uint64) {
		if !first {
			enc.raw(",")
		}
		first = false
		enc.key(fmt.Sprintf("%d", fileUID))
		enc.raw("[")
		for i, uid := range symbolUIDs {
			if i > 0 {
				enc.raw(",")
			}
			enc.uint(uid)
		}
		enc.raw("]")
	})
	enc.raw("}")
}

func writeSymbolFiles(enc *encoder, g *xref.Graph) {
	enc.key("symbol_files")
	enc.raw("{")
	first := true
	g.RangeSymbols(func(s xref.Symbol) {
		if s.FileUID == 0 {
			return
		}
		if !first {
			enc.raw(",")
		}
		first = false
		enc.key(fmt.Sprintf("%d", s.UID))
		enc.uint(s.FileUID)
	})
	enc.raw("}")
}

func writePathTrie(enc *encoder, g *xref.Graph) {
	enc.key("path_trie")
	root := buildTrie(g)
	writeTrieNode(enc, root)
}
