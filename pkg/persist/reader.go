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
	"encoding/json"
	"fmt"
	"io"

	"github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// Load reconstructs a graph from a persisted index, materializing only
// the sections mode requires (spec §4.D's three load modes). Sections
// outside mode are skipped with skipValue and never allocate.
func Load(r io.Reader, mode LoadMode) (*xref.Graph, error) {
	t := newTokenReader(json.NewDecoder(r))
	rd := &reader{t: t, mode: mode, b: xref.NewBuilder(), uidToName: make(map[uint64]string)}

	if err := t.expectDelim('{'); err != nil {
		return nil, errors.IndexParseError("", err)
	}
	for t.dec.More() {
		key, err := t.key()
		if err != nil {
			return nil, errors.IndexParseError("", err)
		}
		if err := rd.readSection(key); err != nil {
			return nil, err
		}
	}
	if err := t.expectDelim('}'); err != nil {
		return nil, errors.IndexParseError("", err)
	}

	rd.b.SetNextSymbolUID(rd.maxSymbolUID + 1)
	rd.b.SetNextFileUID(rd.maxFileUID + 1)
	return rd.b.Finish(), nil
}

type reader struct {
	t    *tokenReader
	mode LoadMode
	b    *xref.Builder

	uidToName    map[uint64]string
	maxSymbolUID uint64
	maxFileUID   uint64
}

func (rd *reader) readSection(key string) error {
	switch key {
	case "metadata":
		return rd.readMetadata()
	case "symbol_types":
		return rd.readSymbolTypes()
	case "call_mapping":
		if rd.mode != Full {
			return rd.t.skipValue()
		}
		return rd.readUIDAdjacency(rd.b.AddCallEdge)
	case "data_flow":
		if rd.mode != Full {
			return rd.t.skipValue()
		}
		return rd.readUIDAdjacency(rd.b.AddDataFlowEdge)
	case "file_paths":
		if rd.mode == SymbolsOnly {
			return rd.t.skipValue()
		}
		return rd.readFilePaths()
	case "file_symbols":
		if rd.mode != Full && rd.mode != WithPaths {
			return rd.t.skipValue()
		}
		return rd.readFileSymbols()
	case "symbol_files":
		// Redundant with file_symbols (same association, the other
		// direction); file_symbols already reconstructs symbol<->file
		// ownership, so this section is write-only from the reader's
		// perspective and always skipped.
		return rd.t.skipValue()
	case "path_trie":
		// Never loaded: spec §4.D says Full loads "everything except
		// path_trie", and it is absent from WithPaths/SymbolsOnly too.
		return rd.t.skipValue()
	default:
		return rd.t.skipValue()
	}
}

func (rd *reader) readMetadata() error {
	if err := rd.t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	var version string
	var endUID uint64
	haveVersion := false
	for rd.t.dec.More() {
		key, err := rd.t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		switch key {
		case "version":
			version, err = rd.t.str()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			haveVersion = true
		case "end_uid":
			endUID, err = rd.t.uint()
			if err != nil {
				return errors.IndexParseError("", err)
			}
		case "names":
			if err := rd.readNames(); err != nil {
				return err
			}
		default:
			if err := rd.t.skipValue(); err != nil {
				return errors.IndexParseError("", err)
			}
		}
	}
	if err := rd.t.expectDelim('}'); err != nil {
		return errors.IndexParseError("", err)
	}
	if !haveVersion {
		return errors.IndexParseError("", fmt.Errorf("metadata.version missing"))
	}
	if err := CheckCompatible(version); err != nil {
		return err
	}
	rd.b.SetEndUID(endUID)
	return nil
}

func (rd *reader) readNames() error {
	if err := rd.t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for rd.t.dec.More() {
		name, err := rd.t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		uid, err := rd.t.uint()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		rd.uidToName[uid] = name
		if uid > rd.maxSymbolUID {
			rd.maxSymbolUID = uid
		}
	}
	return rd.t.expectDelim('}')
}

func (rd *reader) readSymbolTypes() error {
	if err := rd.t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for rd.t.dec.More() {
		uidKey, err := rd.t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		uid, err := keyAsUint(uidKey)
		if err != nil {
			return errors.IndexParseError("", err)
		}
		typ, err := rd.t.int()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		name, ok := rd.uidToName[uid]
		if !ok {
			return errors.IndexParseError("", fmt.Errorf("symbol_types references unknown uid %d", uid))
		}
		rd.b.SetSymbol(uid, name, xref.SymbolType(typ))
	}
	return rd.t.expectDelim('}')
}

// readUIDAdjacency parses a uid -> [uid...] section and calls add for
// every (from, to) pair it finds.
func (rd *reader) readUIDAdjacency(add func(from, to uint64)) error {
	if err := rd.t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for rd.t.dec.More() {
		fromKey, err := rd.t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		from, err := keyAsUint(fromKey)
		if err != nil {
			return errors.IndexParseError("", err)
		}
		if err := rd.t.expectDelim('['); err != nil {
			return errors.IndexParseError("", err)
		}
		for rd.t.dec.More() {
			to, err := rd.t.uint()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			add(from, to)
		}
		if err := rd.t.expectDelim(']'); err != nil {
			return errors.IndexParseError("", err)
		}
	}
	return rd.t.expectDelim('}')
}

func (rd *reader) readFilePaths() error {
	if err := rd.t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for rd.t.dec.More() {
		uidKey, err := rd.t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		uid, err := keyAsUint(uidKey)
		if err != nil {
			return errors.IndexParseError("", err)
		}
		path, err := rd.t.str()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		rd.b.SetFile(uid, path)
		if uid > rd.maxFileUID {
			rd.maxFileUID = uid
		}
	}
	return rd.t.expectDelim('}')
}

func (rd *reader) readFileSymbols() error {
	if err := rd.t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for rd.t.dec.More() {
		fileKey, err := rd.t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		fileUID, err := keyAsUint(fileKey)
		if err != nil {
			return errors.IndexParseError("", err)
		}
		if err := rd.t.expectDelim('['); err != nil {
			return errors.IndexParseError("", err)
		}
		for rd.t.dec.More() {
			symbolUID, err := rd.t.uint()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			rd.b.SetSymbolFile(symbolUID, fileUID)
		}
		if err := rd.t.expectDelim(']'); err != nil {
			return errors.IndexParseError("", err)
		}
	}
	return rd.t.expectDelim('}')
}
