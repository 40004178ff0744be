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
	"io"
	"strings"

	"github.com/BiradarSiddhant02/pioneer/internal/errors"
)

// StreamSymbols calls fn for every name/uid pair in a persisted index's
// metadata.names table, without constructing a graph. It stops reading
// as soon as that section is consumed (spec §4.D: dedicated handlers
// "halt parsing as soon as their region is consumed").
func StreamSymbols(r io.Reader, fn func(name string, uid uint64)) error {
	return streamNames(r, nil, fn)
}

// SearchSymbols calls fn for every symbol name containing all of
// patterns (conjunctive substring match, spec §4.E find_symbols),
// without constructing a graph.
func SearchSymbols(r io.Reader, patterns []string, fn func(name string, uid uint64)) error {
	return streamNames(r, patterns, fn)
}

func streamNames(r io.Reader, patterns []string, fn func(name string, uid uint64)) error {
	t := newTokenReader(json.NewDecoder(r))
	if err := t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for t.dec.More() {
		key, err := t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		if key != "metadata" {
			if err := t.skipValue(); err != nil {
				return errors.IndexParseError("", err)
			}
			continue
		}
		return streamMetadataNames(t, patterns, fn)
	}
	return nil
}

// streamMetadataNames parses only metadata.names, returning as soon as
// that sub-object closes instead of continuing through the rest of
// metadata or the file.
func streamMetadataNames(t *tokenReader, patterns []string, fn func(name string, uid uint64)) error {
	if err := t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for t.dec.More() {
		key, err := t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		if key != "names" {
			if err := t.skipValue(); err != nil {
				return errors.IndexParseError("", err)
			}
			continue
		}
		if err := t.expectDelim('{'); err != nil {
			return errors.IndexParseError("", err)
		}
		for t.dec.More() {
			name, err := t.key()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			uid, err := t.uint()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			if matchesAll(name, patterns) {
				fn(name, uid)
			}
		}
		return t.expectDelim('}')
	}
	return nil
}

func matchesAll(name string, patterns []string) bool {
	for _, p := range patterns {
		if !strings.Contains(name, p) {
			return false
		}
	}
	return true
}

// StreamFilePaths calls fn for every file_uid/path pair in a persisted
// index's file_paths table, without constructing a graph. It stops
// reading as soon as that section is consumed.
func StreamFilePaths(r io.Reader, fn func(fileUID uint64, path string)) error {
	t := newTokenReader(json.NewDecoder(r))
	if err := t.expectDelim('{'); err != nil {
		return errors.IndexParseError("", err)
	}
	for t.dec.More() {
		key, err := t.key()
		if err != nil {
			return errors.IndexParseError("", err)
		}
		if key != "file_paths" {
			if err := t.skipValue(); err != nil {
				return errors.IndexParseError("", err)
			}
			continue
		}
		if err := t.expectDelim('{'); err != nil {
			return errors.IndexParseError("", err)
		}
		for t.dec.More() {
			uidKey, err := t.key()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			uid, err := keyAsUint(uidKey)
			if err != nil {
				return errors.IndexParseError("", err)
			}
			path, err := t.str()
			if err != nil {
				return errors.IndexParseError("", err)
			}
			fn(uid, path)
		}
		return t.expectDelim('}')
	}
	return nil
}
