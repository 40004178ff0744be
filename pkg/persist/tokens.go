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
	"strconv"
)

// tokenReader is a thin wrapper over json.Decoder.Token() (spec §4.D's
// event-driven reader): start_object/end_object/key/number/string/
// start_array/end_array are exactly the Token() values this wrapper
// consumes. skipValue implements the skip_depth counter that lets
// sections outside the requested LoadMode be discarded without ever
// materializing them.
type tokenReader struct {
	dec *json.Decoder
}

func newTokenReader(dec *json.Decoder) *tokenReader {
	dec.UseNumber()
	return &tokenReader{dec: dec}
}

func (t *tokenReader) token() (json.Token, error) {
	return t.dec.Token()
}

func (t *tokenReader) expectDelim(want rune) error {
	tok, err := t.token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || rune(d) != want {
		return fmt.Errorf("persist: expected %q, got %v", string(want), tok)
	}
	return nil
}

func (t *tokenReader) key() (string, error) {
	tok, err := t.token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("persist: expected object key, got %v", tok)
	}
	return s, nil
}

func (t *tokenReader) str() (string, error) {
	tok, err := t.token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("persist: expected string, got %v", tok)
	}
	return s, nil
}

func (t *tokenReader) uint() (uint64, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	n, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("persist: expected number, got %v", tok)
	}
	return strconv.ParseUint(n.String(), 10, 64)
}

func (t *tokenReader) int() (int, error) {
	tok, err := t.token()
	if err != nil {
		return 0, err
	}
	n, ok := tok.(json.Number)
	if !ok {
		return 0, fmt.Errorf("persist: expected number, got %v", tok)
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	return int(v), err
}

// keyAsUint parses an object key that is itself a decimal UID, as used by
// every uid-keyed section (symbol_types, call_mapping, file_paths, ...).
func keyAsUint(key string) (uint64, error) {
	return strconv.ParseUint(key, 10, 64)
}

// skipValue consumes and discards exactly one JSON value: a scalar, or a
// fully-nested object/array. depth tracks open '{'/'[' so arbitrarily
// nested sections (e.g. path_trie) are skipped in one pass without
// building any intermediate structure.
func (t *tokenReader) skipValue() error {
	tok, err := t.token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok {
		return nil // scalar: already consumed
	}
	if d != '{' && d != '[' {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := t.token()
		if err != nil {
			return err
		}
		if dd, ok := tok.(json.Delim); ok {
			switch dd {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}
