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

// Package errors defines the typed error kinds surfaced to the CLI (spec
// §7): a single UserError carrying a title, a detail, and an actionable
// suggestion, plus constructors per kind and a FatalError exit path.
package errors

import (
	"encoding/json"
	"fmt"
	"os"
)

// Kind distinguishes the error categories named in spec §7.
type Kind int

const (
	KindIndexMissing Kind = iota
	KindSchemaIncompatible
	KindIOError
	KindParseError
	KindSymbolNotFound
	KindBadQueryShape
	KindBadRegex
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindIndexMissing:
		return "IndexMissing"
	case KindSchemaIncompatible:
		return "SchemaIncompatible"
	case KindIOError:
		return "IOError"
	case KindParseError:
		return "ParseError"
	case KindSymbolNotFound:
		return "SymbolNotFound"
	case KindBadQueryShape:
		return "BadQueryShape"
	case KindBadRegex:
		return "BadRegex"
	default:
		return "InternalError"
	}
}

// UserError is the error type every CLI-facing failure eventually becomes:
// a human title, a detail describing what happened, a suggestion for what
// to do next, and the underlying cause when there is one.
type UserError struct {
	Kind       Kind
	Title      string
	Detail     string
	Suggestion string
	Cause      error
}

func (e *UserError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Title, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

func (e *UserError) Unwrap() error { return e.Cause }

type jsonError struct {
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
	Suggestion string `json:"suggestion,omitempty"`
	Cause      string `json:"cause,omitempty"`
}

// Format renders e for display: a compact JSON object in jsonMode, or
// otherwise a human message of title and detail, followed by cause and
// suggestion lines when those are set.
func (e *UserError) Format(jsonMode bool) string {
	if jsonMode {
		je := jsonError{Kind: e.Kind.String(), Title: e.Title, Detail: e.Detail, Suggestion: e.Suggestion}
		if e.Cause != nil {
			je.Cause = e.Cause.Error()
		}
		b, err := json.Marshal(je)
		if err != nil {
			return e.Error()
		}
		return string(b)
	}
	msg := fmt.Sprintf("Error: %s\n  %s", e.Title, e.Detail)
	if e.Cause != nil {
		msg += fmt.Sprintf("\n  Cause: %v", e.Cause)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf("\n  Suggestion: %s", e.Suggestion)
	}
	return msg
}

// FatalError prints err and exits the process with status 1. It is the
// only place in this package that calls os.Exit; everything else just
// builds values.
func FatalError(err error, jsonMode bool) {
	if ue, ok := err.(*UserError); ok {
		fmt.Fprintln(os.Stderr, ue.Format(jsonMode))
		os.Exit(1)
	}
	if jsonMode {
		b, _ := json.Marshal(jsonError{Kind: KindInternal.String(), Title: "Unexpected error", Detail: err.Error()})
		fmt.Fprintln(os.Stderr, string(b))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// Warn prints a non-fatal diagnostic to stderr. Per spec §7 propagation
// policy, source-file parse errors during indexing and query-engine
// failures are reported this way instead of aborting the process.
func Warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// IndexMissing reports that no persisted index was found at path.
func IndexMissing(path string) *UserError {
	return &UserError{
		Kind:       KindIndexMissing,
		Title:      "No index found",
		Detail:     fmt.Sprintf("No persisted index exists at %q", path),
		Suggestion: "Run 'pioneer index' to build one",
	}
}

// SchemaIncompatible reports a persisted index whose schema version this
// build cannot read (spec §4.D.1). msg should already name both the
// found and expected versions.
func SchemaIncompatible(msg string) error {
	return &UserError{
		Kind:       KindSchemaIncompatible,
		Title:      "Incompatible index schema",
		Detail:     msg,
		Suggestion: "Re-run 'pioneer index' to rebuild the index with the current schema",
	}
}

// IOError wraps a filesystem failure (reading source, writing the index).
func IOError(title string, cause error) *UserError {
	return &UserError{
		Kind:       KindIOError,
		Title:      title,
		Detail:     "An I/O operation failed",
		Suggestion: "Check file permissions and available disk space",
		Cause:      cause,
	}
}

// SourceParseError reports a single source file that failed to parse.
// Per spec §7 this is never fatal: the indexer logs it and continues
// with the remaining files.
func SourceParseError(path string, cause error) *UserError {
	return &UserError{
		Kind:   KindParseError,
		Title:  "Skipped unparseable file",
		Detail: fmt.Sprintf("%s could not be parsed", path),
		Cause:  cause,
	}
}

// IndexParseError reports a persisted index file that failed to parse as
// JSON. Unlike SourceParseError this one is fatal: the index is the
// program's only input for every query command.
func IndexParseError(path string, cause error) *UserError {
	return &UserError{
		Kind:       KindParseError,
		Title:      "Corrupt index file",
		Detail:     fmt.Sprintf("%s is not valid JSON", path),
		Suggestion: "Re-run 'pioneer index' to rebuild the index",
		Cause:      cause,
	}
}

// SymbolNotFound reports a query against a name the index has never
// seen, with up to 5 "did you mean" suggestions (see SuggestionsFor).
func SymbolNotFound(name string, suggestions []string) *UserError {
	detail := fmt.Sprintf("%q is not in the index", name)
	suggestion := ""
	if len(suggestions) > 0 {
		suggestion = "Did you mean: " + joinQuoted(suggestions) + "?"
	}
	return &UserError{
		Kind:       KindSymbolNotFound,
		Title:      "Symbol not found",
		Detail:     detail,
		Suggestion: suggestion,
	}
}

// BadQueryShape reports a query whose arguments are structurally invalid
// (e.g. --backtrace combined with --path, a missing --start or --end, or
// both START and END given as sentinels).
func BadQueryShape(detail string) *UserError {
	return &UserError{
		Kind:       KindBadQueryShape,
		Title:      "Invalid query",
		Detail:     detail,
		Suggestion: "Run 'pioneer query --help' for the accepted flag combinations",
	}
}

// BadRegex reports a pattern that failed to compile as a regular
// expression (grep --regex).
func BadRegex(pattern string, cause error) *UserError {
	return &UserError{
		Kind:       KindBadRegex,
		Title:      "Invalid regular expression",
		Detail:     fmt.Sprintf("%q does not compile", pattern),
		Suggestion: "Check the pattern syntax, or drop --regex for a plain substring search",
		Cause:      cause,
	}
}

// InternalError reports a failure that should never happen in practice
// and signals a bug rather than bad input or environment.
func InternalError(title, detail string, cause error) *UserError {
	return &UserError{
		Kind:       KindInternal,
		Title:      title,
		Detail:     detail,
		Suggestion: "This looks like a bug; please file an issue with the steps to reproduce",
		Cause:      cause,
	}
}

func joinQuoted(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", n)
	}
	return out
}
