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
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sigparse builds the parameter-type signature suffix used to
// disambiguate overloaded qualified names (spec §6.3, §9): when more than
// one function shares a qualified name, "(T1, T2)" is appended to it.
//
// The source project carried two divergent implementations of this (one in
// the indexer, one in a helper) that disagreed on whitespace and "const"
// handling around corner cases. Per spec §9 this package is the single
// consolidated implementation; it is a dependency-free package that can be
// imported by both pkg/indexer (ingestion-time dispatch) and pkg/query
// (display-time formatting).
package sigparse

import "strings"

// ParamInfo holds one parameter's name and normalized base type.
type ParamInfo struct {
	Name string
	Type string
}

// NormalizeType extracts the base type name from a type expression,
// stripping qualifiers that would otherwise make textually-identical
// overloads look distinct:
//
//	"*Querier"        -> "Querier"
//	"char *"          -> "char"
//	"const Foo&"      -> "Foo"
//	"std::string"     -> "string"
//	"tools.Querier"   -> "Querier"
//	"[]Querier"       -> "Querier"
//	"...string"       -> "string"
func NormalizeType(t string) string {
	t = strings.TrimSpace(t)
	t = strings.TrimPrefix(t, "const ")
	t = strings.TrimSuffix(t, "&")
	t = strings.TrimSpace(t)
	t = strings.TrimLeft(t, "*")
	t = strings.TrimSpace(t)
	t = strings.TrimRight(t, "*")
	t = strings.TrimSpace(t)

	if strings.HasPrefix(t, "[]") {
		t = t[2:]
		t = strings.TrimLeft(t, "*")
	}
	t = strings.TrimPrefix(t, "...")

	if strings.HasPrefix(t, "func") {
		return "func"
	}

	if dot := strings.LastIndex(t, "."); dot >= 0 {
		t = t[dot+1:]
	}
	if scope := strings.LastIndex(t, "::"); scope >= 0 {
		t = t[scope+2:]
	}
	return t
}

// DisambiguationSuffix builds the "(T1, T2)" suffix for paramTypes,
// normalizing each type first. An empty paramTypes yields "()".
func DisambiguationSuffix(paramTypes []string) string {
	normalized := make([]string, len(paramTypes))
	for i, t := range paramTypes {
		normalized[i] = NormalizeType(t)
	}
	return "(" + strings.Join(normalized, ", ") + ")"
}

// Disambiguate appends DisambiguationSuffix(paramTypes) to qualifiedName.
// Functions with no parameters still get "()" appended once disambiguation
// is known to be needed — callers decide when that is (only when more than
// one function shares the same qualified name).
func Disambiguate(qualifiedName string, paramTypes []string) string {
	return qualifiedName + DisambiguationSuffix(paramTypes)
}
