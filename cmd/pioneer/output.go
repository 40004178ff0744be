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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/BiradarSiddhant02/pioneer/internal/ui"
)

// printNames renders a flat list of symbol/file names, one per line in
// human mode or a JSON array in --json mode. Used by search/vars/member/
// list/data-sources/data-sinks, which all return []string.
func printNames(globals GlobalFlags, names []string) {
	if globals.JSON {
		b, _ := json.Marshal(names)
		fmt.Println(string(b))
		return
	}
	if len(names) == 0 {
		ui.Info("(no matches)")
		return
	}
	for _, n := range names {
		fmt.Println(n)
	}
}

// printPaths renders the paths collected by a query.PathCallback: a
// newline-separated " -> " chain per path in human mode, a JSON array of
// arrays in --json mode.
func printPaths(globals GlobalFlags, paths [][]string) {
	if globals.JSON {
		b, _ := json.Marshal(paths)
		fmt.Println(string(b))
		return
	}
	if len(paths) == 0 {
		ui.Info("(no paths found)")
		return
	}
	for _, p := range paths {
		for i, name := range p {
			if i > 0 {
				fmt.Print(" -> ")
			}
			fmt.Print(name)
		}
		fmt.Println()
	}
}
