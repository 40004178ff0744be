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
	"sort"

	"github.com/BiradarSiddhant02/pioneer/pkg/persist"
	"github.com/BiradarSiddhant02/pioneer/pkg/xref"
)

// runList prints every file path tracked by the index, sorted.
func runList(args []string, globals GlobalFlags) {
	_, g := loadEngine(globals, persist.WithPaths)

	var paths []string
	g.RangeFiles(func(f xref.File) {
		paths = append(paths, f.Path)
	})
	sort.Strings(paths)
	printNames(globals, paths)
}
