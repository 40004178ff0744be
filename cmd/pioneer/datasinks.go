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
	"fmt"
	"os"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/persist"
)

// runDataSinks reports the direct data-flow sinks a symbol feeds (spec
// §6.1 `data-sinks <pat...>`).
func runDataSinks(args []string, globals GlobalFlags) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pioneer data-sinks <symbol>")
		os.Exit(1)
	}
	e, _ := loadEngine(globals, persist.Full)
	sinks, err := e.DataSinks(args[0])
	if err != nil {
		perr.FatalError(err, globals.JSON)
	}
	printNames(globals, sinks)
}
