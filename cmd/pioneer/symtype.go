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
	"os"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/pkg/persist"
)

// runType reports whether sym is a Function, Variable, or the synthetic
// End sink (spec §6.1 `type <sym>`).
func runType(args []string, globals GlobalFlags) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pioneer type <symbol>")
		os.Exit(1)
	}
	_, g := loadEngine(globals, persist.SymbolsOnly)

	uid, ok := g.GetUID(args[0])
	if !ok {
		perr.FatalError(perr.SymbolNotFound(args[0], suggestNames(g, args[0])), globals.JSON)
	}
	sym, _ := g.GetSymbol(uid)

	if globals.JSON {
		b, _ := json.Marshal(map[string]string{"name": sym.QualifiedName, "type": sym.Type.String()})
		fmt.Println(string(b))
		return
	}
	fmt.Printf("%s: %s\n", sym.QualifiedName, sym.Type.String())
}
