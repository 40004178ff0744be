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

	flag "github.com/spf13/pflag"

	"github.com/BiradarSiddhant02/pioneer/internal/config"
	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/internal/ui"
	"github.com/BiradarSiddhant02/pioneer/pkg/grep"
	"github.com/BiradarSiddhant02/pioneer/pkg/indexer"
)

// runGrep performs a recursive plain-text/regex search over the same file
// list the indexer discovers, bypassing the xref graph entirely (spec
// §4.F, §6.1 `grep <pat> [--regex] [--ignore-case]`).
func runGrep(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("grep", flag.ExitOnError)
	regex := fs.Bool("regex", false, "Treat the pattern as a regular expression")
	ignoreCase := fs.Bool("ignore-case", false, "Match case-insensitively")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: pioneer grep <pattern> [--regex] [--ignore-case]

Searches every file the indexer would discover under the current
directory, skipping the xref graph entirely.`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	pattern := fs.Arg(0)

	cwd, err := os.Getwd()
	if err != nil {
		perr.FatalError(perr.InternalError("cannot access current directory", "os.Getwd failed", err), globals.JSON)
	}
	cfg, err := config.Load(cwd, "")
	if err != nil {
		perr.FatalError(err, globals.JSON)
	}
	ignore := append(indexer.DefaultIgnoreDirs(), cfg.Index.Ignore...)

	matches, err := grep.Search(cwd, ignore, pattern, grep.Options{Regex: *regex, IgnoreCase: *ignoreCase})
	if err != nil {
		perr.FatalError(err, globals.JSON)
	}

	if globals.JSON {
		b, _ := json.Marshal(matches)
		fmt.Println(string(b))
		return
	}
	if len(matches) == 0 {
		ui.Info("(no matches)")
		return
	}
	for _, m := range matches {
		fmt.Printf("%s:%d: %s\n", m.Path, m.Line, m.Text)
	}
}
