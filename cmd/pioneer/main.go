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

// Package main implements the pioneer CLI: index a Python/C/C++ repository
// into a cross-reference graph, persist it to .pioneer.json, and answer
// symbol, data-flow, and call-path queries against it.
//
// Usage:
//
//	pioneer index                                 Build or rebuild the index
//	pioneer list                                  List every file in the index
//	pioneer search <pat...>                       Find symbols by substring
//	pioneer query --start <chain> --end <chain>   Enumerate call/data-flow paths
//	pioneer type <sym>                            Report a symbol's type
//	pioneer data-sources <sym>                    One-hop data-flow sources of one exact symbol
//	pioneer data-sinks <sym>                      One-hop data-flow sinks of one exact symbol
//	pioneer vars <pat>                            Find variable symbols containing one pattern
//	pioneer member <pat...>                       Find class/namespace members
//	pioneer grep <pat> [--regex] [--ignore-case]  Plain-text search over source files
package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/BiradarSiddhant02/pioneer/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// GlobalFlags holds the flags that apply to every subcommand.
type GlobalFlags struct {
	JSON     bool
	NoColor  bool
	Verbose  int
	Quiet    bool
	IndexPath string
}

func main() {
	var (
		showVersion = flag.BoolP("version", "V", false, "Show version and exit")
		indexPath   = flag.StringP("index", "i", "", "Path to the index file (default: ./.pioneer.json)")
		jsonOutput  = flag.Bool("json", false, "Output in JSON format")
		noColor     = flag.Bool("no-color", false, "Disable color output")
		verbose     = flag.CountP("verbose", "v", "Increase verbosity (-v for info, -vv for debug)")
		quiet       = flag.BoolP("quiet", "q", false, "Suppress non-essential output")
	)

	// Stop parsing global flags at the first non-flag argument so
	// subcommand-specific flags (query --start, grep --regex) reach their
	// own flag sets instead of being rejected here.
	flag.SetInterspersed(false)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `pioneer - cross-reference indexer and path-finding query tool

Usage:
  pioneer <command> [options]

Commands:
  index               Build or rebuild the cross-reference index
  list                List every indexed file
  search <pat...>     Find symbols whose name contains all patterns
  query               Enumerate call-graph or data-flow paths
  type <sym>          Report a symbol's type
  data-sources <sym>  Report direct data-flow sources into one exact variable
  data-sinks <sym>    Report direct data-flow sinks one exact symbol feeds
  vars <pat>          Find variable symbols containing one pattern
  member <pat...>     Find class/namespace member symbols
  grep <pat>          Recursive plain-text/regex search over source files

Global Options:
  --index, -i     Path to the index file (default: ./.pioneer.json)
  --json          Output in JSON format
  --no-color      Disable color output (respects NO_COLOR)
  -v, --verbose   Increase verbosity
  -q, --quiet     Suppress non-essential output
  -V, --version   Show version and exit

For detailed command help: pioneer <command> --help
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("pioneer version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		os.Exit(0)
	}

	if os.Getenv("NO_COLOR") != "" {
		*noColor = true
	}
	if *jsonOutput {
		*quiet = true
	}

	globals := GlobalFlags{
		JSON:      *jsonOutput,
		NoColor:   *noColor,
		Verbose:   *verbose,
		Quiet:     *quiet,
		IndexPath: *indexPath,
	}
	ui.InitColors(globals.NoColor)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "index":
		runIndex(cmdArgs, globals)
	case "list":
		runList(cmdArgs, globals)
	case "search":
		runSearch(cmdArgs, globals)
	case "query":
		runQuery(cmdArgs, globals)
	case "type":
		runType(cmdArgs, globals)
	case "data-sources":
		runDataSources(cmdArgs, globals)
	case "data-sinks":
		runDataSinks(cmdArgs, globals)
	case "vars":
		runVars(cmdArgs, globals)
	case "member":
		runMember(cmdArgs, globals)
	case "grep":
		runGrep(cmdArgs, globals)
	default:
		fmt.Fprintf(os.Stderr, "pioneer: unknown command %q\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
