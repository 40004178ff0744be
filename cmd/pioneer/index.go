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
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	perr "github.com/BiradarSiddhant02/pioneer/internal/errors"
	"github.com/BiradarSiddhant02/pioneer/internal/config"
	"github.com/BiradarSiddhant02/pioneer/internal/ui"
	"github.com/BiradarSiddhant02/pioneer/pkg/indexer"
	"github.com/BiradarSiddhant02/pioneer/pkg/persist"
)

// runIndex builds a fresh cross-reference graph from the current
// directory and writes it to the resolved index path (spec §4.C, §6.2).
func runIndex(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to .pioneer/project.yaml (default: auto-detect)")
	workers := fs.Int("workers", 0, "Parse worker count (0 uses the config file's workers value, else the number of CPUs)")
	debug := fs.Bool("debug", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: pioneer index [options]

Walks the current directory, parses every Python/C/C++ source file, builds
the cross-reference graph, and writes it to %s (or the path given by
--index).

Options:
`, defaultIndexFile)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		perr.FatalError(perr.InternalError("cannot access current directory", "os.Getwd failed", err), globals.JSON)
	}

	cfg, err := config.Load(cwd, *configPath)
	if err != nil {
		perr.FatalError(err, globals.JSON)
	}

	logLevel := slog.LevelInfo
	if *debug || globals.Verbose >= 2 {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ignore := append(indexer.DefaultIgnoreDirs(), cfg.Index.Ignore...)
	pipelineWorkers := *workers
	if pipelineWorkers <= 0 {
		pipelineWorkers = cfg.Index.Workers
	}

	p := indexer.New(indexer.Config{Root: cwd, IgnoreDirs: ignore, Workers: pipelineWorkers}, logger)

	var bar *progressbar.ProgressBar
	if !globals.Quiet {
		p.SetProgressCallback(func(current, total int64, phase string) {
			if bar == nil || bar.GetMax64() != total {
				bar = progressbar.NewOptions64(total,
					progressbar.OptionSetDescription(phase),
					progressbar.OptionSetWriter(os.Stderr),
				)
			}
			_ = bar.Set64(current)
		})
	}

	g, result, err := p.Run(context.Background())
	if err != nil {
		perr.FatalError(perr.InternalError("indexing failed", err.Error(), err), globals.JSON)
	}

	path := resolveIndexPath(globals)
	out, err := os.Create(path)
	if err != nil {
		perr.FatalError(perr.IOError("cannot create index file "+path, err), globals.JSON)
	}
	defer out.Close()

	if err := persist.Save(out, g); err != nil {
		perr.FatalError(err, globals.JSON)
	}

	if globals.Quiet {
		return
	}
	ui.Header("Indexing Complete")
	fmt.Printf("%s %s\n", ui.Label("Files discovered:"), ui.CountText(result.FilesDiscovered))
	fmt.Printf("%s    %s\n", ui.Label("Files indexed:"), ui.CountText(result.FilesIndexed))
	fmt.Printf("%s     %s\n", ui.Label("Parse errors:"), ui.CountText(result.ParseErrors))
	fmt.Printf("%s       %s\n", ui.Label("Symbols:"), ui.CountText(result.SymbolCount))
	fmt.Printf("%s   %s\n", ui.Label("Files tracked:"), ui.CountText(result.FileCount))
	fmt.Printf("%s      %s\n", ui.Label("Duration:"), ui.DimText(result.Duration.String()))
	fmt.Printf("%s %s\n", ui.Label("Data stored in:"), ui.DimText(path))
}
