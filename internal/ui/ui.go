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

// Package ui provides the terminal output helpers shared by the pioneer
// CLI's commands: colored status lines, headers, and the count/dim text
// formatters used in human-readable reports. Color is gated on --no-color,
// the NO_COLOR environment variable, and whether stdout is a terminal.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Cyan   = color.New(color.FgCyan)
	Dim    = color.New(color.Faint)
)

// InitColors decides whether colored output is used, honoring an explicit
// --no-color flag, the NO_COLOR environment variable, and falling back to
// disabling color when stdout is not a terminal (e.g. piped to a file).
func InitColors(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// Info prints an informational line to stdout.
func Info(msg string) { fmt.Println(msg) }

// Infof prints a formatted informational line to stdout.
func Infof(format string, args ...interface{}) { fmt.Printf(format+"\n", args...) }

// Success prints msg in green, prefixed with a checkmark.
func Success(msg string) { _, _ = Green.Printf("✓ %s\n", msg) }

// Successf formats and prints a success line in green.
func Successf(format string, args ...interface{}) { Success(fmt.Sprintf(format, args...)) }

// Warning prints msg in yellow to stderr, prefixed with a warning marker.
func Warning(msg string) { _, _ = Yellow.Fprintf(os.Stderr, "! %s\n", msg) }

// Warningf formats and prints a warning line in yellow to stderr.
func Warningf(format string, args ...interface{}) { Warning(fmt.Sprintf(format, args...)) }

// Header prints a bold section header.
func Header(title string) {
	_, _ = color.New(color.Bold).Printf("\n%s\n", title)
	fmt.Println(dashes(len(title)))
}

// SubHeader prints a bold sub-section label.
func SubHeader(title string) {
	_, _ = color.New(color.Bold).Printf("\n%s\n", title)
}

// Label returns title rendered bold, for use inline in fmt.Printf calls.
func Label(title string) string {
	return color.New(color.Bold).Sprint(title)
}

// DimText returns s rendered dim, for use inline in fmt.Printf calls.
func DimText(s string) string {
	return Dim.Sprint(s)
}

// CountText renders an integer count, highlighted yellow when zero so an
// empty result stands out in an otherwise plain report.
func CountText(n int) string {
	if n == 0 {
		return Yellow.Sprint(n)
	}
	return Green.Sprint(n)
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
