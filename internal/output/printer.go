// Copyright 2025 GS Works
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package output renders raur's terminal surface: colored status lines, the
// AUR search table, an indeterminate spinner, and an NDJSON record writer
// for machine consumption.
package output

import (
	"fmt"
	"io"
	"os"
)

// ANSI escape sequences. Color is plain SGR codes written directly; the
// escape-heavy progress rendering elsewhere uses the same convention.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
)

// Printer writes human-readable status lines. Color is dropped when the
// NO_COLOR convention is in effect.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter creates a Printer honoring the NO_COLOR environment variable.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: os.Getenv("NO_COLOR") == ""}
}

// NewColorPrinter creates a Printer with color explicitly on or off.
func NewColorPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Infof writes a neutral status line.
func (p *Printer) Infof(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "✅ "+format+"\n", args...)
}

// Failf writes a failure line. Subprocess failures are reported here and
// never change the process exit code.
func (p *Printer) Failf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "❌ "+format+"\n", args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "⚠️  "+format+"\n", args...)
}

// Green wraps s in green when color is enabled.
func (p *Printer) Green(s string) string { return p.wrap(ansiGreen, s) }

// Red wraps s in red when color is enabled.
func (p *Printer) Red(s string) string { return p.wrap(ansiRed, s) }

// Yellow wraps s in yellow when color is enabled.
func (p *Printer) Yellow(s string) string { return p.wrap(ansiYellow, s) }

// Blue wraps s in blue when color is enabled.
func (p *Printer) Blue(s string) string { return p.wrap(ansiBlue, s) }

func (p *Printer) wrap(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}
