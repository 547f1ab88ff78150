package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// ColorEnabled reports whether f is a terminal and NO_COLOR is unset.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Printer writes styled lines to w. With color disabled it writes plain text.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Style wraps s in the given ANSI codes when color is enabled.
func (p *Printer) Style(s string, codes ...string) string {
	if !p.color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// Line writes s followed by a newline.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.w, s)
}

// Success prints a green success message.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Style("✓", Bold, Green), msg)
}

// Error prints a red error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Style("✗", Bold, Red), msg)
}

// Info prints a blue info message.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Style("i", Bold, Blue), msg)
}

// Warning prints a yellow warning message.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.w, "%s %s\n", p.Style("!", Bold, Yellow), msg)
}

// Header prints a bold header.
func (p *Printer) Header(msg string) {
	fmt.Fprintf(p.w, "\n%s\n", p.Style(msg, Bold))
}

// Detail prints an indented detail line.
func (p *Printer) Detail(label, value string) {
	fmt.Fprintf(p.w, "  %s %s\n", p.Style(label+":", Dim), value)
}

// Divider prints a horizontal line.
func (p *Printer) Divider() {
	p.Line(p.Style(strings.Repeat("─", 60), Dim))
}
