package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/lightmixer/internal/light"
)

// Printer writes line-oriented output for the console mode and the one-shot
// commands. Styling is applied only when the writer is a terminal, so piped
// output and tests see plain text.
type Printer struct {
	out    io.Writer
	styled bool
	width  int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{out: w}
	if f, ok := w.(*os.File); ok && IsTerminal(f) {
		p.styled = true
		p.width = GetTerminalWidth()
	}
	return p
}

// Styled reports whether the printer emits ANSI styling.
func (p *Printer) Styled() bool {
	return p.styled
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Prompt writes the input prompt without a trailing newline.
func (p *Printer) Prompt() {
	p.Print(p.render(PromptStyle, "> "))
}

// PrintControllers writes one "[NN] <path> -> <b> / <max>" line per
// controller. alias may be nil.
func (p *Printer) PrintControllers(controllers []*light.Controller, alias func(path string) string) {
	for i, c := range controllers {
		p.Println(p.ControllerLine(i, c, aliasFor(alias, c.Path)))
	}
}

// ControllerLine formats a single list entry.
func (p *Printer) ControllerLine(index int, c *light.Controller, alias string) string {
	line := p.render(IndexStyle, fmt.Sprintf("[%02d]", index)) + " " +
		p.render(PathStyle, c.Path) + " -> " +
		p.render(ValueStyle, fmt.Sprintf("%d / %d", c.Brightness, c.MaxBrightness))
	if alias != "" {
		line += " " + p.render(AliasStyle, "("+alias+")")
	}
	if p.styled && p.width > 0 {
		line = ansi.Truncate(line, p.width, "…")
	}
	return line
}

// PrintUpdate confirms a brightness change about to be applied.
func (p *Printer) PrintUpdate(c *light.Controller, value uint64) {
	p.Println(p.render(UpdateStyle, fmt.Sprintf("update controller %s with value %d", c.Path, value)))
}

// PrintError writes an error line.
func (p *Printer) PrintError(err error) {
	p.Println(p.render(ErrorMessageStyle, err.Error()))
}

// PrintHint writes usage hint lines.
func (p *Printer) PrintHint(lines ...string) {
	for _, line := range lines {
		p.Println(p.render(HintStyle, line))
	}
}

func aliasFor(alias func(string) string, path string) string {
	if alias == nil {
		return ""
	}
	return alias(path)
}
