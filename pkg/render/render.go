// Package render prints worklog results for a terminal or a pipe.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes user-facing output. Colors follow the capabilities of the
// underlying writer, so output to a pipe or a buffer is plain text.
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	return newPrinter(out, lipgloss.NewRenderer(out))
}

// NewPlainPrinter never emits escape sequences.
func NewPlainPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.Ascii)
	return newPrinter(out, r)
}

func newPrinter(out io.Writer, r *lipgloss.Renderer) *Printer {
	return &Printer{
		out:      out,
		renderer: r,
		success:  r.NewStyle().Foreground(lipgloss.Color("2")),
		warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
		failure:  r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func (p *Printer) Writer() io.Writer { return p.out }

func (p *Printer) Profile() termenv.Profile { return p.renderer.ColorProfile() }

func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, p.success.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.out, p.warning.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Failf(format string, args ...any) {
	fmt.Fprintln(p.out, p.failure.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}
