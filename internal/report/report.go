// Package report renders a resolved mapping table and its diagnostics for a
// terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"camera-settings/internal/diagnostic"
	"camera-settings/internal/mapping"
)

// Options controls how the report looks.
type Options struct {
	Color       bool
	Suggestions bool
}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	subtle  lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
	ok      lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}

	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		label:   r.NewStyle().Foreground(lipgloss.Color("62")),
		value:   r.NewStyle().Foreground(lipgloss.Color("15")),
		subtle:  r.NewStyle().Foreground(lipgloss.Color("241")),
		err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		ok:      r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Printer writes report sections to w.
type Printer struct {
	w    io.Writer
	opts Options
	s    styles
}

// New creates a printer for w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts, s: newStyles(w, opts.Color)}
}

// Mappings prints one line per populated slot.
func (p *Printer) Mappings(m mapping.CameraControlMappings) {
	fmt.Fprintln(p.w, p.s.title.Render("Camera controls"))

	for _, b := range m.Bindings() {
		name := b.Control.String()
		if b.Secondary {
			name += " 2"
		}

		fmt.Fprintf(p.w, "  %s %s %s\n",
			p.s.label.Render(fmt.Sprintf("%-7s", name)),
			p.s.value.Render(b.Mapping.String()),
			p.s.subtle.Render("("+b.Setting+")"),
		)
	}
}

// Diagnostics prints every diagnostic in report order. Nothing is printed
// for an empty list.
func (p *Printer) Diagnostics(diags diagnostic.Diagnostics) {
	if diags.Len() == 0 {
		return
	}

	fmt.Fprintln(p.w, p.s.title.Render("Diagnostics"))

	for _, d := range diags.Items {
		if !p.opts.Suggestions {
			d.Suggestions = nil
		}

		fmt.Fprintf(p.w, "  %s %s\n", p.severity(d.Severity), d.String())
	}
}

func (p *Printer) severity(s diagnostic.Severity) string {
	label := fmt.Sprintf("%-7s", s)
	if s == diagnostic.SeverityError {
		return p.s.err.Render(label)
	}

	return p.s.warning.Render(label)
}

// Summary prints the error and warning counts.
func (p *Printer) Summary(diags diagnostic.Diagnostics) {
	errs, warns := len(diags.Errors()), len(diags.Warnings())
	if errs == 0 && warns == 0 {
		fmt.Fprintln(p.w, p.s.ok.Render("settings OK"))
		return
	}

	parts := []string{plural(errs, "error"), plural(warns, "warning")}
	line := strings.Join(parts, ", ")

	if errs > 0 {
		fmt.Fprintln(p.w, p.s.err.Render(line))
		return
	}

	fmt.Fprintln(p.w, p.s.warning.Render(line))
}

// Print writes the full report: table, diagnostics and summary, separated
// by blank lines.
func (p *Printer) Print(m mapping.CameraControlMappings, diags diagnostic.Diagnostics) {
	p.Mappings(m)
	fmt.Fprintln(p.w)

	if diags.Len() > 0 {
		p.Diagnostics(diags)
		fmt.Fprintln(p.w)
	}

	p.Summary(diags)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}

	return fmt.Sprintf("%d %ss", n, word)
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes the raw mapping table structure, for debugging.
func Dump(w io.Writer, m mapping.CameraControlMappings) {
	dumpConfig.Fdump(w, m)
}
