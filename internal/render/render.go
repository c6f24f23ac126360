// Package render formats list diagnostics and scenario reports for
// terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tychoish/chain/dt"
	"github.com/tychoish/chain/internal/scenario"
)

// These colors are from the gruvbox vim theme
// https://github.com/morhetz/gruvbox
var (
	red    = lipgloss.Color("#cc241d")
	green  = lipgloss.Color("#98971a")
	yellow = lipgloss.Color("#d79921")
	blue   = lipgloss.Color("#458588")
	purple = lipgloss.Color("#b16286")
	gray   = lipgloss.Color("#928374")
)

// Renderer writes styled text. Without color the output is plain
// text with the same layout.
type Renderer struct {
	out   io.Writer
	color bool

	title   lipgloss.Style
	label   lipgloss.Style
	op      lipgloss.Style
	values  lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	order   map[dt.Order]lipgloss.Style
	section lipgloss.Style
}

// New builds a Renderer that writes to w. Color forces colored
// output on or off; callers decide by inspecting the terminal.
func New(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	r := &Renderer{out: w, color: color}
	base := lr.NewStyle()
	r.section = base.PaddingLeft(2)
	if !color {
		r.title, r.label, r.op, r.values, r.ok, r.failed = base, base, base, base, base, base
		r.order = map[dt.Order]lipgloss.Style{}
		return r
	}

	r.title = base.Foreground(blue).Bold(true)
	r.label = base.Foreground(gray)
	r.op = base.Foreground(purple)
	r.values = base
	r.ok = base.Foreground(green).Bold(true)
	r.failed = base.Foreground(red).Bold(true)
	r.order = map[dt.Order]lipgloss.Style{
		dt.OrderSorted:   base.Foreground(green),
		dt.OrderUnsorted: base.Foreground(red),
		dt.OrderUnknown:  base.Foreground(yellow),
	}
	return r
}

// Color reports whether the renderer emits colored output.
func (r *Renderer) Color() bool { return r.color }

func (r *Renderer) orderStyle(o dt.Order) lipgloss.Style {
	if s, ok := r.order[o]; ok {
		return s
	}
	return r.values
}

func (r *Renderer) passFail(err error) string {
	if err != nil {
		return r.failed.Render("FAILED")
	}
	return r.ok.Render("PASSED")
}

// Stats formats a list summary as a block of "label: value" lines.
func Stats[T any](r *Renderer, st dt.Stats[T]) string {
	lines := []string{
		r.label.Render("size:") + " " + fmt.Sprint(st.Size),
		r.label.Render("order:") + " " + r.orderStyle(st.Order).Render(st.Order.String()),
	}
	if !st.Empty() {
		lines = append(lines,
			r.label.Render("front:")+" "+r.values.Render(fmt.Sprint(st.Front)),
			r.label.Render("back:")+" "+r.values.Render(fmt.Sprint(st.Back)),
		)
	}
	lines = append(lines, r.label.Render("integrity:")+" "+r.passFail(st.Integrity))
	if st.Integrity != nil {
		lines = append(lines, r.failed.Render(st.Integrity.Error()))
	}
	return strings.Join(lines, "\n")
}

// Values formats the contents of a list as "[a <-> b <-> c]".
func Values[T any](r *Renderer, vals []T) string {
	parts := make([]string, len(vals))
	for idx := range vals {
		parts[idx] = fmt.Sprint(vals[idx])
	}
	return r.values.Render("[" + strings.Join(parts, " <-> ") + "]")
}

// Step formats one line of a scenario report.
func (r *Renderer) Step(res scenario.StepResult) string {
	var buf strings.Builder
	if res.Ok() {
		buf.WriteString(r.ok.Render("ok "))
	} else {
		buf.WriteString(r.failed.Render("err"))
	}
	fmt.Fprintf(&buf, " %3d ", res.Index)
	buf.WriteString(r.op.Render(fmt.Sprintf("%-14s", res.Op)))
	buf.WriteString(" ")
	buf.WriteString(r.orderStyle(res.Stats.Order).Render(fmt.Sprintf("%-8s", res.Stats.Order)))
	buf.WriteString(" ")
	buf.WriteString(Values(r, res.Values))
	if res.Found != nil {
		buf.WriteString(" ")
		buf.WriteString(r.label.Render(fmt.Sprintf("found=%t", *res.Found)))
	}
	if res.Err != nil {
		buf.WriteString(" ")
		buf.WriteString(r.failed.Render(res.Err.Error()))
	}
	return buf.String()
}

// Report writes a scenario report: a title, one line per step, and
// the final statistics.
func (r *Renderer) Report(rep *scenario.Report) error {
	var buf strings.Builder
	buf.WriteString(r.title.Render("scenario " + rep.Name))
	buf.WriteByte('\n')
	for _, res := range rep.Steps {
		buf.WriteString(r.section.Render(r.Step(res)))
		buf.WriteByte('\n')
	}
	buf.WriteString(r.title.Render("final"))
	buf.WriteByte('\n')
	buf.WriteString(r.section.Render(Values(r, rep.Values)))
	buf.WriteByte('\n')
	buf.WriteString(r.section.Render(Stats(r, rep.Final)))
	buf.WriteByte('\n')

	_, err := io.WriteString(r.out, buf.String())
	return err
}

// Error writes a failure message.
func (r *Renderer) Error(err error) error {
	_, err = fmt.Fprintln(r.out, r.failed.Render("error:"), err)
	return err
}
