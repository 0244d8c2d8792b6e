package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-language/instruction"
	"github.com/wippyai/wasm-language/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// opColumn is wide enough for the longest mnemonic, i64.reinterpret_f64.
const opColumn = 20

type row struct {
	name      string
	class     instruction.Class
	signature string
	sign      instruction.Sign
}

func newRow(op instruction.Op) row {
	return row{
		name:      op.String(),
		class:     op.Class(),
		signature: op.Signature().String(),
		sign:      op.Sign(),
	}
}

// constRows lists the immediate-carrying instructions. Their names are the
// mnemonic without an immediate.
func constRows() []row {
	consts := []instruction.Numeric{
		instruction.I32Const{},
		instruction.I64Const{},
		instruction.F32Const{},
		instruction.F64Const{},
	}
	rows := make([]row, len(consts))
	for i, c := range consts {
		name, _, _ := strings.Cut(c.String(), " ")
		rows[i] = row{name: name, class: instruction.Constant, signature: c.Signature().String()}
	}
	return rows
}

func classRows(c instruction.Class) []row {
	if c == instruction.Constant {
		return constRows()
	}
	ops := instruction.ByClass(c)
	rows := make([]row, len(ops))
	for i, op := range ops {
		rows[i] = newRow(op)
	}
	return rows
}

func allRows() []row {
	var rows []row
	for _, c := range instruction.Classes() {
		rows = append(rows, classRows(c)...)
	}
	return rows
}

// filterRows keeps rows whose mnemonic, class or signature contains every
// whitespace-separated term of query.
func filterRows(rows []row, query string) []row {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return rows
	}
	var out []row
	for _, r := range rows {
		text := r.name + " " + r.class.String() + " " + r.signature
		match := true
		for _, t := range terms {
			if !strings.Contains(text, t) {
				match = false
				break
			}
		}
		if match {
			out = append(out, r)
		}
	}
	return out
}

// classNames lists every class name parseClass accepts.
func classNames() []string {
	classes := instruction.Classes()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.String()
	}
	return names
}

func parseClass(name string) (instruction.Class, bool) {
	for _, c := range instruction.Classes() {
		if c.String() == strings.ToLower(name) {
			return c, true
		}
	}
	return 0, false
}

func (r row) render(styled bool) string {
	name := fmt.Sprintf("%-*s", opColumn, r.name)
	sig := r.signature
	if styled {
		name = opStyle.Render(name)
		sig = typeStyle.Render(sig)
	}
	if r.sign != instruction.SignAgnostic {
		return name + " " + sig + "  " + r.sign.String()
	}
	return name + " " + sig
}

// printer writes catalogue output, styled only when w is a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer, styled bool) *printer {
	return &printer{w: w, styled: styled}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) title(text string) {
	fmt.Fprintln(p.w, p.style(titleStyle, text))
}

func (p *printer) section(text string) {
	fmt.Fprintln(p.w, p.style(sectionStyle, text))
}

func (p *printer) row(r row) {
	fmt.Fprintln(p.w, "  "+r.render(p.styled))
}

func (p *printer) external(name string, ext types.ExternalType) {
	fmt.Fprintf(p.w, "  %-8s %s %s\n", ext.Kind(), p.style(opStyle, name), p.style(typeStyle, ext.String()))
}

func (p *printer) line(text string) {
	fmt.Fprintln(p.w, "  "+p.style(typeStyle, text))
}

func (p *printer) note(text string) {
	fmt.Fprintln(p.w, "  "+p.style(helpStyle, text))
}

func (p *printer) blank() {
	fmt.Fprintln(p.w)
}
