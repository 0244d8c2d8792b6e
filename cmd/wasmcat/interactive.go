package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/wasm-language/instruction"
)

// visibleRows bounds the list height.
const visibleRows = 20

type interactiveModel struct {
	rows     []row
	shown    []row
	filter   textinput.Model
	selected int
	offset   int
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter, e.g. i64 conversion"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()

	rows := allRows()
	return &interactiveModel{
		rows:   rows,
		shown:  rows,
		filter: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "up":
			m.move(-1)
			return m, nil

		case "down":
			m.move(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	prev := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != prev {
		m.shown = filterRows(m.rows, m.filter.Value())
		m.selected = 0
		m.offset = 0
	}
	return m, cmd
}

func (m *interactiveModel) move(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.shown) {
		return
	}
	m.selected = next
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+visibleRows {
		m.offset = m.selected - visibleRows + 1
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("WASM Instructions"))
	b.WriteString(fmt.Sprintf(" %d of %d\n\n", len(m.shown), len(m.rows)))
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.shown) == 0 {
		b.WriteString(errorStyle.Render("no matching instructions"))
		b.WriteString("\n")
	}

	end := min(m.offset+visibleRows, len(m.shown))
	for i := m.offset; i < end; i++ {
		r := m.shown[i]
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + r.render(false)))
		} else {
			b.WriteString("  " + r.render(true))
		}
		b.WriteString("\n")
	}

	if m.selected < len(m.shown) {
		b.WriteString("\n")
		b.WriteString(m.detail(m.shown[m.selected]))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • esc quit"))
	return b.String()
}

func (m *interactiveModel) detail(r row) string {
	text := fmt.Sprintf("%s  class %s", opStyle.Render(r.name), r.class)
	if op, ok := instruction.Lookup(r.name); ok {
		text += fmt.Sprintf("  type %s", typeStyle.Render(op.Type().String()))
		if op.Sign() != instruction.SignAgnostic {
			text += "  " + op.Sign().String()
		}
	}
	return text
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
