package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/wasm-language/instruction"
)

func TestAllRows(t *testing.T) {
	rows := allRows()
	// four constants plus every op
	if want := 4 + len(instruction.Ops()); len(rows) != want {
		t.Errorf("got %d rows, want %d", len(rows), want)
	}
	if rows[0].name != "i32.const" || rows[0].signature != "() -> (i32)" {
		t.Errorf("first row = %+v", rows[0])
	}
}

func TestFilterRows(t *testing.T) {
	rows := allRows()

	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"i32.add", []string{"i32.add"}},
		{"eqz", []string{"i32.eqz", "i64.eqz"}},
		{"test i64", []string{"i64.eqz"}},
		{"F64.PROMOTE", []string{"f64.promote_f32"}},
		{"nothing-matches", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := filterRows(rows, tt.query)
			if tt.want == nil {
				if len(got) != len(rows) {
					t.Errorf("empty query kept %d of %d rows", len(got), len(rows))
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i, r := range got {
				if r.name != tt.want[i] {
					t.Errorf("row %d = %s, want %s", i, r.name, tt.want[i])
				}
			}
		})
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range instruction.Classes() {
		got, ok := parseClass(strings.ToUpper(c.String()))
		if !ok || got != c {
			t.Errorf("parseClass(%s) = %v, %v", c, got, ok)
		}
	}
	if _, ok := parseClass("vector"); ok {
		t.Error("parseClass(vector) should fail")
	}
}

func TestClassNames(t *testing.T) {
	names := classNames()
	if len(names) != len(instruction.Classes()) {
		t.Fatalf("got %d names, want %d", len(names), len(instruction.Classes()))
	}
	if names[0] != "constant" {
		t.Errorf("names[0] = %q, want constant", names[0])
	}
	for _, n := range names {
		if _, ok := parseClass(n); !ok {
			t.Errorf("parseClass(%q) rejected a listed class", n)
		}
	}
}

func TestPrintCatalogue_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := printCatalogue(newPrinter(&buf, false), "test"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"test (2)", "i32.eqz", "(i32) -> (i32)", "(i64) -> (i32)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output contains escape sequences")
	}
}

func TestPrintCatalogue_UnknownClass(t *testing.T) {
	var buf bytes.Buffer
	if err := printCatalogue(newPrinter(&buf, false), "vector"); err == nil {
		t.Error("expected error for unknown class")
	}
}

func TestPrintOp(t *testing.T) {
	var buf bytes.Buffer
	if err := printOp(newPrinter(&buf, false), "i32.div_s"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "(i32, i32) -> (i32)") || !strings.Contains(out, "signed") {
		t.Errorf("output = %q", out)
	}

	if err := printOp(newPrinter(&buf, false), "i32.frobnicate"); err == nil {
		t.Error("expected error for unknown op")
	}
}

func TestLowerSignature(t *testing.T) {
	tests := []struct {
		sig  string
		lift bool
		want []string
	}{
		{"u32,u32:u32", false, []string{"(i32, i32) -> (i32)"}},
		{"string:string", false, []string{"(i32, i32, i32) -> ()", "results passed through memory"}},
		{"string:string", true, []string{"(i32, i32) -> (i32)", "results passed through memory"}},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			var buf bytes.Buffer
			if err := lowerSignature(newPrinter(&buf, false), tt.sig, tt.lift); err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestInteractiveModel(t *testing.T) {
	m := newInteractiveModel()
	if len(m.shown) != len(m.rows) {
		t.Fatalf("shown %d of %d rows before filtering", len(m.shown), len(m.rows))
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 0 {
		t.Errorf("selected = %d after up at top", m.selected)
	}
	for range visibleRows + 2 {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selected != visibleRows+2 {
		t.Errorf("selected = %d, want %d", m.selected, visibleRows+2)
	}
	if m.offset != 3 {
		t.Errorf("offset = %d, want 3", m.offset)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("eqz")})
	if len(m.shown) != 2 {
		t.Fatalf("shown %d rows for eqz, want 2", len(m.shown))
	}
	if m.selected != 0 || m.offset != 0 {
		t.Errorf("selection not reset: selected=%d offset=%d", m.selected, m.offset)
	}
	if view := m.View(); !strings.Contains(view, "i64.eqz") {
		t.Errorf("view missing i64.eqz:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit")
	}
}
