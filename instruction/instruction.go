package instruction

import (
	"strings"

	"github.com/wippyai/wasm-language/types"
)

// Family groups instructions by the part of the machine they operate on.
type Family uint8

const (
	// FamilyNumeric covers constants and arithmetic, test, comparison and
	// conversion operators over the four value types.
	FamilyNumeric Family = iota
)

// Families returns every instruction family.
func Families() []Family {
	return []Family{FamilyNumeric}
}

func (f Family) String() string {
	switch f {
	case FamilyNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Instruction is a single executable operation.
//
// The interface is sealed. Each implementation carries its immediates but
// never runtime operand values; those come from the operand stack supplied
// by a validator or interpreter.
type Instruction interface {
	Family() Family
	// Signature returns the operand types popped and the result types
	// pushed, in stack order.
	Signature() Signature
	String() string
	instruction()
}

// Signature is the stack effect of an instruction.
//
// Signatures are shared between instructions; callers must treat both
// slices as read-only.
type Signature struct {
	Params  []types.ValueType
	Results []types.ValueType
}

func (s Signature) String() string {
	var b strings.Builder
	writeValueTypes(&b, s.Params)
	b.WriteString(" -> ")
	writeValueTypes(&b, s.Results)
	return b.String()
}

func writeValueTypes(b *strings.Builder, vts []types.ValueType) {
	b.WriteByte('(')
	for i, v := range vts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(')')
}
