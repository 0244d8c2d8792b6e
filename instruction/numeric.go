package instruction

import (
	"math"
	"strconv"

	"github.com/wippyai/wasm-language/types"
)

// Class is the shape of a numeric instruction's stack effect.
type Class uint8

const (
	Constant   Class = iota // () -> (T)
	Unary                   // (T) -> (T)
	Binary                  // (T, T) -> (T)
	Test                    // (T) -> (i32)
	Comparison              // (T, T) -> (i32)
	Conversion              // (S) -> (D)
)

// Classes returns every numeric class.
func Classes() []Class {
	return []Class{Constant, Unary, Binary, Test, Comparison, Conversion}
}

func (c Class) String() string {
	switch c {
	case Constant:
		return "constant"
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case Test:
		return "test"
	case Comparison:
		return "comparison"
	case Conversion:
		return "conversion"
	default:
		return "unknown"
	}
}

// Sign is the integer interpretation an op applies to its bits.
type Sign uint8

const (
	SignAgnostic Sign = iota
	Signed
	Unsigned
)

func (s Sign) String() string {
	switch s {
	case SignAgnostic:
		return "agnostic"
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	default:
		return "unknown"
	}
}

// Numeric is an instruction of the numeric family: one of I32Const,
// I64Const, F32Const, F64Const or Op.
type Numeric interface {
	Instruction
	Class() Class
	numeric()
}

// I32Const pushes a 32-bit integer literal.
type I32Const struct {
	Value int32
}

// I64Const pushes a 64-bit integer literal.
type I64Const struct {
	Value int64
}

// F32Const pushes a 32-bit float given by its IEEE 754 bit pattern, so NaN
// payloads and the sign of zero survive any round trip.
type F32Const struct {
	Bits uint32
}

// F64Const pushes a 64-bit float given by its IEEE 754 bit pattern.
type F64Const struct {
	Bits uint64
}

// F32ConstOf returns the constant holding f's bit pattern.
func F32ConstOf(f float32) F32Const {
	return F32Const{Bits: math.Float32bits(f)}
}

// F64ConstOf returns the constant holding f's bit pattern.
func F64ConstOf(f float64) F64Const {
	return F64Const{Bits: math.Float64bits(f)}
}

// Float decodes the bit pattern.
func (c F32Const) Float() float32 { return math.Float32frombits(c.Bits) }

// Float decodes the bit pattern.
func (c F64Const) Float() float64 { return math.Float64frombits(c.Bits) }

var (
	constI32 = Signature{Params: []types.ValueType{}, Results: []types.ValueType{types.I32}}
	constI64 = Signature{Params: []types.ValueType{}, Results: []types.ValueType{types.I64}}
	constF32 = Signature{Params: []types.ValueType{}, Results: []types.ValueType{types.F32}}
	constF64 = Signature{Params: []types.ValueType{}, Results: []types.ValueType{types.F64}}
)

func (I32Const) Family() Family { return FamilyNumeric }
func (I64Const) Family() Family { return FamilyNumeric }
func (F32Const) Family() Family { return FamilyNumeric }
func (F64Const) Family() Family { return FamilyNumeric }

func (I32Const) Class() Class { return Constant }
func (I64Const) Class() Class { return Constant }
func (F32Const) Class() Class { return Constant }
func (F64Const) Class() Class { return Constant }

func (I32Const) Signature() Signature { return constI32 }
func (I64Const) Signature() Signature { return constI64 }
func (F32Const) Signature() Signature { return constF32 }
func (F64Const) Signature() Signature { return constF64 }

func (c I32Const) String() string {
	return "i32.const " + strconv.FormatInt(int64(c.Value), 10)
}

func (c I64Const) String() string {
	return "i64.const " + strconv.FormatInt(c.Value, 10)
}

func (c F32Const) String() string {
	const payloadMask = 1<<23 - 1
	return "f32.const " + formatFloat(float64(c.Float()), uint64(c.Bits&payloadMask), 1<<22, c.Bits>>31 == 1, 32)
}

func (c F64Const) String() string {
	const payloadMask = 1<<52 - 1
	return "f64.const " + formatFloat(c.Float(), c.Bits&payloadMask, 1<<51, c.Bits>>63 == 1, 64)
}

// formatFloat renders a float the way the text format spells it, keeping the
// NaN payload when it is not the canonical one.
func formatFloat(f float64, payload, canonical uint64, negative bool, bitSize int) string {
	sign := ""
	if negative {
		sign = "-"
	}
	switch {
	case math.IsNaN(f):
		if payload == canonical {
			return sign + "nan"
		}
		return sign + "nan:0x" + strconv.FormatUint(payload, 16)
	case math.IsInf(f, 0):
		return sign + "inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

func (I32Const) instruction() {}
func (I64Const) instruction() {}
func (F32Const) instruction() {}
func (F64Const) instruction() {}
func (Op) instruction()       {}

func (I32Const) numeric() {}
func (I64Const) numeric() {}
func (F32Const) numeric() {}
func (F64Const) numeric() {}
func (Op) numeric()       {}

var (
	signatures [numOps]Signature
	byName     = make(map[string]Op, numOps)
)

func init() {
	for op := Op(0); op < numOps; op++ {
		info := &opTable[op]
		signatures[op] = info.signature()
		byName[info.name] = op
	}
}

func (info *opInfo) signature() Signature {
	t := info.typ
	switch info.class {
	case Unary:
		return Signature{Params: []types.ValueType{t}, Results: []types.ValueType{t}}
	case Binary:
		return Signature{Params: []types.ValueType{t, t}, Results: []types.ValueType{t}}
	case Test:
		return Signature{Params: []types.ValueType{t}, Results: []types.ValueType{types.I32}}
	case Comparison:
		return Signature{Params: []types.ValueType{t, t}, Results: []types.ValueType{types.I32}}
	case Conversion:
		return Signature{Params: []types.ValueType{info.src}, Results: []types.ValueType{t}}
	default:
		panic("instruction: " + info.name + " has class " + info.class.String())
	}
}

// Ops returns every immediate-free numeric op in declaration order.
func Ops() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// ByClass returns the ops of one class in declaration order. Constant has no
// ops; the constant instructions are the *Const types.
func ByClass(c Class) []Op {
	var ops []Op
	for op := Op(0); op < numOps; op++ {
		if opTable[op].class == c {
			ops = append(ops, op)
		}
	}
	return ops
}

// Lookup returns the op with the given text-format mnemonic, e.g. "i32.add".
func Lookup(name string) (Op, bool) {
	op, ok := byName[name]
	return op, ok
}

// Valid reports whether op is a declared numeric op.
func (op Op) Valid() bool {
	return op < numOps
}

func (Op) Family() Family { return FamilyNumeric }

// Class panics for an op that is not Valid, like every other Op accessor.
func (op Op) Class() Class { return opTable[op].class }

func (op Op) Signature() Signature { return signatures[op] }

func (op Op) String() string {
	if !op.Valid() {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opTable[op].name
}

// Type returns the value type named by the mnemonic prefix: the operand type
// for unary, binary, test and comparison ops and the result type for
// conversions.
func (op Op) Type() types.ValueType { return opTable[op].typ }

// Sign returns the integer interpretation the op applies.
func (op Op) Sign() Sign { return opTable[op].sign }
