package instruction_test

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/wippyai/wasm-language/instruction"
	"github.com/wippyai/wasm-language/types"
)

var (
	i32 = types.I32
	i64 = types.I64
	f32 = types.F32
	f64 = types.F64
)

func vts(v ...types.ValueType) []types.ValueType { return v }

func TestSignatureExamples(t *testing.T) {
	tests := []struct {
		ins     instruction.Instruction
		params  []types.ValueType
		results []types.ValueType
	}{
		{instruction.I32Const{Value: 1}, vts(), vts(i32)},
		{instruction.I64Const{Value: 1}, vts(), vts(i64)},
		{instruction.F32Const{}, vts(), vts(f32)},
		{instruction.F64Const{}, vts(), vts(f64)},
		{instruction.I32Clz, vts(i32), vts(i32)},
		{instruction.F32Sqrt, vts(f32), vts(f32)},
		{instruction.F64Nearest, vts(f64), vts(f64)},
		{instruction.I32Add, vts(i32, i32), vts(i32)},
		{instruction.I64Add, vts(i64, i64), vts(i64)},
		{instruction.F32CopySign, vts(f32, f32), vts(f32)},
		{instruction.I32Rotr, vts(i32, i32), vts(i32)},
		{instruction.I32DivU, vts(i32, i32), vts(i32)},
		{instruction.I32DivS, vts(i32, i32), vts(i32)},
		{instruction.I32Eqz, vts(i32), vts(i32)},
		{instruction.I64Eqz, vts(i64), vts(i32)},
		{instruction.I64LtS, vts(i64, i64), vts(i32)},
		{instruction.F32Ge, vts(f32, f32), vts(i32)},
		{instruction.F64Ne, vts(f64, f64), vts(i32)},
		{instruction.I32WrapI64, vts(i64), vts(i32)},
		{instruction.I64ExtendI32U, vts(i32), vts(i64)},
		{instruction.I64TruncF32S, vts(f32), vts(i64)},
		{instruction.F32DemoteF64, vts(f64), vts(f32)},
		{instruction.F64PromoteF32, vts(f32), vts(f64)},
		{instruction.F64ConvertI32S, vts(i32), vts(f64)},
		{instruction.F32ConvertI64U, vts(i64), vts(f32)},
		{instruction.I32ReinterpretF32, vts(f32), vts(i32)},
		{instruction.F64ReinterpretI64, vts(i64), vts(f64)},
	}

	for _, tt := range tests {
		t.Run(tt.ins.String(), func(t *testing.T) {
			sig := tt.ins.Signature()
			if !slices.Equal(sig.Params, tt.params) {
				t.Errorf("params = %v, want %v", sig.Params, tt.params)
			}
			if !slices.Equal(sig.Results, tt.results) {
				t.Errorf("results = %v, want %v", sig.Results, tt.results)
			}
			if tt.ins.Family() != instruction.FamilyNumeric {
				t.Errorf("family = %v, want numeric", tt.ins.Family())
			}
		})
	}
}

func TestSignatureMatchesClass(t *testing.T) {
	for _, op := range instruction.Ops() {
		sig := op.Signature()
		typ := op.Type()

		var params, results []types.ValueType
		switch op.Class() {
		case instruction.Unary:
			params, results = vts(typ), vts(typ)
		case instruction.Binary:
			params, results = vts(typ, typ), vts(typ)
		case instruction.Test:
			params, results = vts(typ), vts(i32)
		case instruction.Comparison:
			params, results = vts(typ, typ), vts(i32)
		case instruction.Conversion:
			if len(sig.Params) != 1 || sig.Params[0] == typ {
				t.Errorf("%v: conversion must change type, got %v", op, sig)
			}
			params, results = sig.Params, vts(typ)
		default:
			t.Errorf("%v has class %v", op, op.Class())
			continue
		}

		if !slices.Equal(sig.Params, params) || !slices.Equal(sig.Results, results) {
			t.Errorf("%v signature = %v, want %v -> %v", op, sig, params, results)
		}
		if n := len(sig.Params); n > 2 {
			t.Errorf("%v pops %d values", op, n)
		}
		if n := len(sig.Results); n != 1 {
			t.Errorf("%v pushes %d values", op, n)
		}
		for _, v := range append(slices.Clone(sig.Params), sig.Results...) {
			if !v.Valid() {
				t.Errorf("%v signature holds invalid type %v", op, v)
			}
		}
	}
}

func TestOpsPerClass(t *testing.T) {
	want := map[instruction.Class]int{
		instruction.Constant:   0,
		instruction.Unary:      20,
		instruction.Binary:     44,
		instruction.Test:       2,
		instruction.Comparison: 32,
		instruction.Conversion: 25,
	}

	total := 0
	for _, c := range instruction.Classes() {
		got := len(instruction.ByClass(c))
		if got != want[c] {
			t.Errorf("ByClass(%v) has %d ops, want %d", c, got, want[c])
		}
		total += got
	}
	if total != len(instruction.Ops()) {
		t.Errorf("classes cover %d ops, Ops() has %d", total, len(instruction.Ops()))
	}
}

func TestMnemonicsAreTotalAndUnique(t *testing.T) {
	seen := make(map[string]instruction.Op)
	for _, op := range instruction.Ops() {
		name := op.String()
		if !strings.HasPrefix(name, op.Type().String()+".") {
			t.Errorf("%q does not start with its type %v", name, op.Type())
		}
		if prev, dup := seen[name]; dup {
			t.Errorf("%q used by ops %d and %d", name, prev, op)
		}
		seen[name] = op

		got, ok := instruction.Lookup(name)
		if !ok || got != op {
			t.Errorf("Lookup(%q) = %v, %v", name, got, ok)
		}
	}

	if _, ok := instruction.Lookup("i32.const"); ok {
		t.Error("constants are not ops")
	}
	if _, ok := instruction.Lookup("i64.wrap_i32_u"); ok {
		t.Error("unknown mnemonic resolved")
	}
}

func TestSignPairsShareSignature(t *testing.T) {
	pairs := 0
	for _, op := range instruction.Ops() {
		name := op.String()
		switch op.Sign() {
		case instruction.Signed:
			if !strings.HasSuffix(name, "_s") {
				t.Errorf("%q is signed but lacks _s", name)
				continue
			}
			twin, ok := instruction.Lookup(strings.TrimSuffix(name, "_s") + "_u")
			if !ok {
				t.Errorf("%q has no unsigned twin", name)
				continue
			}
			if twin.Sign() != instruction.Unsigned {
				t.Errorf("%v sign = %v", twin, twin.Sign())
			}
			if twin == op {
				t.Errorf("%v and its twin must be distinct ops", op)
			}
			a, b := op.Signature(), twin.Signature()
			if !slices.Equal(a.Params, b.Params) || !slices.Equal(a.Results, b.Results) {
				t.Errorf("%v %v and %v %v differ", op, a, twin, b)
			}
			pairs++
		case instruction.Unsigned:
			if !strings.HasSuffix(name, "_u") {
				t.Errorf("%q is unsigned but lacks _u", name)
			}
		case instruction.SignAgnostic:
			if strings.HasSuffix(name, "_s") || strings.HasSuffix(name, "_u") {
				t.Errorf("%q should carry a sign", name)
			}
		}
	}
	// div rem lt gt le ge shr for both widths, trunc x4, convert x4, extend.
	if pairs != 7*2+4+4+1 {
		t.Errorf("found %d signed/unsigned pairs", pairs)
	}
}

func TestIntegerConstRoundTrip(t *testing.T) {
	for _, v := range []int32{math.MinInt32, -1, 0, 1, math.MaxInt32} {
		c := instruction.I32Const{Value: v}
		var ins instruction.Instruction = c
		if got := ins.(instruction.I32Const).Value; got != v {
			t.Errorf("I32Const(%d) round-tripped to %d", v, got)
		}
	}
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64} {
		c := instruction.I64Const{Value: v}
		var ins instruction.Instruction = c
		if got := ins.(instruction.I64Const).Value; got != v {
			t.Errorf("I64Const(%d) round-tripped to %d", v, got)
		}
	}
	if s := (instruction.I32Const{Value: math.MinInt32}).String(); s != "i32.const -2147483648" {
		t.Errorf("String() = %q", s)
	}
	if s := (instruction.I64Const{Value: math.MinInt64}).String(); s != "i64.const -9223372036854775808" {
		t.Errorf("String() = %q", s)
	}
}

func TestFloatConstBitPatterns(t *testing.T) {
	tests := []struct {
		name string
		text string
		bits uint32
	}{
		{"positive zero", "f32.const 0", 0x0000_0000},
		{"negative zero", "f32.const -0", 0x8000_0000},
		{"quiet nan", "f32.const nan", 0x7FC0_0000},
		{"nan payload", "f32.const nan:0x400001", 0x7FC0_0001},
		{"negative nan", "f32.const -nan", 0xFFC0_0000},
		{"infinity", "f32.const inf", 0x7F80_0000},
		{"negative infinity", "f32.const -inf", 0xFF80_0000},
		{"one", "f32.const 1", 0x3F80_0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ins instruction.Instruction = instruction.F32Const{Bits: tt.bits}
			c := ins.(instruction.F32Const)
			if c.Bits != tt.bits {
				t.Errorf("Bits = %#08x, want %#08x", c.Bits, tt.bits)
			}
			if got := instruction.F32ConstOf(c.Float()).Bits; got != tt.bits {
				t.Errorf("decode/encode = %#08x, want %#08x", got, tt.bits)
			}
			if c.String() != tt.text {
				t.Errorf("String() = %q, want %q", c.String(), tt.text)
			}
		})
	}
}

func TestFloat64ConstBitPatterns(t *testing.T) {
	tests := []struct {
		text string
		bits uint64
	}{
		{"f64.const 0", 0x0000_0000_0000_0000},
		{"f64.const -0", 0x8000_0000_0000_0000},
		{"f64.const nan", 0x7FF8_0000_0000_0000},
		{"f64.const nan:0xdeadbeef", 0x7FF0_0000_DEAD_BEEF},
		{"f64.const inf", 0x7FF0_0000_0000_0000},
		{"f64.const 0.5", 0x3FE0_0000_0000_0000},
	}

	for _, tt := range tests {
		c := instruction.F64Const{Bits: tt.bits}
		if c.Bits != tt.bits {
			t.Errorf("Bits = %#016x, want %#016x", c.Bits, tt.bits)
		}
		if c.String() != tt.text {
			t.Errorf("String() = %q, want %q", c.String(), tt.text)
		}
	}

	negZero := instruction.F64ConstOf(math.Copysign(0, -1))
	if negZero.Bits != 0x8000_0000_0000_0000 {
		t.Errorf("F64ConstOf(-0).Bits = %#016x", negZero.Bits)
	}
}

func TestConstantsAreConstantClass(t *testing.T) {
	consts := []instruction.Numeric{
		instruction.I32Const{},
		instruction.I64Const{},
		instruction.F32Const{},
		instruction.F64Const{},
	}
	for _, c := range consts {
		if c.Class() != instruction.Constant {
			t.Errorf("%v class = %v", c, c.Class())
		}
		sig := c.Signature()
		if len(sig.Params) != 0 || len(sig.Results) != 1 {
			t.Errorf("%v signature = %v", c, sig)
		}
	}
}

// describe is a consumer-style exhaustive match over the numeric family.
func describe(ins instruction.Instruction) string {
	switch in := ins.(type) {
	case instruction.I32Const:
		return "const"
	case instruction.I64Const:
		return "const"
	case instruction.F32Const:
		return "const"
	case instruction.F64Const:
		return "const"
	case instruction.Op:
		return in.Class().String()
	}
	return ""
}

func TestEveryInstructionIsMatched(t *testing.T) {
	all := []instruction.Instruction{
		instruction.I32Const{}, instruction.I64Const{}, instruction.F32Const{}, instruction.F64Const{},
	}
	for _, op := range instruction.Ops() {
		all = append(all, op)
	}
	for _, ins := range all {
		if describe(ins) == "" {
			t.Errorf("%v fell through the match", ins)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	for _, f := range instruction.Families() {
		if f.String() == "unknown" {
			t.Errorf("family %d has no name", f)
		}
	}
	for _, c := range instruction.Classes() {
		if c.String() == "unknown" {
			t.Errorf("class %d has no name", c)
		}
	}
	if instruction.Op(250).Valid() {
		t.Error("Op(250) should not be valid")
	}
	if s := instruction.Op(250).String(); s != "op(250)" {
		t.Errorf("invalid op String() = %q", s)
	}
	if s := instruction.I32Add.Signature().String(); s != "(i32, i32) -> (i32)" {
		t.Errorf("Signature.String() = %q", s)
	}
}
