package instruction

import "github.com/wippyai/wasm-language/types"

// Op is a numeric instruction without immediates.
//
// Sign-sensitive integer operations exist as separate _s/_u ops that share
// a signature; only the bit-level semantics differ.
type Op uint8

const (
	// Unary operators.
	I32Clz Op = iota
	I64Clz
	I32Ctz
	I64Ctz
	I32Popcnt
	I64Popcnt
	F32Abs
	F64Abs
	F32Neg
	F64Neg
	F32Sqrt
	F64Sqrt
	F32Ceil
	F64Ceil
	F32Floor
	F64Floor
	F32Trunc
	F64Trunc
	F32Nearest
	F64Nearest

	// Binary operators.
	I32Add
	I64Add
	F32Add
	F64Add
	I32Sub
	I64Sub
	F32Sub
	F64Sub
	I32Mul
	I64Mul
	F32Mul
	F64Mul
	I32DivS
	I64DivS
	I32DivU
	I64DivU
	I32RemS
	I64RemS
	I32RemU
	I64RemU
	I32And
	I64And
	I32Or
	I64Or
	I32Xor
	I64Xor
	I32Shl
	I64Shl
	I32ShrS
	I64ShrS
	I32ShrU
	I64ShrU
	I32Rotl
	I64Rotl
	I32Rotr
	I64Rotr
	F32Div
	F64Div
	F32Min
	F64Min
	F32Max
	F64Max
	F32CopySign
	F64CopySign

	// Test operators.
	I32Eqz
	I64Eqz

	// Comparison operators.
	I32Eq
	I64Eq
	I32Ne
	I64Ne
	I32LtS
	I64LtS
	I32LtU
	I64LtU
	I32GtS
	I64GtS
	I32GtU
	I64GtU
	I32LeS
	I64LeS
	I32LeU
	I64LeU
	I32GeS
	I64GeS
	I32GeU
	I64GeU
	F32Eq
	F64Eq
	F32Ne
	F64Ne
	F32Lt
	F64Lt
	F32Gt
	F64Gt
	F32Le
	F64Le
	F32Ge
	F64Ge

	// Conversion operators, as in WebAssembly 1.0: widening is
	// i64.extend_i32_s/u and reinterpret only pairs types of equal width.
	I32WrapI64
	I64ExtendI32S
	I64ExtendI32U
	I32TruncF32S
	I32TruncF32U
	I32TruncF64S
	I32TruncF64U
	I64TruncF32S
	I64TruncF32U
	I64TruncF64S
	I64TruncF64U
	F32DemoteF64
	F64PromoteF32
	F32ConvertI32S
	F32ConvertI32U
	F32ConvertI64S
	F32ConvertI64U
	F64ConvertI32S
	F64ConvertI32U
	F64ConvertI64S
	F64ConvertI64U
	I32ReinterpretF32
	I64ReinterpretF64
	F32ReinterpretI32
	F64ReinterpretI64

	numOps
)

type opInfo struct {
	name  string
	class Class
	typ   types.ValueType // type named by the mnemonic prefix
	src   types.ValueType // conversion source
	sign  Sign
}

var opTable = [numOps]opInfo{
	// Unary operators.
	I32Clz:     {name: "i32.clz", class: Unary, typ: types.I32},
	I64Clz:     {name: "i64.clz", class: Unary, typ: types.I64},
	I32Ctz:     {name: "i32.ctz", class: Unary, typ: types.I32},
	I64Ctz:     {name: "i64.ctz", class: Unary, typ: types.I64},
	I32Popcnt:  {name: "i32.popcnt", class: Unary, typ: types.I32},
	I64Popcnt:  {name: "i64.popcnt", class: Unary, typ: types.I64},
	F32Abs:     {name: "f32.abs", class: Unary, typ: types.F32},
	F64Abs:     {name: "f64.abs", class: Unary, typ: types.F64},
	F32Neg:     {name: "f32.neg", class: Unary, typ: types.F32},
	F64Neg:     {name: "f64.neg", class: Unary, typ: types.F64},
	F32Sqrt:    {name: "f32.sqrt", class: Unary, typ: types.F32},
	F64Sqrt:    {name: "f64.sqrt", class: Unary, typ: types.F64},
	F32Ceil:    {name: "f32.ceil", class: Unary, typ: types.F32},
	F64Ceil:    {name: "f64.ceil", class: Unary, typ: types.F64},
	F32Floor:   {name: "f32.floor", class: Unary, typ: types.F32},
	F64Floor:   {name: "f64.floor", class: Unary, typ: types.F64},
	F32Trunc:   {name: "f32.trunc", class: Unary, typ: types.F32},
	F64Trunc:   {name: "f64.trunc", class: Unary, typ: types.F64},
	F32Nearest: {name: "f32.nearest", class: Unary, typ: types.F32},
	F64Nearest: {name: "f64.nearest", class: Unary, typ: types.F64},

	// Binary operators.
	I32Add:      {name: "i32.add", class: Binary, typ: types.I32},
	I64Add:      {name: "i64.add", class: Binary, typ: types.I64},
	F32Add:      {name: "f32.add", class: Binary, typ: types.F32},
	F64Add:      {name: "f64.add", class: Binary, typ: types.F64},
	I32Sub:      {name: "i32.sub", class: Binary, typ: types.I32},
	I64Sub:      {name: "i64.sub", class: Binary, typ: types.I64},
	F32Sub:      {name: "f32.sub", class: Binary, typ: types.F32},
	F64Sub:      {name: "f64.sub", class: Binary, typ: types.F64},
	I32Mul:      {name: "i32.mul", class: Binary, typ: types.I32},
	I64Mul:      {name: "i64.mul", class: Binary, typ: types.I64},
	F32Mul:      {name: "f32.mul", class: Binary, typ: types.F32},
	F64Mul:      {name: "f64.mul", class: Binary, typ: types.F64},
	I32DivS:     {name: "i32.div_s", class: Binary, typ: types.I32, sign: Signed},
	I64DivS:     {name: "i64.div_s", class: Binary, typ: types.I64, sign: Signed},
	I32DivU:     {name: "i32.div_u", class: Binary, typ: types.I32, sign: Unsigned},
	I64DivU:     {name: "i64.div_u", class: Binary, typ: types.I64, sign: Unsigned},
	I32RemS:     {name: "i32.rem_s", class: Binary, typ: types.I32, sign: Signed},
	I64RemS:     {name: "i64.rem_s", class: Binary, typ: types.I64, sign: Signed},
	I32RemU:     {name: "i32.rem_u", class: Binary, typ: types.I32, sign: Unsigned},
	I64RemU:     {name: "i64.rem_u", class: Binary, typ: types.I64, sign: Unsigned},
	I32And:      {name: "i32.and", class: Binary, typ: types.I32},
	I64And:      {name: "i64.and", class: Binary, typ: types.I64},
	I32Or:       {name: "i32.or", class: Binary, typ: types.I32},
	I64Or:       {name: "i64.or", class: Binary, typ: types.I64},
	I32Xor:      {name: "i32.xor", class: Binary, typ: types.I32},
	I64Xor:      {name: "i64.xor", class: Binary, typ: types.I64},
	I32Shl:      {name: "i32.shl", class: Binary, typ: types.I32},
	I64Shl:      {name: "i64.shl", class: Binary, typ: types.I64},
	I32ShrS:     {name: "i32.shr_s", class: Binary, typ: types.I32, sign: Signed},
	I64ShrS:     {name: "i64.shr_s", class: Binary, typ: types.I64, sign: Signed},
	I32ShrU:     {name: "i32.shr_u", class: Binary, typ: types.I32, sign: Unsigned},
	I64ShrU:     {name: "i64.shr_u", class: Binary, typ: types.I64, sign: Unsigned},
	I32Rotl:     {name: "i32.rotl", class: Binary, typ: types.I32},
	I64Rotl:     {name: "i64.rotl", class: Binary, typ: types.I64},
	I32Rotr:     {name: "i32.rotr", class: Binary, typ: types.I32},
	I64Rotr:     {name: "i64.rotr", class: Binary, typ: types.I64},
	F32Div:      {name: "f32.div", class: Binary, typ: types.F32},
	F64Div:      {name: "f64.div", class: Binary, typ: types.F64},
	F32Min:      {name: "f32.min", class: Binary, typ: types.F32},
	F64Min:      {name: "f64.min", class: Binary, typ: types.F64},
	F32Max:      {name: "f32.max", class: Binary, typ: types.F32},
	F64Max:      {name: "f64.max", class: Binary, typ: types.F64},
	F32CopySign: {name: "f32.copysign", class: Binary, typ: types.F32},
	F64CopySign: {name: "f64.copysign", class: Binary, typ: types.F64},

	// Test operators.
	I32Eqz: {name: "i32.eqz", class: Test, typ: types.I32},
	I64Eqz: {name: "i64.eqz", class: Test, typ: types.I64},

	// Comparison operators.
	I32Eq:  {name: "i32.eq", class: Comparison, typ: types.I32},
	I64Eq:  {name: "i64.eq", class: Comparison, typ: types.I64},
	I32Ne:  {name: "i32.ne", class: Comparison, typ: types.I32},
	I64Ne:  {name: "i64.ne", class: Comparison, typ: types.I64},
	I32LtS: {name: "i32.lt_s", class: Comparison, typ: types.I32, sign: Signed},
	I64LtS: {name: "i64.lt_s", class: Comparison, typ: types.I64, sign: Signed},
	I32LtU: {name: "i32.lt_u", class: Comparison, typ: types.I32, sign: Unsigned},
	I64LtU: {name: "i64.lt_u", class: Comparison, typ: types.I64, sign: Unsigned},
	I32GtS: {name: "i32.gt_s", class: Comparison, typ: types.I32, sign: Signed},
	I64GtS: {name: "i64.gt_s", class: Comparison, typ: types.I64, sign: Signed},
	I32GtU: {name: "i32.gt_u", class: Comparison, typ: types.I32, sign: Unsigned},
	I64GtU: {name: "i64.gt_u", class: Comparison, typ: types.I64, sign: Unsigned},
	I32LeS: {name: "i32.le_s", class: Comparison, typ: types.I32, sign: Signed},
	I64LeS: {name: "i64.le_s", class: Comparison, typ: types.I64, sign: Signed},
	I32LeU: {name: "i32.le_u", class: Comparison, typ: types.I32, sign: Unsigned},
	I64LeU: {name: "i64.le_u", class: Comparison, typ: types.I64, sign: Unsigned},
	I32GeS: {name: "i32.ge_s", class: Comparison, typ: types.I32, sign: Signed},
	I64GeS: {name: "i64.ge_s", class: Comparison, typ: types.I64, sign: Signed},
	I32GeU: {name: "i32.ge_u", class: Comparison, typ: types.I32, sign: Unsigned},
	I64GeU: {name: "i64.ge_u", class: Comparison, typ: types.I64, sign: Unsigned},
	F32Eq:  {name: "f32.eq", class: Comparison, typ: types.F32},
	F64Eq:  {name: "f64.eq", class: Comparison, typ: types.F64},
	F32Ne:  {name: "f32.ne", class: Comparison, typ: types.F32},
	F64Ne:  {name: "f64.ne", class: Comparison, typ: types.F64},
	F32Lt:  {name: "f32.lt", class: Comparison, typ: types.F32},
	F64Lt:  {name: "f64.lt", class: Comparison, typ: types.F64},
	F32Gt:  {name: "f32.gt", class: Comparison, typ: types.F32},
	F64Gt:  {name: "f64.gt", class: Comparison, typ: types.F64},
	F32Le:  {name: "f32.le", class: Comparison, typ: types.F32},
	F64Le:  {name: "f64.le", class: Comparison, typ: types.F64},
	F32Ge:  {name: "f32.ge", class: Comparison, typ: types.F32},
	F64Ge:  {name: "f64.ge", class: Comparison, typ: types.F64},

	// Conversion operators.
	I32WrapI64:        {name: "i32.wrap_i64", class: Conversion, typ: types.I32, src: types.I64},
	I64ExtendI32S:     {name: "i64.extend_i32_s", class: Conversion, typ: types.I64, src: types.I32, sign: Signed},
	I64ExtendI32U:     {name: "i64.extend_i32_u", class: Conversion, typ: types.I64, src: types.I32, sign: Unsigned},
	I32TruncF32S:      {name: "i32.trunc_f32_s", class: Conversion, typ: types.I32, src: types.F32, sign: Signed},
	I32TruncF32U:      {name: "i32.trunc_f32_u", class: Conversion, typ: types.I32, src: types.F32, sign: Unsigned},
	I32TruncF64S:      {name: "i32.trunc_f64_s", class: Conversion, typ: types.I32, src: types.F64, sign: Signed},
	I32TruncF64U:      {name: "i32.trunc_f64_u", class: Conversion, typ: types.I32, src: types.F64, sign: Unsigned},
	I64TruncF32S:      {name: "i64.trunc_f32_s", class: Conversion, typ: types.I64, src: types.F32, sign: Signed},
	I64TruncF32U:      {name: "i64.trunc_f32_u", class: Conversion, typ: types.I64, src: types.F32, sign: Unsigned},
	I64TruncF64S:      {name: "i64.trunc_f64_s", class: Conversion, typ: types.I64, src: types.F64, sign: Signed},
	I64TruncF64U:      {name: "i64.trunc_f64_u", class: Conversion, typ: types.I64, src: types.F64, sign: Unsigned},
	F32DemoteF64:      {name: "f32.demote_f64", class: Conversion, typ: types.F32, src: types.F64},
	F64PromoteF32:     {name: "f64.promote_f32", class: Conversion, typ: types.F64, src: types.F32},
	F32ConvertI32S:    {name: "f32.convert_i32_s", class: Conversion, typ: types.F32, src: types.I32, sign: Signed},
	F32ConvertI32U:    {name: "f32.convert_i32_u", class: Conversion, typ: types.F32, src: types.I32, sign: Unsigned},
	F32ConvertI64S:    {name: "f32.convert_i64_s", class: Conversion, typ: types.F32, src: types.I64, sign: Signed},
	F32ConvertI64U:    {name: "f32.convert_i64_u", class: Conversion, typ: types.F32, src: types.I64, sign: Unsigned},
	F64ConvertI32S:    {name: "f64.convert_i32_s", class: Conversion, typ: types.F64, src: types.I32, sign: Signed},
	F64ConvertI32U:    {name: "f64.convert_i32_u", class: Conversion, typ: types.F64, src: types.I32, sign: Unsigned},
	F64ConvertI64S:    {name: "f64.convert_i64_s", class: Conversion, typ: types.F64, src: types.I64, sign: Signed},
	F64ConvertI64U:    {name: "f64.convert_i64_u", class: Conversion, typ: types.F64, src: types.I64, sign: Unsigned},
	I32ReinterpretF32: {name: "i32.reinterpret_f32", class: Conversion, typ: types.I32, src: types.F32},
	I64ReinterpretF64: {name: "i64.reinterpret_f64", class: Conversion, typ: types.I64, src: types.F64},
	F32ReinterpretI32: {name: "f32.reinterpret_i32", class: Conversion, typ: types.F32, src: types.I32},
	F64ReinterpretI64: {name: "f64.reinterpret_i64", class: Conversion, typ: types.F64, src: types.I64},
}
