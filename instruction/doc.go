// Package instruction defines the WebAssembly instruction catalogue.
//
// Every instruction is a value implementing the sealed Instruction
// interface, grouped into families. Each instruction reports its exact
// stack signature: the operand types it pops and the result types it pushes.
// Validators type-check against these signatures and interpreters or
// compilers dispatch on the concrete type.
//
// # Numeric family
//
// Constants carry their literal as an immediate. Float constants keep the
// raw IEEE 754 bits so NaN payloads and negative zero are preserved:
//
//	instruction.I32Const{Value: -1}
//	instruction.F32Const{Bits: 0x7FC00000} // canonical quiet NaN
//
// All other numeric instructions are Op values:
//
//	sig := instruction.I32DivU.Signature() // (i32, i32) -> (i32)
//	sig = instruction.F64ConvertI32S.Signature() // (i32) -> (f64)
//
// Signedness lives only in the op (I32DivS vs I32DivU); both consume the same
// i32 storage type.
//
// # Matching
//
// A consumer switches over the family, then over the concrete type:
//
//	switch in := ins.(type) {
//	case instruction.I32Const:
//	case instruction.I64Const:
//	case instruction.F32Const:
//	case instruction.F64Const:
//	case instruction.Op:
//		switch in.Class() { ... }
//	}
//
// New families are added as new Family values and new Instruction
// implementations; existing families are untouched.
package instruction
