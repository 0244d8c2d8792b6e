// Package wasmlanguage describes the WebAssembly language itself: the value
// and composite types of the type system and the instruction set, where every
// instruction carries its exact operand and result stack signature.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	wasmlanguage/
//	├── types/           Value, result, function, limits, memory, table, global and external types
//	├── instruction/     Instruction families and the numeric catalogue with stack signatures
//	├── canon/           Canonical ABI flattening of WIT signatures into core function types
//	├── engine/          wazero bridge: value type conversion and import/export classification
//	├── errors/          Structured error types
//	└── cmd/wasmcat/     Catalogue browser and module inspector
//
// # Types
//
// Construction is the only place invariants are checked. Limits with a
// maximum below the minimum and result types with more than one value are
// rejected:
//
//	lim, err := types.NewBoundedLimits(1, 16)
//	res, err := types.NewResultType(types.I32)
//	fn := types.NewFunctionType([]types.ValueType{types.I32, types.I32}, res)
//
// Both failures match package sentinels through errors.Is:
//
//	if errors.Is(err, types.ErrInvalidLimits) { ... }
//
// # Instructions
//
// Every numeric instruction reports its stack effect:
//
//	instruction.I32Add.Signature()            // (i32, i32) -> (i32)
//	instruction.I64ExtendI32U.Signature()     // (i32) -> (i64)
//	instruction.F64ConstOf(1.5).Signature()   // () -> (f64)
//
// Signedness lives in the op only: I32DivS and I32DivU share a signature.
//
// # Thread Safety
//
// All types are immutable values and safe for concurrent use. Signature
// slices are shared and must not be modified. engine.Inspector is safe for
// concurrent use.
package wasmlanguage
