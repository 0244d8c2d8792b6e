// Package types classifies every value and definition a WebAssembly program
// can compute with or declare.
//
// The package is a leaf: it defines value types, result types, function
// signatures, limits, memory/table/global types and the external types used
// to classify imports and exports. Every descriptor is an immutable value
// that may be shared freely between goroutines once constructed.
//
// # Construction
//
// Two descriptors carry invariants that are enforced when they are built:
//
//	lim, err := types.NewBoundedLimits(1, 16) // fails when max < min
//	res, err := types.NewResultType(types.I32) // fails for more than one value
//
// Limits and ResultType keep their fields unexported, so the constructors
// are the only way to obtain a non-zero value. Their zero values are valid:
// Limits{} is {min 0, unbounded} and ResultType{} is the empty result.
//
// # External types
//
// ExternalType is a sealed interface implemented by exactly FunctionType,
// TableType, MemoryType and GlobalType:
//
//	switch ext := t.(type) {
//	case types.FunctionType:
//	case types.TableType:
//	case types.MemoryType:
//	case types.GlobalType:
//	}
//
// # Borrowed parameters
//
// FunctionType.Params is a slice and may alias a longer-lived buffer such as
// a module's type section. Many signatures can share one backing array; use
// FunctionType.Clone when the caller needs storage of its own.
//
// This package performs no comparison, subtyping or validation beyond the
// construction invariants. Those belong to the validator.
package types
