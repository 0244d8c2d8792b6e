// Package errors provides structured error types for the wasm-language module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a field path, the name of the type involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindInvalidInput).
//		Path("params", "0").
//		Detail("nil type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidLimits(4, 2)
//	err := errors.ArityExceeded(2, 1)
//	err := errors.Unsupported(errors.PhaseLower, path, "resource", "no flat representation")
//
// Is matches on Phase and Kind only, so a bare &Error{Phase, Kind} works as
// an errors.Is target.
package errors
