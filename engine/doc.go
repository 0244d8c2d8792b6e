// Package engine bridges the type model to the wazero runtime.
//
// It converts between wazero's api.ValueType and types.ValueType, turns
// wazero function and memory definitions into types.FunctionType and
// types.MemoryType, and classifies the imports and exports of a compiled
// module as types.ExternalType values:
//
//	insp := engine.NewInspector(ctx, nil)
//	defer insp.Close(ctx)
//
//	in, err := insp.Inspect(ctx, wasmBytes)
//	for _, e := range in.Externals {
//	    fmt.Println(e.Name, e.Type.Kind(), e.Type)
//	}
//
// wazero only reports functions and memories of a compiled module, so tables
// and globals never appear in an Inspection.
//
// Conversions go through the constructors in package types: a multi-value
// function fails with types.ErrArityExceeded and an inverted memory range
// with types.ErrInvalidLimits.
package engine
