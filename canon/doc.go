// Package canon derives core WebAssembly function types from component-level
// (WIT) signatures, following the canonical ABI flattening rules.
//
// Scalars map to one core value each, strings and lists to a pointer/length
// pair, records and tuples to the concatenation of their fields, and
// variants (including option and result) to an i32 discriminant followed by
// the joined payload slots:
//
//	flat, _ := canon.Flatten(wit.String{}) // [i32 i32]
//
// When a signature needs more than MaxFlatParams parameters they are passed
// as a single pointer. When it needs more than MaxFlatResults results they
// travel through linear memory:
//
//	sig, _ := canon.LowerSignature(params, results, nil)
//	sig.Type            // types.FunctionType for the core import
//	sig.SpilledResults  // true when a return pointer was appended
//
// Every result type is built through types.NewResultType, so the core
// single-result limit holds for every signature this package produces.
package canon
