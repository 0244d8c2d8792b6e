package types

import "slices"

// FunctionType classifies a function signature: an ordered parameter list
// and a result type.
//
// Params is a view and may alias storage owned by someone else, typically a
// module's type section shared by many call sites. The owner must not mutate
// that storage while views exist. Clone returns a copy with its own storage.
type FunctionType struct {
	Params  []ValueType
	Results ResultType
}

// NewFunctionType builds a signature that borrows params.
func NewFunctionType(params []ValueType, results ResultType) FunctionType {
	return FunctionType{Params: params, Results: results}
}

// Clone returns a copy whose Params does not alias the receiver's.
func (f FunctionType) Clone() FunctionType {
	return FunctionType{Params: slices.Clone(f.Params), Results: f.Results}
}

func (f FunctionType) String() string {
	return formatValueTypes(f.Params) + " -> " + f.Results.String()
}
