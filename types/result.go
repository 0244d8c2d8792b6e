package types

import (
	"strings"

	"github.com/wippyai/wasm-language/errors"
)

// MaxResultArity is the largest number of values a result type may hold.
const MaxResultArity = 1

// ResultType classifies the values produced by a function or block.
//
// The current format allows at most one value. The fields are unexported so
// that NewResultType is the only way to build a non-empty result; the zero
// value is the empty result.
type ResultType struct {
	value ValueType
	ok    bool
}

// NewResultType builds a result type from values. It fails with
// ErrArityExceeded when more than MaxResultArity values are given.
func NewResultType(values ...ValueType) (ResultType, error) {
	if len(values) > MaxResultArity {
		return ResultType{}, errors.ArityExceeded(len(values), MaxResultArity)
	}
	if len(values) == 0 {
		return ResultType{}, nil
	}
	return ResultType{value: values[0], ok: true}, nil
}

// Len returns the number of result values (0 or 1).
func (r ResultType) Len() int {
	if r.ok {
		return 1
	}
	return 0
}

// Value returns the single result value, if any.
func (r ResultType) Value() (ValueType, bool) {
	return r.value, r.ok
}

// Values returns the result values as a freshly allocated slice.
func (r ResultType) Values() []ValueType {
	if !r.ok {
		return nil
	}
	return []ValueType{r.value}
}

func (r ResultType) String() string {
	return formatValueTypes(r.Values())
}

func formatValueTypes(vts []ValueType) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(')')
	return b.String()
}
