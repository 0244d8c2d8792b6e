package canon

import (
	"fmt"
	"strconv"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/wasm-language/errors"
	"github.com/wippyai/wasm-language/types"
)

// Flatten returns the core value types a WIT value occupies when passed
// flat on the stack.
func Flatten(t wit.Type) ([]types.ValueType, error) {
	return flatten(t, nil)
}

// FlatCount returns len(Flatten(t)).
func FlatCount(t wit.Type) (int, error) {
	flat, err := flatten(t, nil)
	if err != nil {
		return 0, err
	}
	return len(flat), nil
}

func flatten(t wit.Type, path []string) ([]types.ValueType, error) {
	switch t := t.(type) {
	case wit.Bool, wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.Char:
		return []types.ValueType{types.I32}, nil
	case wit.U64, wit.S64:
		return []types.ValueType{types.I64}, nil
	case wit.F32:
		return []types.ValueType{types.F32}, nil
	case wit.F64:
		return []types.ValueType{types.F64}, nil
	case wit.String:
		return []types.ValueType{types.I32, types.I32}, nil
	case *wit.TypeDef:
		return flattenTypeDef(t, path)
	case nil:
		return nil, errors.New(errors.PhaseLower, errors.KindInvalidInput).
			Path(path...).
			Detail("nil type").
			Build()
	default:
		return nil, errors.Unsupported(errors.PhaseLower, path, fmt.Sprintf("%T", t), "no flat representation")
	}
}

func flattenTypeDef(td *wit.TypeDef, path []string) ([]types.ValueType, error) {
	switch kind := td.Kind.(type) {
	case *wit.Record:
		var flat []types.ValueType
		for _, f := range kind.Fields {
			ft, err := flatten(f.Type, sub(path, f.Name))
			if err != nil {
				return nil, err
			}
			flat = append(flat, ft...)
		}
		return flat, nil
	case *wit.Tuple:
		var flat []types.ValueType
		for i, elem := range kind.Types {
			ft, err := flatten(elem, sub(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			flat = append(flat, ft...)
		}
		return flat, nil
	case *wit.List:
		return []types.ValueType{types.I32, types.I32}, nil
	case *wit.Enum, *wit.Own, *wit.Borrow:
		return []types.ValueType{types.I32}, nil
	case *wit.Flags:
		n := (len(kind.Flags) + 31) / 32
		flat := make([]types.ValueType, n)
		for i := range flat {
			flat[i] = types.I32
		}
		return flat, nil
	case *wit.Option:
		return flattenCases(path, nil, kind.Type)
	case *wit.Result:
		return flattenCases(path, kind.OK, kind.Err)
	case *wit.Variant:
		payloads := make([]wit.Type, len(kind.Cases))
		for i, c := range kind.Cases {
			payloads[i] = c.Type
		}
		return flattenCases(path, payloads...)
	case wit.Type:
		return flatten(kind, path)
	default:
		return nil, errors.Unsupported(errors.PhaseLower, path, fmt.Sprintf("%T", kind), "no flat representation")
	}
}

// flattenCases lays out a discriminated union: an i32 discriminant followed
// by the element-wise join of every case payload. A nil payload is an empty
// case.
func flattenCases(path []string, payloads ...wit.Type) ([]types.ValueType, error) {
	var joined []types.ValueType
	for i, p := range payloads {
		if p == nil {
			continue
		}
		flat, err := flatten(p, sub(path, "case"+strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		for j, vt := range flat {
			if j < len(joined) {
				joined[j] = join(joined[j], vt)
			} else {
				joined = append(joined, vt)
			}
		}
	}
	return append([]types.ValueType{types.I32}, joined...), nil
}

// join picks a slot type wide enough for both a and b.
func join(a, b types.ValueType) types.ValueType {
	if a == b {
		return a
	}
	if (a == types.I32 && b == types.F32) || (a == types.F32 && b == types.I32) {
		return types.I32
	}
	return types.I64
}

// sub extends path without writing into a caller's backing array.
func sub(path []string, elem string) []string {
	return append(path[:len(path):len(path)], elem)
}
