package engine

import (
	"strconv"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-language/errors"
	"github.com/wippyai/wasm-language/types"
)

// ValueTypeOf converts a wazero value type. Reference types have no
// counterpart and fail with KindUnsupported.
func ValueTypeOf(vt api.ValueType) (types.ValueType, error) {
	return valueTypeOf(vt, nil)
}

func valueTypeOf(vt api.ValueType, path []string) (types.ValueType, error) {
	switch vt {
	case api.ValueTypeI32:
		return types.I32, nil
	case api.ValueTypeI64:
		return types.I64, nil
	case api.ValueTypeF32:
		return types.F32, nil
	case api.ValueTypeF64:
		return types.F64, nil
	default:
		return 0, errors.Unsupported(errors.PhaseInspect, path, api.ValueTypeName(vt), "no core value type")
	}
}

// ToAPI converts a value type to wazero's representation.
func ToAPI(vt types.ValueType) api.ValueType {
	switch vt {
	case types.I32:
		return api.ValueTypeI32
	case types.I64:
		return api.ValueTypeI64
	case types.F32:
		return api.ValueTypeF32
	case types.F64:
		return api.ValueTypeF64
	default:
		panic("engine: invalid value type " + vt.String())
	}
}

// ToAPISignature converts a function type to wazero parameter and result
// lists, e.g. for HostModuleBuilder.
func ToAPISignature(ft types.FunctionType) (params, results []api.ValueType) {
	params = make([]api.ValueType, len(ft.Params))
	for i, p := range ft.Params {
		params[i] = ToAPI(p)
	}
	for _, r := range ft.Results.Values() {
		results = append(results, ToAPI(r))
	}
	return params, results
}

// FunctionTypeOf converts a wazero function definition into a signature.
// Definitions with more than one result fail with types.ErrArityExceeded.
func FunctionTypeOf(def api.FunctionDefinition) (types.FunctionType, error) {
	params, err := valueTypesOf(def.ParamTypes(), "params")
	if err != nil {
		return types.FunctionType{}, err
	}
	results, err := valueTypesOf(def.ResultTypes(), "results")
	if err != nil {
		return types.FunctionType{}, err
	}
	res, err := types.NewResultType(results...)
	if err != nil {
		return types.FunctionType{}, errors.Wrap(errors.PhaseInspect, errors.KindArityExceeded, err,
			"function "+def.DebugName())
	}
	return types.NewFunctionType(params, res), nil
}

// MemoryTypeOf converts a wazero memory definition. An encoded maximum goes
// through types.NewBoundedLimits.
func MemoryTypeOf(def api.MemoryDefinition) (types.MemoryType, error) {
	lim := types.NewLimits(def.Min())
	if maxPages, ok := def.Max(); ok {
		var err error
		lim, err = types.NewBoundedLimits(def.Min(), maxPages)
		if err != nil {
			return types.MemoryType{}, errors.InvalidData(errors.PhaseInspect,
				[]string{"memory", strconv.FormatUint(uint64(def.Index()), 10)}, "memory limits", err)
		}
	}
	return types.MemoryType{Limits: lim}, nil
}

func valueTypesOf(vts []api.ValueType, side string) ([]types.ValueType, error) {
	out := make([]types.ValueType, len(vts))
	for i, vt := range vts {
		v, err := valueTypeOf(vt, []string{side, strconv.Itoa(i)})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
