package canon

import (
	"strconv"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-language/errors"
	"github.com/wippyai/wasm-language/types"
)

const (
	MaxFlatParams  = 16
	MaxFlatResults = 1
)

// Options bounds how many flat values travel on the stack before the
// canonical ABI spills them to linear memory. Zero fields take the defaults.
type Options struct {
	MaxFlatParams  int
	MaxFlatResults int
}

func (o *Options) limits() (params, results int) {
	params, results = MaxFlatParams, MaxFlatResults
	if o != nil {
		if o.MaxFlatParams > 0 {
			params = o.MaxFlatParams
		}
		if o.MaxFlatResults > 0 {
			results = o.MaxFlatResults
		}
	}
	return params, results
}

// Direction selects which side of the boundary the core function is on.
type Direction uint8

const (
	// Lower describes a core import of a host or component function. Spilled
	// results are written through a trailing i32 return pointer.
	Lower Direction = iota
	// Lift describes a core export wrapped as a component function. Spilled
	// results are returned as a single i32 pointer.
	Lift
)

func (d Direction) String() string {
	switch d {
	case Lower:
		return "lower"
	case Lift:
		return "lift"
	default:
		return "unknown"
	}
}

// Signature is a core function type together with the spill decisions that
// produced it.
type Signature struct {
	Type           types.FunctionType
	SpilledParams  bool // params passed as one i32 pointer
	SpilledResults bool // results passed through linear memory
}

// CoreSignature flattens a component-level signature into the core function
// type used on the given side of the boundary.
//
// Results go through types.NewResultType, so an Options.MaxFlatResults above
// types.MaxResultArity fails with types.ErrArityExceeded once a signature
// actually needs more than one result.
func CoreSignature(dir Direction, params, results []wit.Type, opts *Options) (Signature, error) {
	if dir != Lower && dir != Lift {
		return Signature{}, errors.InvalidInput(errors.PhaseLower, "unknown direction "+strconv.Itoa(int(dir)))
	}
	maxParams, maxResults := opts.limits()

	flatParams, err := flattenAll(params, "params")
	if err != nil {
		return Signature{}, err
	}
	flatResults, err := flattenAll(results, "results")
	if err != nil {
		return Signature{}, err
	}

	var sig Signature
	if len(flatParams) > maxParams {
		flatParams = []types.ValueType{types.I32}
		sig.SpilledParams = true
	}
	if len(flatResults) > maxResults {
		sig.SpilledResults = true
		if dir == Lower {
			flatParams = append(flatParams, types.I32)
			flatResults = nil
		} else {
			flatResults = []types.ValueType{types.I32}
		}
	}

	res, err := types.NewResultType(flatResults...)
	if err != nil {
		return Signature{}, errors.Wrap(errors.PhaseLower, errors.KindArityExceeded, err,
			"flat results: "+strconv.Itoa(len(flatResults)))
	}
	sig.Type = types.NewFunctionType(flatParams, res)

	if sig.SpilledParams || sig.SpilledResults {
		Logger().Debug("spilled signature",
			zap.Stringer("direction", dir),
			zap.Bool("params", sig.SpilledParams),
			zap.Bool("results", sig.SpilledResults),
			zap.Stringer("core", sig.Type))
	}
	return sig, nil
}

// LowerSignature is CoreSignature(Lower, ...).
func LowerSignature(params, results []wit.Type, opts *Options) (Signature, error) {
	return CoreSignature(Lower, params, results, opts)
}

// LiftSignature is CoreSignature(Lift, ...).
func LiftSignature(params, results []wit.Type, opts *Options) (Signature, error) {
	return CoreSignature(Lift, params, results, opts)
}

func flattenAll(ts []wit.Type, side string) ([]types.ValueType, error) {
	flat := make([]types.ValueType, 0, len(ts))
	for i, t := range ts {
		ft, err := flatten(t, []string{side, strconv.Itoa(i)})
		if err != nil {
			return nil, err
		}
		flat = append(flat, ft...)
	}
	return flat, nil
}
