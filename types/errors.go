package types

import "github.com/wippyai/wasm-language/errors"

// Sentinels for errors.Is. Matching uses phase and kind only.
var (
	ErrInvalidLimits = &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindInvalidLimits}
	ErrArityExceeded = &errors.Error{Phase: errors.PhaseConstruct, Kind: errors.KindArityExceeded}
)
