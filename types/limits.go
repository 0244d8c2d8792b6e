package types

import (
	"strconv"

	"github.com/wippyai/wasm-language/errors"
)

// Limits classifies the size range of resizable storage, in units of page
// size for memories and elements for tables.
//
// When a maximum is present it is never below the minimum. The zero value
// is {min 0, no maximum}.
type Limits struct {
	min    uint32
	max    uint32
	hasMax bool
}

// NewLimits returns limits with the given minimum and no maximum, meaning
// the storage may grow to any size the host allows.
func NewLimits(minimum uint32) Limits {
	return Limits{min: minimum}
}

// NewBoundedLimits returns limits with both bounds. It fails with
// ErrInvalidLimits when maximum < minimum.
//
// Host ceilings (such as the 65536-page memory limit) are not checked here.
func NewBoundedLimits(minimum, maximum uint32) (Limits, error) {
	if maximum < minimum {
		return Limits{}, errors.InvalidLimits(minimum, maximum)
	}
	return Limits{min: minimum, max: maximum, hasMax: true}, nil
}

// NewLimitsFrom builds limits from an optional maximum, as decoders see it.
func NewLimitsFrom(minimum uint32, maximum *uint32) (Limits, error) {
	if maximum == nil {
		return NewLimits(minimum), nil
	}
	return NewBoundedLimits(minimum, *maximum)
}

// Min returns the minimum size.
func (l Limits) Min() uint32 {
	return l.min
}

// Max returns the maximum size and whether one is present.
func (l Limits) Max() (uint32, bool) {
	return l.max, l.hasMax
}

// Bounded reports whether a maximum is present.
func (l Limits) Bounded() bool {
	return l.hasMax
}

func (l Limits) String() string {
	if !l.hasMax {
		return "{min " + strconv.FormatUint(uint64(l.min), 10) + "}"
	}
	return "{min " + strconv.FormatUint(uint64(l.min), 10) + ", max " + strconv.FormatUint(uint64(l.max), 10) + "}"
}
