package types

// ValueType classifies a single value slot.
//
// Integers carry no signedness: the instruction applied to the bits decides
// how they are interpreted. Floats are IEEE 754-2008 binary32/binary64.
type ValueType byte

// Value types. The constants reuse the binary-format type codes so decoders
// can convert with a range check instead of a lookup table.
const (
	I32 ValueType = 0x7F // 32-bit integer
	I64 ValueType = 0x7E // 64-bit integer
	F32 ValueType = 0x7D // 32-bit float
	F64 ValueType = 0x7C // 64-bit float
)

// ValueTypes returns every value type in declaration order.
func ValueTypes() []ValueType {
	return []ValueType{I32, I64, F32, F64}
}

// Valid reports whether v is one of the four value types.
func (v ValueType) Valid() bool {
	switch v {
	case I32, I64, F32, F64:
		return true
	}
	return false
}

// BitWidth returns 32 or 64, or 0 for an invalid value type.
func (v ValueType) BitWidth() int {
	switch v {
	case I32, F32:
		return 32
	case I64, F64:
		return 64
	}
	return 0
}

// IsInteger reports whether v is i32 or i64.
func (v ValueType) IsInteger() bool {
	return v == I32 || v == I64
}

// IsFloat reports whether v is f32 or f64.
func (v ValueType) IsFloat() bool {
	return v == F32 || v == F64
}

func (v ValueType) String() string {
	switch v {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}
