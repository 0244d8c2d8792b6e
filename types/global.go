package types

// Mutability tells whether a global can be written after instantiation.
type Mutability byte

const (
	Immutable Mutability = 0x00
	Mutable   Mutability = 0x01
)

// Mutabilities returns both mutability values.
func Mutabilities() []Mutability {
	return []Mutability{Immutable, Mutable}
}

// Valid reports whether m is Immutable or Mutable.
func (m Mutability) Valid() bool {
	switch m {
	case Immutable, Mutable:
		return true
	}
	return false
}

func (m Mutability) String() string {
	switch m {
	case Immutable:
		return "const"
	case Mutable:
		return "var"
	default:
		return "unknown"
	}
}

// GlobalType classifies a global variable by its value type and mutability.
type GlobalType struct {
	Mutability Mutability
	Value      ValueType
}

func (g GlobalType) String() string {
	if g.Mutability == Mutable {
		return "global (mut " + g.Value.String() + ")"
	}
	return "global " + g.Value.String()
}
