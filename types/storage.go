package types

// MemoryType classifies a linear memory by its size range in pages.
type MemoryType struct {
	Limits Limits
}

func (m MemoryType) String() string {
	return "memory " + m.Limits.String()
}

// TableElementType classifies the elements a table holds.
//
// It is kept apart from TableType so that new element kinds only extend
// this enumeration.
type TableElementType byte

const (
	// FuncRef is the infinite union of all function types. A table of
	// funcref holds references to functions of heterogeneous type.
	FuncRef TableElementType = 0x70
)

// TableElementTypes returns every table element type.
func TableElementTypes() []TableElementType {
	return []TableElementType{FuncRef}
}

// Valid reports whether e is a known element type.
func (e TableElementType) Valid() bool {
	switch e {
	case FuncRef:
		return true
	}
	return false
}

func (e TableElementType) String() string {
	switch e {
	case FuncRef:
		return "funcref"
	default:
		return "unknown"
	}
}

// TableType classifies a table over elements of one element type within a
// size range.
type TableType struct {
	Limits   Limits
	Elements TableElementType
}

func (t TableType) String() string {
	return "table " + t.Limits.String() + " " + t.Elements.String()
}
