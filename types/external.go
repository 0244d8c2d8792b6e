package types

// ExternalKind names the category of an external type.
type ExternalKind byte

// External kinds, numbered like the import/export descriptor tags.
const (
	KindFunction ExternalKind = 0
	KindTable    ExternalKind = 1
	KindMemory   ExternalKind = 2
	KindGlobal   ExternalKind = 3
)

// ExternalKinds returns every external kind.
func ExternalKinds() []ExternalKind {
	return []ExternalKind{KindFunction, KindTable, KindMemory, KindGlobal}
}

func (k ExternalKind) String() string {
	switch k {
	case KindFunction:
		return "func"
	case KindTable:
		return "table"
	case KindMemory:
		return "memory"
	case KindGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// ExternalType classifies an import or export by its external-facing type.
//
// The interface is sealed: only FunctionType, TableType, MemoryType and
// GlobalType implement it, and a value holds exactly one of them.
type ExternalType interface {
	Kind() ExternalKind
	String() string
	externalType()
}

func (FunctionType) Kind() ExternalKind { return KindFunction }
func (TableType) Kind() ExternalKind    { return KindTable }
func (MemoryType) Kind() ExternalKind   { return KindMemory }
func (GlobalType) Kind() ExternalKind   { return KindGlobal }

func (FunctionType) externalType() {}
func (TableType) externalType()    {}
func (MemoryType) externalType()   {}
func (GlobalType) externalType()   {}

// ExternalFunc classifies a function signature as an external type.
func ExternalFunc(f FunctionType) ExternalType { return f }

// ExternalTable classifies a table type as an external type.
func ExternalTable(t TableType) ExternalType { return t }

// ExternalMemory classifies a memory type as an external type.
func ExternalMemory(m MemoryType) ExternalType { return m }

// ExternalGlobal classifies a global type as an external type.
func ExternalGlobal(g GlobalType) ExternalType { return g }

// AsFunction returns the function type if ext is one.
func AsFunction(ext ExternalType) (FunctionType, bool) {
	f, ok := ext.(FunctionType)
	return f, ok
}

// AsTable returns the table type if ext is one.
func AsTable(ext ExternalType) (TableType, bool) {
	t, ok := ext.(TableType)
	return t, ok
}

// AsMemory returns the memory type if ext is one.
func AsMemory(ext ExternalType) (MemoryType, bool) {
	m, ok := ext.(MemoryType)
	return m, ok
}

// AsGlobal returns the global type if ext is one.
func AsGlobal(ext ExternalType) (GlobalType, bool) {
	g, ok := ext.(GlobalType)
	return g, ok
}
