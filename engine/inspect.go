package engine

import (
	"context"
	"sort"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-language/errors"
	"github.com/wippyai/wasm-language/types"
)

// Config holds configuration for inspector creation
type Config struct {
	// CoreFeatures selects the WebAssembly features the compiler accepts.
	// 0 means wazero's default (api.CoreFeaturesV2).
	CoreFeatures api.CoreFeatures

	// MemoryLimitPages caps memory sizes in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32
}

// NamedExternal is one import or export classified by its external type.
type NamedExternal struct {
	Type   types.ExternalType
	Module string // import module; empty for exports
	Name   string
	Import bool
}

// Inspection lists the externals of a compiled module that wazero exposes:
// functions and memories.
type Inspection struct {
	Name      string
	Externals []NamedExternal
}

// Imports returns the imported externals: functions, then memories.
func (in *Inspection) Imports() []NamedExternal {
	var out []NamedExternal
	for _, e := range in.Externals {
		if e.Import {
			out = append(out, e)
		}
	}
	return out
}

// Exports returns the exported externals in name order.
func (in *Inspection) Exports() []NamedExternal {
	var out []NamedExternal
	for _, e := range in.Externals {
		if !e.Import {
			out = append(out, e)
		}
	}
	return out
}

// Export returns the export with the given name.
func (in *Inspection) Export(name string) (types.ExternalType, bool) {
	for _, e := range in.Externals {
		if !e.Import && e.Name == name {
			return e.Type, true
		}
	}
	return nil, false
}

// Inspector compiles modules with wazero and classifies their externals.
// It is safe for concurrent use. Close waits for running inspections.
type Inspector struct {
	runtime wazero.Runtime
	mu      sync.RWMutex
	closed  bool
}

// NewInspector creates an inspector backed by its own wazero runtime.
func NewInspector(ctx context.Context, cfg *Config) *Inspector {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil {
		if cfg.CoreFeatures != 0 {
			runtimeCfg = runtimeCfg.WithCoreFeatures(cfg.CoreFeatures)
		}
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
	}
	return &Inspector{runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg)}
}

// Close releases the underlying runtime.
func (i *Inspector) Close(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.closed = true
	return i.runtime.Close(ctx)
}

// Inspect compiles wasmBytes and classifies its function and memory imports
// and exports. Imports come first: function imports, then memory imports,
// each in declaration order. wazero lists imports per kind, so the
// interleaving between kinds is not preserved. Exports follow sorted by name.
func (i *Inspector) Inspect(ctx context.Context, wasmBytes []byte) (*Inspection, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.closed {
		return nil, errors.NotInitialized(errors.PhaseLoad, "inspector runtime")
	}

	compiled, err := i.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.Load("compile module", err)
	}
	defer compiled.Close(ctx)

	in := &Inspection{Name: compiled.Name()}

	for _, def := range compiled.ImportedFunctions() {
		ft, err := FunctionTypeOf(def)
		if err != nil {
			return nil, err
		}
		module, name, _ := def.Import()
		in.Externals = append(in.Externals, NamedExternal{Type: types.ExternalFunc(ft), Module: module, Name: name, Import: true})
	}
	for _, def := range compiled.ImportedMemories() {
		mt, err := MemoryTypeOf(def)
		if err != nil {
			return nil, err
		}
		module, name, _ := def.Import()
		in.Externals = append(in.Externals, NamedExternal{Type: types.ExternalMemory(mt), Module: module, Name: name, Import: true})
	}

	var exports []NamedExternal
	for name, def := range compiled.ExportedFunctions() {
		ft, err := FunctionTypeOf(def)
		if err != nil {
			return nil, err
		}
		exports = append(exports, NamedExternal{Type: types.ExternalFunc(ft), Name: name})
	}
	for name, def := range compiled.ExportedMemories() {
		mt, err := MemoryTypeOf(def)
		if err != nil {
			return nil, err
		}
		exports = append(exports, NamedExternal{Type: types.ExternalMemory(mt), Name: name})
	}
	sort.Slice(exports, func(a, b int) bool { return exports[a].Name < exports[b].Name })
	in.Externals = append(in.Externals, exports...)

	Logger().Debug("inspected module",
		zap.String("name", in.Name),
		zap.Int("imports", len(in.Externals)-len(exports)),
		zap.Int("exports", len(exports)))

	return in, nil
}
