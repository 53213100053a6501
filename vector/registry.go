package vector

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory returns a fresh backend for one document.
type BackendFactory func() Backend

// formats maps an output format name to its backend factory.
var formats = struct {
	sync.RWMutex
	m map[string]BackendFactory
}{m: make(map[string]BackendFactory)}

// Register makes an output format available under name. It is meant to be
// called from init; registering a nil factory or the same name twice panics.
//
// Formats are looked up by name, and SaveFile derives the name from the file
// extension, so the backend registered as "svgz" serves "sigil.svgz".
// Built in:
//
//	"commands" - Recorder, one text line per call (this package)
//	"svg"      - SVG document (vector/svg)
//	"svgz"     - gzip-compressed SVG (vector/svg)
//	"png"      - raster preview (vector/raster)
//
// The svg and png formats exist once their package is imported, usually for
// side effects:
//
//	import _ "github.com/gogpu/sigil/vector/svg"
func Register(name string, factory BackendFactory) {
	if factory == nil {
		panic("vector: nil factory for format " + name)
	}
	formats.Lock()
	defer formats.Unlock()
	if _, dup := formats.m[name]; dup {
		panic("vector: format " + name + " registered twice")
	}
	formats.m[name] = factory
}

// Unregister removes a format. Tests use it to clean up.
func Unregister(name string) {
	formats.Lock()
	delete(formats.m, name)
	formats.Unlock()
}

// NewBackend returns a new backend for the named format.
func NewBackend(name string) (Backend, error) {
	formats.RLock()
	factory, ok := formats.m[name]
	formats.RUnlock()
	if !ok {
		return nil, fmt.Errorf("vector: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Backends lists the registered format names in sorted order.
func Backends() []string {
	formats.RLock()
	defer formats.RUnlock()
	return slices.Sorted(maps.Keys(formats.m))
}

// IsRegistered reports whether a format is available.
func IsRegistered(name string) bool {
	formats.RLock()
	defer formats.RUnlock()
	_, ok := formats.m[name]
	return ok
}
