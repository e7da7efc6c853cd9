// Package typeregistry resolves subject types by the qualified names stored
// on prompts. Go cannot look a type up by name at run time, so every type
// that may appear as a subject has to be registered first.
package typeregistry

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"typeprompt/internal/domain/entities"
)

// Ensure Registry implements the entities.TypeResolver port.
var _ entities.TypeResolver = (*Registry)(nil)

// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

func New() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Register adds types under their qualified names. Registering the same
// type twice is a no-op; registering a different type under a name already
// taken is an error.
func (r *Registry) Register(types ...reflect.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range types {
		name, err := entities.QualifiedTypeName(t)
		if err != nil {
			return fmt.Errorf("register type: %w", err)
		}
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if existing, ok := r.types[name]; ok && existing != t {
			return fmt.Errorf("register type: %s already registered", name)
		}
		r.types[name] = t
	}
	return nil
}

// RegisterValue registers the dynamic type of each value.
func (r *Registry) RegisterValue(values ...any) error {
	types := make([]reflect.Type, 0, len(values))
	for _, v := range values {
		types = append(types, reflect.TypeOf(v))
	}
	return r.Register(types...)
}

// ResolveType returns the type registered under name, or nil.
func (r *Registry) ResolveType(name string) reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[name]
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}
