// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"fmt"
	"sort"
	"sync"
)

type entry struct {
	id      byte
	factory Factory
}

// Registry of codec factories by name and by wire id.
type Registry struct {
	byName map[string]entry
	byID   map[byte]string
	mtx    *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]entry),
		byID:   make(map[byte]string),
		mtx:    &sync.Mutex{},
	}
}

// DefaultRegistry returns a registry holding every built-in back end.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("none", IDNone, NewNone)
	r.Register("zstd", IDZstd, NewZstd)
	r.Register("s2", IDS2, NewS2)

	return r
}

// Register adds or replaces the factory for name and id.
func (r *Registry) Register(name string, id byte, f Factory) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if old, ok := r.byName[name]; ok {
		delete(r.byID, old.id)
	}

	r.byName[name] = entry{id: id, factory: f}
	r.byID[id] = name
}

// Get builds the codec registered under name.
func (r *Registry) Get(name string, level int) (Codec, error) {
	r.mtx.Lock()
	e, ok := r.byName[name]
	r.mtx.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	return e.factory(level)
}

// ByID builds the codec registered under the wire id.
func (r *Registry) ByID(id byte, level int) (Codec, error) {
	r.mtx.Lock()
	name, ok := r.byID[id]
	r.mtx.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: id 0x%02x", ErrUnknownCodec, id)
	}

	return r.Get(name, level)
}

// Names lists the registered back ends in lexical order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func checkLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}

	return nil
}
