package currency

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Instance is the shared realization of one currency type: its resolved
// Metadata, created once per type and reused by every value of that type.
type Instance struct {
	Metadata
}

// instanceStore hands out exactly one Instance per currency type. Entries
// are created under the store lock; resolution runs under the entry's own
// lock, so concurrent first accesses wait for a single resolution instead
// of racing, and accesses of distinct types never block each other.
type instanceStore struct {
	mu      sync.RWMutex
	entries map[reflect.Type]*instanceEntry
}

type instanceEntry struct {
	mu   sync.Mutex
	inst *Instance
	err  error
}

func newInstanceStore() *instanceStore {
	return &instanceStore{entries: make(map[reflect.Type]*instanceEntry)}
}

func (s *instanceStore) entry(key reflect.Type) *instanceEntry {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.entries[key]; !ok {
		e = &instanceEntry{}
		s.entries[key] = e
	}
	return e
}

// resolveOnce returns the entry's instance, running fn at most once per
// key. A failed resolution is remembered and never retried.
func (s *instanceStore) resolveOnce(key reflect.Type, fn func() (Metadata, error)) (*Instance, error) {
	e := s.entry(key)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inst == nil && e.err == nil {
		if meta, err := fn(); err != nil {
			e.err = err
		} else {
			e.inst = &Instance{Metadata: meta}
		}
	}
	return e.inst, e.err
}

// snapshot lists the successfully resolved instances, ordered by code.
func (s *instanceStore) snapshot() []Metadata {
	s.mu.RLock()
	entries := make([]*instanceEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]Metadata, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if e.inst != nil {
			out = append(out, e.inst.Metadata)
		}
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code() < out[j].Code() })
	return out
}

// Process-wide store behind the predefined currency types.
var store = newInstanceStore()

// sharedFor resolves and caches the one shared instance for currency type
// T. A resolution failure is a configuration defect and panics.
func sharedFor[T Currency](resolve func() (Metadata, error)) *Instance {
	key := reflect.TypeFor[T]()
	inst, err := store.resolveOnce(key, resolve)
	if err != nil {
		panic(fmt.Sprintf("currency: initializing %v: %v", key, err))
	}
	return inst
}

// Resolved lists the metadata of every shared instance resolved so far,
// ordered by code.
func Resolved() []Metadata {
	return store.snapshot()
}
