package orchestration

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory maintains a thread-safe registry of backend creators and
// caches Backend instances for reuse. Backends register themselves at init
// time, which lets the GMP backend appear only when its build tag is
// active.
type BackendFactory struct {
	mu       sync.RWMutex
	creators map[string]func() Backend
	backends map[string]Backend
}

// NewBackendFactory creates an empty factory.
func NewBackendFactory() *BackendFactory {
	return &BackendFactory{
		creators: make(map[string]func() Backend),
		backends: make(map[string]Backend),
	}
}

// Register adds a backend type to the factory. The creator function is
// called lazily when the backend is first requested. Registering an
// existing name replaces the previous creator.
//
// Parameters:
//   - name: The unique identifier for the backend type.
//   - creator: A function that creates a new Backend instance.
func (f *BackendFactory) Register(name string, creator func() Backend) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Drop any cached instance so it is recreated with the new creator
	delete(f.backends, name)
	return nil
}

// Get returns a Backend instance by name. Instances are cached and reused
// for subsequent calls with the same name.
//
// Parameters:
//   - name: The name of the backend to retrieve.
//
// Returns:
//   - Backend: The Backend instance.
//   - error: An error if the backend type is not registered.
func (f *BackendFactory) Get(name string) (Backend, error) {
	f.mu.RLock()
	if b, exists := f.backends[name]; exists {
		f.mu.RUnlock()
		return b, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock
	if b, exists := f.backends[name]; exists {
		return b, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s", name)
	}

	b := creator()
	f.backends[name] = b
	return b, nil
}

// List returns a sorted list of all registered backend names.
//
// Returns:
//   - []string: A sorted slice of backend names.
func (f *BackendFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has checks if a backend with the given name is registered.
func (f *BackendFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewBackendFactory()

// GlobalFactory returns the global factory instance.
func GlobalFactory() *BackendFactory {
	return globalFactory
}

// RegisterBackend registers a backend in the global factory. Called from
// init functions of the backend implementations.
//
// Parameters:
//   - name: The unique identifier for the backend type.
//   - creator: A function that creates a new Backend instance.
func RegisterBackend(name string, creator func() Backend) error {
	return globalFactory.Register(name, creator)
}

// BackendsFor selects the backends that will evaluate an operation: the
// native engine first, then, in verify mode, every registered reference
// backend that supports the operation.
//
// Parameters:
//   - op: The operation name.
//   - verify: Whether cross-checking is requested.
//
// Returns:
//   - []Backend: The backends to run, native first.
func BackendsFor(op string, verify bool) []Backend {
	native, err := globalFactory.Get("native")
	if err != nil {
		return nil
	}
	backends := []Backend{native}
	if !verify {
		return backends
	}
	for _, name := range globalFactory.List() {
		if name == "native" {
			continue
		}
		b, err := globalFactory.Get(name)
		if err != nil || !b.Supports(op) {
			continue
		}
		backends = append(backends, b)
	}
	return backends
}
