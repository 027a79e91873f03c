package module

import (
	"reflect"
	"slices"
	"sync"
)

// process wide registry of port bundles keyed by module name, filled during api.Mount
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port bundle for a module name, replacing any earlier one
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs finds a T in the bundle registered under name: the bundle itself or
// one of its exported fields. Modules call it at request time, so a module may
// ask for ports of one registered after it
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok || v == nil {
		var zero T
		return zero, false
	}
	return find[T](v)
}

func find[T any](bundle any) (t T, ok bool) {
	if v, ok := bundle.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(bundle)
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := range rv.NumField() {
		f := rv.Field(i)
		if !f.CanInterface() || (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && f.IsNil() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return t, false
}

// Names lists registered module names, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
