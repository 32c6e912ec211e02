package tagscript

import (
	"fmt"
	"sort"
	"strconv"
)

// Environment is the key/value store handlers read and write during a parse.
// It is not synchronized: the engine guards its own shared instance, and
// copies handed to async parses are owned by a single worker.
type Environment struct {
	data map[string]any
}

// NewEnvironment creates an environment holding a copy of data.
// If data is nil, the environment starts empty.
func NewEnvironment(data map[string]any) *Environment {
	env := &Environment{data: make(map[string]any, len(data))}
	for k, v := range data {
		env.data[k] = v
	}
	return env
}

// Put inserts or replaces the value stored under key.
func (e *Environment) Put(key string, value any) *Environment {
	e.data[key] = value
	return e
}

// Get retrieves the value stored under key.
func (e *Environment) Get(key string) (any, bool) {
	v, ok := e.data[key]
	return v, ok
}

// GetString retrieves a value formatted as a string.
// Returns defaultVal if the key is missing.
func (e *Environment) GetString(key, defaultVal string) string {
	v, ok := e.data[key]
	if !ok || v == nil {
		return defaultVal
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

// GetInt retrieves an integer value, converting from other numeric kinds and
// numeric strings. Returns defaultVal if missing or not convertible.
func (e *Environment) GetInt(key string, defaultVal int) int {
	v, ok := e.data[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return defaultVal
}

// Has reports whether key is present.
func (e *Environment) Has(key string) bool {
	_, ok := e.data[key]
	return ok
}

// Delete removes key.
func (e *Environment) Delete(key string) *Environment {
	delete(e.data, key)
	return e
}

// Clear removes every entry.
func (e *Environment) Clear() *Environment {
	clear(e.data)
	return e
}

// Copy returns an independent environment with the same entries.
// Values are shared, not deep-copied.
func (e *Environment) Copy() *Environment {
	return NewEnvironment(e.data)
}

// Len returns the number of entries.
func (e *Environment) Len() int {
	return len(e.data)
}

// Keys returns all keys in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.data))
	for k := range e.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Data returns a copy of the entries as a map.
func (e *Environment) Data() map[string]any {
	result := make(map[string]any, len(e.data))
	for k, v := range e.data {
		result[k] = v
	}
	return result
}
