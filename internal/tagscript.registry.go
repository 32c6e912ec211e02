package internal

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// InternalHandler mirrors the public Handler interface for internal use.
// This allows the internal package to dispatch without import cycles.
type InternalHandler interface {
	Name() string
	Simple(execEnv interface{}) (string, error)
	Complex(execEnv interface{}, params string) (string, error)
}

// Registry is the name-keyed handler table. It is built once and never
// mutated afterwards, so lookups need no locking.
type Registry struct {
	handlers map[string]InternalHandler
	logger   *zap.Logger
}

// NewRegistry builds a registry from the given handlers.
// Duplicate names keep the last handler supplied.
func NewRegistry(handlers []InternalHandler, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	table := make(map[string]InternalHandler, len(handlers))
	for _, h := range handlers {
		if h == nil {
			return nil, NewRegistryError(ErrMsgNilHandler, StringValueEmpty)
		}
		name := h.Name()
		if name == StringValueEmpty {
			return nil, NewRegistryError(ErrMsgEmptyHandlerName, StringValueEmpty)
		}
		if _, exists := table[name]; exists {
			logger.Warn(LogMsgHandlerCollision, zap.String(LogFieldHandler, name))
		}
		table[name] = h
		logger.Debug(LogMsgHandlerRegistered, zap.String(LogFieldHandler, name))
	}

	logger.Debug(LogMsgRegistryCreated, zap.Int(LogFieldCount, len(table)))
	return &Registry{
		handlers: table,
		logger:   logger,
	}, nil
}

// Get retrieves a handler by exact name.
func (r *Registry) Get(name string) (InternalHandler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Has checks if a handler is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// List returns all registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	return len(r.handlers)
}

// RegistryError represents a registry construction error
type RegistryError struct {
	Message string
	Name    string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, name string) *RegistryError {
	return &RegistryError{
		Message: message,
		Name:    name,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.Name != StringValueEmpty {
		return fmt.Sprintf(ErrFmtTagMessage, e.Message, e.Name)
	}
	return e.Message
}

// Registry error message constants
const (
	ErrMsgNilHandler       = "handler cannot be nil"
	ErrMsgEmptyHandlerName = "handler name cannot be empty"
)
