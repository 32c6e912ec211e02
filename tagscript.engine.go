package tagscript

import (
	"reflect"
	"sort"
	"sync"

	"github.com/itsatony/go-tagscript/internal"
	"go.uber.org/zap"
)

// Limits are the resource bounds fixed at construction.
type Limits struct {
	Iterations int // Maximum rewrite cycles
	MaxLength  int // Maximum intermediate length in runes
	MaxOutput  int // Maximum output length in runes
}

// Engine expands tag markers against a fixed set of handlers.
//
// Put, Clear, Snapshot and Parse share one lock around the engine's own
// environment. ParseWith touches only the caller's environment. ParseAsync
// runs on a single worker owned by the engine, one parse at a time.
type Engine struct {
	registry *internal.Registry
	expander *internal.Expander
	worker   *internal.Worker
	env      *Environment
	mu       sync.Mutex // Protects env
	logger   *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	handlers, err := collectHandlers(config)
	if err != nil {
		return nil, err
	}

	registry, err := internal.NewRegistry(handlers, logger)
	if err != nil {
		return nil, NewRegistryError(err)
	}

	expander := internal.NewExpander(registry, internal.ExpanderConfig{
		Iterations: config.iterations,
		MaxLength:  config.maxLength,
		MaxOutput:  config.maxOutput,
	}, logger)

	logger.Debug(LogMsgEngineCreated,
		zap.Int(LogFieldHandlers, registry.Count()),
		zap.Int(LogFieldIterations, config.iterations),
		zap.Int(LogFieldMaxLength, config.maxLength),
		zap.Int(LogFieldMaxOutput, config.maxOutput))

	return &Engine{
		registry: registry,
		expander: expander,
		worker:   internal.NewWorker(WorkerName, logger),
		env:      NewEnvironment(nil),
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// isNilHandler reports a nil interface or an interface holding a nil pointer.
func isNilHandler(h Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// collectHandlers orders handlers as libraries, constants, then explicit
// handlers, so later sources override earlier ones.
func collectHandlers(config *engineConfig) ([]internal.InternalHandler, error) {
	var all []Handler
	for _, lib := range config.libraries {
		all = append(all, lib.Handlers()...)
	}

	names := make([]string, 0, len(config.constants))
	for name := range config.constants {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		all = append(all, NewConstantHandler(name, config.constants[name]))
	}

	all = append(all, config.handlers...)

	adapted := make([]internal.InternalHandler, 0, len(all))
	for i, h := range all {
		if isNilHandler(h) {
			return nil, NewNilHandlerError(i)
		}
		adapted = append(adapted, &handlerAdapter{handler: h})
	}
	return adapted, nil
}

// Put stores a value in the engine's shared environment.
func (e *Engine) Put(key string, value any) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.env.Put(key, value)
	return e
}

// Clear removes every value from the engine's shared environment.
func (e *Engine) Clear() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.env.Clear()
	return e
}

// Snapshot returns a copy of the shared environment taken under the lock.
func (e *Engine) Snapshot() *Environment {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.env.Copy()
}

// Parse expands input against the engine's shared environment.
// Handler failures are returned as the output string, never as an error.
func (e *Engine) Parse(input string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.expander.Expand(input, e.env).Output
}

// ParseWith expands input against a caller-owned environment. The engine does
// not lock env; synchronizing it is the caller's job.
func (e *Engine) ParseWith(input string, env *Environment) string {
	return e.ParseDetailed(input, env).Output
}

// ParseDetailed expands input against env and reports how the parse ended.
// A nil env runs against a fresh, empty environment.
func (e *Engine) ParseDetailed(input string, env *Environment) *ParseResult {
	if env == nil {
		env = NewEnvironment(nil)
	}
	return newParseResult(e.expander.Expand(input, env), env)
}

// ParseAsync snapshots the shared environment and queues the parse on the
// engine's worker. Parses run one at a time in submission order; callback is
// invoked on the worker goroutine with the output and the snapshot as the
// handlers left it. If a handler panics the callback is not invoked.
func (e *Engine) ParseAsync(input string, callback func(*ParseResult)) error {
	if callback == nil {
		return NewNilCallbackError()
	}

	e.mu.Lock()
	env := e.env.Copy()
	ok := e.worker.Submit(func() {
		callback(e.ParseDetailed(input, env))
	})
	e.mu.Unlock()

	if !ok {
		return NewEngineClosedError()
	}

	e.logger.Debug(LogMsgAsyncQueued, zap.Int(LogFieldInputLength, len(input)))
	return nil
}

// Close stops accepting async parses and waits for queued ones to finish.
// It must not be called from an async callback.
func (e *Engine) Close() error {
	e.worker.Close()
	e.logger.Debug(LogMsgEngineClosed)
	return nil
}

// Limits returns the resource limits the engine was built with.
func (e *Engine) Limits() Limits {
	cfg := e.expander.Config()
	return Limits{
		Iterations: cfg.Iterations,
		MaxLength:  cfg.MaxLength,
		MaxOutput:  cfg.MaxOutput,
	}
}

// HasHandler checks if a handler is registered under name.
func (e *Engine) HasHandler(name string) bool {
	return e.registry.Has(name)
}

// ListHandlers returns all registered handler names in sorted order.
func (e *Engine) ListHandlers() []string {
	return e.registry.List()
}

// HandlerCount returns the number of registered handlers.
func (e *Engine) HandlerCount() int {
	return e.registry.Count()
}
