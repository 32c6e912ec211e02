package tagscript

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	handlers   []Handler
	libraries  []Library
	constants  map[string]string
	iterations int
	maxLength  int
	maxOutput  int
	logger     *zap.Logger
	err        error
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		constants:  make(map[string]string),
		iterations: DefaultIterations,
		maxLength:  DefaultMaxLength,
		maxOutput:  DefaultMaxOutput,
		logger:     nil,
	}
}

// WithHandlers adds handlers to the engine. Handlers given here are registered
// after libraries and constants, so they win on name collisions.
func WithHandlers(handlers ...Handler) Option {
	return func(c *engineConfig) {
		c.handlers = append(c.handlers, handlers...)
	}
}

// WithLibrary adds every handler of the given libraries.
func WithLibrary(libs ...Library) Option {
	return func(c *engineConfig) {
		c.libraries = append(c.libraries, libs...)
	}
}

// WithDefaultLibraries adds all bundled libraries.
func WithDefaultLibraries() Option {
	return WithLibrary(DefaultLibraries()...)
}

// WithConstant registers a handler that expands name to fixed text.
func WithConstant(name, text string) Option {
	return func(c *engineConfig) {
		c.constants[name] = text
	}
}

// WithIterations sets the maximum number of rewrite cycles per parse.
// Default: 1000
func WithIterations(n int) Option {
	return func(c *engineConfig) {
		c.iterations = n
	}
}

// WithMaxLength sets the maximum intermediate string length in runes.
// Default: 64000
func WithMaxLength(n int) Option {
	return func(c *engineConfig) {
		c.maxLength = n
	}
}

// WithMaxOutput sets the maximum output length in runes. Longer output is
// cut silently.
// Default: 2000
func WithMaxOutput(n int) Option {
	return func(c *engineConfig) {
		c.maxOutput = n
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithConfig applies a loaded Config: limits, named libraries and constants.
func WithConfig(cfg *Config) Option {
	return func(c *engineConfig) {
		if cfg == nil {
			return
		}
		c.iterations = cfg.Iterations
		c.maxLength = cfg.MaxLength
		c.maxOutput = cfg.MaxOutput
		for _, name := range cfg.Libraries {
			lib, err := LibraryByName(name)
			if err != nil {
				if c.err == nil {
					c.err = err
				}
				continue
			}
			c.libraries = append(c.libraries, lib)
		}
		for name, text := range cfg.Constants {
			c.constants[name] = text
		}
	}
}

// validate checks the limits.
func (c *engineConfig) validate() error {
	if c.err != nil {
		return c.err
	}
	return validateLimits(c.iterations, c.maxLength, c.maxOutput)
}

func validateLimits(iterations, maxLength, maxOutput int) error {
	if iterations <= 0 {
		return NewInvalidLimitError(OptionIterations, iterations)
	}
	if maxLength <= 0 {
		return NewInvalidLimitError(OptionMaxLength, maxLength)
	}
	if maxOutput <= 0 {
		return NewInvalidLimitError(OptionMaxOutput, maxOutput)
	}
	return nil
}
