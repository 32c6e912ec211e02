package tagscript

import (
	"strings"

	"github.com/itsatony/go-tagscript/internal"
)

// ErrPassthrough is returned by a handler form that does not apply. The marker
// is then left in the output as literal text, the same as an unknown name.
var ErrPassthrough = internal.ErrPassthrough

// Handler is the interface that named markers dispatch to.
//
// {name} invokes Simple; {name:params} invokes Complex with everything after
// the first colon. Returning a non-nil error aborts the whole parse and the
// error's message becomes the output (see HandlerError).
type Handler interface {
	// Name returns the marker name this handler answers to.
	Name() string

	// Simple handles the parameterless form.
	Simple(env *Environment) (string, error)

	// Complex handles the parameterized form. params has user escapes
	// restored to their backslash form.
	Complex(env *Environment, params string) (string, error)
}

// SimpleFunc implements the parameterless form of a handler.
type SimpleFunc func(env *Environment) (string, error)

// ComplexFunc implements the parameterized form of a handler.
type ComplexFunc func(env *Environment, params string) (string, error)

// ArgsFunc implements the parameterized form over split arguments.
type ArgsFunc func(env *Environment, args []string) (string, error)

// HandlerFunc is a function-backed Handler. A nil form passes through.
type HandlerFunc struct {
	name    string
	simple  SimpleFunc
	complex ComplexFunc
}

// NewHandler creates a function-based handler.
// Either form may be nil, in which case that form yields ErrPassthrough.
func NewHandler(name string, simple SimpleFunc, complex ComplexFunc) *HandlerFunc {
	return &HandlerFunc{
		name:    name,
		simple:  simple,
		complex: complex,
	}
}

// NewSplitHandler creates a handler whose parameterized form receives the
// parameters split on unescaped '|' (see SplitParams).
func NewSplitHandler(name string, simple SimpleFunc, fn ArgsFunc) *HandlerFunc {
	var complex ComplexFunc
	if fn != nil {
		complex = func(env *Environment, params string) (string, error) {
			return fn(env, SplitParams(params))
		}
	}
	return NewHandler(name, simple, complex)
}

// NewConstantHandler creates a handler that expands to fixed text in both forms.
func NewConstantHandler(name, text string) *HandlerFunc {
	return NewHandler(name,
		func(*Environment) (string, error) { return text, nil },
		func(*Environment, string) (string, error) { return text, nil },
	)
}

// Name returns the handler's name.
func (h *HandlerFunc) Name() string {
	return h.name
}

// Simple runs the parameterless form.
func (h *HandlerFunc) Simple(env *Environment) (string, error) {
	if h.simple == nil {
		return "", ErrPassthrough
	}
	return h.simple(env)
}

// Complex runs the parameterized form.
func (h *HandlerFunc) Complex(env *Environment, params string) (string, error) {
	if h.complex == nil {
		return "", ErrPassthrough
	}
	return h.complex(env, params)
}

// SplitParams splits params on '|' characters that are not escaped as "\|".
// Escaped separators are unescaped in the returned parts.
func SplitParams(params string) []string {
	var (
		parts []string
		sb    strings.Builder
	)
	for i := 0; i < len(params); i++ {
		switch {
		case params[i] == '\\' && i+1 < len(params) && params[i+1] == '|':
			sb.WriteByte('|')
			i++
		case params[i] == '|':
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(params[i])
		}
	}
	return append(parts, sb.String())
}

// handlerAdapter adapts the public Handler interface to internal.InternalHandler
type handlerAdapter struct {
	handler Handler
}

func (a *handlerAdapter) Name() string {
	return a.handler.Name()
}

func (a *handlerAdapter) Simple(execEnv interface{}) (string, error) {
	return a.handler.Simple(execEnv.(*Environment))
}

func (a *handlerAdapter) Complex(execEnv interface{}, params string) (string, error) {
	return a.handler.Complex(execEnv.(*Environment), params)
}

// Compile-time check that HandlerFunc satisfies Handler.
var _ Handler = (*HandlerFunc)(nil)
