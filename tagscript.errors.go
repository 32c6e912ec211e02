package tagscript

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-tagscript/internal"
)

// Error message constants
const (
	// Configuration errors
	ErrMsgInvalidLimit   = "limit must be positive"
	ErrMsgConfigRead     = "failed to read config file"
	ErrMsgConfigParse    = "failed to parse config"
	ErrMsgUnknownLibrary = "unknown handler library"

	// Registry errors
	ErrMsgNilHandler       = internal.ErrMsgNilHandler
	ErrMsgEmptyHandlerName = internal.ErrMsgEmptyHandlerName
	ErrMsgRegistryFailed   = "handler registry construction failed"

	// Engine errors
	ErrMsgEngineClosed = "engine is closed"
	ErrMsgNilCallback  = "callback cannot be nil"

	// Handler failures from the bundled libraries
	ErrMsgNotANumber     = "not a number"
	ErrMsgInvalidIndex   = "invalid index"
	ErrMsgUnknownOp      = "unknown comparison operator"
	ErrMsgMathFailed     = "math expression failed"
	ErrMsgMissingArgs    = "missing arguments"
	ErrMsgInvalidVarName = "invalid variable name"
)

// Error code constants for categorization
const (
	ErrCodeConfig   = "TAGSCRIPT_CONFIG"
	ErrCodeRegistry = "TAGSCRIPT_REGISTRY"
	ErrCodeEngine   = "TAGSCRIPT_ENGINE"
)

// Metadata keys attached to errors
const (
	MetaKeyOption  = "option"
	MetaKeyValue   = "value"
	MetaKeyHandler = "handler"
	MetaKeyLibrary = "library"
	MetaKeyPath    = "path"
)

// Option names used in error metadata
const (
	OptionIterations = "iterations"
	OptionMaxLength  = "max_length"
	OptionMaxOutput  = "max_output"
)

// HandlerError is a terminal handler failure. The engine aborts the parse and
// returns Message as the entire output.
type HandlerError struct {
	Message string
	Handler string
	Cause   error
}

// Fail creates a handler failure with the given output message.
func Fail(message string) *HandlerError {
	return &HandlerError{Message: message}
}

// Failf creates a handler failure with a formatted output message.
func Failf(format string, args ...any) *HandlerError {
	return &HandlerError{Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *HandlerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// FailureMessage returns the text the aborted parse produces.
func (e *HandlerError) FailureMessage() string {
	return e.Message
}

// Unwrap returns the underlying cause error.
func (e *HandlerError) Unwrap() error {
	return e.Cause
}

// WithCause attaches an underlying error without changing the output message.
func (e *HandlerError) WithCause(cause error) *HandlerError {
	e.Cause = cause
	return e
}

// NewInvalidLimitError creates an error for a non-positive resource limit
func NewInvalidLimitError(option string, value int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidLimit).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyValue, strconv.Itoa(value))
}

// NewConfigReadError wraps a failure to read a config file
func NewConfigReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigRead).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigParseError wraps a YAML decoding failure
func NewConfigParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigParse)
}

// NewUnknownLibraryError creates an error for an unrecognized library name
func NewUnknownLibraryError(name string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownLibrary).
		WithMetadata(MetaKeyLibrary, name)
}

// NewRegistryError wraps a registry construction failure
func NewRegistryError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, ErrMsgRegistryFailed)
}

// NewNilHandlerError creates an error for a nil handler at construction
func NewNilHandlerError(index int) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgNilHandler).
		WithMetadata(MetaKeyValue, strconv.Itoa(index))
}

// NewEngineClosedError creates an error for async work submitted after Close
func NewEngineClosedError() error {
	return cuserr.NewValidationError(ErrCodeEngine, ErrMsgEngineClosed)
}

// NewNilCallbackError creates an error for ParseAsync without a callback
func NewNilCallbackError() error {
	return cuserr.NewValidationError(ErrCodeEngine, ErrMsgNilCallback)
}
