package internal

import (
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// ErrPassthrough is returned by a handler form that does not apply; the
// marker is then kept as literal text, exactly like an unknown name.
var ErrPassthrough = errors.New("handler form not supported")

// FailureMessager is implemented by handler errors that carry the text a
// failed parse returns in place of its output.
type FailureMessager interface {
	error
	FailureMessage() string
}

// State is the terminal state of one expansion.
type State int

// Expansion terminal states
const (
	StateDone State = iota
	StateAborted
	StateTruncated
)

// State names for logging
const (
	StateNameDone      = "DONE"
	StateNameAborted   = "ABORTED"
	StateNameTruncated = "TRUNCATED"
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateAborted:
		return StateNameAborted
	case StateTruncated:
		return StateNameTruncated
	default:
		return StateNameDone
	}
}

// ExpanderConfig holds the resource limits of an expander.
type ExpanderConfig struct {
	Iterations int // Maximum rewrite cycles
	MaxLength  int // Maximum intermediate length in runes
	MaxOutput  int // Maximum final output length in runes
}

// DefaultExpanderConfig returns the default limits.
func DefaultExpanderConfig() ExpanderConfig {
	return ExpanderConfig{
		Iterations: DefaultIterations,
		MaxLength:  DefaultMaxLength,
		MaxOutput:  DefaultMaxOutput,
	}
}

// Outcome describes the result of one expansion.
type Outcome struct {
	Output     string
	State      State
	Iterations int
	Truncated  bool  // Output was cut to MaxOutput
	Failure    error // Handler error when State is StateAborted
}

// Expander runs the innermost-first rewrite loop.
type Expander struct {
	registry *Registry
	config   ExpanderConfig
	logger   *zap.Logger
}

// NewExpander creates an expander over an immutable registry.
func NewExpander(registry *Registry, config ExpanderConfig, logger *zap.Logger) *Expander {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Expander{
		registry: registry,
		config:   config,
		logger:   logger,
	}
}

// Config returns the expander limits.
func (x *Expander) Config() ExpanderConfig {
	return x.config
}

// Expand rewrites input until a fixed point or a limit is reached.
// execEnv is handed to handlers untouched.
func (x *Expander) Expand(input string, execEnv interface{}) Outcome {
	x.logger.Debug(LogMsgExpandStart, zap.Int(LogFieldInputLength, len(input)))

	output := FilterEscapes(input)
	last := StringValueEmpty
	count := 0

	for last != output && count < x.config.Iterations && utf8.RuneCountInString(output) <= x.config.MaxLength {
		last = output
		i1 := strings.IndexByte(output, CharCloseMarker)
		i2 := -1
		if i1 != -1 {
			i2 = strings.LastIndexByte(output[:i1], CharOpenMarker)
		}
		if i1 != -1 && i2 != -1 {
			contents := output[i2+1 : i1]
			result, err := x.dispatch(contents, execEnv)
			if err != nil {
				return x.abort(err, count+1)
			}
			output = output[:i2] + Fold(result) + output[i1+1:]
		}
		count++
	}

	state := StateDone
	if last != output {
		state = StateTruncated
	}

	output, truncated := truncateRunes(Unfold(output), x.config.MaxOutput)
	if truncated {
		x.logger.Debug(LogMsgOutputTruncated, zap.Int(LogFieldLimit, x.config.MaxOutput))
	}

	x.logger.Debug(LogMsgExpandEnd,
		zap.Int(LogFieldIterations, count),
		zap.String(LogFieldState, state.String()),
		zap.Int(LogFieldOutput, len(output)))

	return Outcome{
		Output:     output,
		State:      state,
		Iterations: count,
		Truncated:  truncated,
	}
}

// dispatch invokes the handler named by contents. Unknown names and
// passthrough forms yield the marker itself.
func (x *Expander) dispatch(contents string, execEnv interface{}) (string, error) {
	var (
		result string
		err    error
	)

	split := strings.IndexByte(contents, CharParamSep)
	if split == -1 {
		h, ok := x.registry.Get(strings.TrimSpace(contents))
		if !ok {
			return literal(contents), nil
		}
		result, err = h.Simple(execEnv)
	} else {
		h, ok := x.registry.Get(strings.TrimSpace(contents[:split]))
		if !ok {
			return literal(contents), nil
		}
		result, err = h.Complex(execEnv, Unfold(contents[split+1:]))
	}

	if errors.Is(err, ErrPassthrough) {
		return literal(contents), nil
	}
	return result, err
}

func (x *Expander) abort(err error, count int) Outcome {
	msg := err.Error()
	var fm FailureMessager
	if errors.As(err, &fm) {
		msg = fm.FailureMessage()
	}

	x.logger.Debug(LogMsgHandlerFailed,
		zap.Int(LogFieldIterations, count),
		zap.Error(err))

	return Outcome{
		Output:     msg,
		State:      StateAborted,
		Iterations: count,
		Failure:    err,
	}
}

func literal(contents string) string {
	return StrOpenMarker + contents + StrCloseMarker
}

// truncateRunes cuts s to at most limit runes.
func truncateRunes(s string, limit int) (string, bool) {
	if utf8.RuneCountInString(s) <= limit {
		return s, false
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i], true
		}
		n++
	}
	return s, false
}
