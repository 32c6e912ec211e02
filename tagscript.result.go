package tagscript

import "github.com/itsatony/go-tagscript/internal"

// ParseState is the terminal state of a parse.
type ParseState int

// Parse terminal states
const (
	// StateDone means no markers were left to rewrite.
	StateDone = ParseState(internal.StateDone)
	// StateAborted means a handler failed and its message became the output.
	StateAborted = ParseState(internal.StateAborted)
	// StateTruncated means the iteration or intermediate length limit stopped the loop.
	StateTruncated = ParseState(internal.StateTruncated)
)

// String returns the string representation of the state
func (s ParseState) String() string {
	return internal.State(s).String()
}

// ParseResult pairs the output of a parse with the environment it ran against.
// For async parses the environment is the private copy taken at submission,
// including whatever the handlers wrote to it.
type ParseResult struct {
	Output      string
	Environment *Environment
	State       ParseState
	Iterations  int
	Truncated   bool  // Output was cut to the max output limit
	Failure     error // Handler error when State is StateAborted
}

// Parsed returns the parse output.
func (r *ParseResult) Parsed() string {
	return r.Output
}

// Env returns the environment consumed by the parse.
func (r *ParseResult) Env() *Environment {
	return r.Environment
}

func newParseResult(outcome internal.Outcome, env *Environment) *ParseResult {
	return &ParseResult{
		Output:      outcome.Output,
		Environment: env,
		State:       ParseState(outcome.State),
		Iterations:  outcome.Iterations,
		Truncated:   outcome.Truncated,
		Failure:     outcome.Failure,
	}
}
