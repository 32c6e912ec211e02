package internal

// Marker syntax characters
const (
	CharOpenMarker  = '{'
	CharCloseMarker = '}'
	CharParamSep    = ':'
)

// String forms of the marker characters
const (
	StrOpenMarker  = "{"
	StrCloseMarker = "}"
)

// User escape sequences
const (
	EscapeOpen   = "\\{"
	EscapeArgSep = "\\|"
	EscapeClose  = "\\}"
)

// StringValueEmpty is the empty string.
const StringValueEmpty = ""

// Sentinel characters. They sit in the C0 control range, which never occurs
// in ordinary chat text.
const (
	SentinelEscapedOpen   = "\u0012"
	SentinelEscapedArgSep = "\u0013"
	SentinelEscapedClose  = "\u0014"
	SentinelFoldedOpen    = "\u0015"
	SentinelFoldedClose   = "\u0016"
)

// Default resource limits
const (
	DefaultIterations = 1000
	DefaultMaxLength  = 64000
	DefaultMaxOutput  = 2000
)

// Log message constants
const (
	LogMsgRegistryCreated   = "handler registry created"
	LogMsgHandlerRegistered = "handler registered"
	LogMsgHandlerCollision  = "duplicate handler name - last registration wins"
	LogMsgExpandStart       = "starting expansion"
	LogMsgExpandEnd         = "expansion complete"
	LogMsgHandlerFailed     = "handler failed - parse aborted"
	LogMsgOutputTruncated   = "output truncated to limit"
	LogMsgWorkerStarted     = "async worker started"
	LogMsgWorkerStopped     = "async worker stopped"
	LogMsgWorkerJobPanicked = "async job panicked - callback skipped"
	LogMsgWorkerRejected    = "async job rejected - worker closed"
)

// Log field names
const (
	LogFieldHandler     = "handler"
	LogFieldCount       = "count"
	LogFieldInputLength = "input_length"
	LogFieldOutput      = "output_length"
	LogFieldIterations  = "iterations"
	LogFieldState       = "state"
	LogFieldLimit       = "limit"
	LogFieldWorker      = "worker"
	LogFieldPanic       = "panic"
)

// Error format string constants
const (
	ErrFmtTagMessage = "%s: %s"
)
