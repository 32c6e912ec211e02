package tagscript

import "github.com/itsatony/go-tagscript/internal"

// Default resource limits
const (
	DefaultIterations = internal.DefaultIterations
	DefaultMaxLength  = internal.DefaultMaxLength
	DefaultMaxOutput  = internal.DefaultMaxOutput
)

// ArgSeparator separates arguments inside complex parameters
const ArgSeparator = "|"

// WorkerName names the per-engine async worker in logs
const WorkerName = "tagscript-async"

// Library names
const (
	LibraryNameStrings    = "strings"
	LibraryNameFunctional = "functional"
	LibraryNameVariables  = "variables"
	LibraryNameMath       = "math"
)

// Handler names of the bundled libraries
const (
	HandlerUpper     = "upper"
	HandlerLower     = "lower"
	HandlerTitle     = "title"
	HandlerLength    = "length"
	HandlerTrim      = "trim"
	HandlerReplace   = "replace"
	HandlerSubstring = "substring"
	HandlerOneline   = "oneline"
	HandlerURLEncode = "urlencode"
	HandlerChoose    = "choose"
	HandlerRange     = "range"
	HandlerIf        = "if"
	HandlerNote      = "note"
	HandlerUUID      = "uuid"
	HandlerSet       = "set"
	HandlerGet       = "get"
	HandlerVars      = "vars"
	HandlerMath      = "math"
)

// VariablePrefix namespaces user variables inside an Environment
const VariablePrefix = "var."

// Comparison operators understood by the if handler
const (
	OpEqual        = "="
	OpNotEqual     = "!="
	OpLess         = "<"
	OpLessEqual    = "<="
	OpGreater      = ">"
	OpGreaterEqual = ">="
	OpContains     = "?"
)

// Log message constants
const (
	LogMsgEngineCreated = "engine created"
	LogMsgEngineClosed  = "engine closed"
	LogMsgAsyncQueued   = "async parse queued"
)

// Log field names
const (
	LogFieldHandlers    = "handlers"
	LogFieldIterations  = "iterations"
	LogFieldMaxLength   = "max_length"
	LogFieldMaxOutput   = "max_output"
	LogFieldInputLength = "input_length"
)
