package internal

import "strings"

var (
	escapeFilter = strings.NewReplacer(
		EscapeOpen, SentinelEscapedOpen,
		EscapeArgSep, SentinelEscapedArgSep,
		EscapeClose, SentinelEscapedClose,
	)
	escapeDefilter = strings.NewReplacer(
		SentinelEscapedOpen, EscapeOpen,
		SentinelEscapedArgSep, EscapeArgSep,
		SentinelEscapedClose, EscapeClose,
	)
	braceFold = strings.NewReplacer(
		StrOpenMarker, SentinelFoldedOpen,
		StrCloseMarker, SentinelFoldedClose,
	)
	fullDefilter = strings.NewReplacer(
		SentinelEscapedOpen, EscapeOpen,
		SentinelEscapedArgSep, EscapeArgSep,
		SentinelEscapedClose, EscapeClose,
		SentinelFoldedOpen, StrOpenMarker,
		SentinelFoldedClose, StrCloseMarker,
	)
)

// FilterEscapes replaces the user escapes \{, \| and \} with sentinels so the
// scanner never sees them as structure.
func FilterEscapes(s string) string {
	return escapeFilter.Replace(s)
}

// DefilterEscapes restores escape sentinels to their backslash form.
func DefilterEscapes(s string) string {
	return escapeDefilter.Replace(s)
}

// Fold makes substituted text inert: escapes become sentinels first, then any
// remaining literal brace becomes a fold sentinel.
func Fold(s string) string {
	return braceFold.Replace(escapeFilter.Replace(s))
}

// Unfold reverses Fold and FilterEscapes in a single pass.
func Unfold(s string) string {
	return fullDefilter.Replace(s)
}

// ContainsSentinel reports whether s carries any codec sentinel.
func ContainsSentinel(s string) bool {
	return strings.ContainsAny(s, SentinelEscapedOpen+SentinelEscapedArgSep+SentinelEscapedClose+
		SentinelFoldedOpen+SentinelFoldedClose)
}
