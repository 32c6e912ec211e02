package tagscript

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StringsLibrary returns text manipulation handlers:
//
//	{upper:text} {lower:text} {title:text} {length:text} {trim:text}
//	{replace:find|with|text} {substring:start|end|text}
//	{oneline:text} {urlencode:text}
func StringsLibrary() Library {
	return NewLibrary(LibraryNameStrings,
		textHandler(HandlerUpper, strings.ToUpper),
		textHandler(HandlerLower, strings.ToLower),
		textHandler(HandlerTitle, func(s string) string {
			return cases.Title(language.Und).String(s)
		}),
		textHandler(HandlerLength, func(s string) string {
			return strconv.Itoa(utf8.RuneCountInString(s))
		}),
		textHandler(HandlerTrim, strings.TrimSpace),
		textHandler(HandlerOneline, func(s string) string {
			return strings.Join(strings.Fields(s), " ")
		}),
		textHandler(HandlerURLEncode, url.QueryEscape),
		NewSplitHandler(HandlerReplace, nil, replaceArgs),
		NewSplitHandler(HandlerSubstring, nil, substringArgs),
	)
}

// textHandler wraps a plain string transform as a parameterized handler.
func textHandler(name string, fn func(string) string) *HandlerFunc {
	return NewHandler(name, nil, func(_ *Environment, params string) (string, error) {
		return fn(params), nil
	})
}

func replaceArgs(_ *Environment, args []string) (string, error) {
	if len(args) < 3 {
		return "", Failf("%s: %s", HandlerReplace, ErrMsgMissingArgs)
	}
	text := strings.Join(args[2:], ArgSeparator)
	if args[0] == "" {
		return text, nil
	}
	return strings.ReplaceAll(text, args[0], args[1]), nil
}

func substringArgs(_ *Environment, args []string) (string, error) {
	if len(args) < 3 {
		return "", Failf("%s: %s", HandlerSubstring, ErrMsgMissingArgs)
	}
	start, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return "", Failf("%s: %s", HandlerSubstring, ErrMsgInvalidIndex).WithCause(err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return "", Failf("%s: %s", HandlerSubstring, ErrMsgInvalidIndex).WithCause(err)
	}

	runes := []rune(strings.Join(args[2:], ArgSeparator))
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	return string(runes[start:end]), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
