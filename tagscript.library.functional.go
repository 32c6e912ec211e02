package tagscript

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FunctionalLibrary returns control and randomness handlers:
//
//	{choose:a|b|c} {range:lo|hi} {if:left|op|right|then|else}
//	{note:ignored} {uuid}
func FunctionalLibrary() Library {
	return NewLibrary(LibraryNameFunctional,
		NewSplitHandler(HandlerChoose, nil, chooseArgs),
		NewSplitHandler(HandlerRange, nil, rangeArgs),
		NewSplitHandler(HandlerIf, nil, ifArgs),
		NewHandler(HandlerNote,
			func(*Environment) (string, error) { return "", nil },
			func(*Environment, string) (string, error) { return "", nil },
		),
		NewHandler(HandlerUUID, func(*Environment) (string, error) {
			return uuid.NewString(), nil
		}, nil),
	)
}

func chooseArgs(_ *Environment, args []string) (string, error) {
	return args[rand.IntN(len(args))], nil
}

func rangeArgs(_ *Environment, args []string) (string, error) {
	if len(args) < 2 {
		return "", Failf("%s: %s", HandlerRange, ErrMsgMissingArgs)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return "", Failf("%s: %s", HandlerRange, ErrMsgNotANumber).WithCause(err)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return "", Failf("%s: %s", HandlerRange, ErrMsgNotANumber).WithCause(err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	// Unsigned span keeps ranges wider than MaxInt from overflowing. Zero
	// means the bounds cover every int.
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return strconv.Itoa(lo + int(rand.Uint64())), nil
	}
	return strconv.Itoa(lo + int(rand.Uint64N(span))), nil
}

// ifArgs evaluates {if:left|op|right|then|else}. The else branch is optional.
func ifArgs(_ *Environment, args []string) (string, error) {
	if len(args) < 4 {
		return "", Failf("%s: %s", HandlerIf, ErrMsgMissingArgs)
	}
	ok, err := compare(args[0], strings.TrimSpace(args[1]), args[2])
	if err != nil {
		return "", err
	}
	if ok {
		return args[3], nil
	}
	if len(args) > 4 {
		return strings.Join(args[4:], ArgSeparator), nil
	}
	return "", nil
}

// compare applies op numerically when both sides parse as numbers, and as
// a string comparison otherwise. NaN does not count as a number.
func compare(left, op, right string) (bool, error) {
	l, lerr := strconv.ParseFloat(strings.TrimSpace(left), 64)
	r, rerr := strconv.ParseFloat(strings.TrimSpace(right), 64)
	numeric := lerr == nil && rerr == nil && !math.IsNaN(l) && !math.IsNaN(r)

	var c int
	if numeric {
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		}
	} else {
		c = strings.Compare(left, right)
	}

	switch op {
	case OpEqual:
		return c == 0, nil
	case OpNotEqual:
		return c != 0, nil
	case OpLess:
		return c < 0, nil
	case OpLessEqual:
		return c <= 0, nil
	case OpGreater:
		return c > 0, nil
	case OpGreaterEqual:
		return c >= 0, nil
	case OpContains:
		return strings.Contains(left, right), nil
	default:
		return false, Failf("%s: %s %q", HandlerIf, ErrMsgUnknownOp, op)
	}
}
