package tagscript

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
)

// MathLibrary returns the expression handler:
//
//	{math:1 + 2 * x}
//
// Variables set with {set:...} are visible by name. Numeric strings are
// converted to numbers before evaluation.
func MathLibrary() Library {
	return NewLibrary(LibraryNameMath,
		NewHandler(HandlerMath, nil, evalMath),
	)
}

func evalMath(env *Environment, params string) (string, error) {
	result, err := expr.Eval(params, mathEnv(env))
	if err != nil {
		return "", Fail(ErrMsgMathFailed).WithCause(err)
	}
	return formatNumber(result), nil
}

func mathEnv(env *Environment) map[string]any {
	vars := Variables(env)
	for name, v := range vars {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			vars[name] = int(i)
		} else if f, err := strconv.ParseFloat(s, 64); err == nil {
			vars[name] = f
		}
	}
	return vars
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
