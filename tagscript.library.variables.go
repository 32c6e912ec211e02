package tagscript

import (
	"strconv"
	"strings"
)

// VariablesLibrary returns handlers that keep user variables in the
// environment under VariablePrefix:
//
//	{set:name|value} {get:name} {vars}
func VariablesLibrary() Library {
	return NewLibrary(LibraryNameVariables,
		NewSplitHandler(HandlerSet, nil, setArgs),
		NewHandler(HandlerGet, nil, func(env *Environment, params string) (string, error) {
			return env.GetString(VariablePrefix+strings.TrimSpace(params), ""), nil
		}),
		NewHandler(HandlerVars, func(env *Environment) (string, error) {
			return strconv.Itoa(len(Variables(env))), nil
		}, nil),
	)
}

func setArgs(env *Environment, args []string) (string, error) {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return "", Failf("%s: %s", HandlerSet, ErrMsgInvalidVarName)
	}
	value := ""
	if len(args) > 1 {
		value = strings.Join(args[1:], ArgSeparator)
	}
	env.Put(VariablePrefix+name, value)
	return "", nil
}

// Variables returns the user variables in env, keyed without VariablePrefix.
func Variables(env *Environment) map[string]any {
	vars := make(map[string]any)
	for _, key := range env.Keys() {
		if name, ok := strings.CutPrefix(key, VariablePrefix); ok {
			vars[name], _ = env.Get(key)
		}
	}
	return vars
}
