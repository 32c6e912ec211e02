package tagscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_PutGet(t *testing.T) {
	env := NewEnvironment(nil)

	env.Put("a", 1).Put("b", "two")
	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, env.Has("b"))
	assert.False(t, env.Has("c"))
	assert.Equal(t, 2, env.Len())

	env.Put("a", 3)
	v, _ = env.Get("a")
	assert.Equal(t, 3, v)
}

func TestEnvironment_NewCopiesInput(t *testing.T) {
	data := map[string]any{"k": "v"}
	env := NewEnvironment(data)

	data["k"] = "changed"
	assert.Equal(t, "v", env.GetString("k", ""))
}

func TestEnvironment_GetString(t *testing.T) {
	env := NewEnvironment(map[string]any{
		"s":   "text",
		"n":   42,
		"nil": nil,
	})

	assert.Equal(t, "text", env.GetString("s", "d"))
	assert.Equal(t, "42", env.GetString("n", "d"))
	assert.Equal(t, "d", env.GetString("nil", "d"))
	assert.Equal(t, "d", env.GetString("missing", "d"))
}

func TestEnvironment_GetInt(t *testing.T) {
	env := NewEnvironment(map[string]any{
		"int":     7,
		"int64":   int64(8),
		"float":   9.9,
		"str":     "10",
		"badstr":  "ten",
		"boolean": true,
	})

	assert.Equal(t, 7, env.GetInt("int", -1))
	assert.Equal(t, 8, env.GetInt("int64", -1))
	assert.Equal(t, 9, env.GetInt("float", -1))
	assert.Equal(t, 10, env.GetInt("str", -1))
	assert.Equal(t, -1, env.GetInt("badstr", -1))
	assert.Equal(t, -1, env.GetInt("boolean", -1))
	assert.Equal(t, -1, env.GetInt("missing", -1))
}

func TestEnvironment_DeleteClear(t *testing.T) {
	env := NewEnvironment(map[string]any{"a": 1, "b": 2})

	env.Delete("a")
	assert.False(t, env.Has("a"))
	assert.Equal(t, 1, env.Len())

	env.Clear()
	assert.Equal(t, 0, env.Len())
	assert.Empty(t, env.Keys())
}

func TestEnvironment_CopyIsIndependentAndShallow(t *testing.T) {
	shared := &[]string{"x"}
	env := NewEnvironment(map[string]any{"a": 1, "ptr": shared})

	cp := env.Copy()
	cp.Put("a", 2).Put("new", true)
	env.Delete("ptr")

	assert.Equal(t, 1, env.GetInt("a", 0))
	assert.False(t, env.Has("new"))
	assert.True(t, cp.Has("ptr"))

	v, _ := cp.Get("ptr")
	assert.Same(t, shared, v)
}

func TestEnvironment_KeysSorted(t *testing.T) {
	env := NewEnvironment(map[string]any{"c": 1, "a": 2, "b": 3})
	assert.Equal(t, []string{"a", "b", "c"}, env.Keys())
}

func TestEnvironment_DataReturnsCopy(t *testing.T) {
	env := NewEnvironment(map[string]any{"a": 1})

	data := env.Data()
	data["b"] = 2
	assert.False(t, env.Has("b"))
}
