package tagscript

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// libraryScenarios are rendered against a fresh environment each and compared
// with testdata/golden/library_scenarios.golden.
var libraryScenarios = []string{
	`{upper:hello}`,
	`{lower:HeLLo}`,
	`{title:the quick fox}`,
	`{length:日本語}`,
	`{trim:   padded   }`,
	`{replace:cat|dog|the cat sat}`,
	`{substring:1|4|abcdef}`,
	`{oneline:a   b   c}`,
	`{urlencode:a b&c}`,
	`{if:3|<|10|yes|no}`,
	`{if:abc|=|abd|same|different}`,
	`{if:hello world|?|world|found}`,
	`{note:hidden}visible`,
	`{set:x|4}{math:x * 2 + 1}`,
	`{math:10 / 4}`,
	`{set:who|world}Hello, {upper:{get:who}}!`,
	`{set:a|1}{set:b|2}{vars}`,
	`\{upper:raw\}`,
	`{missing:thing}`,
	`{replace:x}`,
	`{math:1 +}`,
	`{if:1|~|2|a|b}`,
}

func newLibraryEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(WithDefaultLibraries())
	require.NoError(t, err)
	t.Cleanup(func() { engine.Close() })
	return engine
}

func TestLibrary_GoldenScenarios(t *testing.T) {
	engine := newLibraryEngine(t)

	var buf bytes.Buffer
	for _, in := range libraryScenarios {
		fmt.Fprintf(&buf, "%s => %s\n", in, engine.ParseWith(in, NewEnvironment(nil)))
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "library_scenarios", buf.Bytes())
}

func TestLibrary_Choose(t *testing.T) {
	engine := newLibraryEngine(t)

	for i := 0; i < 50; i++ {
		out := engine.ParseWith("{choose:a|b|c}", NewEnvironment(nil))
		assert.Contains(t, []string{"a", "b", "c"}, out)
	}
	assert.Equal(t, "only", engine.ParseWith("{choose:only}", NewEnvironment(nil)))
	assert.Equal(t, "{choose}", engine.ParseWith("{choose}", NewEnvironment(nil)))
}

func TestLibrary_Range(t *testing.T) {
	engine := newLibraryEngine(t)

	for i := 0; i < 50; i++ {
		n, err := strconv.Atoi(engine.ParseWith("{range:10|5}", NewEnvironment(nil)))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 10)
	}
	assert.Equal(t, "7", engine.ParseWith("{range:7|7}", NewEnvironment(nil)))
	assert.Equal(t, "range: not a number", engine.ParseWith("{range:a|b}", NewEnvironment(nil)))

	wide := []string{
		"{range:-9223372036854775808|9223372036854775807}",
		"{range:-9223372036854775808|1}",
		"{range:9223372036854775807|-2}",
	}
	for _, input := range wide {
		var out string
		require.NotPanics(t, func() { out = engine.ParseWith(input, NewEnvironment(nil)) }, input)
		_, err := strconv.Atoi(out)
		assert.NoError(t, err, input)
	}
}

func TestLibrary_IfNaNComparesAsText(t *testing.T) {
	engine := newLibraryEngine(t)

	assert.Equal(t, "ne", engine.ParseWith("{if:NaN|=|1|eq|ne}", NewEnvironment(nil)))
	assert.Equal(t, "eq", engine.ParseWith("{if:NaN|=|NaN|eq|ne}", NewEnvironment(nil)))
	assert.Equal(t, "ne", engine.ParseWith("{if:1|=|nan|eq|ne}", NewEnvironment(nil)))
	assert.Equal(t, "lt", engine.ParseWith("{if:-Inf|<|1|lt|ge}", NewEnvironment(nil)))
}

func TestLibrary_UUID(t *testing.T) {
	engine := newLibraryEngine(t)

	first := engine.ParseWith("{uuid}", NewEnvironment(nil))
	second := engine.ParseWith("{uuid}", NewEnvironment(nil))

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "{uuid:x}", engine.ParseWith("{uuid:x}", NewEnvironment(nil)))
}

func TestLibrary_Variables(t *testing.T) {
	engine := newLibraryEngine(t)
	env := NewEnvironment(nil)

	assert.Equal(t, "", engine.ParseWith("{set:greeting|hi|there}", env))
	assert.Equal(t, "hi|there", engine.ParseWith("{get:greeting}", env))
	assert.Equal(t, "", engine.ParseWith("{get:unset}", env))
	assert.Equal(t, "set: invalid variable name", engine.ParseWith("{set: |v}", env))

	env.Put("unrelated", 1)
	assert.Equal(t, map[string]any{"greeting": "hi|there"}, Variables(env))
}

func TestLibrary_MathUsesVariables(t *testing.T) {
	engine := newLibraryEngine(t)
	env := NewEnvironment(nil)

	engine.ParseWith("{set:a|1.5}{set:b|2}{set:name|bob}", env)
	assert.Equal(t, "3.5", engine.ParseWith("{math:a + b}", env))
	assert.Equal(t, "true", engine.ParseWith(`{math:name == "bob"}`, env))
}

func TestLibrary_SubstringClamps(t *testing.T) {
	engine := newLibraryEngine(t)

	assert.Equal(t, "abc", engine.ParseWith("{substring:-5|99|abc}", NewEnvironment(nil)))
	assert.Equal(t, "", engine.ParseWith("{substring:2|1|abc}", NewEnvironment(nil)))
	assert.Equal(t, "本", engine.ParseWith("{substring:1|2|日本語}", NewEnvironment(nil)))
	assert.Equal(t, "substring: invalid index", engine.ParseWith("{substring:x|1|abc}", NewEnvironment(nil)))
}

func TestLibraryByName(t *testing.T) {
	for _, lib := range DefaultLibraries() {
		found, err := LibraryByName(lib.Name())
		require.NoError(t, err)
		assert.Equal(t, lib.Name(), found.Name())
		assert.Len(t, found.Handlers(), len(lib.Handlers()))
	}

	_, err := LibraryByName("unknown")
	require.Error(t, err)
}

func TestLibrary_HandlersReturnsCopy(t *testing.T) {
	lib := NewLibrary("custom", NewConstantHandler("a", "A"))

	hs := lib.Handlers()
	hs[0] = nil
	assert.NotNil(t, lib.Handlers()[0])
}
