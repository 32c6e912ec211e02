package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// mockHandler implements InternalHandler for testing
type mockHandler struct {
	name        string
	simpleFunc  func(execEnv interface{}) (string, error)
	complexFunc func(execEnv interface{}, params string) (string, error)
}

func newMockHandler(name string) *mockHandler {
	return &mockHandler{
		name: name,
		simpleFunc: func(execEnv interface{}) (string, error) {
			return "simple:" + name, nil
		},
		complexFunc: func(execEnv interface{}, params string) (string, error) {
			return "complex:" + name + ":" + params, nil
		},
	}
}

func (m *mockHandler) Name() string { return m.name }

func (m *mockHandler) Simple(execEnv interface{}) (string, error) {
	if m.simpleFunc != nil {
		return m.simpleFunc(execEnv)
	}
	return "", ErrPassthrough
}

func (m *mockHandler) Complex(execEnv interface{}, params string) (string, error) {
	if m.complexFunc != nil {
		return m.complexFunc(execEnv, params)
	}
	return "", ErrPassthrough
}

func TestRegistry_NewRegistry(t *testing.T) {
	t.Run("empty with nil logger", func(t *testing.T) {
		reg, err := NewRegistry(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, reg.Count())
		assert.Empty(t, reg.List())
	})

	t.Run("registers handlers", func(t *testing.T) {
		reg, err := NewRegistry([]InternalHandler{newMockHandler("b"), newMockHandler("a")}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, reg.Count())
		assert.True(t, reg.Has("a"))
		assert.False(t, reg.Has("c"))
		assert.Equal(t, []string{"a", "b"}, reg.List())
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := NewRegistry([]InternalHandler{nil}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilHandler)
	})

	t.Run("empty handler name", func(t *testing.T) {
		_, err := NewRegistry([]InternalHandler{newMockHandler("")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEmptyHandlerName)
	})
}

func TestRegistry_DuplicateLastWins(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	first := newMockHandler("dup")
	second := newMockHandler("dup")
	second.simpleFunc = func(execEnv interface{}) (string, error) { return "second", nil }

	reg, err := NewRegistry([]InternalHandler{first, second}, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Count())

	h, ok := reg.Get("dup")
	require.True(t, ok)
	out, err := h.Simple(nil)
	require.NoError(t, err)
	assert.Equal(t, "second", out)

	entries := logs.FilterMessage(LogMsgHandlerCollision).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dup", entries[0].ContextMap()[LogFieldHandler])
}

func TestRegistryError_Error(t *testing.T) {
	assert.Equal(t, ErrMsgNilHandler, NewRegistryError(ErrMsgNilHandler, "").Error())
	assert.Equal(t, ErrMsgNilHandler+": x", NewRegistryError(ErrMsgNilHandler, "x").Error())
}
