package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelConstructors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"not found", NewNotFoundError("source %q", "data.nt"), ErrNotFound, `source "data.nt"`},
		{"invalid request", NewInvalidRequestError("variable %s unbound", "x"), ErrInvalidRequest, "variable x unbound"},
		{"conflict", NewConflictError("frozen"), ErrConflict, "frozen"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.Equal(t, tc.message, tc.err.Error())
			assert.True(t, Is(tc.err, tc.sentinel))
			assert.True(t, Is(Wrap(tc.err, "outer"), tc.sentinel), "sentinel must survive wrapping")
		})
	}
}

func TestIsNotFoundError(t *testing.T) {
	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsNotFoundError(New("other")))
	assert.True(t, IsNotFoundError(Wrap(ErrNotFound, "lookup")))
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
}

func TestIsInvalidRequestError(t *testing.T) {
	assert.False(t, IsInvalidRequestError(nil))
	assert.True(t, IsInvalidRequestError(NewInvalidRequestError("bad")))
}

func TestCombineErrors(t *testing.T) {
	first := NewNotFoundError("a")
	second := New("b")

	combined := CombineErrors(first, second)
	require.Error(t, combined)
	assert.True(t, Is(combined, ErrNotFound))

	assert.Nil(t, CombineErrors(nil, nil))
	assert.Equal(t, second, CombineErrors(nil, second))
}

func TestHints(t *testing.T) {
	err := WithHint(New("missing file"), "check the path")
	assert.Contains(t, FlattenHints(err), "check the path")
}
