package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("WrapsErrorWithContext", func(t *testing.T) {
		wrapped := Wrap(ErrInvalidInput, "card number")

		assert.Error(t, wrapped)
		assert.Equal(t, "card number: invalid input", wrapped.Error())
		assert.True(t, errors.Is(wrapped, ErrInvalidInput))
	})

	t.Run("NilErrorReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("PreservesChainAcrossMultipleWraps", func(t *testing.T) {
		inner := Wrap(ErrInvalidInput, "inner")
		outer := Wrap(inner, "outer")

		assert.True(t, errors.Is(outer, ErrInvalidInput))
		assert.Equal(t, "outer: inner: invalid input", outer.Error())
	})
}

func TestIs(t *testing.T) {
	assert.True(t, Is(Wrap(ErrNotFound, "card"), ErrNotFound))
	assert.False(t, Is(Wrap(ErrNotFound, "card"), ErrInvalidInput))
	assert.False(t, Is(nil, ErrNotFound))
}

func TestNew(t *testing.T) {
	err := New("something failed")
	assert.Error(t, err)
	assert.Equal(t, "something failed", err.Error())
}
