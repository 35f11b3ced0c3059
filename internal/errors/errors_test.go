package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: 7}, "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrapKeepsIdentity(t *testing.T) {
	base := New("base")
	wrapped := Wrapf(base, "step %d", 2)

	assert.True(t, Is(wrapped, base))
	assert.Equal(t, "step 2: base", wrapped.Error())
}
