package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	p := Ptr("x")
	assert.Equal(t, "x", *p)
}

func TestFirst(t *testing.T) {
	assert.Nil(t, First([]string(nil)))
	assert.Nil(t, First([]int{}))

	first := First([]string{"a", "b"})
	if assert.NotNil(t, first) {
		assert.Equal(t, "a", *first)
	}
}
