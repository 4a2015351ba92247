package sample

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrime(t *testing.T) {
	var c MyClass
	for _, n := range []int{2, 3, 5, 7, 11, 97} {
		assert.True(t, c.Prime(n), "%d", n)
	}
	for _, n := range []int{-7, 0, 1, 4, 9, 100} {
		assert.False(t, c.Prime(n), "%d", n)
	}
}

func TestElement(t *testing.T) {
	var c MyClass
	e, err := c.Element(1)
	require.NoError(t, err)
	assert.Equal(t, "helium", e)

	_, err = c.Element(3)
	var indexErr *IndexError
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, 3, indexErr.Index)
	assert.Equal(t, "index 3 out of range for 3 elements", err.Error())
}

func TestIsAwesomeAndHello(t *testing.T) {
	var c MyClass
	assert.True(t, c.IsAwesome())
	assert.Equal(t, "Hello world", c.Hello())
}
