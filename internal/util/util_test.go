package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	v := 3
	p := Ptr(v)
	v = 4
	assert.Equal(t, 3, *p)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(1, 1, 1000))
	assert.True(t, InRange(1000, 1, 1000))
	assert.False(t, InRange(0, 1, 1000))
	assert.False(t, InRange(1001, 1, 1000))
	assert.True(t, InRange(0.5, 0, 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "paw", Truncate("paw", 10))
	assert.Equal(t, "pa", Truncate("paw", 2))
	assert.Equal(t, "", Truncate("paw", 0))
}
