package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	v := 0.7
	p := Ptr(v)

	assert.NotNil(t, p)
	assert.Equal(t, 0.7, *p)

	v = 0.2
	assert.Equal(t, 0.7, *p, "pointer holds a copy")
	assert.NotSame(t, Ptr(1), Ptr(1))
}
