package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(2.5, Max(1.5, 2.5))
	assert.Equal(2.5, Max(2.5, 1.5))
	assert.Equal("a", Min("a", "b"))
}
