package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationParams(t *testing.T) {
	p := NewPaginationParams(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset)

	p = NewPaginationParams(3, 10)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset)

	// Out-of-range sizes fall back to the default instead of being honored.
	p = NewPaginationParams(1, 1000)
	assert.Equal(t, 20, p.PageSize)

	p = NewPaginationParams(-1, -5)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}
