package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 15)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 15)
	assert.Equal(t, 1, p.TotalPages, "empty set still reports one page")
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = BuildPaginationFromPage(46, 4, 15)
	assert.Equal(t, 4, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromPageNormalizesBadInput(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)
}
