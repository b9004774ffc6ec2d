package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductTypeCatalogue(t *testing.T) {
	assert.Len(t, AllProductTypes, 9)

	seen := map[ProductType]bool{}
	for _, pt := range AllProductTypes {
		assert.Falsef(t, seen[pt], "duplicate product type %s", pt)
		seen[pt] = true
		assert.True(t, IsValidProductType(pt))
	}

	assert.False(t, IsValidProductType("water"))
	assert.False(t, IsValidProductType(""))
	assert.False(t, IsValidProductType("Quran"), "product types are lower_snake")
}
