package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	assert.False(t, isDuplicateKeyError(nil))
	assert.False(t, isDuplicateKeyError(errors.New("record not found")))

	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_trucks_truck_code" (SQLSTATE 23505)`)))
}
