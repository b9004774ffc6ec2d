package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableTxError(t *testing.T) {
	assert.False(t, isRetryableTxError(nil))
	assert.False(t, isRetryableTxError(errors.New("record not found")))
	assert.False(t, isRetryableTxError(ErrInvalidTransition))

	assert.True(t, isRetryableTxError(errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")))
	assert.True(t, isRetryableTxError(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.True(t, isRetryableTxError(errors.New("deadlock detected")))
}
