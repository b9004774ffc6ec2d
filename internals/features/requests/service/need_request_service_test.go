package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mosqueModel "sabeel_backend/internals/features/mosques/model"
)

// Validation happens before any database access, so these paths run
// against a zero-value service.

func TestCreateRejectsEmptyRequest(t *testing.T) {
	svc := &NeedRequestService{}

	_, err := svc.Create(uuid.New(), uuid.New(), nil, nil)
	assert.ErrorIs(t, err, ErrEmptyRequest)

	zero := 0
	_, err = svc.Create(uuid.New(), uuid.New(), &zero, nil)
	assert.ErrorIs(t, err, ErrEmptyRequest)

	negative := -5
	_, err = svc.Create(uuid.New(), uuid.New(), &negative, nil)
	assert.ErrorIs(t, err, ErrEmptyRequest)
}

func TestCreateRejectsBadSupplyLines(t *testing.T) {
	svc := &NeedRequestService{}

	_, err := svc.Create(uuid.New(), uuid.New(), nil, []SupplyItem{
		{ProductType: "water_bottles", RequestedQuantity: 3},
	})
	assert.Error(t, err)

	_, err = svc.Create(uuid.New(), uuid.New(), nil, []SupplyItem{
		{ProductType: mosqueModel.ProductQuran, RequestedQuantity: 0},
	})
	assert.Error(t, err)
}

func TestRejectRequiresReason(t *testing.T) {
	svc := &NeedRequestService{}

	_, err := svc.Reject(uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, ErrEmptyRejectionReason)
}
