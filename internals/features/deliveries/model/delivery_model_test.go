package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatusTransitionTable(t *testing.T) {
	allowed := map[DeliveryStatus][]DeliveryStatus{
		DeliveryStatusPending:   {DeliveryStatusInTransit, DeliveryStatusCancelled},
		DeliveryStatusInTransit: {DeliveryStatusDelivered, DeliveryStatusCancelled},
		DeliveryStatusDelivered: {},
		DeliveryStatusCancelled: {},
	}

	for _, from := range AllDeliveryStatuses {
		for _, to := range AllDeliveryStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestDeliveryStatusNoSelfLoopsAndNoSkipping(t *testing.T) {
	for _, s := range AllDeliveryStatuses {
		assert.Falsef(t, s.CanTransitionTo(s), "%s -> %s must be rejected", s, s)
	}
	// pending may not jump straight to delivered.
	assert.False(t, DeliveryStatusPending.CanTransitionTo(DeliveryStatusDelivered))
}

func TestDeliveryStatusTerminal(t *testing.T) {
	assert.False(t, DeliveryStatusPending.IsTerminal())
	assert.False(t, DeliveryStatusInTransit.IsTerminal())
	assert.True(t, DeliveryStatusDelivered.IsTerminal())
	assert.True(t, DeliveryStatusCancelled.IsTerminal())
}

func TestIsValidDeliveryStatus(t *testing.T) {
	for _, s := range AllDeliveryStatuses {
		assert.True(t, IsValidDeliveryStatus(s))
	}
	assert.False(t, IsValidDeliveryStatus("shipped"))
	assert.False(t, IsValidDeliveryStatus(""))
	assert.False(t, IsValidDeliveryStatus("in_transit"), "hyphenated spelling is canonical")
}
