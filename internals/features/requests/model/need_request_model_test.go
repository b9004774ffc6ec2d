package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedRequestStatusTransitions(t *testing.T) {
	all := []NeedRequestStatus{
		NeedRequestStatusPending,
		NeedRequestStatusApproved,
		NeedRequestStatusRejected,
		NeedRequestStatusFulfilled,
	}
	allowed := map[NeedRequestStatus][]NeedRequestStatus{
		NeedRequestStatusPending:  {NeedRequestStatusApproved, NeedRequestStatusRejected},
		NeedRequestStatusApproved: {NeedRequestStatusFulfilled},
	}

	for _, from := range all {
		for _, to := range all {
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

func TestNeedRequestTerminalStatesRejectEverything(t *testing.T) {
	for _, terminal := range []NeedRequestStatus{NeedRequestStatusRejected, NeedRequestStatusFulfilled} {
		for _, to := range []NeedRequestStatus{NeedRequestStatusPending, NeedRequestStatusApproved, NeedRequestStatusRejected, NeedRequestStatusFulfilled} {
			assert.Falsef(t, terminal.CanTransitionTo(to), "%s -> %s must be rejected", terminal, to)
		}
	}
}

// Approving twice is not idempotent: the second attempt is invalid.
func TestNeedRequestApproveIsNotRepeatable(t *testing.T) {
	assert.True(t, NeedRequestStatusPending.CanTransitionTo(NeedRequestStatusApproved))
	assert.False(t, NeedRequestStatusApproved.CanTransitionTo(NeedRequestStatusApproved))
}
