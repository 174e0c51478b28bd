package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowState_CanTransition(t *testing.T) {
	tests := []struct {
		from    FlowState
		to      FlowState
		allowed bool
	}{
		{FlowSelectingDates, FlowValidating, true},
		{FlowValidating, FlowValid, true},
		{FlowValidating, FlowInvalid, true},
		{FlowValid, FlowSubmitting, true},
		{FlowValid, FlowValidating, true},
		{FlowInvalid, FlowSelectingDates, true},
		{FlowInvalid, FlowValidating, true},
		{FlowSubmitting, FlowConfirmed, true},
		{FlowSubmitting, FlowRejected, true},
		{FlowRejected, FlowSelectingDates, true},

		{FlowSelectingDates, FlowSubmitting, false},
		{FlowSelectingDates, FlowConfirmed, false},
		{FlowValid, FlowConfirmed, false},
		{FlowSubmitting, FlowSubmitting, false},
		{FlowConfirmed, FlowSelectingDates, false},
		{FlowConfirmed, FlowValidating, false},
		{FlowRejected, FlowSubmitting, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}

func TestFlowState_IsTerminal(t *testing.T) {
	assert.True(t, FlowConfirmed.IsTerminal())
	assert.False(t, FlowRejected.IsTerminal())
	assert.False(t, FlowSubmitting.IsTerminal())
	assert.False(t, FlowSelectingDates.IsTerminal())
}

func TestFlowState_IsInFlight(t *testing.T) {
	assert.True(t, FlowSubmitting.IsInFlight())
	assert.False(t, FlowValidating.IsInFlight())
	assert.False(t, FlowConfirmed.IsInFlight())
}

func TestSession_CanManageVenues(t *testing.T) {
	manager := &Session{Name: "alice", VenueManager: true}
	customer := &Session{Name: "bob"}
	var missing *Session

	assert.True(t, manager.CanManageVenues())
	assert.False(t, customer.CanManageVenues())
	assert.False(t, missing.CanManageVenues())
}

func TestVenue_HasCapacityFor(t *testing.T) {
	venue := &Venue{MaxGuests: 4}

	assert.True(t, venue.HasCapacityFor(1))
	assert.True(t, venue.HasCapacityFor(4))
	assert.False(t, venue.HasCapacityFor(0))
	assert.False(t, venue.HasCapacityFor(5))
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestSession_Owns(t *testing.T) {
	sess := &Session{Name: "alice"}
	var missing *Session

	assert.True(t, sess.Owns("alice"))
	assert.False(t, sess.Owns("bob"))
	assert.False(t, missing.Owns("alice"))
}
