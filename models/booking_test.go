package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("Confirmed")
	require.NoError(t, err)
	assert.Equal(t, BookingStatusConfirmed, status)

	_, err = ParseBookingStatus("shipped")
	assert.Error(t, err)
}

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.from}
		assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
