package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveBlockedDates_InclusiveBothEnds(t *testing.T) {
	blocked := DeriveBlockedDates([]BookingInterval{
		{ID: "b1", Start: day("2024-03-01"), End: day("2024-03-03"), Status: StatusConfirmed},
	})

	require.Len(t, blocked, 3)
	assert.True(t, blocked.Contains(day("2024-03-01")))
	assert.True(t, blocked.Contains(day("2024-03-02")))
	assert.True(t, blocked.Contains(day("2024-03-03")))
	assert.False(t, blocked.Contains(day("2024-02-29")))
	assert.False(t, blocked.Contains(day("2024-03-04")))
}

func TestDeriveBlockedDates_SingleDayInterval(t *testing.T) {
	blocked := DeriveBlockedDates([]BookingInterval{
		{ID: "b1", Start: day("2024-05-10"), End: day("2024-05-10"), Status: StatusConfirmed},
	})

	require.Len(t, blocked, 1)
	assert.True(t, blocked.Contains(day("2024-05-10")))
}

func TestDeriveBlockedDates_MalformedIntervalBlocksNothing(t *testing.T) {
	blocked := DeriveBlockedDates([]BookingInterval{
		{ID: "b1", Start: day("2024-05-10"), End: day("2024-05-01"), Status: StatusConfirmed},
	})

	assert.Empty(t, blocked)
}

func TestDeriveBlockedDates_CancelledBookingBlocksNothing(t *testing.T) {
	blocked := DeriveBlockedDates([]BookingInterval{
		{ID: "b1", Start: day("2024-03-01"), End: day("2024-03-03"), Status: StatusCancelled},
	})

	assert.Empty(t, blocked)
}

func TestDeriveBlockedDates_OrderIndependent(t *testing.T) {
	first := []BookingInterval{
		{ID: "b1", Start: day("2024-03-01"), End: day("2024-03-03"), Status: StatusConfirmed},
		{ID: "b2", Start: day("2024-03-02"), End: day("2024-03-05"), Status: StatusConfirmed},
	}
	second := []BookingInterval{first[1], first[0]}

	assert.Equal(t, DeriveBlockedDates(first), DeriveBlockedDates(second))
}

func TestDeriveBlockedDates_OverlappingIntervalsDeduplicated(t *testing.T) {
	blocked := DeriveBlockedDates([]BookingInterval{
		{ID: "b1", Start: day("2024-03-01"), End: day("2024-03-03"), Status: StatusConfirmed},
		{ID: "b2", Start: day("2024-03-03"), End: day("2024-03-04"), Status: StatusConfirmed},
	})

	require.Len(t, blocked, 4)
	assert.Equal(t, []time.Time{
		day("2024-03-01"), day("2024-03-02"), day("2024-03-03"), day("2024-03-04"),
	}, blocked.Days())
}

func TestDeriveBlockedDates_NormalizesTimeOfDay(t *testing.T) {
	start, err := time.Parse(time.RFC3339, "2024-03-01T15:30:00Z")
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, "2024-03-02T08:00:00Z")
	require.NoError(t, err)

	blocked := DeriveBlockedDates([]BookingInterval{
		{ID: "b1", Start: start, End: end, Status: StatusConfirmed},
	})

	require.Len(t, blocked, 2)
	assert.True(t, blocked.Contains(day("2024-03-01")))
	assert.True(t, blocked.Contains(day("2024-03-02")))
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three nights", day("2024-01-01"), day("2024-01-04"), 3},
		{"one night", day("2024-01-01"), day("2024-01-02"), 1},
		{"same day", day("2024-01-01"), day("2024-01-01"), 0},
		{"inverted range", day("2024-01-04"), day("2024-01-01"), 0},
		{"zero check-in", time.Time{}, day("2024-01-04"), 0},
		{"zero check-out", day("2024-01-01"), time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	checkIn, err := time.Parse(time.RFC3339, "2024-01-01T23:00:00Z")
	require.NoError(t, err)
	checkOut, err := time.Parse(time.RFC3339, "2024-01-04T01:00:00Z")
	require.NoError(t, err)

	assert.Equal(t, 3, Nights(checkIn, checkOut))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 300.0, Total(3, 100))
	assert.Equal(t, 0.0, Total(0, 100))
	assert.Equal(t, 0.0, Total(-1, 100))
	assert.Equal(t, 0.0, Total(5, 0))
}

func TestTotal_MonotonicInNights(t *testing.T) {
	price := 150.0
	for nights := 1; nights <= 10; nights++ {
		assert.Greater(t, Total(nights, price), Total(nights-1, price))
	}
}

func TestQuoteStay(t *testing.T) {
	quote := QuoteStay(StaySelection{CheckIn: day("2024-01-01"), CheckOut: day("2024-01-04")}, 100)

	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 300.0, quote.Total)
}

func TestQuoteStay_IncompleteSelectionIsZero(t *testing.T) {
	quote := QuoteStay(StaySelection{CheckIn: day("2024-01-01")}, 100)

	assert.Equal(t, 0, quote.Nights)
	assert.Equal(t, 0.0, quote.Total)
}
