package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/pkg/ptr"
)

func TestNewBookingID(t *testing.T) {
	id := NewBookingID()

	assert.True(t, strings.HasPrefix(id, "BK"))
	assert.Len(t, id, 14)
	assert.Equal(t, strings.ToUpper(id), id)

	// Идентификаторы не повторяются
	assert.NotEqual(t, id, NewBookingID())
}

func TestParseBookingStatus(t *testing.T) {
	for _, raw := range []string{"pending", "confirmed", "in-progress", "completed", "cancelled"} {
		status, ok := ParseBookingStatus(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, BookingStatus(raw), status)
	}

	_, ok := ParseBookingStatus("shipped")
	assert.False(t, ok)
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to in-progress", StatusConfirmed, StatusInProgress, true},
		{"in-progress to completed", StatusInProgress, StatusCompleted, true},
		{"skip is rejected", StatusPending, StatusInProgress, false},
		{"backwards is rejected", StatusConfirmed, StatusPending, false},
		{"same status is rejected", StatusConfirmed, StatusConfirmed, false},
		{"completed is frozen", StatusCompleted, StatusPending, false},
		{"cancel from pending", StatusPending, StatusCancelled, true},
		{"cancel from confirmed", StatusConfirmed, StatusCancelled, true},
		{"cancel from in-progress", StatusInProgress, StatusCancelled, true},
		{"cancel from completed is rejected", StatusCompleted, StatusCancelled, false},
		{"cancel from cancelled is rejected", StatusCancelled, StatusCancelled, false},
		{"advance from cancelled is rejected", StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_LatestHistoryFor(t *testing.T) {
	base := time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC)
	b := &Booking{
		Status: StatusConfirmed,
		StatusHistory: []StatusHistoryEntry{
			{Status: StatusPending, Timestamp: base},
			{Status: StatusConfirmed, Timestamp: base.Add(time.Hour), Note: ptr.Ptr("first")},
			{Status: StatusConfirmed, Timestamp: base.Add(2 * time.Hour), Note: ptr.Ptr("second")},
		},
	}

	entry := b.LatestHistoryFor(StatusConfirmed)
	require.NotNil(t, entry)
	// Берётся самая свежая запись с этим статусом
	assert.Equal(t, "second", *entry.Note)

	assert.Nil(t, b.LatestHistoryFor(StatusCompleted))
}

func TestBuildProgressTimeline_Pending(t *testing.T) {
	now := time.Now()
	b := &Booking{
		Status: StatusPending,
		StatusHistory: []StatusHistoryEntry{
			{Status: StatusPending, Timestamp: now},
		},
	}

	timeline := b.BuildProgressTimeline()

	require.Len(t, timeline.Steps, 4)
	assert.False(t, timeline.Cancelled)

	assert.True(t, timeline.Steps[0].Completed)
	assert.True(t, timeline.Steps[0].Current)
	require.NotNil(t, timeline.Steps[0].Timestamp)

	for _, step := range timeline.Steps[1:] {
		assert.False(t, step.Completed)
		assert.False(t, step.Current)
		assert.Nil(t, step.Timestamp)
	}
}

func TestBuildProgressTimeline_InProgress(t *testing.T) {
	now := time.Now()
	b := &Booking{
		Status: StatusInProgress,
		StatusHistory: []StatusHistoryEntry{
			{Status: StatusPending, Timestamp: now},
			{Status: StatusConfirmed, Timestamp: now.Add(time.Hour)},
			{Status: StatusInProgress, Timestamp: now.Add(2 * time.Hour)},
		},
	}

	timeline := b.BuildProgressTimeline()

	require.Len(t, timeline.Steps, 4)

	// Все ступени до текущей включительно пройдены, текущая помечена
	assert.True(t, timeline.Steps[0].Completed)
	assert.True(t, timeline.Steps[1].Completed)
	assert.True(t, timeline.Steps[2].Completed)
	assert.True(t, timeline.Steps[2].Current)
	assert.False(t, timeline.Steps[3].Completed)

	// Ровно одна текущая ступень
	currentCount := 0
	for _, step := range timeline.Steps {
		if step.Current {
			currentCount++
		}
	}
	assert.Equal(t, 1, currentCount)
}

func TestBuildProgressTimeline_Cancelled(t *testing.T) {
	now := time.Now()
	b := &Booking{
		Status: StatusCancelled,
		StatusHistory: []StatusHistoryEntry{
			{Status: StatusPending, Timestamp: now},
			{Status: StatusCancelled, Timestamp: now.Add(time.Hour)},
		},
	}

	timeline := b.BuildProgressTimeline()

	assert.True(t, timeline.Cancelled)
	require.NotNil(t, timeline.CancelledAt)
	assert.True(t, timeline.CancelledAt.Equal(now.Add(time.Hour)))

	// Отмена выводится отдельной веткой: линейные ступени не пройдены
	for _, step := range timeline.Steps {
		assert.False(t, step.Completed)
		assert.False(t, step.Current)
	}
}

func TestBooking_ActiveAndTerminal(t *testing.T) {
	for _, status := range ActiveStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsActive(), string(status))
		assert.False(t, b.IsTerminal(), string(status))
		assert.True(t, b.CanBeCancelled(), string(status))
	}

	for _, status := range []BookingStatus{StatusCompleted, StatusCancelled} {
		b := &Booking{Status: status}
		assert.False(t, b.IsActive(), string(status))
		assert.True(t, b.IsTerminal(), string(status))
		assert.False(t, b.CanBeCancelled(), string(status))
	}
}
