package domain

import "time"

// ProgressStep одна ступень на линии прогресса бронирования
type ProgressStep struct {
	Status    BookingStatus
	Label     string
	Completed bool // ступень пройдена (индекс <= текущего)
	Current   bool // текущая ступень
	Timestamp *time.Time
	Note      *string
}

// ProgressTimeline отображение прогресса бронирования
// Cancelled=true означает терминальную ветку отмены вместо позиции на линии
type ProgressTimeline struct {
	Steps       []ProgressStep
	Cancelled   bool
	CancelledAt *time.Time
}

// BuildProgressTimeline computes the progress rendering for a booking.
// Every state at or before the current index is completed, the state at the
// current index is additionally flagged current, later states are unreached.
// Timestamps and notes come from the most recent matching history entry;
// not-yet-reached states render without detail.
func (b *Booking) BuildProgressTimeline() ProgressTimeline {
	timeline := ProgressTimeline{
		Steps: make([]ProgressStep, 0, len(StatusOrder)),
	}

	currentIndex := StatusIndex(b.Status)
	if b.Status == StatusCancelled {
		timeline.Cancelled = true
		if entry := b.LatestHistoryFor(StatusCancelled); entry != nil {
			ts := entry.Timestamp
			timeline.CancelledAt = &ts
		}
		// currentIndex = -1: все ступени отображаются непройденными
	}

	for i, status := range StatusOrder {
		step := ProgressStep{
			Status:    status,
			Label:     StatusLabels[status],
			Completed: currentIndex >= 0 && i <= currentIndex,
			Current:   currentIndex >= 0 && i == currentIndex,
		}

		if entry := b.LatestHistoryFor(status); entry != nil {
			ts := entry.Timestamp
			step.Timestamp = &ts
			step.Note = entry.Note
		}

		timeline.Steps = append(timeline.Steps, step)
	}

	return timeline
}
