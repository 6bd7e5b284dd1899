package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chefhub-in/ChefHub-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// StatusHistoryEntry одна запись в истории статусов бронирования
// История append-only: записи никогда не изменяются и не удаляются
type StatusHistoryEntry struct {
	Status    BookingStatus
	Timestamp time.Time
	Note      *string
}

// Booking represents a chef booking in the system
// Chef is an owned snapshot frozen at creation time, not a live reference:
// the price the user saw when booking never changes afterwards
type Booking struct {
	ID        string
	UserPhone string
	Chef      Chef

	Date          time.Time
	StartTime     types.TimeString
	Guests        int
	Hours         float64
	EventLocation string
	Occasion      string
	Details       string

	// TotalAmount = Chef.HourlyRate * Hours, computed once at creation
	// and never recalculated
	TotalAmount float64

	Status        BookingStatus
	StatusHistory []StatusHistoryEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingID генерирует ID бронирования в формате BKXXXXXXXX
func NewBookingID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK" + strings.ToUpper(raw[:12])
}

// IsActive returns true if the booking is in an active (non-terminal) state
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusConfirmed ||
		b.Status == StatusInProgress
}

// IsTerminal returns true if the booking reached a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
// Cancellation is allowed from any non-terminal state
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanTransitionTo returns true if moving to next is a valid transition.
// Advancing moves exactly one step forward along StatusOrder; cancellation
// is allowed from any non-terminal state; terminal states are frozen.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if next == StatusCancelled {
		return b.CanBeCancelled()
	}

	current := StatusIndex(b.Status)
	target := StatusIndex(next)
	if current < 0 || target < 0 {
		return false
	}
	return target == current+1
}

// StatusIndex возвращает позицию статуса в каноническом порядке
// Для cancelled возвращает -1 (внеполосная терминальная ветка)
func StatusIndex(status BookingStatus) int {
	for i, s := range StatusOrder {
		if s == status {
			return i
		}
	}
	return -1
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(status string) (BookingStatus, bool) {
	s := BookingStatus(status)
	if StatusIndex(s) >= 0 || s == StatusCancelled {
		return s, true
	}
	return "", false
}

// LatestHistoryFor возвращает последнюю запись истории с указанным статусом
// nil, если бронирование ещё не проходило через этот статус
func (b *Booking) LatestHistoryFor(status BookingStatus) *StatusHistoryEntry {
	for i := len(b.StatusHistory) - 1; i >= 0; i-- {
		if b.StatusHistory[i].Status == status {
			return &b.StatusHistory[i]
		}
	}
	return nil
}
