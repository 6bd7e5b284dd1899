package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	bookingRepo "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/booking"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings/models"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeRepo in-memory репозиторий бронирований для тестов
type fakeRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	clone.StatusHistory = append([]domain.StatusHistoryEntry(nil), b.StatusHistory...)
	return &clone, nil
}

func (r *fakeRepo) GetByUserPhone(ctx context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.UserPhone != phone {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) AppendHistory(ctx context.Context, bookingID string, entry domain.StatusHistoryEntry) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.StatusHistory = append(b.StatusHistory, entry)
	return nil
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func pendingBooking(id, phone string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserPhone: phone,
		Chef:      domain.Chef{ID: "7", Name: "Marco Rossi", HourlyRate: 1000},
		Status:    domain.StatusPending,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.StatusPending, Timestamp: time.Now()},
		},
	}
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo(pendingBooking("BK1", "9876543210"))
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	booking, err := svc.GetByID(ctx, "BK1", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "BK1", booking.ID)
	assert.Equal(t, "pending", booking.Status)

	// Чужое бронирование недоступно
	_, err = svc.GetByID(ctx, "BK1", "9000000000")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, "BK404", "9876543210")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetUserBookings_StatusFilter(t *testing.T) {
	confirmed := pendingBooking("BK2", "9876543210")
	confirmed.Status = domain.StatusConfirmed

	repo := newFakeRepo(pendingBooking("BK1", "9876543210"), confirmed)
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	all, err := svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{UserPhone: "9876543210"})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	filtered, err := svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserPhone: "9876543210",
		Status:    ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, filtered.Bookings, 1)
	assert.Equal(t, "BK2", filtered.Bookings[0].ID)

	_, err = svc.GetUserBookings(ctx, &models.GetUserBookingsRequest{
		UserPhone: "9876543210",
		Status:    ptr.Ptr("shipped"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_AdvanceStatus(t *testing.T) {
	repo := newFakeRepo(pendingBooking("BK1", "9876543210"))
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	booking, err := svc.AdvanceStatus(ctx, "BK1", &models.AdvanceStatusRequest{
		UserPhone: "9876543210",
		Status:    "confirmed",
		Note:      ptr.Ptr("Chef confirmed your booking"),
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", booking.Status)
	// Переход добавляет запись в историю
	require.Len(t, booking.StatusHistory, 2)
	assert.Equal(t, "confirmed", booking.StatusHistory[1].Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings["BK1"].Status)
}

func TestService_AdvanceStatus_RejectsInvalidTransitions(t *testing.T) {
	repo := newFakeRepo(pendingBooking("BK1", "9876543210"))
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	// Пропуск ступени запрещён
	_, err := svc.AdvanceStatus(ctx, "BK1", &models.AdvanceStatusRequest{
		UserPhone: "9876543210",
		Status:    "in-progress",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Неизвестный статус
	_, err = svc.AdvanceStatus(ctx, "BK1", &models.AdvanceStatusRequest{
		UserPhone: "9876543210",
		Status:    "shipped",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// Отмена идёт через отдельную операцию
	_, err = svc.AdvanceStatus(ctx, "BK1", &models.AdvanceStatusRequest{
		UserPhone: "9876543210",
		Status:    "cancelled",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Чужое бронирование
	_, err = svc.AdvanceStatus(ctx, "BK1", &models.AdvanceStatusRequest{
		UserPhone: "9000000000",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// История не изменилась
	assert.Len(t, repo.bookings["BK1"].StatusHistory, 1)
}

func TestService_Cancel(t *testing.T) {
	repo := newFakeRepo(pendingBooking("BK1", "9876543210"))
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	booking, err := svc.Cancel(ctx, "BK1", &models.CancelBookingRequest{
		UserPhone: "9876543210",
		Reason:    ptr.Ptr("plans changed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", booking.Status)
	require.Len(t, booking.StatusHistory, 2)
	assert.Equal(t, "cancelled", booking.StatusHistory[1].Status)
	require.NotNil(t, booking.StatusHistory[1].Note)
	assert.Equal(t, "plans changed", *booking.StatusHistory[1].Note)

	// Прогресс переключается на ветку отмены
	assert.True(t, booking.Progress.Cancelled)
}

func TestService_Cancel_TerminalStatesAreFrozen(t *testing.T) {
	completed := pendingBooking("BK1", "9876543210")
	completed.Status = domain.StatusCompleted

	cancelled := pendingBooking("BK2", "9876543210")
	cancelled.Status = domain.StatusCancelled

	repo := newFakeRepo(completed, cancelled)
	svc := NewService(repo, fakeTxManager{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.Cancel(ctx, "BK1", &models.CancelBookingRequest{UserPhone: "9876543210"})
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(ctx, "BK2", &models.CancelBookingRequest{UserPhone: "9876543210"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}
