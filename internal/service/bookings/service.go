package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	bookingRepo "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/booking"
	"github.com/chefhub-in/ChefHub-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только свои бронирования
func (s *Service) GetByID(ctx context.Context, id string, userPhone string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for phone=%s", id, userPhone)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserPhone != userPhone {
		s.logger.Warn("GetByID: access denied for phone=%s to booking id=%s", userPhone, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, новые первыми
// Опционально фильтрует по статусу; список только растёт — бронирования
// никогда не удаляются
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for phone=%s, status=%v", req.UserPhone, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("GetUserBookings: invalid status=%s for phone=%s", *req.Status, req.UserPhone)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserPhone(ctx, req.UserPhone, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for phone=%s: %v", req.UserPhone, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for phone=%s", len(bookings), req.UserPhone)
	return models.FromDomainBookingList(bookings), nil
}

// AdvanceStatus переводит бронирование в следующий статус
// Таблица переходов строгая: ровно один шаг вперёд по каноническому порядку
// pending -> confirmed -> in-progress -> completed; каждый переход добавляет
// запись в append-only историю
func (s *Service) AdvanceStatus(ctx context.Context, bookingID string, req *models.AdvanceStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("AdvanceStatus: booking id=%s to status=%s by phone=%s",
		bookingID, req.Status, req.UserPhone)

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("AdvanceStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}
	if newStatus == domain.StatusCancelled {
		// Отмена идёт через Cancel с указанием причины
		return nil, fmt.Errorf("%w: use cancel operation for cancellation", ErrInvalidTransition)
	}

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: AdvanceStatus - repository error: %v", ErrInternal, err)
		}

		if booking.UserPhone != req.UserPhone {
			return ErrAccessDenied
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("AdvanceStatus: transition %s -> %s rejected for booking id=%s",
				booking.Status, newStatus, bookingID)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus); err != nil {
			return fmt.Errorf("%w: AdvanceStatus - update status: %v", ErrInternal, err)
		}

		entry := domain.StatusHistoryEntry{
			Status:    newStatus,
			Timestamp: time.Now(),
			Note:      req.Note,
		}
		if err := s.bookingRepo.AppendHistory(txCtx, bookingID, entry); err != nil {
			return fmt.Errorf("%w: AdvanceStatus - append history: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		booking.StatusHistory = append(booking.StatusHistory, entry)
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("AdvanceStatus: booking id=%s advanced to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(result), nil
}

// Cancel отменяет бронирование
// Отмена допустима из любого нетерминального статуса; terminal состояния заморожены
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by phone=%s", bookingID, req.UserPhone)

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if booking.UserPhone != req.UserPhone {
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}

		entry := domain.StatusHistoryEntry{
			Status:    domain.StatusCancelled,
			Timestamp: time.Now(),
			Note:      req.Reason,
		}
		if err := s.bookingRepo.AppendHistory(txCtx, bookingID, entry); err != nil {
			return fmt.Errorf("%w: Cancel - append history: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		booking.StatusHistory = append(booking.StatusHistory, entry)
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	return models.FromDomainBooking(result), nil
}
