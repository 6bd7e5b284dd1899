package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	chefClient "github.com/chefhub-in/ChefHub-BookingService/internal/integrations/chefdirectory"
	"github.com/chefhub-in/ChefHub-BookingService/pkg/ptr"
)

// Стартовая запись истории нового бронирования
const initialHistoryNote = "Booking request submitted. Waiting for chef confirmation."

const notifyTimeout = 10 * time.Second

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	chefClient   ChefDirectoryClient
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	chefClient ChefDirectoryClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		chefClient:   chefClient,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Бронирование фиксирует снапшот повара на момент создания: последующие
// изменения каталога на историю заказов не влияют
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: phone=%s, chef=%s, date=%s, time=%s, guests=%d, hours=%v",
		req.UserPhone, req.ChefID, req.Date.Format(domain.DateFormat), req.StartTime, req.Guests, req.Hours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем повара из каталога
	chef, err := uc.chefClient.GetChef(ctx, req.ChefID)
	if err != nil {
		if errors.Is(err, chefClient.ErrChefNotFound) {
			uc.logger.Warn("CreateBooking: chef id=%s not found", req.ChefID)
			return nil, ErrChefNotFound
		}
		uc.logger.Error("CreateBooking: failed to get chef id=%s: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get chef: %v", ErrChefUnavailable, err)
	}

	// 5. Собираем бронирование со снапшотом повара
	booking := &domain.Booking{
		ID:            domain.NewBookingID(),
		UserPhone:     req.UserPhone,
		Chef:          *chef,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Guests:        req.Guests,
		Hours:         req.Hours,
		EventLocation: req.Location,
		Occasion:      req.Occasion,
		Details:       req.Details,
		TotalAmount:   chef.HourlyRate * req.Hours,
		Status:        domain.StatusPending,
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Сохраняем бронирование и стартовую запись истории в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		entry := domain.StatusHistoryEntry{
			Status:    domain.StatusPending,
			Timestamp: now,
			Note:      ptr.Ptr(initialHistoryNote),
		}
		if err := uc.bookingRepo.AppendHistory(txCtx, created.ID, entry); err != nil {
			uc.logger.Error("CreateBooking: failed to append history: %v", err)
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		created.StatusHistory = append(created.StatusHistory, entry)
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 7. Уведомление уходит в фоне: best-effort, ошибки не влияют на результат
	uc.notifyAsync(result)

	return &Response{Booking: result}, nil
}

// notifyAsync отправляет уведомление о новом бронировании в отдельной горутине
// Контекст запроса к этому моменту может быть закрыт, поэтому берём свой
func (uc *UseCase) notifyAsync(booking *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.SendBookingCreated(ctx, booking); err != nil {
			uc.logger.Warn("CreateBooking: notification for booking id=%s failed: %v", booking.ID, err)
		}
	}()
}
