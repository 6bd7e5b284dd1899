package create_booking

import (
	"context"
	"time"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	AppendHistory(ctx context.Context, bookingID string, entry domain.StatusHistoryEntry) error
}

// ChefDirectoryClient интерфейс клиента внешнего каталога поваров
type ChefDirectoryClient interface {
	GetChef(ctx context.Context, id string) (*domain.Chef, error)
}

// Notifier интерфейс side-channel уведомлений о новых бронированиях
type Notifier interface {
	SendBookingCreated(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
