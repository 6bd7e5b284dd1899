package directory

import (
	"context"

	"github.com/chefhub-in/ChefHub-BookingService/internal/domain"
	directoryCache "github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/directory"
)

// DirectoryClient интерфейс клиента внешнего каталога поваров
type DirectoryClient interface {
	GetChefs(ctx context.Context) ([]domain.Chef, error)
	GetChef(ctx context.Context, id string) (*domain.Chef, error)
}

// Cache интерфейс per-session кэша каталога
type Cache interface {
	Set(sessionToken string, chefs []domain.Chef)
	SetError(sessionToken string, loadErr error)
	Get(sessionToken string) (*directoryCache.Snapshot, error)
	Invalidate(sessionToken string)
}

// SessionChecker проверка живости сессии
// Ответ каталога, пришедший после logout, не должен наполнять состояние
type SessionChecker interface {
	IsAlive(token string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
