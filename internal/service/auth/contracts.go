package auth

import (
	"context"

	"github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
)

// OTPProvider интерфейс провайдера одноразовых кодов
type OTPProvider interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) error
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(phone string) *session.Session
	Get(token string) (*session.Session, error)
	Delete(token string)
}

// DirectoryLoader запускает и сбрасывает каталог сессии
type DirectoryLoader interface {
	LoadAsync(sessionToken string)
	Invalidate(sessionToken string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
