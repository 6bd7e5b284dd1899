package verify_otp

import (
	"context"

	"github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
)

type AuthService interface {
	VerifyCode(ctx context.Context, phone, code string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
