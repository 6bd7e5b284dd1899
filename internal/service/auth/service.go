package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/chefhub-in/ChefHub-BookingService/internal/infra/storage/session"
	"github.com/chefhub-in/ChefHub-BookingService/internal/integrations/otp"
)

// Индийский мобильный номер: 10 цифр, первая из диапазона 6-9
var phoneRegexp = regexp.MustCompile(`^[6-9]\d{9}$`)

// Service сервис авторизации по одноразовым кодам
type Service struct {
	otpProvider OTPProvider
	sessions    SessionStore
	directory   DirectoryLoader
	logger      Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(
	otpProvider OTPProvider,
	sessions SessionStore,
	directory DirectoryLoader,
	logger Logger,
) *Service {
	return &Service{
		otpProvider: otpProvider,
		sessions:    sessions,
		directory:   directory,
		logger:      logger,
	}
}

// RequestCode валидирует номер и отправляет одноразовый код
func (s *Service) RequestCode(ctx context.Context, phone string) error {
	if !phoneRegexp.MatchString(phone) {
		s.logger.Warn("RequestCode: invalid phone number format")
		return ErrInvalidPhone
	}

	if err := s.otpProvider.SendCode(ctx, phone); err != nil {
		s.logger.Error("RequestCode: failed to send code: %v", err)
		return fmt.Errorf("%w: RequestCode - provider error: %v", ErrSendFailed, err)
	}

	s.logger.Info("RequestCode: verification code sent")
	return nil
}

// VerifyCode проверяет код, создает сессию и запускает фоновую загрузку каталога
func (s *Service) VerifyCode(ctx context.Context, phone, code string) (*session.Session, error) {
	if !phoneRegexp.MatchString(phone) {
		s.logger.Warn("VerifyCode: invalid phone number format")
		return nil, ErrInvalidPhone
	}

	if err := s.otpProvider.VerifyCode(ctx, phone, code); err != nil {
		if errors.Is(err, otp.ErrInvalidCode) {
			s.logger.Warn("VerifyCode: code rejected")
			return nil, ErrInvalidCode
		}
		s.logger.Error("VerifyCode: provider error: %v", err)
		return nil, fmt.Errorf("%w: VerifyCode - provider error: %v", ErrInternal, err)
	}

	sess := s.sessions.Create(phone)
	s.logger.Info("VerifyCode: session created, expires at %s", sess.ExpiresAt.Format("2006-01-02 15:04:05"))

	// Каталог грузится в фоне, вход не ждёт внешний сервис
	s.directory.LoadAsync(sess.Token)

	return sess, nil
}

// Logout закрывает сессию и сбрасывает её каталог
func (s *Service) Logout(ctx context.Context, token string) error {
	if _, err := s.sessions.Get(token); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: Logout - session store error: %v", ErrInternal, err)
	}

	s.sessions.Delete(token)
	s.directory.Invalidate(token)

	s.logger.Info("Logout: session closed")
	return nil
}
