package otp

import (
	"context"
	"unicode"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// StubProvider заглушка OTP-провайдера для демо-окружения.
//
// ВНИМАНИЕ: заглушка не выполняет настоящей проверки — SendCode ничего не
// отправляет, VerifyCode принимает ЛЮБОЙ код нужной длины. В production
// на этом месте должен стоять внешний identity/OTP провайдер с теми же
// методами SendCode/VerifyCode; логика сессий и бронирований при замене
// не меняется.
type StubProvider struct {
	codeLength int
	log        Logger
}

// NewStubProvider создает заглушку OTP-провайдера
func NewStubProvider(codeLength int, log Logger) *StubProvider {
	return &StubProvider{
		codeLength: codeLength,
		log:        log,
	}
}

// SendCode имитирует отправку кода на номер телефона
func (p *StubProvider) SendCode(ctx context.Context, phone string) error {
	p.log.Info("OTP stub: pretending to send %d-digit code to +91%s (demo mode, no SMS sent)",
		p.codeLength, phone)
	return nil
}

// VerifyCode принимает любой код нужной длины, состоящий из цифр
func (p *StubProvider) VerifyCode(ctx context.Context, phone, code string) error {
	if len(code) != p.codeLength {
		return ErrInvalidCode
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return ErrInvalidCode
		}
	}

	p.log.Info("OTP stub: code accepted for +91%s (demo mode, no real verification)", phone)
	return nil
}
