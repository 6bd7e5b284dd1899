package otp

import "errors"

var (
	// ErrInvalidCode возвращается, когда код не прошёл проверку
	ErrInvalidCode = errors.New("otp provider: invalid code")

	// ErrSendFailed возвращается, когда код не удалось отправить
	ErrSendFailed = errors.New("otp provider: failed to send code")
)
