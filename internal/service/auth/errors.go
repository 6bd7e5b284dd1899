package auth

import "errors"

var (
	// ErrInvalidPhone возвращается, когда номер не проходит валидацию
	// Принимаются только индийские мобильные: 10 цифр, первая 6-9
	ErrInvalidPhone = errors.New("auth: invalid phone number")

	// ErrInvalidCode возвращается при неверном одноразовом коде
	ErrInvalidCode = errors.New("auth: invalid verification code")

	// ErrSendFailed возвращается, когда код не удалось отправить
	ErrSendFailed = errors.New("auth: failed to send verification code")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("auth: session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
