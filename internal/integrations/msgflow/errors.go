package msgflow

import "errors"

var (
	// ErrDeliveryFailed возвращается, когда flow API отклонил или не принял сообщение
	// Ошибка доставки логируется и никогда не блокирует создание бронирования
	ErrDeliveryFailed = errors.New("msgflow client: notification delivery failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("msgflow client: internal error")
)
