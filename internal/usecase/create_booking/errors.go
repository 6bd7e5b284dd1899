package create_booking

import "errors"

var (
	// ErrChefNotFound возвращается, когда повар не найден в каталоге
	ErrChefNotFound = errors.New("create_booking: chef not found")

	// ErrChefUnavailable возвращается, когда каталог поваров недоступен
	ErrChefUnavailable = errors.New("create_booking: chef directory unavailable")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
