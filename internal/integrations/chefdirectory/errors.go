package chefdirectory

import "errors"

var (
	// ErrFetch возвращается при сетевой ошибке или не-2xx ответе каталога
	ErrFetch = errors.New("chefdirectory client: fetch failed")

	// ErrFormat возвращается, когда ответ каталога не содержит список users
	ErrFormat = errors.New("chefdirectory client: invalid response format")

	// ErrChefNotFound возвращается, когда повар с указанным ID не найден
	ErrChefNotFound = errors.New("chefdirectory client: chef not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("chefdirectory client: internal error")
)
