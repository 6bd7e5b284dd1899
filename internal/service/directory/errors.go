package directory

import "errors"

var (
	// ErrNotLoaded возвращается, пока каталог сессии ещё загружается
	ErrNotLoaded = errors.New("directory: not loaded yet")

	// ErrUnavailable возвращается, когда последняя загрузка каталога провалилась
	// Каталог остаётся пустым до ручного повтора; автоповтора нет
	ErrUnavailable = errors.New("directory: unavailable")

	// ErrChefNotFound возвращается, когда повар не найден
	ErrChefNotFound = errors.New("directory: chef not found")

	// ErrInvalidFilter возвращается при некорректных параметрах фильтра
	ErrInvalidFilter = errors.New("directory: invalid filter options")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("directory: internal error")
)
