package directory

import "errors"

var (
	// ErrNotLoaded возвращается, когда каталог для сессии ещё не загружался
	ErrNotLoaded = errors.New("directory.cache: directory not loaded")
)
