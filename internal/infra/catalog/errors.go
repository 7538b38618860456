package catalog

import "errors"

var (
	// ErrReadFile возвращается при ошибке чтения или разбора файла каталога
	ErrReadFile = errors.New("catalog.loader: failed to read catalog file")

	// ErrUnknownKeys возвращается, когда в файле есть ключи, которых нет в схеме
	ErrUnknownKeys = errors.New("catalog.loader: unknown keys in catalog file")
)
