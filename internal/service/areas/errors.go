package areas

import "errors"

var (
	// ErrAreaNotFound возвращается, когда область не найдена
	ErrAreaNotFound = errors.New("area not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
