package get_available_slots

import "errors"

var (
	// ErrAreaNotFound возвращается, когда область не найдена
	ErrAreaNotFound = errors.New("get_available_slots: area not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
