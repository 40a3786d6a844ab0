package expand_recurrence

import "errors"

var (
	// ErrAreaNotFound возвращается, когда область не найдена
	ErrAreaNotFound = errors.New("expand_recurrence: area not found")

	// ErrRecurrenceTooLong возвращается, когда правило раскрывается в слишком много дат
	ErrRecurrenceTooLong = errors.New("expand_recurrence: recurrence expands to too many dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("expand_recurrence: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("expand_recurrence: internal error")
)
