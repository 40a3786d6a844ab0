package calendar

import "errors"

var (
	ErrInvalidInput = errors.New("calendar.service: invalid input")
	ErrInternal     = errors.New("calendar.service: internal error")
)
