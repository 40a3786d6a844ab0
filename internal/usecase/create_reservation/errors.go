package create_reservation

import "errors"

var (
	// ErrAreaNotFound возвращается, когда область не найдена
	ErrAreaNotFound = errors.New("create_reservation: area not found")

	// ErrTimeConflict возвращается при пересечении с существующим бронированием
	ErrTimeConflict = errors.New("create_reservation: time conflict with existing reservation")

	// ErrCapacityExceeded возвращается, когда мест на дату недостаточно
	ErrCapacityExceeded = errors.New("create_reservation: area capacity exceeded")

	// ErrDateFullyBooked возвращается, когда дата полностью занята
	ErrDateFullyBooked = errors.New("create_reservation: date is fully booked")

	// ErrOutsideOfficeHours возвращается, когда интервал выходит за офисные часы
	ErrOutsideOfficeHours = errors.New("create_reservation: outside office hours")

	// ErrNonOfficeDay возвращается, когда дата приходится на нерабочий день
	ErrNonOfficeDay = errors.New("create_reservation: not an office day")

	// ErrPastDateTime возвращается при попытке забронировать прошедшее время
	ErrPastDateTime = errors.New("create_reservation: date/time is in the past")

	// ErrRecurrenceTooLong возвращается, когда правило повторения раскрывается в слишком много дат
	ErrRecurrenceTooLong = errors.New("create_reservation: recurrence expands to too many dates")

	// ErrAllDatesRejected возвращается, когда ни одна дата серии не прошла проверку
	ErrAllDatesRejected = errors.New("create_reservation: no dates in the series are available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
