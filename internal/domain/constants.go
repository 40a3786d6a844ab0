package domain

// Значения офисного календаря по умолчанию (когда календарь не настроен)
const (
	DefaultOpenTime  = "08:00"
	DefaultCloseTime = "20:00"
)

// Дискретизация слотов: кандидаты времени начала и проверка покрытия
// всего дня считаются на фиксированной 30-минутной сетке
const (
	SlotStepMinutes = 30
)

// Константы бизнес-валидации
const (
	MinAreaCapacity = 1
	MaxAreaCapacity = 500

	MinDurationMinutes = SlotStepMinutes
	MaxDurationMinutes = 12 * 60

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500

	// Верхняя граница материализации повторяющейся серии.
	// Правило, порождающее больше дат, - ошибка конфигурации, а не цикл.
	MaxRecurrenceDates = 366
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не учитываемые при подсчёте занятости
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses статусы, учитываемые при проверке конфликтов и вместимости
var ActiveStatuses = []ReservationStatus{
	StatusActive,
	StatusConfirmed,
}
