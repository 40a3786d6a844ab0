package get_available_slots

import (
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	AreaID          int64              // ID области
	Date            types.CalendarDate // Дата
	DurationMinutes int                // Длительность слота в минутах (по умолчанию 30)
	Seats           int                // Количество мест (для seat pool, по умолчанию 1)
}

// Slot доступный слот
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Response модель ответа со списком доступных слотов.
// Пустой список - корректный результат ("нет доступности"), не ошибка.
type Response struct {
	AreaID          int64
	Date            types.CalendarDate
	DurationMinutes int
	Slots           []Slot
}
