package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// weekdaysCalendar офисный календарь Пн-Пт 08:00-18:00
func weekdaysCalendar() *domain.OfficeCalendar {
	cal := &domain.OfficeCalendar{
		OpenTime:  "08:00",
		CloseTime: "18:00",
	}
	for wd := time.Monday; wd <= time.Friday; wd++ {
		cal.Weekdays[wd] = true
	}
	return cal
}

func TestOfficeCalendar_Validate(t *testing.T) {
	cal := weekdaysCalendar()
	assert.NoError(t, cal.Validate())

	// Открытие должно быть строго раньше закрытия
	broken := weekdaysCalendar()
	broken.OpenTime = "18:00"
	broken.CloseTime = "08:00"
	assert.Error(t, broken.Validate())

	// Календарь без офисных дней - ошибка конфигурации
	empty := &domain.OfficeCalendar{OpenTime: "08:00", CloseTime: "18:00"}
	assert.ErrorIs(t, empty.Validate(), domain.ErrNoOfficeDays)
}

func TestOfficeCalendar_IsOfficeDay(t *testing.T) {
	cal := weekdaysCalendar()

	tuesday := types.NewCalendarDate(2025, time.September, 9)
	saturday := types.NewCalendarDate(2025, time.September, 13)

	assert.True(t, cal.IsOfficeDay(tuesday))
	assert.False(t, cal.IsOfficeDay(saturday))
}

func TestOfficeCalendar_IsOfficeHour(t *testing.T) {
	cal := weekdaysCalendar()

	assert.True(t, cal.IsOfficeHour("08:00"))
	assert.True(t, cal.IsOfficeHour("17:59"))
	// Время закрытия не является допустимым началом (полуоткрытый интервал)
	assert.False(t, cal.IsOfficeHour("18:00"))
	assert.False(t, cal.IsOfficeHour("07:59"))
}

func TestOfficeCalendar_NilReceiverIsPermissive(t *testing.T) {
	var cal *domain.OfficeCalendar

	anyDay := types.NewCalendarDate(2025, time.September, 13) // суббота
	assert.True(t, cal.IsOfficeDay(anyDay))
	assert.Equal(t, types.TimeString(domain.DefaultOpenTime), cal.Open())
	assert.Equal(t, types.TimeString(domain.DefaultCloseTime), cal.Close())
	assert.True(t, cal.IsOfficeHour("10:00"))
}

func TestOfficeCalendar_NextOfficeDay(t *testing.T) {
	cal := weekdaysCalendar()

	friday := types.NewCalendarDate(2025, time.September, 12)
	next, err := cal.NextOfficeDay(friday)
	require.NoError(t, err)
	// Суббота и воскресенье пропускаются
	assert.Equal(t, types.NewCalendarDate(2025, time.September, 15), next)

	empty := &domain.OfficeCalendar{OpenTime: "08:00", CloseTime: "18:00"}
	_, err = empty.NextOfficeDay(friday)
	assert.ErrorIs(t, err, domain.ErrNoOfficeDays)
}

func TestOfficeCalendar_MinBookableDate(t *testing.T) {
	cal := weekdaysCalendar()

	// Офисный день до открытия - сегодня ещё доступно
	earlyMorning := time.Date(2025, time.September, 9, 6, 0, 0, 0, time.UTC)
	d, err := cal.MinBookableDate(earlyMorning)
	require.NoError(t, err)
	assert.Equal(t, types.NewCalendarDate(2025, time.September, 9), d)

	// После открытия - следующий офисный день
	afternoon := time.Date(2025, time.September, 9, 12, 0, 0, 0, time.UTC)
	d, err = cal.MinBookableDate(afternoon)
	require.NoError(t, err)
	assert.Equal(t, types.NewCalendarDate(2025, time.September, 10), d)

	// Суббота - ближайший понедельник
	saturday := time.Date(2025, time.September, 13, 6, 0, 0, 0, time.UTC)
	d, err = cal.MinBookableDate(saturday)
	require.NoError(t, err)
	assert.Equal(t, types.NewCalendarDate(2025, time.September, 15), d)
}
