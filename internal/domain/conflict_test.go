package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// testNow - вторник 2025-09-09 07:00 UTC, раньше всех тестовых дат
var testNow = time.Date(2025, time.September, 9, 7, 0, 0, 0, time.UTC)

// officeTuesday - рабочий вторник
var officeTuesday = types.NewCalendarDate(2025, time.September, 9)

func hotDesk(capacity int) *domain.Area {
	return &domain.Area{ID: 1, Name: "Hot Desk", Capacity: capacity}
}

func meetingRoom() *domain.Area {
	return &domain.Area{ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true}
}

func fullDayRoom() *domain.Area {
	return &domain.Area{ID: 3, Name: "Event Hall", Capacity: 50, IsFullDayReservation: true}
}

func activeReservation(start, end types.TimeString, seats int) *domain.Reservation {
	return &domain.Reservation{
		Status:    domain.StatusConfirmed,
		Date:      officeTuesday,
		StartTime: start,
		EndTime:   end,
		Seats:     seats,
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd types.TimeString
	}{
		{"10:00", "11:00", "10:30", "11:30"},
		{"10:00", "11:00", "11:00", "12:00"},
		{"08:00", "18:00", "09:00", "09:30"},
		{"10:00", "10:30", "14:00", "15:00"},
	}

	for _, c := range cases {
		assert.Equal(t,
			domain.Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd),
			domain.Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd),
			"overlaps(%s-%s, %s-%s) must be symmetric", c.aStart, c.aEnd, c.bStart, c.bEnd)
	}
}

func TestOverlaps_HalfOpenSemantics(t *testing.T) {
	// Пересекающиеся интервалы
	assert.True(t, domain.Overlaps("10:00", "11:00", "10:30", "11:30"))
	// Граничащие интервалы не пересекаются: конец одного равен началу другого
	assert.False(t, domain.Overlaps("10:00", "11:00", "11:00", "12:00"))
	assert.False(t, domain.Overlaps("11:00", "12:00", "10:00", "11:00"))
	// Вложенный интервал
	assert.True(t, domain.Overlaps("09:00", "18:00", "10:00", "10:30"))
}

func TestFindConflicts_EmptyExistingSet(t *testing.T) {
	conflicts := domain.FindConflicts("10:00", "11:00", nil)
	assert.Empty(t, conflicts)

	conflicts = domain.FindConflicts("10:00", "11:00", []*domain.Reservation{})
	assert.Empty(t, conflicts)
}

func TestFindConflicts_IgnoresInactive(t *testing.T) {
	cancelled := activeReservation("10:00", "11:00", 1)
	cancelled.Status = domain.StatusCancelled

	conflicts := domain.FindConflicts("10:00", "11:00", []*domain.Reservation{cancelled})
	assert.Empty(t, conflicts)
}

func TestFindConflicts_FullDayBlocksAnyInterval(t *testing.T) {
	fullDay := activeReservation("", "", 1)

	conflicts := domain.FindConflicts("10:00", "11:00", []*domain.Reservation{fullDay})
	assert.Len(t, conflicts, 1)
}

// Сценарий: Hot Desk вместимостью 5, без бронирований - запрос 3 мест принят
func TestCheckReservation_SeatPoolAccepted(t *testing.T) {
	req := &domain.ReservationRequest{
		Area:      hotDesk(5),
		Date:      officeTuesday,
		StartTime: "10:00",
		EndTime:   "12:00",
		Seats:     3,
	}

	decision := domain.CheckReservation(req, weekdaysCalendar(), nil, testNow)
	assert.True(t, decision.Accepted)
}

// Сценарий: после первых 3 мест запрос ещё 3 на вместимости 5 отклоняется
func TestCheckReservation_SeatPoolCapacityExceeded(t *testing.T) {
	existing := []*domain.Reservation{activeReservation("10:00", "12:00", 3)}

	req := &domain.ReservationRequest{
		Area:      hotDesk(5),
		Date:      officeTuesday,
		StartTime: "14:00",
		EndTime:   "16:00",
		Seats:     3,
	}

	decision := domain.CheckReservation(req, weekdaysCalendar(), existing, testNow)
	assert.False(t, decision.Accepted)
	assert.Equal(t, domain.ReasonCapacityExceeded, decision.Reason)
}

// Сценарий: переговорная с бронью 10:00-11:00, запрос 10:30-11:30 - пересечение
func TestCheckReservation_MeetingRoomTimeOverlap(t *testing.T) {
	existing := []*domain.Reservation{activeReservation("10:00", "11:00", 1)}

	req := &domain.ReservationRequest{
		Area:      meetingRoom(),
		Date:      officeTuesday,
		StartTime: "10:30",
		EndTime:   "11:30",
		Seats:     1,
	}

	decision := domain.CheckReservation(req, weekdaysCalendar(), existing, testNow)
	assert.False(t, decision.Accepted)
	assert.Equal(t, domain.ReasonTimeOverlap, decision.Reason)
	assert.Len(t, decision.Conflicts, 1)
}

// Сценарий: граничащий интервал 11:00-12:00 после брони 10:00-11:00 принят
func TestCheckReservation_MeetingRoomAdjacentAccepted(t *testing.T) {
	existing := []*domain.Reservation{activeReservation("10:00", "11:00", 1)}

	req := &domain.ReservationRequest{
		Area:      meetingRoom(),
		Date:      officeTuesday,
		StartTime: "11:00",
		EndTime:   "12:00",
		Seats:     1,
	}

	decision := domain.CheckReservation(req, weekdaysCalendar(), existing, testNow)
	assert.True(t, decision.Accepted)
}

// Сценарий: суббота неактивна в календаре - NonOfficeDay
func TestCheckReservation_NonOfficeDay(t *testing.T) {
	saturday := types.NewCalendarDate(2025, time.September, 13)

	req := &domain.ReservationRequest{
		Area:      hotDesk(5),
		Date:      saturday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Seats:     1,
	}

	decision := domain.CheckReservation(req, weekdaysCalendar(), nil, testNow)
	assert.False(t, decision.Accepted)
	assert.Equal(t, domain.ReasonNonOfficeDay, decision.Reason)
}

func TestCheckReservation_OutsideOfficeHours(t *testing.T) {
	cases := []struct {
		name       string
		start, end types.TimeString
	}{
		{"start before open", "07:00", "09:00"},
		{"start at close", "18:00", "19:00"},
		{"end after close", "17:30", "18:30"},
		{"start equals end", "10:00", "10:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := &domain.ReservationRequest{
				Area:      hotDesk(5),
				Date:      officeTuesday,
				StartTime: c.start,
				EndTime:   c.end,
				Seats:     1,
			}

			decision := domain.CheckReservation(req, weekdaysCalendar(), nil, testNow)
			assert.False(t, decision.Accepted)
			assert.Equal(t, domain.ReasonOutsideOfficeHours, decision.Reason)
		})
	}
}

func TestCheckReservation_PastDateTime(t *testing.T) {
	// Вчерашняя дата
	yesterday := types.NewCalendarDate(2025, time.September, 8)
	req := &domain.ReservationRequest{
		Area:      hotDesk(5),
		Date:      yesterday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Seats:     1,
	}
	decision := domain.CheckReservation(req, weekdaysCalendar(), nil, testNow)
	assert.Equal(t, domain.ReasonPastDateTime, decision.Reason)

	// Сегодня, но время начала уже прошло (сейчас 12:00)
	noon := time.Date(2025, time.September, 9, 12, 0, 0, 0, time.UTC)
	req.Date = officeTuesday
	decision = domain.CheckReservation(req, weekdaysCalendar(), nil, noon)
	assert.Equal(t, domain.ReasonPastDateTime, decision.Reason)

	// Сегодня, время начала ещё впереди
	req.StartTime = "14:00"
	req.EndTime = "15:00"
	decision = domain.CheckReservation(req, weekdaysCalendar(), nil, noon)
	assert.True(t, decision.Accepted)
}

// Full-day область одноместна в пределах даты
func TestCheckReservation_FullDaySingleOccupancy(t *testing.T) {
	req := &domain.ReservationRequest{
		Area: fullDayRoom(),
		Date: officeTuesday,
	}

	decision := domain.CheckReservation(req, weekdaysCalendar(), nil, testNow)
	assert.True(t, decision.Accepted)

	existing := []*domain.Reservation{activeReservation("", "", 1)}
	decision = domain.CheckReservation(req, weekdaysCalendar(), existing, testNow)
	assert.False(t, decision.Accepted)
	assert.Equal(t, domain.ReasonDateFullyBooked, decision.Reason)
}

// Инвариант вместимости: после каждой принятой брони сумма мест <= вместимости
func TestCheckReservation_CapacityInvariant(t *testing.T) {
	area := hotDesk(5)
	existing := []*domain.Reservation{}

	seatRequests := []int{2, 1, 2, 1, 3}
	for _, seats := range seatRequests {
		req := &domain.ReservationRequest{
			Area:      area,
			Date:      officeTuesday,
			StartTime: "10:00",
			EndTime:   "12:00",
			Seats:     seats,
		}

		decision := domain.CheckReservation(req, weekdaysCalendar(), existing, testNow)
		if decision.Accepted {
			existing = append(existing, activeReservation("10:00", "12:00", seats))
		}

		assert.LessOrEqual(t, domain.SeatsTaken(existing), area.Capacity)
	}

	// 2+1+2 = 5 мест заняты, последние два запроса отклонены
	assert.Equal(t, 5, domain.SeatsTaken(existing))
	assert.Len(t, existing, 3)
}

func TestIsDateFullyBooked(t *testing.T) {
	cal := weekdaysCalendar()

	t.Run("full day area", func(t *testing.T) {
		area := fullDayRoom()
		assert.False(t, domain.IsDateFullyBooked(area, cal, nil))
		assert.True(t, domain.IsDateFullyBooked(area, cal, []*domain.Reservation{activeReservation("", "", 1)}))
	})

	t.Run("seat pool", func(t *testing.T) {
		area := hotDesk(3)
		existing := []*domain.Reservation{activeReservation("10:00", "12:00", 2)}
		assert.False(t, domain.IsDateFullyBooked(area, cal, existing))

		existing = append(existing, activeReservation("14:00", "16:00", 1))
		assert.True(t, domain.IsDateFullyBooked(area, cal, existing))
	})

	t.Run("meeting room covered hours", func(t *testing.T) {
		area := meetingRoom()
		// Одна бронь не покрывает весь день
		partial := []*domain.Reservation{activeReservation("08:00", "12:00", 1)}
		assert.False(t, domain.IsDateFullyBooked(area, cal, partial))

		// Две брони целиком покрывают 08:00-18:00
		full := []*domain.Reservation{
			activeReservation("08:00", "13:00", 1),
			activeReservation("13:00", "18:00", 1),
		}
		assert.True(t, domain.IsDateFullyBooked(area, cal, full))
	})
}
