package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areastorage "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// fakeNow - вторник 2025-09-09 07:00 UTC, до открытия офиса
var fakeNow = time.Date(2025, time.September, 9, 7, 0, 0, 0, time.UTC)

var tuesday = types.NewCalendarDate(2025, time.September, 9)

type fakeLogger struct{}

func (fakeLogger) Info(string, ...interface{})  {}
func (fakeLogger) Warn(string, ...interface{})  {}
func (fakeLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct{ now time.Time }

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeAreaRepo struct{ areas map[int64]*domain.Area }

func (r *fakeAreaRepo) GetByID(_ context.Context, id int64) (*domain.Area, error) {
	area, ok := r.areas[id]
	if !ok {
		return nil, areastorage.ErrAreaNotFound
	}
	return area, nil
}

type fakeReservationRepo struct{ reservations []*domain.Reservation }

func (r *fakeReservationRepo) GetActiveByAreaAndDate(_ context.Context, areaID int64, date types.CalendarDate) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.AreaID == areaID && res.Date.Equal(date) && res.IsActive() {
			result = append(result, res)
		}
	}
	return result, nil
}

type fakeCalendarProvider struct{ cal *domain.OfficeCalendar }

func (p *fakeCalendarProvider) GetDomain(context.Context) (*domain.OfficeCalendar, error) {
	return p.cal, nil
}

// officeCalendar - понедельник-пятница, 09:00-12:00 (короткий день,
// чтобы список слотов был обозримым)
func officeCalendar() *domain.OfficeCalendar {
	cal := &domain.OfficeCalendar{
		OpenTime:  "09:00",
		CloseTime: "12:00",
	}
	for d := time.Monday; d <= time.Friday; d++ {
		cal.Weekdays[d] = true
	}
	return cal
}

func newTestUseCase(areas map[int64]*domain.Area, reservations []*domain.Reservation) *UseCase {
	uc := NewUseCase(
		&fakeReservationRepo{reservations: reservations},
		&fakeAreaRepo{areas: areas},
		&fakeCalendarProvider{cal: officeCalendar()},
		fakeLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: fakeNow}
	return uc
}

func meetingReservation(start, end types.TimeString) *domain.Reservation {
	return &domain.Reservation{
		AreaID:    2,
		Status:    domain.StatusConfirmed,
		Date:      tuesday,
		StartTime: start,
		EndTime:   end,
		Seats:     8,
	}
}

func TestExecute_EmptyRoomAllSlots(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:          2,
		Date:            tuesday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// 09:00-12:00 с шагом 30 минут: старты 09:00, 09:30, 10:00, 10:30, 11:00
	expected := []Slot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "09:30", EndTime: "10:30"},
		{StartTime: "10:00", EndTime: "11:00"},
		{StartTime: "10:30", EndTime: "11:30"},
		{StartTime: "11:00", EndTime: "12:00"},
	}
	assert.Equal(t, expected, resp.Slots)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_SlotsExcludeConflicts(t *testing.T) {
	existing := []*domain.Reservation{meetingReservation("10:00", "11:00")}

	uc := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	}, existing)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:          2,
		Date:            tuesday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// Любой слот, пересекающийся с [10:00, 11:00), исключён;
	// граничащий слот 11:00-12:00 остаётся
	expected := []Slot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "11:00", EndTime: "12:00"},
	}
	assert.Equal(t, expected, resp.Slots)
}

// Каждый выданный слот обязан проходить тот же детектор конфликтов,
// что и создание бронирования
func TestExecute_SlotsAreSound(t *testing.T) {
	existing := []*domain.Reservation{
		meetingReservation("09:30", "10:00"),
		meetingReservation("11:00", "11:30"),
	}

	area := &domain.Area{ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true}
	uc := newTestUseCase(map[int64]*domain.Area{2: area}, existing)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:          2,
		Date:            tuesday,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	for _, slot := range resp.Slots {
		decision := domain.CheckReservation(&domain.ReservationRequest{
			Area:      area,
			Date:      tuesday,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Seats:     1,
		}, officeCalendar(), existing, fakeNow)
		assert.True(t, decision.Accepted, "slot %s-%s must be bookable", slot.StartTime, slot.EndTime)
	}
}

// Каждый кандидат вне ответа обязан отклоняться детектором конфликтов
func TestExecute_SlotsAreComplete(t *testing.T) {
	existing := []*domain.Reservation{
		meetingReservation("09:30", "10:00"),
		meetingReservation("11:00", "11:30"),
	}

	area := &domain.Area{ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true}
	uc := newTestUseCase(map[int64]*domain.Area{2: area}, existing)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:          2,
		Date:            tuesday,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	returned := make(map[types.TimeString]bool)
	for _, slot := range resp.Slots {
		returned[slot.StartTime] = true
	}

	cal := officeCalendar()
	for candidate := cal.Open(); candidate.IsBefore(cal.Close()); {
		candidateEnd, err := candidate.AddMinutes(30)
		require.NoError(t, err)
		if cal.Close().IsBefore(candidateEnd) {
			break
		}

		decision := domain.CheckReservation(&domain.ReservationRequest{
			Area:      area,
			Date:      tuesday,
			StartTime: candidate,
			EndTime:   candidateEnd,
			Seats:     1,
		}, cal, existing, fakeNow)

		if !returned[candidate] {
			assert.False(t, decision.Accepted, "missing slot %s must be rejected", candidate)
			assert.NotEmpty(t, decision.Reason)
		}

		candidate, err = candidate.AddMinutes(domain.SlotStepMinutes)
		require.NoError(t, err)
	}
}

func TestExecute_DefaultDuration(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID: 1,
		Date:   tuesday,
		Seats:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotStepMinutes, resp.DurationMinutes)
	// 09:00-12:00 с 30-минутными слотами: 6 стартов
	assert.Len(t, resp.Slots, 6)
}

func TestExecute_SeatPoolCapacityFiltersSlots(t *testing.T) {
	// Hot desk на 5 мест, 4 заняты на дату: запрос на 2 места не проходит
	existing := []*domain.Reservation{
		{AreaID: 1, Status: domain.StatusConfirmed, Date: tuesday, StartTime: "09:00", EndTime: "10:00", Seats: 4},
	}

	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, existing)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID: 1,
		Date:   tuesday,
		Seats:  2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	// На одно место слоты остаются
	resp, err = uc.Execute(context.Background(), &Request{
		AreaID: 1,
		Date:   tuesday,
		Seats:  1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_NonOfficeDayEmpty(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID: 2,
		Date:   types.NewCalendarDate(2025, time.September, 13), // суббота
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FullDayAreaNoIntervalSlots(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		3: {ID: 3, Name: "Event Hall", Capacity: 50, IsFullDayReservation: true},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID: 3,
		Date:   tuesday,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AreaNotFound(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{}, nil)

	_, err := uc.Execute(context.Background(), &Request{AreaID: 99, Date: tuesday})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestExecute_PastSlotsExcluded(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	}, nil)
	// Сейчас 10:15: старты 09:00, 09:30, 10:00 уже в прошлом
	uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2025, time.September, 9, 10, 15, 0, 0, time.UTC),
	}

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:          2,
		Date:            tuesday,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	expected := []Slot{
		{StartTime: "10:30", EndTime: "11:00"},
		{StartTime: "11:00", EndTime: "11:30"},
		{StartTime: "11:30", EndTime: "12:00"},
	}
	assert.Equal(t, expected, resp.Slots)
}
