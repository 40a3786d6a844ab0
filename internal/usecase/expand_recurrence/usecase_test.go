package expand_recurrence

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

// fakeNow - понедельник 2025-09-08 07:00 UTC
var fakeNow = time.Date(2025, time.September, 8, 7, 0, 0, 0, time.UTC)

var monday = types.NewCalendarDate(2025, time.September, 8)

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

// officeCalendar - понедельник-пятница, 08:00-18:00
func officeCalendar() *domain.OfficeCalendar {
	cal := &domain.OfficeCalendar{
		OpenTime:  "08:00",
		CloseTime: "18:00",
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

func TestExecute_VerdictsPerDate(t *testing.T) {
	// Среда 2025-09-10 занята в переговорной
	existing := []*domain.Reservation{{
		AreaID:    2,
		Status:    domain.StatusConfirmed,
		Date:      types.NewCalendarDate(2025, time.September, 10),
		StartTime: "10:00",
		EndTime:   "11:00",
		Seats:     8,
	}}

	uc := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	}, existing)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:    2,
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Type:      "weekly",
		Interval:  1,
		EndDate:   types.NewCalendarDate(2025, time.September, 22),
		Weekdays:  []string{"monday", "wednesday"},
	})
	require.NoError(t, err)

	// 09-08, 09-10, 09-15, 09-17, 09-22
	require.Len(t, resp.Dates, 5)

	for _, v := range resp.Dates {
		if v.Date.Equal(types.NewCalendarDate(2025, time.September, 10)) {
			assert.False(t, v.Accepted)
			assert.Equal(t, string(domain.ReasonTimeOverlap), v.Reason)
		} else {
			assert.True(t, v.Accepted, "date %s must be accepted", v.Date)
			assert.Empty(t, v.Reason)
		}
	}
}

func TestExecute_NonOfficeDaysRejected(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, nil)

	// Ежедневная серия понедельник-воскресенье: суббота и воскресенье отклонены
	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:    1,
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Seats:     1,
		Type:      "daily",
		EndDate:   monday.AddDays(6),
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 7)

	accepted := 0
	for _, v := range resp.Dates {
		if v.Accepted {
			accepted++
		} else {
			assert.Equal(t, string(domain.ReasonNonOfficeDay), v.Reason)
		}
	}
	assert.Equal(t, 5, accepted)
}

// Предпросмотр обязан следовать тем же правилам нормализации, что и
// создание: опущенное количество мест означает одно место
func TestExecute_DefaultSeatsMatchCreate(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:    1,
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Type:      "daily",
		EndDate:   monday.AddDays(2),
	})
	require.NoError(t, err)
	require.Len(t, resp.Dates, 3)

	for _, v := range resp.Dates {
		assert.True(t, v.Accepted, "date %s: %s", v.Date, v.Reason)
	}
}

func TestExecute_RequestMustMatchAreaKind(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
		3: {ID: 3, Name: "Event Hall", Capacity: 50, IsFullDayReservation: true},
	}, nil)
	ctx := context.Background()

	// Заявка на весь день против переговорной отклоняется, как и при создании
	_, err := uc.Execute(ctx, &Request{
		AreaID:  2,
		Date:    monday,
		Type:    "daily",
		EndDate: monday.AddDays(2),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Интервальная заявка против full-day области отклоняется
	_, err = uc.Execute(ctx, &Request{
		AreaID:    3,
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Type:      "daily",
		EndDate:   monday.AddDays(2),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyExpansion(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		AreaID:    1,
		Date:      monday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Seats:     1,
		Type:      "daily",
		EndDate:   monday.AddDays(-1),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
}

func TestExecute_InvalidRule(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  *Request
	}{
		{"unknown type", &Request{AreaID: 1, Date: monday, EndDate: monday.AddDays(7), Type: "yearly"}},
		{"missing end date", &Request{AreaID: 1, Date: monday, Type: "daily"}},
		{"bad weekday", &Request{AreaID: 1, Date: monday, EndDate: monday.AddDays(7), Type: "weekly", Weekdays: []string{"someday"}}},
		{"unpaired times", &Request{AreaID: 1, Date: monday, EndDate: monday.AddDays(7), Type: "daily", StartTime: "10:00"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, c.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_AreaNotFound(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AreaID:  99,
		Date:    monday,
		Type:    "daily",
		EndDate: monday.AddDays(3),
	})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestExecute_RecurrenceTooLong(t *testing.T) {
	uc := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		AreaID:  1,
		Date:    monday,
		Type:    "daily",
		EndDate: monday.AddDays(domain.MaxRecurrenceDates + 10),
	})
	assert.ErrorIs(t, err, ErrRecurrenceTooLong)
}
