package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	areastorage "github.com/m04kA/CWS-ReservationService/internal/infra/storage/area"
	"github.com/m04kA/CWS-ReservationService/internal/integrations/userservice"
	"github.com/m04kA/CWS-ReservationService/pkg/ptr"
	"github.com/m04kA/CWS-ReservationService/pkg/types"
)

// fakeNow - вторник 2025-09-09 07:00 UTC
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

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	nextID       int64
}

func (r *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.nextID++
	stored := *res
	stored.ID = r.nextID
	r.reservations = append(r.reservations, &stored)
	return &stored, nil
}

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

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (c *fakeUserClient) GetUserWithGracefulDegradation(context.Context, int64) (*userservice.User, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.user, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(areas map[int64]*domain.Area) (*UseCase, *fakeReservationRepo) {
	repo := &fakeReservationRepo{}

	uc := NewUseCase(
		repo,
		&fakeAreaRepo{areas: areas},
		&fakeCalendarProvider{cal: officeCalendar()},
		&fakeUserClient{user: &userservice.User{ID: 42, Name: "Ivan"}},
		fakeTxManager{},
		fakeLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: fakeNow}
	return uc, repo
}

func TestExecute_SingleReservation(t *testing.T) {
	uc, repo := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Open Space", Capacity: 10},
	})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		AreaID:    1,
		Date:      tuesday,
		StartTime: "10:00",
		EndTime:   "12:00",
		Seats:     2,
		Notes:     ptr.Ptr("у окна"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Created, 1)
	created := resp.Created[0]
	assert.Equal(t, string(domain.StatusConfirmed), created.Status)
	assert.Equal(t, 2, created.Seats)
	assert.Equal(t, "Open Space", created.AreaName)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "у окна", *created.Notes)
	require.NotNil(t, created.UserName)
	assert.Equal(t, "Ivan", *created.UserName)
	assert.Nil(t, resp.SeriesID)
	assert.Empty(t, resp.Skipped)

	assert.Len(t, repo.reservations, 1)
}

func TestExecute_AreaNotFound(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{})

	_, err := uc.Execute(context.Background(), &Request{
		UserID:    42,
		AreaID:    99,
		Date:      tuesday,
		StartTime: "10:00",
		EndTime:   "11:00",
		Seats:     1,
	})
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestExecute_MeetingRoomConflict(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	})

	first := &Request{
		UserID:    42,
		AreaID:    2,
		Date:      tuesday,
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := &Request{
		UserID:    43,
		AreaID:    2,
		Date:      tuesday,
		StartTime: "10:30",
		EndTime:   "11:30",
	}
	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Граничащий интервал проходит
	third := &Request{
		UserID:    43,
		AreaID:    2,
		Date:      tuesday,
		StartTime: "11:00",
		EndTime:   "12:00",
	}
	_, err = uc.Execute(context.Background(), third)
	assert.NoError(t, err)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1, Date: tuesday,
		StartTime: "10:00", EndTime: "12:00", Seats: 3,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		UserID: 43, AreaID: 1, Date: tuesday,
		StartTime: "14:00", EndTime: "16:00", Seats: 3,
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
		3: {ID: 3, Name: "Event Hall", Capacity: 50, IsFullDayReservation: true},
	})
	ctx := context.Background()

	cases := []struct {
		name string
		req  *Request
	}{
		{"missing end time", &Request{UserID: 42, AreaID: 1, Date: tuesday, StartTime: "10:00", Seats: 1}},
		{"start after end", &Request{UserID: 42, AreaID: 1, Date: tuesday, StartTime: "12:00", EndTime: "10:00", Seats: 1}},
		{"duration too short", &Request{UserID: 42, AreaID: 1, Date: tuesday, StartTime: "10:00", EndTime: "10:15", Seats: 1}},
		{"times on full-day area", &Request{UserID: 42, AreaID: 3, Date: tuesday, StartTime: "10:00", EndTime: "12:00", Seats: 1}},
		{"missing times on interval area", &Request{UserID: 42, AreaID: 1, Date: tuesday, Seats: 1}},
		{"seats exceed capacity", &Request{UserID: 42, AreaID: 1, Date: tuesday, StartTime: "10:00", EndTime: "12:00", Seats: 6}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, c.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_FullDayArea(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		3: {ID: 3, Name: "Event Hall", Capacity: 50, IsFullDayReservation: true},
	})

	req := &Request{UserID: 42, AreaID: 3, Date: tuesday}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, 50, resp.Created[0].Seats)

	// Вторая заявка на ту же дату: дата уже занята
	req.UserID = 43
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateFullyBooked)
}

func TestExecute_SeriesPartialSuccess(t *testing.T) {
	uc, repo := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	})
	ctx := context.Background()

	// Занимаем среду 2025-09-10 заранее
	wednesday := types.NewCalendarDate(2025, time.September, 10)
	_, err := uc.Execute(ctx, &Request{
		UserID: 7, AreaID: 2, Date: wednesday,
		StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	// Серия вторник/среда до 2025-09-16: среда 10-го пропускается
	resp, err := uc.Execute(ctx, &Request{
		UserID: 42, AreaID: 2, Date: tuesday,
		StartTime: "10:00", EndTime: "11:00",
		Recurrence: &Recurrence{
			Type:     "weekly",
			Interval: 1,
			EndDate:  types.NewCalendarDate(2025, time.September, 16),
			Weekdays: []string{"tuesday", "wednesday"},
		},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.SeriesID)
	require.Len(t, resp.Created, 2)
	assert.True(t, resp.Created[0].Date.Equal(tuesday))
	assert.True(t, resp.Created[1].Date.Equal(types.NewCalendarDate(2025, time.September, 16)))

	require.Len(t, resp.Skipped, 1)
	assert.True(t, resp.Skipped[0].Date.Equal(wednesday))
	assert.Equal(t, string(domain.ReasonTimeOverlap), resp.Skipped[0].Reason)

	// Все созданные бронирования несут идентификатор серии
	for _, created := range resp.Created {
		require.NotNil(t, created.SeriesID)
		assert.Equal(t, *resp.SeriesID, *created.SeriesID)
	}

	// В репозитории: 1 одиночное + 2 из серии
	assert.Len(t, repo.reservations, 3)
}

func TestExecute_SeriesAllDatesRejected(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		2: {ID: 2, Name: "Sala A", Capacity: 8, IsMeetingRoom: true},
	})
	ctx := context.Background()

	// Занимаем обе даты серии
	for _, date := range []types.CalendarDate{tuesday, types.NewCalendarDate(2025, time.September, 16)} {
		_, err := uc.Execute(ctx, &Request{
			UserID: 7, AreaID: 2, Date: date,
			StartTime: "10:00", EndTime: "11:00",
		})
		require.NoError(t, err)
	}

	resp, err := uc.Execute(ctx, &Request{
		UserID: 42, AreaID: 2, Date: tuesday,
		StartTime: "10:00", EndTime: "11:00",
		Recurrence: &Recurrence{
			Type:     "weekly",
			Interval: 1,
			EndDate:  types.NewCalendarDate(2025, time.September, 16),
			Weekdays: []string{"tuesday"},
		},
	})
	assert.ErrorIs(t, err, ErrAllDatesRejected)

	// Повердатные причины отказа возвращаются вместе с ошибкой
	require.NotNil(t, resp)
	assert.Empty(t, resp.Created)
	require.Len(t, resp.Skipped, 2)
	for _, skipped := range resp.Skipped {
		assert.Equal(t, string(domain.ReasonTimeOverlap), skipped.Reason)
	}
}

func TestExecute_SeriesEmptyExpansion(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1, Date: tuesday,
		StartTime: "10:00", EndTime: "11:00", Seats: 1,
		Recurrence: &Recurrence{
			Type:    "daily",
			EndDate: tuesday.AddDays(-1),
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RecurrenceTooLong(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1, Date: tuesday,
		StartTime: "10:00", EndTime: "11:00", Seats: 1,
		Recurrence: &Recurrence{
			Type:    "daily",
			EndDate: tuesday.AddDays(domain.MaxRecurrenceDates + 10),
		},
	})
	assert.ErrorIs(t, err, ErrRecurrenceTooLong)
}

func TestExecute_GracefulUserDegradation(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})
	// UserService недоступен: клиент возвращает ErrServiceDegraded,
	// бронирование создаётся без имени пользователя
	uc.userClient = &fakeUserClient{err: userservice.ErrServiceDegraded}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1, Date: tuesday,
		StartTime: "10:00", EndTime: "12:00", Seats: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Nil(t, resp.Created[0].UserName)
}

func TestExecute_UserProfileMissing(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})
	// Профиль не найден: бронирование проходит без денормализованного имени
	uc.userClient = &fakeUserClient{err: userservice.ErrUserNotFound}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1, Date: tuesday,
		StartTime: "10:00", EndTime: "12:00", Seats: 1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Nil(t, resp.Created[0].UserName)
}

func TestExecute_UserClientInternalError(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})
	uc.userClient = &fakeUserClient{err: userservice.ErrInvalidResponse}

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1, Date: tuesday,
		StartTime: "10:00", EndTime: "12:00", Seats: 1,
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_PastDateTime(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1,
		Date:      types.NewCalendarDate(2025, time.September, 8),
		StartTime: "10:00", EndTime: "11:00", Seats: 1,
	})
	assert.ErrorIs(t, err, ErrPastDateTime)
}

func TestExecute_NonOfficeDay(t *testing.T) {
	uc, _ := newTestUseCase(map[int64]*domain.Area{
		1: {ID: 1, Name: "Hot Desk", Capacity: 5},
	})

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 42, AreaID: 1,
		Date:      types.NewCalendarDate(2025, time.September, 13), // суббота
		StartTime: "10:00", EndTime: "11:00", Seats: 1,
	})
	assert.ErrorIs(t, err, ErrNonOfficeDay)
}
