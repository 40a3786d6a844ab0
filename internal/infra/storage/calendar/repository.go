package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/CWS-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Офисный календарь - единственная строка конфигурации
const calendarRowID = 1

// Repository репозиторий для работы с офисным календарём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает офисный календарь.
// Если календарь не сконфигурирован, возвращает ErrCalendarNotFound -
// вызывающий слой применяет permissive-календарь по умолчанию.
func (r *Repository) Get(ctx context.Context) (*domain.OfficeCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sunday",
		"monday",
		"tuesday",
		"wednesday",
		"thursday",
		"friday",
		"saturday",
		"open_time",
		"close_time",
		"updated_at",
	).
		From("office_calendar").
		Where(squirrel.Eq{"id": calendarRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cal domain.OfficeCalendar
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cal.Weekdays[time.Sunday],
		&cal.Weekdays[time.Monday],
		&cal.Weekdays[time.Tuesday],
		&cal.Weekdays[time.Wednesday],
		&cal.Weekdays[time.Thursday],
		&cal.Weekdays[time.Friday],
		&cal.Weekdays[time.Saturday],
		&cal.OpenTime,
		&cal.CloseTime,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan calendar: %v", ErrScanRow, err)
	}

	cal.UpdatedAt = updatedAt.Time

	return &cal, nil
}

// Upsert сохраняет офисный календарь (вставка или полная замена строки)
func (r *Repository) Upsert(ctx context.Context, cal *domain.OfficeCalendar) (*domain.OfficeCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("office_calendar").
		Columns(
			"id",
			"sunday",
			"monday",
			"tuesday",
			"wednesday",
			"thursday",
			"friday",
			"saturday",
			"open_time",
			"close_time",
		).
		Values(
			calendarRowID,
			cal.Weekdays[time.Sunday],
			cal.Weekdays[time.Monday],
			cal.Weekdays[time.Tuesday],
			cal.Weekdays[time.Wednesday],
			cal.Weekdays[time.Thursday],
			cal.Weekdays[time.Friday],
			cal.Weekdays[time.Saturday],
			cal.OpenTime,
			cal.CloseTime,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			sunday = EXCLUDED.sunday,
			monday = EXCLUDED.monday,
			tuesday = EXCLUDED.tuesday,
			wednesday = EXCLUDED.wednesday,
			thursday = EXCLUDED.thursday,
			friday = EXCLUDED.friday,
			saturday = EXCLUDED.saturday,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}
