package area

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-ReservationService/internal/domain"
	"github.com/m04kA/CWS-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/CWS-ReservationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var areaColumns = []string{
	"id",
	"name",
	"capacity",
	"is_meeting_room",
	"is_full_day",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с областями бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория областей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую область
func (r *Repository) Create(ctx context.Context, a *domain.Area) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("areas").
		Columns("name", "capacity", "is_meeting_room", "is_full_day").
		Values(a.Name, a.Capacity, a.IsMeetingRoom, a.IsFullDayReservation).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает область по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(areaColumns...).
		From("areas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Area
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.Name,
		&a.Capacity,
		&a.IsMeetingRoom,
		&a.IsFullDayReservation,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan area: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// GetAll получает все области, отсортированные по имени
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(areaColumns...).
		From("areas").
		OrderBy("name ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	areas := make([]*domain.Area, 0)

	for rows.Next() {
		var a domain.Area
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Capacity,
			&a.IsMeetingRoom,
			&a.IsFullDayReservation,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time
		areas = append(areas, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return areas, nil
}

// Update обновляет область. Изменение вместимости не затрагивает уже
// существующие бронирования - оно влияет только на будущие проверки.
func (r *Repository) Update(ctx context.Context, id int64, a *domain.Area) (*domain.Area, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("areas").
		Set("name", a.Name).
		Set("capacity", a.Capacity).
		Set("is_meeting_room", a.IsMeetingRoom).
		Set("is_full_day", a.IsFullDayReservation).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	a.ID = id
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// Delete удаляет область
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("areas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAreaNotFound
	}

	return nil
}
