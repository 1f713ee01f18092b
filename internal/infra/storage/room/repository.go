package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/dbmetrics"
	"github.com/asidorov/MRS-ReservationService/pkg/psqlbuilder"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// DBExecutor общий интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочника переговорных
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория переговорных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую переговорную
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("name", "type", "capacity", "status").
		Values(room.Name, room.Type, room.Capacity, room.Status).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.ID)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, ErrRoomNameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает переговорную по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "type", "capacity", "status").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.Type,
		&room.Capacity,
		&room.Status,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// List получает список переговорных
// Опционально фильтрует по статусу; порядок стабильный (по id)
func (r *Repository) List(ctx context.Context, status *domain.RoomStatus) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "name", "type", "capacity", "status").
		From("rooms").
		OrderBy("id ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Type, &room.Capacity, &room.Status); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update обновляет данные переговорной
func (r *Repository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("type", room.Type).
		Set("capacity", room.Capacity).
		Set("status", room.Status).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isPQError(err, pqUniqueViolation) {
			return nil, ErrRoomNameTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return nil, ErrRoomNotFound
	}

	return room, nil
}

// Delete удаляет переговорную (физическое удаление справочной записи)
// Бронирования не удаляются никогда; при наличии ссылок вернется ошибка FK
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isPQError(err, pqForeignKeyViolation) {
			return ErrRoomHasReservations
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

func isPQError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
