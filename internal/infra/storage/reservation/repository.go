package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/asidorov/MRS-ReservationService/internal/domain"
	"github.com/asidorov/MRS-ReservationService/pkg/dbmetrics"
	"github.com/asidorov/MRS-ReservationService/pkg/psqlbuilder"
	"github.com/asidorov/MRS-ReservationService/pkg/types"
)

// Код ошибки PostgreSQL при нарушении exclusion constraint
// (пересечение активных бронирований одной переговорной)
const pqExclusionViolation = "23P01"

var reservationColumns = []string{
	"id",
	"user_id",
	"room_id",
	"reservation_date",
	"start_time",
	"end_time",
	"reason",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение exclusion constraint (пересечение с другим активным бронированием)
// возвращается как ErrTimeConflict — это страховка от гонки на случай,
// если вызывающий код не обернул проверку конфликтов в транзакцию.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"room_id",
			"reservation_date",
			"start_time",
			"end_time",
			"reason",
			"status",
		).
		Values(
			reservation.UserID,
			reservation.RoomID,
			reservation.ReservationDate,
			reservation.StartTime,
			reservation.EndTime,
			reservation.Reason,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	// В транзакции блокируем строку: GetByID предшествует изменению статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// List получает все бронирования, отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("reservation_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByUserID получает список бронирований пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByRoomAndDate получает бронирования переговорной на указанную дату
func (r *Repository) GetByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"reservation_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// FindConflicting получает активные бронирования переговорной на дату,
// пересекающиеся с интервалом [start, end)
//
// Пересечение полуоткрытых интервалов: start_time < :end AND end_time > :start —
// граничащие интервалы (конец одного равен началу другого) не пересекаются.
//
// Если excludeID указан, бронирование с этим ID исключается из выборки
// (используется при изменении, чтобы бронирование не конфликтовало само с собой).
// Внутри транзакции строки блокируются (FOR UPDATE) до записи.
func (r *Repository) FindConflicting(
	ctx context.Context,
	roomID int64,
	date time.Time,
	start, end types.TimeString,
	excludeID *int64,
) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflicting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflicting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Update обновляет все изменяемые поля бронирования и метку updated_at
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("user_id", reservation.UserID).
		Set("room_id", reservation.RoomID).
		Set("reservation_date", reservation.ReservationDate).
		Set("start_time", reservation.StartTime).
		Set("end_time", reservation.EndTime).
		Set("reason", reservation.Reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	if updatedAt.Valid {
		reservation.UpdatedAt = &updatedAt.Time
	}

	return reservation, nil
}

// UpdateStatus обновляет статус бронирования (используется для отмены)
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.RoomID,
		&reservation.ReservationDate,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.Reason,
		&reservation.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	if updatedAt.Valid {
		reservation.UpdatedAt = &updatedAt.Time
	}

	return &reservation, nil
}

// isExclusionViolation проверяет, что ошибка — нарушение exclusion constraint
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqExclusionViolation
}
