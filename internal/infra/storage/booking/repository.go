package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mvlko/EventBookingService/internal/domain"
	"github.com/mvlko/EventBookingService/pkg/dbmetrics"
	"github.com/mvlko/EventBookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование слота
// Инвариант "не больше одного бронирования на слот" обеспечивается
// уникальным констрейнтом bookings.timeslot_id: из двух конкурентных
// вставок на один слот ровно одна завершается ErrSlotAlreadyBooked.
// Проверку и вставку снаружи следует выполнять в одной транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("timeslot_id", "user_id", "user_name", "user_email").
		Values(booking.TimeSlotID, booking.UserID, booking.UserName, booking.UserEmail).
		Suffix("RETURNING id, booked_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.BookedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case pqUniqueViolation:
				return nil, ErrSlotAlreadyBooked
			case pqForeignKeyViolation:
				return nil, ErrTimeSlotNotFound
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "timeslot_id", "user_id", "user_name", "user_email", "booked_at").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.TimeSlotID,
		&b.UserID,
		&b.UserName,
		&b.UserEmail,
		&b.BookedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return &b, nil
}

// ListByUser возвращает бронирования пользователя вместе с данными слотов,
// отсортированные по началу слота (сначала ближайшие)
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.timeslot_id",
		"b.user_id",
		"b.user_name",
		"b.user_email",
		"b.booked_at",
		"s.title",
		"s.start_time",
		"s.end_time",
		"s.category_id",
		"c.name",
	).
		From("bookings b").
		Join("timeslots s ON s.id = b.timeslot_id").
		Join("categories c ON c.id = s.category_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("s.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.UserBooking, 0)
	for rows.Next() {
		var ub domain.UserBooking
		err := rows.Scan(
			&ub.ID,
			&ub.TimeSlotID,
			&ub.UserID,
			&ub.UserName,
			&ub.UserEmail,
			&ub.BookedAt,
			&ub.SlotTitle,
			&ub.SlotStart,
			&ub.SlotEnd,
			&ub.CategoryID,
			&ub.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &ub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Delete удаляет бронирование (отмена)
// Запись уничтожается физически - BookingInfo существует только пока
// слот забронирован
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}
