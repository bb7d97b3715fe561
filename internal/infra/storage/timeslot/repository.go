package timeslot

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

// slotColumns полный набор колонок слота вместе с категорией и бронированием
var slotColumns = []string{
	"s.id",
	"s.category_id",
	"s.title",
	"s.description",
	"s.start_time",
	"s.end_time",
	"s.created_by",
	"s.created_at",
	"c.name",
	"c.description",
	"c.color",
	"b.id",
	"b.user_id",
	"b.user_name",
	"b.user_email",
	"b.booked_at",
}

// Repository репозиторий для работы со слотами календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
// Валидация end_time > start_time выполняется на уровне usecase;
// БД дублирует её CHECK-констрейнтом
func (r *Repository) Create(ctx context.Context, draft *domain.TimeSlotDraft) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("timeslots").
		Columns("category_id", "title", "description", "start_time", "end_time", "created_by").
		Values(draft.CategoryID, draft.Title, draft.Description, draft.StartTime, draft.EndTime, draft.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	slot := &domain.TimeSlot{
		CategoryID:  draft.CategoryID,
		Title:       draft.Title,
		Description: draft.Description,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		CreatedBy:   &draft.CreatedBy,
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			// foreign_key_violation: категория не существует
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByID получает слот по ID вместе с категорией и бронированием (если есть)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("timeslots s").
		Join("categories c ON c.id = s.category_id").
		LeftJoin("bookings b ON b.timeslot_id = s.id").
		Where(squirrel.Eq{"s.id": id})

	// Внутри транзакции блокируем строку слота: проверка "слот свободен"
	// и вставка бронирования должны быть единым атомарным шагом
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF s")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTimeSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan timeslot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// ListByWindow возвращает слоты, чье start_time попадает в окно
// [filter.Start, filter.End] (границы включительно)
// Пустой filter.CategoryIDs означает "все категории"
func (r *Repository) ListByWindow(ctx context.Context, filter domain.SlotFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("timeslots s").
		Join("categories c ON c.id = s.category_id").
		LeftJoin("bookings b ON b.timeslot_id = s.id").
		Where(squirrel.GtOrEq{"s.start_time": filter.Start}).
		Where(squirrel.LtOrEq{"s.start_time": filter.End}).
		OrderBy("s.start_time ASC")

	// Фильтрация по категориям, если заданы
	if len(filter.CategoryIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.category_id": filter.CategoryIDs})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByWindow - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByWindow - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Delete удаляет слот независимо от наличия бронирования
// Бронирование удаляется каскадно (ON DELETE CASCADE) - принятая потеря
// данных, держатели booking id после этого получают not found
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("timeslots").
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
		return ErrTimeSlotNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlot сканирует строку timeslots + categories + bookings в domain.TimeSlot
func scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var (
		slot         domain.TimeSlot
		categoryName string
		categoryDesc *string
		categoryCol  string

		bookingID    sql.NullInt64
		bookingUser  sql.NullInt64
		bookingName  sql.NullString
		bookingEmail sql.NullString
		bookedAt     sql.NullTime
	)

	err := row.Scan(
		&slot.ID,
		&slot.CategoryID,
		&slot.Title,
		&slot.Description,
		&slot.StartTime,
		&slot.EndTime,
		&slot.CreatedBy,
		&slot.CreatedAt,
		&categoryName,
		&categoryDesc,
		&categoryCol,
		&bookingID,
		&bookingUser,
		&bookingName,
		&bookingEmail,
		&bookedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Category = &domain.Category{
		ID:          slot.CategoryID,
		Name:        categoryName,
		Description: categoryDesc,
		Color:       categoryCol,
	}

	if bookingID.Valid {
		slot.Booking = &domain.BookingInfo{
			ID:        bookingID.Int64,
			UserID:    bookingUser.Int64,
			UserName:  bookingName.String,
			UserEmail: bookingEmail.String,
			BookedAt:  bookedAt.Time,
		}
	}

	return &slot, nil
}
