package preferences

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mvlko/EventBookingService/internal/domain"
	"github.com/mvlko/EventBookingService/pkg/dbmetrics"
	"github.com/mvlko/EventBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с предпочтениями пользователей
// Предпочтения - это набор категорий, выбранных пользователем как фильтр
// по умолчанию для календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предпочтений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCategories возвращает сохраненные категории пользователя
// Если пользователь никогда не сохранял предпочтения, возвращает пустой список
func (r *Repository) GetCategories(ctx context.Context, userID int64) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("c.id", "c.name", "c.description", "c.color").
		From("user_preferences p").
		Join("categories c ON c.id = p.category_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Color); err != nil {
			return nil, fmt.Errorf("%w: GetCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// Replace полностью заменяет набор категорий пользователя
// Несуществующие категории молча отбрасываются.
// Предполагается вызов внутри транзакции (delete + insert должны быть атомарны)
func (r *Repository) Replace(ctx context.Context, userID int64, categoryIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("user_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	// Вставляем только существующие категории
	insertQuery, insertArgs, err := psqlbuilder.Insert("user_preferences").
		Columns("user_id", "category_id").
		Select(
			psqlbuilder.Select(fmt.Sprintf("%d", userID), "id").
				From("categories").
				Where(squirrel.Eq{"id": categoryIDs}),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
