package holiday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/dbmetrics"
	"github.com/yash635644/barber-backend/pkg/psqlbuilder"
)

var holidayColumns = []string{"id", "holiday_date", "status", "note"}

// Repository репозиторий выходных и особых дней
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate возвращает все записи на дату, первая по ID идет первой
// Уникальность даты не гарантируется, вызывающий код берет первую запись
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Holiday, error) {
	return r.list(ctx, "GetByDate", onDate(date), "id ASC")
}

// List возвращает все записи по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]*domain.Holiday, error) {
	return r.list(ctx, "List", nil, "holiday_date ASC", "id ASC")
}

// ListFrom возвращает записи начиная с указанной даты включительно
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]*domain.Holiday, error) {
	return r.list(ctx, "ListFrom", fromDate(from), "holiday_date ASC", "id ASC")
}

// Create добавляет запись без проверки дубликатов
func (r *Repository) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("holiday_date", "status", "note").
		Values(h.Date.Format(domain.DateFormat), h.Status, h.Note).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return h, nil
}

// Delete удаляет запись по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").Where(squirrel.Eq{"id": id}).ToSql()
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
		return ErrHolidayNotFound
	}

	return nil
}

func onDate(date time.Time) squirrel.Sqlizer {
	return squirrel.Eq{"holiday_date": date.Format(domain.DateFormat)}
}

func fromDate(from time.Time) squirrel.Sqlizer {
	return squirrel.GtOrEq{"holiday_date": from.Format(domain.DateFormat)}
}

// selectHolidays без where выбирает все записи
func selectHolidays(where squirrel.Sqlizer, orderBy ...string) squirrel.SelectBuilder {
	b := psqlbuilder.Select(holidayColumns...).From("holidays")
	if where != nil {
		b = b.Where(where)
	}
	return b.OrderBy(orderBy...)
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer, orderBy ...string) ([]*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectHolidays(where, orderBy...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	holidays := make([]*domain.Holiday, 0)
	for rows.Next() {
		var (
			h    domain.Holiday
			date time.Time
			note sql.NullString
		)
		if err := rows.Scan(&h.ID, &date, &h.Status, &note); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		h.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		h.Note = note.String
		holidays = append(holidays, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return holidays, nil
}
