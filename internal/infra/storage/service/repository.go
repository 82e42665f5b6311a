package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/dbmetrics"
	"github.com/yash635644/barber-backend/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

var serviceColumns = []string{"id", "name", "price", "category", "duration_minutes"}

// Repository репозиторий прайс-листа
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все услуги, сгруппированные по категории
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Category, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByName ищет услугу по точному названию
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"name": name})
}

// GetByID ищет услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(where).
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Price, &s.Category, &s.DurationMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
	}

	return &s, nil
}

// Create добавляет услугу
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "price", "category", "duration_minutes").
		Values(s.Name, s.Price, s.Category, s.DurationMinutes).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Update перезаписывает поля услуги
func (r *Repository) Update(ctx context.Context, s *domain.Service) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", s.Name).
		Set("price", s.Price).
		Set("category", s.Category).
		Set("duration_minutes", s.DurationMinutes).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет услугу. Бронирования хранят название по значению и не затрагиваются
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
