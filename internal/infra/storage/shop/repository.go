package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/dbmetrics"
	"github.com/yash635644/barber-backend/pkg/psqlbuilder"
)

// Repository доступ к таблице shops (только чтение)
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает магазин по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "phone", "opening_time", "closing_time").
		From("shops").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s     domain.Shop
		phone sql.NullString
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&phone,
		&s.OpeningTime,
		&s.ClosingTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan shop: %v", ErrScanRow, err)
	}
	s.Phone = phone.String

	return &s, nil
}
