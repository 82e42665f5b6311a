package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/yash635644/barber-backend/internal/domain"
	"github.com/yash635644/barber-backend/pkg/dbmetrics"
	"github.com/yash635644/barber-backend/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"shop_id",
	"customer_name",
	"customer_phone",
	"service_name",
	"booking_date",
	"start_time",
	"duration_minutes",
	"service_price",
	"status",
	"type",
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
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"shop_id",
			"customer_name",
			"customer_phone",
			"service_name",
			"booking_date",
			"start_time",
			"duration_minutes",
			"service_price",
			"status",
			"type",
		).
		Values(
			booking.ShopID,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.ServiceName,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.DurationMinutes,
			nullablePrice(booking.ServicePrice),
			booking.Status,
			booking.Type,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с фильтрацией
// Для конкретной даты сортирует по времени начала, иначе сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings"), filter)

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC", "id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "start_time DESC", "id DESC")
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Count считает бронирования, подходящие под фильтр
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListCompletedWithPrice возвращает завершённые бронирования с итоговой ценой:
// снимок цены, иначе текущая цена услуги по названию, иначе 0
func (r *Repository) ListCompletedWithPrice(ctx context.Context) ([]domain.CompletedBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.booking_date",
		"COALESCE(b.service_price, s.price, 0)",
	).
		From("bookings b").
		LeftJoin("services s ON s.name = b.service_name").
		Where(squirrel.Eq{"b.status": domain.StatusCompleted}).
		OrderBy("b.booking_date ASC", "b.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCompletedWithPrice - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCompletedWithPrice - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.CompletedBooking, 0)
	for rows.Next() {
		var item domain.CompletedBooking
		if err := rows.Scan(&item.BookingID, &item.BookingDate, &item.Price); err != nil {
			return nil, fmt.Errorf("%w: ListCompletedWithPrice - scan row: %v", ErrScanRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCompletedWithPrice - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// UpdateDetails перезаписывает клиента, услугу и время бронирования. Статус не трогает
func (r *Repository) UpdateDetails(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("customer_name", booking.CustomerName).
		Set("service_name", booking.ServiceName).
		Set("booking_date", booking.BookingDate.Format(domain.DateFormat)).
		Set("start_time", booking.StartTime).
		Set("duration_minutes", booking.DurationMinutes).
		Set("service_price", nullablePrice(booking.ServicePrice)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateDetails", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.Date != nil {
		b = b.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if len(filter.Statuses) > 0 {
		b = b.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	}
	if len(filter.ExcludeStatuses) > 0 {
		b = b.Where(squirrel.NotEq{"status": statusStrings(filter.ExcludeStatuses)})
	}
	return b
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

func nullablePrice(price *decimal.Decimal) decimal.NullDecimal {
	if price == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *price, Valid: true}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		bookingDate          time.Time
		price                decimal.NullDecimal
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ShopID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.ServiceName,
		&bookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&price,
		&booking.Status,
		&booking.Type,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// lib/pq отдает DATE в UTC; храним как дату без часового пояса
	booking.BookingDate = time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.UTC)
	if price.Valid {
		p := price.Decimal
		booking.ServicePrice = &p
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
