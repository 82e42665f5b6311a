package holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда запись о выходном не найдена
	ErrHolidayNotFound = errors.New("holiday.repository: holiday not found")

	ErrBuildQuery = errors.New("holiday.repository: failed to build query")
	ErrExecQuery  = errors.New("holiday.repository: failed to execute query")
	ErrScanRow    = errors.New("holiday.repository: failed to scan row")
)
