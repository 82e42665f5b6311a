package holidays

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда запись не найдена
	ErrHolidayNotFound = errors.New("holidays: holiday not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("holidays: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("holidays: internal error")
)
