package update_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidStatus возвращается для статуса вне допустимого набора
	ErrInvalidStatus = errors.New("update_booking_status: invalid booking status")

	// ErrInvalidTransition возвращается в строгом режиме для запрещенного перехода
	ErrInvalidTransition = errors.New("update_booking_status: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
