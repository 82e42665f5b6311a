package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги с таким названием нет в прайс-листе
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrShopClosed возвращается, когда на дату есть выходной со статусом Closed
	ErrShopClosed = errors.New("create_booking: shop is closed on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
