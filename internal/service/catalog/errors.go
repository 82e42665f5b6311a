package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrDuplicateName возвращается, если услуга с таким названием уже есть
	ErrDuplicateName = errors.New("catalog: service name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
