package service

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")

	// ErrDuplicateName возвращается при нарушении уникальности названия
	ErrDuplicateName = errors.New("service.repository: service name already exists")

	ErrBuildQuery = errors.New("service.repository: failed to build query")
	ErrExecQuery  = errors.New("service.repository: failed to execute query")
	ErrScanRow    = errors.New("service.repository: failed to scan row")
)
