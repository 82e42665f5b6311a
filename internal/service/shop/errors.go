package shop

import "errors"

var (
	// ErrShopNotFound возвращается, когда строка магазина отсутствует
	ErrShopNotFound = errors.New("shop: shop not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shop: internal error")
)
