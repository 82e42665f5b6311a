package shop

import "errors"

var (
	// ErrShopNotFound возвращается, когда строка магазина отсутствует
	ErrShopNotFound = errors.New("shop.repository: shop not found")

	ErrBuildQuery = errors.New("shop.repository: failed to build query")
	ErrScanRow    = errors.New("shop.repository: failed to scan row")
)
