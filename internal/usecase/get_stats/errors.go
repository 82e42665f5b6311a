package get_stats

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_stats: internal error")
