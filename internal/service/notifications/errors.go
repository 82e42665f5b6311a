package notifications

import "errors"

// ErrStopTimeout возвращается, если очередь не успела опустеть до истечения контекста
var ErrStopTimeout = errors.New("notifications: dispatcher stop timed out")
