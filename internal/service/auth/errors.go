package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для поддельного, просроченного или чужого токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
