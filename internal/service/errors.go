package service

import "errors"

// Общие ошибки протокола бронирования
var (
	ErrBadRequest   = errors.New("missing required field")
	ErrUnauthorized = errors.New("invalid token")
	ErrNotFound     = errors.New("reservation not found")
)
