package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrPositionNotFound   = errors.New("position not found")
	ErrPositionInUse      = errors.New("position is referenced by employees")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
