package user

import "errors"

var (
	ErrUsernameExists     = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)
