package user

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidRegistration = errors.New("email and password are required")
)
