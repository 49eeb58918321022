package services

import "errors"

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("user with this username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
)
