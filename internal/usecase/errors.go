package usecase

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidFormation  = errors.New("invalid formation descriptor")
	ErrInvalidTransition = errors.New("illegal status transition")
)
