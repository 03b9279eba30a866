package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrWrongPassword = errors.New("wrong password")
)

var (
	ErrAlreadyBooked      = errors.New("user already has an active booking")
	ErrInvalidPackageCode = errors.New("invalid tour package code")
	ErrZeroTickets        = errors.New("ticket count must be positive")
	ErrNoActiveBooking    = errors.New("no active booking")
)

var (
	ErrValidation = errors.New("validation error")
)
