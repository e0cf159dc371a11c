package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrForbidden          = errors.New("forbidden")
	ErrNotOwner           = errors.New("not authorized for this resource")

	ErrPropertyNotFound     = errors.New("property not found")
	ErrNeighborhoodNotFound = errors.New("neighborhood not found")

	ErrProgramNotFound    = errors.New("reward program not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in a reward program")
	ErrNotEnrolled        = errors.New("not enrolled in a reward program")
	ErrEnrollmentNotFound = errors.New("no reward program found")

	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrCardNotFound     = errors.New("card not found")

	ErrAddressNotFound = errors.New("address not found")
	ErrAddressInUse    = errors.New("address is used by cards")

	ErrDatabaseError = errors.New("database error")
)
