package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrBirthDateMissing   = errors.New("birth date is required")
	ErrBirthDateInFuture  = errors.New("birth date cannot be in the future")
	ErrUnderage           = errors.New("you must be at least 18 years old to register")
	ErrCannotSwipeSelf    = errors.New("cannot swipe on yourself")
)
