package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures never reveal which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound means a session referenced a user id that is no
	// longer present in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidBirthdate means the stored birthdate does not parse as a
	// calendar date, so no age can be derived.
	ErrInvalidBirthdate = errors.New("birthdate is not a valid date")
)
