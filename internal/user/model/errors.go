package model

import "errors"

var (
	// ErrUserExists indicates that a user with the given username already exists.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUsername indicates that the provided username is invalid (e.g., empty).
	ErrInvalidUsername = errors.New("invalid username")
	// ErrInvalidRole indicates the role is not one of admin, operator, viewer.
	ErrInvalidRole = errors.New("invalid role")
)
