package services

import "errors"

var (
	// ErrTitleRequired indicates the task title is missing or blank after trimming.
	ErrTitleRequired = errors.New("title is required")
	// ErrInvalidStatus indicates a status value outside pending/in-progress/completed.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrEmptyPatch indicates an update request that carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")
	// ErrTaskNotFound covers both a missing id and a task owned by another
	// user. The two cases are deliberately indistinguishable so callers
	// cannot probe for other users' tasks.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound indicates the user record does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates the registration email is already in use.
	ErrEmailTaken = errors.New("email already exists")
	// ErrInvalidCredentials merges unknown-email and wrong-password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
