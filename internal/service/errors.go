package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes; anything else surfaces as an internal error.
var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrKidNotFound        = errors.New("kid not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrRoutineNotFound    = errors.New("routine not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSessionNotFound    = errors.New("training session not found")

	ErrAlreadyAssigned  = errors.New("routine already assigned to this kid for that date")
	ErrSessionActive    = errors.New("kid already has a training session in progress")
	ErrSessionNotActive = errors.New("training session is not in progress")
	ErrSlotOrderTaken   = errors.New("exercise order values must be unique")
	ErrInvalidPeriod    = errors.New("period must be one of: week month year")
)
