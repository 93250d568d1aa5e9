package service

import (
	"errors"
	"strings"
)

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidUrgency      = errors.New("invalid urgency")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserSuspended       = errors.New("user suspended")
	ErrEmailTaken          = errors.New("email already registered")
)

// ValidationError carries the batch validator's messages; each one is shown
// to the submitter verbatim.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
