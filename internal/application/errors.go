package application

import (
	"errors"
	"strings"

	"github.com/femfund/femfund/pkg/response"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrOptionNotFound = errors.New("funding option not found")
	ErrOptionInactive = errors.New("funding option is no longer available")

	ErrApplicationNotFound = errors.New("application not found")
	ErrNotOwner            = errors.New("application belongs to another user")
	ErrNotDraft            = errors.New("only draft applications can be modified or deleted")
	ErrInvalidTransition   = errors.New("illegal status transition")

	ErrResourceNotFound = errors.New("learning resource not found")
)

// ValidationError carries per-field messages for a 400 response. The
// handler layer renders Fields directly.
type ValidationError struct {
	Fields []response.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, response.FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}
