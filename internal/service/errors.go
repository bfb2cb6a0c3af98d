package service

import "errors"

// ErrForbidden is returned when the acting user does not own the resource
// the operation requires them to own.
var ErrForbidden = errors.New("not allowed for this user")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
