package service

import "errors"

// Error taxonomy shared by every service. Controllers map these onto HTTP
// status codes with errors.Is; anything unwrapped is an internal error.
var (
	// ErrValidation marks bad or missing caller input, including
	// unreadable uploaded files. No side effects occur before it.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks an unknown candidate, session, question or test id.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation repeated past its terminal state,
	// e.g. ending an interview or submitting a test twice.
	ErrConflict = errors.New("conflict")

	// ErrMailDelivery marks an outbound mail failure; the SMTP detail is
	// wrapped underneath.
	ErrMailDelivery = errors.New("mail delivery failed")
)
