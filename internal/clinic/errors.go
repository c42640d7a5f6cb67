package clinic

import "errors"

// Failure kinds reported by the service layer. Callers match these with
// errors.Is; the wrapped text carries the human-readable detail.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSlotTaken          = errors.New("slot already taken")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
