package sessionid

import "errors"

var (
	// ErrInvalidLength is returned by Configure if the length attribute is not an integer.
	ErrInvalidLength = errors.New("session id length is not an integer")

	// ErrNegativeLength is returned if a negative byte length is requested.
	ErrNegativeLength = errors.New("session id length can not be negative")
)
