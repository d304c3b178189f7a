package config

import (
	"errors"
)

var (
	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrSessionStorageURI error if a database session storage has no connection uri.
	ErrSessionStorageURI = errors.New("config session.connectionuri can not be empty for database storage")
)
