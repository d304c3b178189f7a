package config

import (
	"time"

	"github.com/sessionkit/noluhn/internal/logger"
)

// Session settings.
type Session struct {
	// IDLength is the session id length in bytes. It is kept as raw text so the
	// id provider can reject values that are not integers.
	IDLength   string        `mapstructure:"idlength"`
	ExpiryTime time.Duration `mapstructure:"expirytime"`
	Storage    string        `mapstructure:"storage"    validate:"oneof=memory mysql postgres"`
	Table      string        `mapstructure:"table"`
	// ConnectionURI of the mysql or postgres session storage.
	ConnectionURI string `mapstructure:"connectionuri" json:"-" toml:"-"`
}

// Config overall data structure.
type Config struct {
	DevMode   bool       `mapstructure:"devmode"` // enable dev mode for development
	Log       logger.Log `mapstructure:"log"`
	Title     string     `mapstructure:"title"`
	Session   Session    `mapstructure:"session"`
	Webserver Webserver  `mapstructure:"webserver"`
}

// Webserver implement webserver settings.
type Webserver struct {
	Port         int    `mapstructure:"port"         validate:"gt=0,lte=65535"` // listening port for the webserver
	ShutDownTime int    `mapstructure:"shutdowntime" validate:"gte=0"`          // wait time for shutdown in seconds
	URL          string `mapstructure:"url"`                                    // base url for the webserver
	MaxBatch     int    `mapstructure:"maxbatch"     validate:"gt=0"`           // max ids per issue request
}
