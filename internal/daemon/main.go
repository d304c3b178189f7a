// Package daemon wires configuration, the id provider, the session store and
// the web service together.
package daemon

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/sessionid"
	"github.com/sessionkit/noluhn/internal/web"
	"github.com/sessionkit/noluhn/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	ids        *sessionid.Provider
	webService *web.Service
}

// Start serves http until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(":" + strconv.Itoa(d.cfg.Webserver.Port))
}

// IDs returns the session id provider of the daemon.
func (d *Daemon) IDs() *sessionid.Provider {
	return d.ids
}

// New creates a new Daemon instance with the provided configuration.
// An invalid session id length is reported here, before anything listens.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	ids := sessionid.New()
	if err := ids.Configure(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid session configuration")
	}

	storage, err := session.NewStorage(cfg.Session)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session configuration")
	}

	store := session.New(storage, ids, cfg.Session.ExpiryTime)

	webService, err := web.New(cfg, ids, store)
	if err != nil {
		return nil, errors.Wrap(err, "can't create web service")
	}

	log.Info().
		Int("idBytes", ids.Length()).
		Int("idChars", ids.CharLength()).
		Str("storage", cfg.Session.Storage).
		Str("url", cfg.Webserver.URL).
		Msg("daemon ready")

	return &Daemon{
		cfg:        cfg,
		ids:        ids,
		webService: webService,
	}, nil
}
