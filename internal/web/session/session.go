// Package session plugs the session id provider into the fiber session store.
package session

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/sessionid"
)

// CookieName is the cookie carrying the session id.
const CookieName = "session_id"

// ErrUnknownStorage is returned for a storage name NewStorage does not know.
var ErrUnknownStorage = errors.New("unknown session storage")

// NewStorage returns the storage backend selected by cfg.Storage.
// The memory backend is returned as nil, the session store then keeps
// sessions in process memory.
func NewStorage(cfg config.Session) (fiber.Storage, error) {
	switch cfg.Storage {
	case "", config.StorageMemory:
		return nil, nil //nolint:nilnil
	case config.StorageMySQL:
		return mysql.New(mysql.Config{
			ConnectionURI: cfg.ConnectionURI,
			Table:         cfg.Table,
		}), nil
	case config.StoragePostgres:
		return postgres.New(postgres.Config{
			ConnectionURI: cfg.ConnectionURI,
			Table:         cfg.Table,
		}), nil
	default:
		return nil, errors.Wrap(ErrUnknownStorage, cfg.Storage)
	}
}

// New creates the session store. New session ids come from ids.
func New(storage fiber.Storage, ids *sessionid.Provider, idleTimeout time.Duration) *session.Store {
	if ids == nil {
		panic("session id provider is nil")
	}

	return session.NewStore(session.Config{
		Storage:      storage,
		KeyGenerator: ids.KeyGenerator(),
		IdleTimeout:  idleTimeout,
	})
}

// ValidateCookie drops a session cookie that is not a well formed id before
// the session store reads it, so the store issues a fresh one. A well formed
// id with surrounding whitespace is replaced by its trimmed form.
func ValidateCookie(ids *sessionid.Provider) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Cookies(CookieName)
		if raw == "" {
			return c.Next()
		}

		id, ok := ids.ReadID(raw)
		switch {
		case !ok:
			log.Debug().Str("ip", c.IP()).Int("length", len(raw)).Msg("dropping malformed session cookie")
			c.Request().Header.DelCookie(CookieName)
		case id != raw:
			c.Request().Header.SetCookie(CookieName, id)
		}

		return c.Next()
	}
}
