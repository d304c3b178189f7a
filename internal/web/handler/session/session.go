// Package session shows the session of the caller. Its ids come from the
// session id provider through the session store.
package session

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	fibersession "github.com/gofiber/fiber/v3/middleware/session"
	"github.com/rs/zerolog/log"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/sessionid"
	"github.com/sessionkit/noluhn/internal/web/handler"
	websession "github.com/sessionkit/noluhn/internal/web/session"
)

const (
	// Path is the path of the session endpoint.
	Path = handler.RootPath + "session"

	visitsKey = "visits"
)

// Response describes the current session.
type Response struct {
	ID     string `json:"id"`
	Fresh  bool   `json:"fresh"`
	Visits int    `json:"visits"`
}

// Service is the session handler service.
type Service struct {
	handler.Service
	Store *fibersession.Store
}

// Init registers the session route behind the cookie check.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ids *sessionid.Provider) {
	if app == nil || cfg == nil || ids == nil || s.Store == nil {
		log.Fatal().Msg(handler.ErrNilACIFatalLogMsg)
		return
	}

	app.Get(Path, websession.ValidateCookie(ids), s.Show)
}

// Show counts the visit and returns the session.
func (s *Service) Show(c fiber.Ctx) error {
	sess, err := s.Store.Get(c)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer sess.Release()

	visits := 0
	if v, ok := sess.Get(visitsKey).(string); ok {
		visits, _ = strconv.Atoi(v)
	}

	visits++
	sess.Set(visitsKey, strconv.Itoa(visits))

	res := Response{
		ID:     sess.ID(),
		Fresh:  sess.Fresh(),
		Visits: visits,
	}

	if err = sess.Save(); err != nil {
		log.Error().Err(err).Str("session", res.ID).Msg("can't save session")
		return err //nolint:wrapcheck
	}

	return c.JSON(res)
}
