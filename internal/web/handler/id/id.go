// Package id provides the json endpoints issuing and checking session ids.
package id

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/sessionkit/noluhn/internal/config"
	"github.com/sessionkit/noluhn/internal/noluhn"
	"github.com/sessionkit/noluhn/internal/sessionid"
	"github.com/sessionkit/noluhn/internal/web/handler"
)

const (
	// Path is the collection path of the id endpoints.
	Path = handler.APIPath + "ids"
)

// IssueResponse is returned for new ids.
type IssueResponse struct {
	IDs    []string `json:"ids"`
	Length int      `json:"length"` // bytes per id
	Chars  int      `json:"chars"`  // characters per id
}

// CheckResponse is returned when an id is checked.
type CheckResponse struct {
	ID    string `json:"id,omitempty"`
	Valid bool   `json:"valid"`
}

// Service is the id handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	ids *sessionid.Provider
}

// Init registers the id routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ids *sessionid.Provider) {
	if app == nil || cfg == nil || ids == nil {
		log.Fatal().Msg(handler.ErrNilACIFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.ids = ids

	app.Post(Path, s.Issue)
	app.Get(Path+"/:id", s.Check)
}

// Issue creates count new ids, one if count is not given.
func (s *Service) Issue(c fiber.Ctx) error {
	count := 1

	if q := c.Query("count"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 || n > s.cfg.Webserver.MaxBatch {
			return fiber.NewError(fiber.StatusBadRequest,
				"count must be a number between 1 and "+strconv.Itoa(s.cfg.Webserver.MaxBatch))
		}

		count = n
	}

	res := IssueResponse{
		IDs:    make([]string, 0, count),
		Length: s.ids.Length(),
		Chars:  s.ids.CharLength(),
	}

	for range count {
		id, err := s.ids.NewID()
		if err != nil {
			log.Error().Err(err).Msg("can't issue session id")
			return fiber.NewError(fiber.StatusInternalServerError, "can't issue session id")
		}

		res.IDs = append(res.IDs, id)
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// Check reports whether the path id has the shape of an issued id.
// With strict=true the characters are checked as well.
func (s *Service) Check(c fiber.Ctx) error {
	id, ok := s.ids.ReadID(c.Params("id"))
	if ok && c.Query("strict") == "true" {
		ok = noluhn.Valid(id)
	}

	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(CheckResponse{Valid: false})
	}

	return c.JSON(CheckResponse{ID: id, Valid: true})
}
