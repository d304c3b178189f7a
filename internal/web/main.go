// Package web serves the session id endpoints over http.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	fibersession "github.com/gofiber/fiber/v3/middleware/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/sessionkit/noluhn/internal/config"
	accesslog "github.com/sessionkit/noluhn/internal/logger/adapter/fiber"
	"github.com/sessionkit/noluhn/internal/sessionid"
	"github.com/sessionkit/noluhn/internal/web/handler"
	"github.com/sessionkit/noluhn/internal/web/handler/id"
	sessionhandler "github.com/sessionkit/noluhn/internal/web/handler/session"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = handler.RootPath + "checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = handler.RootPath + "metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start listens on addr until the service is shut down.
func (s *Service) Start(addr string) error {
	err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: !s.cfg.DevMode})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and then stops the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown stops the http server. Unless fastShutDown is set, checkalive
// reports 503 for Webserver.ShutDownTime seconds first, so load balancers
// can take the instance out of rotation.
func (s *Service) Shutdown() {
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

// errorHandler answers errors as json and logs server side failures.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, ids *sessionid.Provider, store *fibersession.Store) (*Service, error) {
	if cfg == nil || ids == nil || store == nil {
		panic(handler.ErrNilACIFatalLogMsg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Immutable:      true,
			ErrorHandler:   errorHandler,
		},
	)

	accessLog, err := accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	})
	if err != nil {
		return nil, err
	}

	app.Use(accessLog)

	s := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: cfg.DevMode,
	}
	s.alive.Store(true)

	app.Get(CheckAlivePath, s.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	handlers := []handler.Service{
		&id.Service{},
		&sessionhandler.Service{Store: store},
	}

	for _, h := range handlers {
		h.Init(app, cfg, ids)
	}

	return s, nil
}
