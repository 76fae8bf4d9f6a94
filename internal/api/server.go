package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hrkit/interviewd/pkg/errors"
	"github.com/hrkit/interviewd/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

func NewServer(cfg Config, log logger.Logger, engine Engine) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
		RequestMethods:          []string{fiber.MethodGet, fiber.MethodHead, fiber.MethodPost, fiber.MethodDelete},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.With(c.Get(requestIDHeader)).Error(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "unexpected server error",
		})
	}

	s := &server{
		engine: engine,
		http:   fiber.New(fiberCfg),
		addr:   cfg.HTTP.Addr,
		log:    serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	engine Engine
	http   *fiber.App
	addr   string
	log    logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Use(s.requestID)

	v1 := s.http.Group("/api/v1")

	v1.Get("/echo", s.handleEcho)

	v1.Post("/employee", s.handleCreateEmployee)
	v1.Get("/employee", s.handleGetEmployee)
	v1.Delete("/employee", s.handleDeleteEmployee)
	v1.Post("/employee/time", s.handleAllocateEmployeeTime)

	v1.Post("/candidate", s.handleCreateCandidate)
	v1.Get("/candidate", s.handleGetCandidate)
	v1.Delete("/candidate", s.handleDeleteCandidate)
	v1.Post("/candidate/time", s.handleAllocateCandidateTime)

	v1.Post("/interviews", s.handleListInterviews)
}

func (s *server) requestID(c *fiber.Ctx) error {
	if c.Get(requestIDHeader) == "" {
		c.Request().Header.Set(requestIDHeader, uuid.NewString())
	}

	return c.Next()
}
