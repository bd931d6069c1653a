// Package worker serves the Pub/Sub push endpoint that consumes catalog events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"cafemap/config"
	"cafemap/internal/delivery"
	"cafemap/internal/delivery/middleware"
	"cafemap/internal/delivery/worker/handler"
	"cafemap/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPushPath = "/push"
	// Pub/Sub caps push messages at 10MB.
	maxPushBodySize = "10M"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, pushHandler *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.BodyLimit(maxPushBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(pushPath(cfg), pushHandler.HandlePush)

	return e
}

func pushPath(cfg *config.Config) string {
	if cfg.Worker.PushPath == "" {
		return defaultPushPath
	}

	return cfg.Worker.PushPath
}

func listenPort(cfg *config.Config) int {
	if cfg.Worker.Port > 0 {
		return cfg.Worker.Port
	}

	return cfg.HTTP.Port
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(listenPort(s.cfg)))
	s.logger.Info("Starting worker push server",
		slog.String("host_port", hostPort),
		slog.String("push_path", pushPath(s.cfg)),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker push server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
