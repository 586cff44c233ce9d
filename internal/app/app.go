package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogfolio/blogfolio/config"
	"github.com/blogfolio/blogfolio/internal/blog"
	"github.com/blogfolio/blogfolio/internal/fetch"
	"github.com/blogfolio/blogfolio/internal/rest"
	"github.com/blogfolio/blogfolio/internal/rpc"
	"github.com/blogfolio/blogfolio/internal/store"
)

type App struct {
	Store   *store.Store
	Fetcher *fetch.Fetcher
	Network *fetch.Monitor
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, logger *slog.Logger) *App {
	st := store.NewSeeded()

	latency := blog.Latency{
		Min: time.Duration(cfg.Blog.LatencyMinMs) * time.Millisecond,
		Max: time.Duration(cfg.Blog.LatencyMaxMs) * time.Millisecond,
	}
	service := blog.NewService(st, latency)

	network := fetch.NewMonitor()
	fetcher := fetch.NewFetcher(service, logger, fetch.Options{Network: network})

	handler := rest.NewBlogHandler(fetcher, logger)
	e := handler.RegisterRoutes()
	e.Any("/rpc", echo.WrapHandler(rpc.New(logger, fetcher)))

	return &App{
		Store:   st,
		Fetcher: fetcher,
		Network: network,
		Logger:  logger,
		Echo:    e,
		Config:  cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
