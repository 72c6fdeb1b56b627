package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/adnanhb/MarqueeBooker/internal/config"
	"github.com/adnanhb/MarqueeBooker/internal/handler"
	"github.com/adnanhb/MarqueeBooker/internal/middleware"
	"github.com/adnanhb/MarqueeBooker/internal/notification"
	"github.com/adnanhb/MarqueeBooker/internal/router"
	"github.com/adnanhb/MarqueeBooker/internal/scheduler"
	"github.com/adnanhb/MarqueeBooker/internal/service"
	"github.com/adnanhb/MarqueeBooker/internal/venueapi"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	catalog    *service.CatalogService
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MarqueeBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	api := venueapi.New(a.cfg.VenueAPI.BaseURL, a.cfg.VenueAPI.Timeout)

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	a.catalog = service.NewCatalogService(api, a.log)
	gateway := service.NewSubmissionGateway(api, notifier, a.cfg.VenueAPI.SubmitTimeout, a.log)
	sessions := service.NewSessionManager(
		a.catalog,
		gateway,
		service.Policy{RequireMenuSelection: a.cfg.Booking.RequireMenuSelection},
		a.cfg.Session.TTL,
		a.log,
	)

	a.scheduler = scheduler.New(
		sessions,
		a.cfg.Session.CleanupInterval,
		a.log,
	)

	h := handler.NewHandler(a.catalog, sessions)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// warm the catalog; a dead venue API only degrades the wizard
	if err := a.catalog.Ensure(ctx); err != nil {
		a.log.Warn("catalog warmup failed, starting degraded",
			logger.String("error", err.Error()),
		)
	}

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
