package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetbrief-api/core/cache"
	"meetbrief-api/core/config"
	"meetbrief-api/core/database"
	"meetbrief-api/core/logger"
	"meetbrief-api/core/queue"
	"meetbrief-api/core/storage"
	"meetbrief-api/modules/apikey"
	"meetbrief-api/modules/auth"
	"meetbrief-api/modules/billing"
	"meetbrief-api/modules/contact"
	"meetbrief-api/modules/enrichment"
	"meetbrief-api/modules/icp"
	"meetbrief-api/modules/meeting"
	"meetbrief-api/modules/settings"
	"meetbrief-api/modules/share"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Run() error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := cache.NewCache(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	q := queue.New(cfg)
	store := storage.NewS3Store(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Feature modules
	auth.Init(e, db, c)
	meeting.Init(e, c)
	icp.Init(e, db, c)
	billing.Init(e, c)
	enrichment.Init(e, db, c, q, store)
	settings.Init(e, c)
	share.Init(e, db, c)
	apikey.Init(e, db, c)
	contact.Init(e, c)

	if err := q.Start(); err != nil {
		return fmt.Errorf("start queue: %w", err)
	}
	defer q.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	logger.Info("Server:Started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Server:Shutdown", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
