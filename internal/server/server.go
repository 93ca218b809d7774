package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cartlab/internal/config"
	"cartlab/internal/handler"
	appmw "cartlab/internal/middleware"
	"cartlab/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ルートとミドルウェアを組み立てたechoを返す
func New(cfg config.Config, log *logger.Logger, todoH *handler.TodoHandler, cartH *handler.CartHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.RequestLogger(log))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	RegisterRoutes(e, todoH, cartH)
	return e
}

// ctxが終わるまで待ち受けて、その後graceful shutdown
func Start(ctx context.Context, e *echo.Echo, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("server shutting down")
	return e.Shutdown(shutdownCtx)
}
