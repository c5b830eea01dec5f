package server

import (
	"net/http"

	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func New(logger *zap.Logger, userH *handler.UserHandler, orderH *handler.OrderHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLogger(logger))

	//負荷試験ハーネス用の死活確認
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	RegisterRoutes(e, userH, orderH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
