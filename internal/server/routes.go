package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, userH *handler.UserHandler, orderH *handler.OrderHandler) {
	userH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}
