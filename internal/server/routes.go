package server

import (
	"cartlab/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, todoH *handler.TodoHandler, cartH *handler.CartHandler) {
	todoH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
}
