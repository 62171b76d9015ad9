package handlers

import (
	"github.com/labstack/echo/v4"

	"todo-service/app/server/utils"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return utils.ErrorResponse(c, statusCode)
}
