package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) HealthCheck(c echo.Context) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		a.l.Error("failed to get database handle", zap.Error(err))
		return a.er(c, http.StatusServiceUnavailable)
	}

	if err = sqlDB.PingContext(c.Request().Context()); err != nil {
		a.l.Error("database is unreachable", zap.Error(err))
		return a.er(c, http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
