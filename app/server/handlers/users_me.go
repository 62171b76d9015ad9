package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/auth"
	"todo-service/app/server/store"
)

type passwordUpdateRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

func (a *App) UserInfoGetSelf(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	// 先查缓存
	var info userInfo
	if a.profiles.Get(rctx, identity.UserID, &info) {
		return c.JSON(http.StatusOK, &info)
	}

	// 从数据库中获得当前用户
	user, err := a.users.GetByID(rctx, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get user", zap.Uint("id", identity.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	info = newUserInfo(user)
	a.profiles.Set(rctx, user.ID, &info)

	return c.JSON(http.StatusOK, &info)
}

func (a *App) UserPasswordUpdateSelf(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	// 绑定请求体
	var req passwordUpdateRequest
	if err = c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if err = a.auth.ChangePassword(c.Request().Context(), identity.UserID, req.Password, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrAuthFailure):
			return a.er(c, http.StatusUnauthorized)
		case errors.Is(err, auth.ErrWeakPassword):
			return a.er(c, http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			return a.er(c, http.StatusNotFound)
		default:
			a.l.Error("failed to change password", zap.Uint("id", identity.UserID), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.l.Info("password changed", zap.Uint("id", identity.UserID))

	return c.NoContent(http.StatusOK)
}
