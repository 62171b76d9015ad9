package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/auth"
	"todo-service/app/server/constants"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (a *App) AuthToken(c echo.Context) error {
	rctx := c.Request().Context()

	// 表单中的用户名与密码
	// 与注册时一致，去掉用户名首尾空白
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		return a.er(c, http.StatusBadRequest)
	}

	// 校验
	user, err := a.auth.Authenticate(rctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrAuthFailure) {
			return a.er(c, http.StatusUnauthorized)
		}
		a.l.Error("failed to authenticate user", zap.String("username", username), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 签出 JWT
	token, err := a.auth.IssueToken(user)
	if err != nil {
		a.l.Error("failed to sign token", zap.Uint("id", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 返回
	return c.JSON(http.StatusOK, &tokenResponse{
		AccessToken: token,
		TokenType:   constants.AuthTokenType,
	})
}
