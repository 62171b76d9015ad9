package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/auth"
	"todo-service/app/server/models"
)

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

func (a *App) AuthRegister(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		a.l.Debug("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest)
	}

	// 检查角色
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}
	if role == models.RoleAdmin && !a.allowAdminRegistration {
		a.l.Info("rejected admin self-registration", zap.String("username", req.Username))
		return a.er(c, http.StatusForbidden)
	}

	// 创建用户
	user, err := a.auth.Register(rctx, auth.NewUser{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      string(role),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDuplicateUsername):
			return a.er(c, http.StatusConflict)
		case errors.Is(err, auth.ErrUnknownRole), errors.Is(err, auth.ErrWeakPassword):
			return a.er(c, http.StatusBadRequest)
		default:
			a.l.Error("failed to register user", zap.String("username", req.Username), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.l.Info("user registered", zap.Uint("id", user.ID), zap.String("username", user.Username), zap.String("role", string(user.Role)))

	return c.NoContent(http.StatusCreated)
}
