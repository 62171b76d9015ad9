package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/models"
	"todo-service/app/server/store"
)

type userRoleUpdateRequest struct {
	Role string `json:"role"`
}

type userActiveUpdateRequest struct {
	IsActive *bool `json:"is_active"`
}

func (a *App) AdminUserList(c echo.Context) error {
	page, limit, err := a.bindPagination(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	showAll, parsedPage, parsedLimit := a.parsePagination(page, limit)
	users, count, err := a.users.List(c.Request().Context(), showAll, parsedPage, parsedLimit)
	if err != nil {
		a.l.Error("failed to get user list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	resUsers := []userInfo{}
	for i := range users {
		resUsers = append(resUsers, newUserInfo(&users[i]))
	}

	return c.JSON(http.StatusOK, &listResponse[userInfo]{
		Limit:   parsedLimit,
		PageMax: a.calcMaxPage(count, showAll, parsedLimit),
		List:    resUsers,
	})
}

func (a *App) AdminUserDelete(c echo.Context) error {
	id, err := a.bindID(c, "user_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// 删除用户及其待办
	if err = a.users.Delete(rctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.profiles.Invalidate(rctx, id)

	return c.NoContent(http.StatusAccepted)
}

func (a *App) AdminUserRoleUpdate(c echo.Context) error {
	id, err := a.bindID(c, "user_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 绑定请求体
	var req userRoleUpdateRequest
	if err = c.Bind(&req); err != nil || req.Role == "" {
		return a.er(c, http.StatusBadRequest)
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	return a.updateUser(c, id, func(ctx context.Context) error {
		return a.users.UpdateRole(ctx, id, role)
	})
}

func (a *App) AdminUserActiveUpdate(c echo.Context) error {
	id, err := a.bindID(c, "user_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 绑定请求体
	var req userActiveUpdateRequest
	if err = c.Bind(&req); err != nil || req.IsActive == nil {
		return a.er(c, http.StatusBadRequest)
	}

	return a.updateUser(c, id, func(ctx context.Context) error {
		return a.users.UpdateActive(ctx, id, *req.IsActive)
	})
}

// updateUser 执行更新、清理缓存，并返回更新后的用户信息
func (a *App) updateUser(c echo.Context, id uint, update func(context.Context) error) error {
	rctx := c.Request().Context()

	if err := update(rctx); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to update user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	a.profiles.Invalidate(rctx, id)

	user, err := a.users.GetByID(rctx, id)
	if err != nil {
		a.l.Error("failed to get user", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, newUserInfo(user))
}
