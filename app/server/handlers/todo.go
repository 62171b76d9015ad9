package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/store"
)

type todoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    *int   `json:"priority"`
	Complete    bool   `json:"complete"`
}

func (r *todoRequest) validate() error {
	if utf8.RuneCountInString(r.Title) < 3 {
		return fmt.Errorf("title should be at least 3 characters")
	}
	if n := utf8.RuneCountInString(r.Description); n < 3 || n > 100 {
		return fmt.Errorf("description should be 3 to 100 characters")
	}
	if r.Priority == nil || *r.Priority < 0 || *r.Priority > 10 {
		return fmt.Errorf("priority should be between 0 and 10")
	}
	return nil
}

func (r *todoRequest) fields() store.TodoFields {
	return store.TodoFields{
		Title:       r.Title,
		Description: r.Description,
		Priority:    *r.Priority,
		Complete:    r.Complete,
	}
}

// bindTodoRequest 绑定并校验请求体
func (a *App) bindTodoRequest(c echo.Context) (*todoRequest, error) {
	var req todoRequest
	if err := c.Bind(&req); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (a *App) TodoList(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	todos, err := a.todos.ListOwned(c.Request().Context(), identity.UserID)
	if err != nil {
		a.l.Error("failed to list todos", zap.Uint("owner", identity.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, newTodoInfoList(todos))
}

func (a *App) TodoGet(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	id, err := a.bindID(c, "todo_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	todo, err := a.todos.GetOwned(c.Request().Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to get todo", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, newTodoInfo(todo))
}

func (a *App) TodoCreate(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	req, err := a.bindTodoRequest(c)
	if err != nil {
		a.l.Debug("invalid todo request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if _, err = a.todos.Create(c.Request().Context(), identity.UserID, req.fields()); err != nil {
		a.l.Error("failed to create todo", zap.Uint("owner", identity.UserID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusCreated)
}

func (a *App) TodoUpdate(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	id, err := a.bindID(c, "todo_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	req, err := a.bindTodoRequest(c)
	if err != nil {
		a.l.Debug("invalid todo request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if err = a.todos.UpdateOwned(c.Request().Context(), id, identity.UserID, req.fields()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to update todo", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusOK)
}

func (a *App) TodoDelete(c echo.Context) error {
	identity, err := a.identity(c)
	if err != nil {
		return a.er(c, http.StatusUnauthorized)
	}

	id, err := a.bindID(c, "todo_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	if err = a.todos.DeleteOwned(c.Request().Context(), id, identity.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete todo", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
