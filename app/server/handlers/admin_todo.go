package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/store"
)

func (a *App) AdminTodoList(c echo.Context) error {
	page, limit, err := a.bindPagination(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	showAll, parsedPage, parsedLimit := a.parsePagination(page, limit)
	todos, count, err := a.todos.ListAll(c.Request().Context(), showAll, parsedPage, parsedLimit)
	if err != nil {
		a.l.Error("failed to get todo list", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &listResponse[todoInfo]{
		Limit:   parsedLimit,
		PageMax: a.calcMaxPage(count, showAll, parsedLimit),
		List:    newTodoInfoList(todos),
	})
}

func (a *App) AdminTodoDelete(c echo.Context) error {
	id, err := a.bindID(c, "todo_id")
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	if err = a.todos.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return a.er(c, http.StatusNotFound)
		}
		a.l.Error("failed to delete todo", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
