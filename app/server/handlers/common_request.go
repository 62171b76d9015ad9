package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"todo-service/app/server/middlewares"
)

var errInvalidID = errors.New("id should be a positive integer")

// identity 取出 Session 中间件放入的调用者
func (a *App) identity(c echo.Context) (*middlewares.Identity, error) {
	identity, _ := middlewares.GetIdentity(c)
	if err := middlewares.CheckAuthenticated(identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// bindID 读取必填的正整数查询参数，例如 ?todo_id=1
func (a *App) bindID(c echo.Context, name string) (uint, error) {
	var id uint
	if err := echo.QueryParamsBinder(c).MustUint(name, &id).BindError(); err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}
