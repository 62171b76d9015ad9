package handlers

import (
	"github.com/labstack/echo/v4"

	"todo-service/app/server/middlewares"
	"todo-service/app/server/models"
)

func (a *App) RegisterHandlers(e *echo.Echo) {
	e.GET("/healthz", a.HealthCheck)

	// 公开接口
	authGroup := e.Group("/auth")
	authGroup.POST("/", a.AuthRegister)
	authGroup.POST("/token", a.AuthToken)

	session := middlewares.Session(a.jwt, a.l)

	// 登录用户
	todoGroup := e.Group("/todo", session, middlewares.RequireAuthenticated())
	todoGroup.GET("/all", a.TodoList)
	todoGroup.GET("/getById", a.TodoGet)
	todoGroup.POST("/create", a.TodoCreate)
	todoGroup.PUT("/updateById", a.TodoUpdate)
	todoGroup.DELETE("/delete", a.TodoDelete)

	usersGroup := e.Group("/users", session, middlewares.RequireAuthenticated())
	usersGroup.GET("/me", a.UserInfoGetSelf)
	usersGroup.PUT("/me/changePassword", a.UserPasswordUpdateSelf)

	// 管理员
	adminGroup := e.Group("/admin", session, middlewares.RequireRole(models.RoleAdmin))
	adminGroup.GET("/todo", a.AdminTodoList)
	adminGroup.DELETE("/todo", a.AdminTodoDelete)
	adminGroup.GET("/users", a.AdminUserList)
	adminGroup.DELETE("/users", a.AdminUserDelete)
	adminGroup.PUT("/users/role", a.AdminUserRoleUpdate)
	adminGroup.PUT("/users/active", a.AdminUserActiveUpdate)
}
