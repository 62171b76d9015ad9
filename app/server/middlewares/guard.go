package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-service/app/server/models"
	"todo-service/app/server/utils"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

func CheckAuthenticated(identity *Identity) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	return nil
}

// CheckRole 身份有效但角色不符时返回 ErrForbidden ，与未认证区分开
func CheckRole(identity *Identity, required models.Role) error {
	if err := CheckAuthenticated(identity); err != nil {
		return err
	}

	switch required {
	case models.RoleAdmin, models.RoleUser:
		if identity.Role != required {
			return fmt.Errorf("%w: requires %s role", ErrForbidden, required)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown required role %q", ErrForbidden, required)
	}
}

func RequireAuthenticated() echo.MiddlewareFunc {
	return guard(CheckAuthenticated)
}

func RequireRole(role models.Role) echo.MiddlewareFunc {
	return guard(func(identity *Identity) error {
		return CheckRole(identity, role)
	})
}

func guard(check func(*Identity) error) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := GetIdentity(c)
			if err := check(identity); err != nil {
				return utils.ErrorResponse(c, StatusCode(err))
			}
			return next(c)
		}
	}
}

// StatusCode 把鉴权错误映射到 HTTP 状态码
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
