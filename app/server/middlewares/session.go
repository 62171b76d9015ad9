package middlewares

import (
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-service/app/server/jwt"
	"todo-service/app/server/models"
	"todo-service/app/server/utils"
)

// Session 从 Authorization: Bearer <token> 中提取并校验令牌，
// 成功后把 Identity 放进 context ，任何失败都返回 401
func Session(j *jwt.JWT, l *zap.Logger) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return ExtractIdentity(j, auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			l.Debug("session rejected", zap.String("URI", c.Request().RequestURI), zap.Error(err))
			return utils.ErrorResponse(c, http.StatusUnauthorized)
		},
	})
}

// ExtractIdentity 校验令牌，并确认必要的声明齐全
func ExtractIdentity(j *jwt.JWT, token string) (*Identity, error) {
	user, err := j.ParseUser(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	// 签名有效但缺少字段的令牌同样拒绝
	if user.Username == "" || user.ID == 0 {
		return nil, fmt.Errorf("%w: token is missing required claims", ErrUnauthenticated)
	}

	role, err := models.ParseRole(user.Role)
	if err != nil || user.Role == "" {
		return nil, fmt.Errorf("%w: token carries invalid role %q", ErrUnauthenticated, user.Role)
	}

	return &Identity{
		Username: user.Username,
		UserID:   user.ID,
		Role:     role,
	}, nil
}
