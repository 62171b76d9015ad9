package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorMessage struct {
	Message *string `json:"message"`
}

// ErrorResponse 只返回状态码对应的通用描述，不暴露具体失败原因
func ErrorResponse(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &ErrorMessage{
		Message: P(http.StatusText(statusCode)),
	})
}
