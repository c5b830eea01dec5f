package handler

import (
	"net/http"

	"app/internal/apperr"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Kind→HTTPステータスの対応はここに1か所だけ置く
func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindReference:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindResourceExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// 生のDBエラーは外に出さない。メッセージは分類済みのものだけ返す
func writeError(c echo.Context, err error) error {
	if ae, ok := apperr.As(err); ok {
		return c.JSON(statusOf(ae.Kind), ErrorResponse{Error: ae.Message})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
