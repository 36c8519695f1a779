package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFoundStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func ConflictStatus(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteError maps a use-case error onto the wire: business errors keep
// their kind's status, anything else is a 500.
func WriteError(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", "unexpected error")
		return
	}

	switch be.Kind {
	case KindConflict:
		ConflictStatus(c, be.Code, be.Message)
	case KindNotFound:
		NotFoundStatus(c, be.Code, be.Message)
	default:
		BadRequest(c, be.Code, be.Message)
	}
}
