package response

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	RequestID  string `json:"request_id,omitempty"`
}

func NewErr(statusCode int, message string) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    message,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err.Error())
}

func ErrWrongCredentials() *Err {
	return NewErr(http.StatusUnauthorized, "wrong username or password")
}

func ErrNotFound(err error) *Err {
	return NewErr(http.StatusNotFound, err.Error())
}

func ErrConflict(err error) *Err {
	return NewErr(http.StatusConflict, err.Error())
}

// ErrInternalServerError logs the wrapped cause and returns an opaque body,
// so storage details never leak to the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "internal server error")
}

func RenderErr(ctx *gin.Context, err *Err) {
	err.RequestID = requestid.Get(ctx)
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
