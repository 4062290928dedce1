package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgInternal                  = "Internal server error"
	MsgAuthenticationUnavailable = "Authentication unavailable"
	MsgTooManyRequests           = "Too many requests"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// preserves original error so the logging middleware can report the cause
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

func AbortInternal(c *gin.Context, err error) {
	AbortWithError(c, http.StatusInternalServerError, err, MsgInternal, nil)
}
