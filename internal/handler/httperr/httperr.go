package httperr

import (
	"net/http"

	"loyalty-wallet/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRequest  = "Invalid request"
	MsgUnauthorized    = "Unauthorized"
	MsgNotFound        = "Not found"
	MsgTooManyRequests = "Too many requests"
	MsgInternal        = "Internal server error"
)

// Response is the body of every error reply. PassKit clients ignore it; the
// PWA and scanner read error.message.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// AbortWithError records err on the context for ErrorHandler and writes the
// public response.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// InvalidRequest rejects a body or query that failed binding.
func InvalidRequest(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, MsgInvalidRequest, nil)
}

// Reject aborts without an underlying error, e.g. auth or throttling
// decisions made by middleware.
func Reject(c *gin.Context, status int, msg string) {
	AbortWithError(c, status, errs.Newf("%d %s", status, msg), msg, nil)
}
