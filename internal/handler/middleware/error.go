package middleware

import (
	"log/slog"
	"net/http"

	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler logs server-side failures recorded by handlers and writes the
// public response when a handler aborted without a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			resp, ok := err.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			attrs := []any{
				"path", c.FullPath(),
				"status", resp.Status,
				"error", err.Err.Error(),
			}
			if errs.Is(err.Err, errs.ErrPassGeneration) {
				attrs = append(attrs, "pass_generation", true)
			}
			slog.Error("request failed", attrs...)
			slog.Debug("request failed stack", "path", c.FullPath(), "stack", errs.ExtractStackLines(err.Err, 12))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.MsgInternal))
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err := errs.Newf("panic: %v", rec)
			slog.Error("recovered from panic",
				"error", rec,
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(err, 20))

			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		}()
		c.Next()
	}
}
