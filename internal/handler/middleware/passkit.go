package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const applePassScheme = "ApplePass "

// PassKitAuth checks the "Authorization: ApplePass <token>" header devices
// send to the web service. Every failure yields the same 401 body.
type PassKitAuth struct {
	token  []byte
	strict bool
}

func NewPassKitAuth(cfg config.Config) *PassKitAuth {
	return &PassKitAuth{
		token:  []byte(cfg.PassKit.AuthToken),
		strict: cfg.PassKit.StrictAuth,
	}
}

func (m *PassKitAuth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authorized(c.GetHeader("Authorization")) {
			slog.Warn("passkit request rejected", "path", c.FullPath(), "client_ip", c.ClientIP())
			abortUnauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireStrict applies Require only when strict auth is configured. Devices
// call the list and log endpoints without the header.
func (m *PassKitAuth) RequireStrict() gin.HandlerFunc {
	if !m.strict {
		return func(c *gin.Context) { c.Next() }
	}
	return m.Require()
}

func (m *PassKitAuth) authorized(header string) bool {
	token, ok := strings.CutPrefix(header, applePassScheme)
	if !ok || len(m.token) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), m.token) == 1
}

func abortUnauthorized(c *gin.Context) {
	httperr.Reject(c, http.StatusUnauthorized, httperr.MsgUnauthorized)
}
