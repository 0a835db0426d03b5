package middleware

import (
	"log/slog"
	"slices"

	"loyalty-wallet/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// headers the PWA reads when it downloads a pass
var passDownloadHeaders = []string{"Content-Disposition", "Last-Modified"}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(corsConfig(cfg))
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    slices.Clone(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	for _, h := range passDownloadHeaders {
		if !slices.Contains(corsCfg.ExposeHeaders, h) {
			corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, h)
		}
	}

	// a wildcard origin cannot carry credentials
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all", corsCfg.AllowAllOrigins)
	return corsCfg
}
