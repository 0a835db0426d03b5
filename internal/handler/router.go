package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"loyalty-wallet/internal/domain/staff"
	"loyalty-wallet/internal/handler/api"
	"loyalty-wallet/internal/handler/middleware"
	"loyalty-wallet/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	PassHandler    *api.PassHandler
	PassKitHandler *api.PassKitHandler
	ScannerHandler *api.ScannerHandler
	AuthMiddleware *middleware.AuthMiddleware
	PassKitAuth    *middleware.PassKitAuth
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Apple Wallet web service
	v1 := engine.Group("/v1")
	{
		registration := "/devices/:deviceLibraryId/registrations/:passTypeId/:serialNumber"
		addRoutes(v1, []route{
			{Method: http.MethodPost, Path: registration, Handler: p.PassKitHandler.Register, Mw: []gin.HandlerFunc{p.PassKitAuth.Require()}},
			{Method: http.MethodDelete, Path: registration, Handler: p.PassKitHandler.Unregister, Mw: []gin.HandlerFunc{p.PassKitAuth.Require()}},
			{Method: http.MethodGet, Path: "/devices/:deviceLibraryId/registrations/:passTypeId", Handler: p.PassKitHandler.ListUpdated, Mw: []gin.HandlerFunc{p.PassKitAuth.RequireStrict()}},
			{Method: http.MethodGet, Path: "/passes/:passTypeId/:serialNumber", Handler: p.PassKitHandler.LatestPass, Mw: []gin.HandlerFunc{p.PassKitAuth.Require()}},
			{
				Method:  http.MethodPost,
				Path:    "/log",
				Handler: p.PassKitHandler.Log,
				Mw:      deviceLogMiddleware(p.Config, p.PassKitAuth),
			},
		})
	}

	apiGroup := engine.Group("/api")
	{
		passes := apiGroup.Group("/passes")
		addRoutes(passes, []route{
			{Method: http.MethodPost, Path: "", Handler: p.PassHandler.Create},
			{Method: http.MethodGet, Path: "/:userId/apple", Handler: p.PassHandler.DownloadApple},
		})

		scanner := apiGroup.Group("/scanner")
		scanner.Use(p.AuthMiddleware.RequireAuth(), p.AuthMiddleware.RequireRoleAtLeast(staff.RoleOperator))
		{
			addRoutes(scanner, []route{
				{Method: http.MethodPost, Path: "/lookup", Handler: p.ScannerHandler.Lookup},
				{Method: http.MethodPost, Path: "/stamps", Handler: p.ScannerHandler.Stamps},
				{Method: http.MethodPost, Path: "/redeem", Handler: p.ScannerHandler.Redeem},
			})
		}
	}
}

// deviceLogMiddleware authenticates before throttling so rejected requests
// never spend the log budget.
func deviceLogMiddleware(cfg config.Config, auth *middleware.PassKitAuth) []gin.HandlerFunc {
	return []gin.HandlerFunc{auth.RequireStrict(), middleware.NewDeviceLogLimiter(cfg)}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
