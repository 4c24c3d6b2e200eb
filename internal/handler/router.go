package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/handler/api"
	"salon-loyalty/internal/handler/middleware"
	"salon-loyalty/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers for fx injection.
type Handlers struct {
	fx.In

	Auth     *api.AuthHandler
	Salon    *api.SalonHandler
	Checkin  *api.CheckinHandler
	Customer *api.CustomerHandler
	Realtime *api.RealtimeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ownerOnly := authMiddleware.RequireRole(profile.RoleSalonOwner)
	customerOnly := authMiddleware.RequireRole(profile.RoleCustomer)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/owner/salon", Handler: h.Salon.GetSalon, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPut, Path: "/owner/salon", Handler: h.Salon.SaveSalon, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/owner/salon/stats", Handler: h.Salon.GetStats, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/owner/salon/qr", Handler: h.Salon.GetQR, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/owner/salon/events", Handler: h.Realtime.OwnerEvents, Mw: []gin.HandlerFunc{ownerOnly}},

				{Method: http.MethodPost, Path: "/checkins", Handler: h.Checkin.CheckIn, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPost, Path: "/scan/resolve", Handler: h.Checkin.ResolveScan, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodPost, Path: "/salons/:id/cards", Handler: h.Checkin.JoinSalon, Mw: []gin.HandlerFunc{customerOnly}},

				{Method: http.MethodGet, Path: "/me/cards", Handler: h.Customer.ListCards, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "/me/visits", Handler: h.Customer.RecentVisits, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "/me/events", Handler: h.Realtime.CustomerEvents, Mw: []gin.HandlerFunc{customerOnly}},
				{Method: http.MethodGet, Path: "/barbers", Handler: h.Customer.ListBarbers},
			})
		}
	}
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
