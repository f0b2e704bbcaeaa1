package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/api"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/infra/metrics"
	"stay-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Property    *api.PropertyHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.NewRateLimiter(cfg.RateLimit, m).Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/payment", Handler: h.Reservation.RecordPayment},
			})
		}

		properties := apiGroup.Group("/properties/:id")
		{
			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Property.Availability},
				{Method: http.MethodGet, Path: "/quote", Handler: h.Property.Quote},
			})

			hostOnly := properties.Group("")
			hostOnly.Use(authMiddleware.RequireAuth())
			addRoutes(hostOnly, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Property.ListReservations},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Property.Calendar},
				{Method: http.MethodGet, Path: "/current-count", Handler: h.Property.CurrentCount},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{
					Method:  http.MethodPost,
					Path:    "/complete-elapsed",
					Handler: h.Reservation.CompleteElapsed,
					Mw:      []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin)},
				},
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
