package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/handler/api"
	"petstay-backend/internal/handler/httperr"
	"petstay-backend/internal/handler/middleware"
	"petstay-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability   *api.AvailabilityHandler
	RoomBookings   *api.RoomBookingHandler
	SitterBookings *api.SitterBookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
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

	clientOnly := authMiddleware.RequireRole(user.RoleClient)
	providerOrAdmin := authMiddleware.RequireRole(user.RoleProvider, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.SearchRooms},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.CheckRoom},
			{Method: http.MethodPost, Path: "/:id/calendar", Handler: h.Availability.GenerateCalendar, Mw: []gin.HandlerFunc{providerOrAdmin}},
		})

		sitters := apiGroup.Group("/sitters")
		addRoutes(sitters, []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Availability.CheckSitter},
		})

		roomBookings := apiGroup.Group("/room-bookings")
		addRoutes(roomBookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.RoomBookings.Create, Mw: []gin.HandlerFunc{clientOnly}},
			{Method: http.MethodGet, Path: "", Handler: h.RoomBookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.RoomBookings.Get},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.RoomBookings.Confirm},
			{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.RoomBookings.CheckIn},
			{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.RoomBookings.CheckOut},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.RoomBookings.Cancel},
		})

		sitterBookings := apiGroup.Group("/sitter-bookings")
		addRoutes(sitterBookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.SitterBookings.Create, Mw: []gin.HandlerFunc{clientOnly}},
			{Method: http.MethodGet, Path: "", Handler: h.SitterBookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.SitterBookings.Get},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.SitterBookings.Confirm},
			{Method: http.MethodPost, Path: "/:id/start", Handler: h.SitterBookings.Start},
			{Method: http.MethodPost, Path: "/:id/request-complete", Handler: h.SitterBookings.RequestComplete},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.SitterBookings.Complete},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.SitterBookings.Cancel},
		})
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
