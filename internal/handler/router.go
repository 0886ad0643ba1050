package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flightdesk/internal/handler/api"
	"flightdesk/internal/handler/middleware"
	"flightdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, flightHandler *api.FlightHandler, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, flightHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, flightHandler *api.FlightHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		flights := apiGroup.Group("/flights")
		{
			addRoutes(flights, []route{
				{Method: http.MethodGet, Path: "", Handler: flightHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: flightHandler.Get},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/flight/:flightID", Handler: reservationHandler.ListByFlight},
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodPost, Path: "/:code/checkin/:seat", Handler: reservationHandler.CheckIn},
				{Method: http.MethodPatch, Path: "/:code/swap/:from/:to", Handler: reservationHandler.SwapSeat},
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

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := append(r.Mw, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
