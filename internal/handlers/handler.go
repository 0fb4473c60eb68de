package handlers

import (
	"net/http"
	"time"

	_ "chill_timer/docs"
	"chill_timer/internal/logger"
	"chill_timer/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	wsInterval time.Duration
}

// Option customises a Handler.
type Option func(*Handler)

// WithStreamInterval sets the default push interval of the timer stream.
func WithStreamInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 && d <= maxInterval {
			h.wsInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, wsInterval: defaultInterval}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerCatalogRoutes(api)
		h.registerCoolingRoutes(api)
		h.registerTimerRoutes(api)
		// live timer stream; browsers pass the token as ?access_token=
		api.GET("/ws", h.wsConnect)
	}
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	api.GET("/presets", h.listPresets)
	api.GET("/presets/:id", h.getPreset)
	api.GET("/drinks", h.listDrinks)
	api.GET("/ambiences", h.listAmbiences)
}

func (h *Handler) registerCoolingRoutes(api *gin.RouterGroup) {
	cooling := api.Group("/cooling")
	{
		// ?drink_id=&ambience_id=&initial_c=20&elapsed=15m
		cooling.GET("/temperature", h.coolingTemperature)
		// ?drink_id=&ambience_id=&initial_c=20&target_c=6
		cooling.GET("/duration", h.coolingDuration)
	}
}

func (h *Handler) registerTimerRoutes(api *gin.RouterGroup) {
	timers := api.Group("/timers")
	{
		// Body example: {"preset_id":"9b0c..."}
		timers.POST("", h.startTimer)
		timers.GET("", h.listTimers)
		timers.DELETE("/:id", h.cancelTimer)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
