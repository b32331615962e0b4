package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kiosk/config"
	"kiosk/internal/service"
	"kiosk/internal/transport/websocket"
)

type Handler struct {
	services   *service.Services
	logger     *zap.Logger
	config     *config.Config
	displayHub *websocket.DisplayHub
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, displayHub *websocket.DisplayHub) *Handler {
	return &Handler{
		services:   services,
		logger:     logger,
		config:     config,
		displayHub: displayHub,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		kiosk := api.Group("/kiosk")
		{
			kiosk.POST("/sessions", h.openSession)

			auth := kiosk.Group("/", h.sessionMiddleware())
			{
				auth.DELETE("/sessions", h.closeSession)
				auth.GET("/frame", h.getFrame)
				auth.POST("/events", h.dispatchEvent)
			}
		}

		specialists := api.Group("/specialists")
		{
			specialists.GET("", h.getSpecialists)
			specialists.GET("/:id", h.getSpecialistByID)
			specialists.GET("/:id/calendar", h.getSpecialistCalendar)
		}
	}

	if h.displayHub != nil {
		router.GET("/ws/display", h.displayHub.Handler(h.services.Kiosk))
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// @Summary Verificação de saúde
// @Description Informa se o serviço está no ar
// @Tags Sistema
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Name:    h.config.Name,
		Version: h.config.Version,
	})
}
