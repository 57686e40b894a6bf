package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления мероприятиями и их телеметрией
	events := api.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)

		events.POST("/:id/incidents", h.reportIncident)
		events.GET("/:id/incidents", h.listIncidents)
		events.POST("/:id/attendance", h.recordAttendance)
		events.POST("/:id/weather", h.recordWeather)

		// Аналитические маршруты
		events.GET("/:id/analytics", h.getAnalytics)
		events.GET("/:id/risk", h.getRiskScore)
		events.GET("/:id/risk/locations", h.getLocationRisks)
		events.GET("/:id/risk/incident-types", h.getIncidentTypeRisks)
		events.GET("/:id/patterns", h.getPatterns)
		events.GET("/:id/predictions", h.getPredictions)
		events.GET("/:id/forecast", h.getForecast)
		events.GET("/:id/zones", h.getDensityZones)

		events.GET("/:id/alerts", h.getActiveAlerts)
		events.POST("/:id/alerts/generate", h.generateAlerts)
	}

	api.POST("/incidents/:id/resolve", h.resolveIncident)
	api.POST("/alerts/:id/ack", h.acknowledgeAlert)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
