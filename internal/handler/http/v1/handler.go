package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/config"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	eventService     service.EventService
	riskService      service.RiskService
	patternService   service.PatternService
	crowdService     service.CrowdFlowService
	alertService     service.AlertService
	analyticsService service.AnalyticsService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	eventService service.EventService,
	riskService service.RiskService,
	patternService service.PatternService,
	crowdService service.CrowdFlowService,
	alertService service.AlertService,
	analyticsService service.AnalyticsService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		eventService:     eventService,
		riskService:      riskService,
		patternService:   patternService,
		crowdService:     crowdService,
		alertService:     alertService,
		analyticsService: analyticsService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

func parseEventID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event ID"})
		return uuid.Nil, false
	}
	return id, true
}

// userID для ключа кеша аналитики: берём из заголовка, иначе аноним
func requestUserID(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return userID
	}
	return "anonymous"
}

// @Summary Create a new event
// @Description Create a new event for safety analytics tracking. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body CreateEventRequest true "Event creation request"
// @Success 201 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [post]
func (h *Handler) createEvent(c *gin.Context) {
	var input CreateEventRequest
	log := h.logger.WithField("method", "createEvent")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToEventModel(input)
	if err := h.eventService.CreateEvent(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create event in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEventResponse(model))
}

// @Summary Get a list of events
// @Description Get a paginated list of all events. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} EventResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events [get]
func (h *Handler) listEvents(c *gin.Context) {
	log := h.logger.WithField("method", "listEvents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	events, err := h.eventService.ListEvents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list events from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToEventResponses(events))
}

// @Summary Get event by ID
// @Description Get a single event by its ID. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /events/{id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getEvent").WithField("id", id)

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get event from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToEventResponse(event))
}

// @Summary Update an existing event
// @Description Update an existing event by ID. Requires API key.
// @Tags Events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Event update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid event ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id} [put]
func (h *Handler) updateEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateEvent").WithField("id", id)

	var input UpdateEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToEventModel(input)
	model.ID = id

	if err := h.eventService.UpdateEvent(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update event in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event in service"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Report an incident
// @Description Report a new incident for an event. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param incident body ReportIncidentRequest true "Incident report request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/incidents [post]
func (h *Handler) reportIncident(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "reportIncident").WithField("event_id", id)

	var input ReportIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	model.EventID = id
	if err := h.eventService.ReportIncident(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to report incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary List incidents for an event
// @Description Get the incident history of an event. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "listIncidents").WithField("event_id", id)

	incidents, err := h.eventService.ListIncidents(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Resolve an incident
// @Description Mark an open incident as resolved. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found or already resolved"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	if err := h.eventService.ResolveIncident(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to resolve incident in service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found or already resolved"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Record an attendance sample
// @Description Record a crowd attendance sample for an event. Requires API key.
// @Tags Telemetry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param sample body RecordAttendanceRequest true "Attendance sample"
// @Success 201 {object} models.AttendanceSample
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/attendance [post]
func (h *Handler) recordAttendance(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recordAttendance").WithField("event_id", id)

	var input RecordAttendanceRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sample, err := h.eventService.RecordAttendance(c.Request.Context(), id, input.Count, input.RecordedAt)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to record attendance in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, sample)
}

// @Summary Record a weather reading
// @Description Fetch current weather conditions and store a reading for risk scoring. Requires API key.
// @Tags Telemetry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 201 {object} models.WeatherReading
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 502 {object} map[string]string "Weather provider unavailable"
// @Router /events/{id}/weather [post]
func (h *Handler) recordWeather(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recordWeather").WithField("event_id", id)

	reading, err := h.eventService.RecordWeather(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Warn("Failed to record weather reading")
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather provider unavailable"})
		return
	}
	c.JSON(http.StatusCreated, reading)
}

// @Summary Get a combined analytics report
// @Description Get the combined analytics report (risk, patterns, crowd flow, alerts) for an event. Requires API key.
// @Tags Analytics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param refresh query bool false "Bypass the cached report" default(false)
// @Success 200 {object} models.AnalyticsReport
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getAnalytics").WithField("event_id", id)
	forceRefresh := c.Query("refresh") == "true"

	report, err := h.analyticsService.GetEventAnalytics(c.Request.Context(), id, requestUserID(c), forceRefresh)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to build analytics report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Get the overall risk score
// @Description Calculate and return the current overall risk score for an event. Requires API key.
// @Tags Risk
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} models.RiskScore
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/risk [get]
func (h *Handler) getRiskScore(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getRiskScore").WithField("event_id", id)

	score, err := h.riskService.CalculateOverallRiskScore(c.Request.Context(), id)
	if err != nil && score == nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to calculate risk score")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if err != nil {
		log.WithError(err).Warn("Risk score computed but not persisted")
	}
	c.JSON(http.StatusOK, score)
}

// @Summary Get location risk breakdown
// @Description Get per-location risk aggregates derived from incident history. Requires API key.
// @Tags Risk
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} models.LocationRiskScore
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/risk/locations [get]
func (h *Handler) getLocationRisks(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getLocationRisks").WithField("event_id", id)

	scores, err := h.riskService.GetLocationSpecificRiskScores(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get location risk scores")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, scores)
}

// @Summary Get incident type risk breakdown
// @Description Get per-incident-type risk aggregates derived from incident history. Requires API key.
// @Tags Risk
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} models.IncidentTypeRisk
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/risk/incident-types [get]
func (h *Handler) getIncidentTypeRisks(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getIncidentTypeRisks").WithField("event_id", id)

	scores, err := h.riskService.GetIncidentTypeRiskScores(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident type risk scores")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, scores)
}

// @Summary Analyze incident patterns
// @Description Run pattern analysis over the event's incident history and return detected patterns. Supports filtering by type and minimum confidence. Requires API key.
// @Tags Patterns
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Param type query string false "Pattern type filter (temporal, spatial, behavioral, correlation)"
// @Param min_confidence query number false "Minimum confidence filter"
// @Success 200 {array} models.IncidentPattern
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/patterns [get]
func (h *Handler) getPatterns(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getPatterns").WithField("event_id", id)

	var patterns []*models.IncidentPattern
	var err error
	switch {
	case c.Query("type") != "":
		patterns, err = h.patternService.GetPatternsByType(c.Request.Context(), id, c.Query("type"))
	case c.Query("min_confidence") != "":
		minConfidence, parseErr := strconv.ParseFloat(c.Query("min_confidence"), 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_confidence"})
			return
		}
		patterns, err = h.patternService.GetPatternsAboveConfidence(c.Request.Context(), id, minConfidence)
	default:
		patterns, err = h.patternService.AnalyzeIncidentPatterns(c.Request.Context(), id)
	}
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to analyze incident patterns")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// @Summary Predict crowd flow
// @Description Build and return the crowd flow prediction batch for an event. Requires API key.
// @Tags Crowd
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} models.CrowdFlowPrediction
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/predictions [get]
func (h *Handler) getPredictions(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getPredictions").WithField("event_id", id)

	predictions, err := h.crowdService.PredictCrowdFlow(c.Request.Context(), id)
	if err != nil && predictions == nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to predict crowd flow")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if err != nil {
		log.WithError(err).Warn("Crowd predictions computed but not persisted")
	}
	c.JSON(http.StatusOK, predictions)
}

// @Summary Get the occupancy forecast
// @Description Get the occupancy forecast summary built from the latest prediction batch. Requires API key.
// @Tags Crowd
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {object} models.OccupancyForecast
// @Success 204 "No prediction batch available"
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/forecast [get]
func (h *Handler) getForecast(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getForecast").WithField("event_id", id)

	forecast, err := h.crowdService.CalculateOccupancyForecast(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to calculate occupancy forecast")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if forecast == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// @Summary Get density zone snapshots
// @Description Get the current per-zone density snapshots for an event venue. Requires API key.
// @Tags Crowd
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} models.DensityZone
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/zones [get]
func (h *Handler) getDensityZones(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getDensityZones").WithField("event_id", id)

	zones, err := h.crowdService.MonitorDensityZones(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to monitor density zones")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, zones)
}

// @Summary Get active alerts
// @Description Get unacknowledged, unexpired alerts for an event, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} models.PredictiveAlert
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/alerts [get]
func (h *Handler) getActiveAlerts(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getActiveAlerts").WithField("event_id", id)

	alerts, err := h.alertService.GetActiveAlerts(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get active alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Generate proactive alerts
// @Description Run all alert checks for an event and return the prioritized alert list. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Event ID"
// @Success 200 {array} models.PredictiveAlert
// @Failure 400 {object} map[string]string "Invalid event ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /events/{id}/alerts/generate [post]
func (h *Handler) generateAlerts(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "generateAlerts").WithField("event_id", id)

	alerts, err := h.alertService.GenerateProactiveAlerts(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		log.WithError(err).Error("Failed to generate proactive alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Acknowledge an alert
// @Description Acknowledge an alert once on behalf of a user. Acknowledgement cannot be undone. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param ack body AcknowledgeAlertRequest true "Acknowledgement request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found or already acknowledged"
// @Router /alerts/{id}/ack [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	var input AcknowledgeAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.alertService.AcknowledgeAlert(c.Request.Context(), id, input.UserID); err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert in service")
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found or already acknowledged"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
