package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/config"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	events    *mocks.MockEventService
	risk      *mocks.MockRiskService
	patterns  *mocks.MockPatternService
	crowd     *mocks.MockCrowdFlowService
	alerts    *mocks.MockAlertService
	analytics *mocks.MockAnalyticsService
}

// newTestHandler — вспомогательная функция для создания роутера с моками сервисов.
// Auth middleware не подключается: он тестируется отдельно.
func newTestHandler(t *testing.T) (handlerMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		events:    mocks.NewMockEventService(ctrl),
		risk:      mocks.NewMockRiskService(ctrl),
		patterns:  mocks.NewMockPatternService(ctrl),
		crowd:     mocks.NewMockCrowdFlowService(ctrl),
		alerts:    mocks.NewMockAlertService(ctrl),
		analytics: mocks.NewMockAnalyticsService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{"test-key"}}
	handler := NewHandler(m.events, m.risk, m.patterns, m.crowd, m.alerts, m.analytics, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return m, router
}

// makeRequest выполняет запрос к тестовому роутеру и возвращает рекордер
func makeRequest(router *gin.Engine, method, url string, body any, headers ...map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateEventRequest() CreateEventRequest {
	return CreateEventRequest{
		Name:        "Summer Festival",
		EventType:   "festival",
		VenueName:   "City Park",
		Latitude:    55.75,
		Longitude:   37.61,
		MaxCapacity: 5000,
		StaffCount:  40,
		StartsAt:    time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 7, 1, 23, 0, 0, 0, time.UTC),
	}
}

func TestCreateEvent_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)

	// Ожидания
	m.events.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events", validCreateEventRequest())

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Summer Festival", resp.Name)
}

func TestCreateEvent_ValidationFailure(t *testing.T) {
	// Подготовка: недопустимый тип мероприятия, сервис не вызывается
	_, router := newTestHandler(t)

	body := validCreateEventRequest()
	body.EventType = "rave"

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events", body)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_EndsBeforeStarts(t *testing.T) {
	// Подготовка
	_, router := newTestHandler(t)

	body := validCreateEventRequest()
	body.EndsAt = body.StartsAt.Add(-time.Hour)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events", body)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEvent_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	// Ожидания
	m.events.EXPECT().GetEvent(gomock.Any(), eventID).Return(&models.Event{ID: eventID, Name: "Summer Festival"}, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String(), nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.ID)
}

func TestGetEvent_NotFound(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	// Ожидания
	m.events.EXPECT().GetEvent(gomock.Any(), eventID).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String(), nil)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetEvent_InvalidID(t *testing.T) {
	// Подготовка
	_, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/not-a-uuid", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportIncident_EventNotFound(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	body := ReportIncidentRequest{
		IncidentType: "medical",
		Location:     "North Gate",
		Severity:     "high",
		Priority:     "high",
	}

	// Ожидания
	m.events.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: event %s not found: %w", eventID, models.ErrNotFound)).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/incidents", body)

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	body := ReportIncidentRequest{
		IncidentType: "crowd_control",
		Location:     "Main Stage",
		Severity:     "medium",
		Priority:     "normal",
	}

	// Ожидания
	m.events.EXPECT().ReportIncident(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/incidents", body)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, eventID, resp.EventID)
	assert.Equal(t, "crowd_control", resp.IncidentType)
}

func TestRecordAttendance_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()
	at := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)

	body := RecordAttendanceRequest{Count: 1500, RecordedAt: at}
	sample := &models.AttendanceSample{EventID: eventID, Count: 1500, RecordedAt: at}

	// Ожидания
	m.events.EXPECT().RecordAttendance(gomock.Any(), eventID, 1500, at).Return(sample, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/attendance", body)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRecordWeather_ProviderUnavailable(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	// Ожидания
	m.events.EXPECT().RecordWeather(gomock.Any(), eventID).
		Return(nil, fmt.Errorf("service: weather provider unavailable: timeout")).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/weather", nil)

	// Проверки
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetAnalytics_PassesUserAndRefresh(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	report := &models.AnalyticsReport{EventID: eventID}

	// Ожидания: refresh=true и X-User-ID доезжают до сервиса
	m.analytics.EXPECT().GetEventAnalytics(gomock.Any(), eventID, "operator-7", true).Return(report, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/analytics?refresh=true", nil,
		map[string]string{"X-User-ID": "operator-7"})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetAnalytics_AnonymousByDefault(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	// Ожидания
	m.analytics.EXPECT().GetEventAnalytics(gomock.Any(), eventID, "anonymous", false).
		Return(&models.AnalyticsReport{EventID: eventID}, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/analytics", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetRiskScore_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	score := &models.RiskScore{EventID: eventID, OverallScore: 42, RiskLevel: models.RiskLevelMedium}

	// Ожидания
	m.risk.EXPECT().CalculateOverallRiskScore(gomock.Any(), eventID).Return(score, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/risk", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.RiskScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 42, resp.OverallScore, 1e-9)
}

func TestGetRiskScore_UnpersistedScoreStillServed(t *testing.T) {
	// Подготовка: оценка посчитана, но запись не удалась — клиент её всё равно получает
	m, router := newTestHandler(t)
	eventID := uuid.New()

	score := &models.RiskScore{EventID: eventID, OverallScore: 42}

	// Ожидания
	m.risk.EXPECT().CalculateOverallRiskScore(gomock.Any(), eventID).
		Return(score, fmt.Errorf("service: could not persist risk score: база недоступна")).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/risk", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPatterns_QueryBranching(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()
	base := "/api/v1/events/" + eventID.String() + "/patterns"

	// Ожидания: каждый query-параметр ведёт в свой метод сервиса
	m.patterns.EXPECT().GetPatternsByType(gomock.Any(), eventID, "temporal").Return([]*models.IncidentPattern{}, nil).Times(1)
	m.patterns.EXPECT().GetPatternsAboveConfidence(gomock.Any(), eventID, 0.7).Return([]*models.IncidentPattern{}, nil).Times(1)
	m.patterns.EXPECT().AnalyzeIncidentPatterns(gomock.Any(), eventID).Return([]*models.IncidentPattern{}, nil).Times(1)

	// Действие и проверки
	assert.Equal(t, http.StatusOK, makeRequest(router, http.MethodGet, base+"?type=temporal", nil).Code)
	assert.Equal(t, http.StatusOK, makeRequest(router, http.MethodGet, base+"?min_confidence=0.7", nil).Code)
	assert.Equal(t, http.StatusOK, makeRequest(router, http.MethodGet, base, nil).Code)
}

func TestGetPatterns_InvalidMinConfidence(t *testing.T) {
	// Подготовка
	_, router := newTestHandler(t)
	eventID := uuid.New()

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/patterns?min_confidence=lots", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetForecast_NoBatch(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	// Ожидания
	m.crowd.EXPECT().CalculateOccupancyForecast(gomock.Any(), eventID).Return(nil, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/events/"+eventID.String()+"/forecast", nil)

	// Проверки: нет пачки прогнозов — нет тела
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGenerateAlerts_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	eventID := uuid.New()

	alerts := []*models.PredictiveAlert{
		{EventID: eventID, AlertType: models.AlertTypeCrowd, Severity: models.SeverityCritical},
	}

	// Ожидания
	m.alerts.EXPECT().GenerateProactiveAlerts(gomock.Any(), eventID).Return(alerts, nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/events/"+eventID.String()+"/alerts/generate", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*models.PredictiveAlert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, models.SeverityCritical, resp[0].Severity)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	alertID := uuid.New()

	// Ожидания
	m.alerts.EXPECT().AcknowledgeAlert(gomock.Any(), alertID, "operator-7").Return(nil).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/ack", AcknowledgeAlertRequest{UserID: "operator-7"})

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	// Подготовка
	m, router := newTestHandler(t)
	alertID := uuid.New()

	// Ожидания
	m.alerts.EXPECT().AcknowledgeAlert(gomock.Any(), alertID, "operator-7").Return(models.ErrNotFound).Times(1)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/ack", AcknowledgeAlertRequest{UserID: "operator-7"})

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAcknowledgeAlert_MissingUser(t *testing.T) {
	// Подготовка: пустой user_id не проходит валидацию
	_, router := newTestHandler(t)
	alertID := uuid.New()

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/alerts/"+alertID.String()+"/ack", AcknowledgeAlertRequest{})

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	_, router := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// newAuthRouter строит роутер с включённым auth middleware
func newAuthRouter() *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"valid-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(APIKeyAuthMiddleware(cfg, logger))
	api.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/api/v1/ping", nil, map[string]string{"X-API-Key": "valid-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/api/v1/ping", nil, map[string]string{"Authorization": "Bearer valid-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/api/v1/ping", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	router := newAuthRouter()

	w := makeRequest(router, http.MethodGet, "/api/v1/ping", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
