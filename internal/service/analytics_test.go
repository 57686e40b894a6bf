package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/cache"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAnalyticsService — вспомогательная функция для создания инстанса фасада с моками.
// Кэш отчётов — реальный in-memory, чтобы проверять попадания.
func newTestAnalyticsService(t *testing.T) (*analyticsService, *mocks.MockEventRepository, *mocks.MockRiskService, *mocks.MockPatternService, *mocks.MockCrowdFlowService, *mocks.MockAlertService) {
	ctrl := gomock.NewController(t)
	eventsMock := mocks.NewMockEventRepository(ctrl)
	riskMock := mocks.NewMockRiskService(ctrl)
	patternsMock := mocks.NewMockPatternService(ctrl)
	crowdMock := mocks.NewMockCrowdFlowService(ctrl)
	alertsMock := mocks.NewMockAlertService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAnalyticsService(eventsMock, riskMock, patternsMock, crowdMock, alertsMock, cache.NewMemoryCache(5*time.Minute), logger)
	return service.(*analyticsService), eventsMock, riskMock, patternsMock, crowdMock, alertsMock
}

// expectQuietBranches настраивает все четыре ветви на пустые успешные ответы
func expectQuietBranches(ctx context.Context, eventID uuid.UUID, riskMock *mocks.MockRiskService, patternsMock *mocks.MockPatternService, crowdMock *mocks.MockCrowdFlowService, alertsMock *mocks.MockAlertService, score *models.RiskScore) {
	riskMock.EXPECT().CalculateOverallRiskScore(ctx, eventID).Return(score, nil).Times(1)
	riskMock.EXPECT().GetLocationSpecificRiskScores(ctx, eventID).Return([]models.LocationRiskScore{}, nil).Times(1)
	riskMock.EXPECT().GetIncidentTypeRiskScores(ctx, eventID).Return([]models.IncidentTypeRisk{}, nil).Times(1)
	patternsMock.EXPECT().AnalyzeIncidentPatterns(ctx, eventID).Return([]*models.IncidentPattern{}, nil).Times(1)
	crowdMock.EXPECT().PredictCrowdFlow(ctx, eventID).Return([]*models.CrowdFlowPrediction{}, nil).Times(1)
	crowdMock.EXPECT().CalculateOccupancyForecast(ctx, eventID).Return(nil, nil).Times(1)
	crowdMock.EXPECT().MonitorDensityZones(ctx, eventID).Return([]models.DensityZone{}, nil).Times(1)
	alertsMock.EXPECT().GenerateProactiveAlerts(ctx, eventID).Return([]*models.PredictiveAlert{}, nil).Times(1)
}

func TestGetEventAnalytics_AssemblesAllBranches(t *testing.T) {
	// Подготовка
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()
	now := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	score := &models.RiskScore{EventID: eventID, OverallScore: 45, RiskLevel: models.RiskLevelMedium, Confidence: 0.7}
	patterns := []*models.IncidentPattern{
		{EventID: eventID, PatternType: models.PatternSpatial, Confidence: 0.8, Recommendations: []string{"deploy additional staff to North Gate"}},
	}
	predictions := []*models.CrowdFlowPrediction{
		{EventID: eventID, PredictedDensity: 60, Confidence: 0.6},
	}
	alerts := []*models.PredictiveAlert{
		{EventID: eventID, AlertType: models.AlertTypeCrowd, Severity: models.SeverityCritical, Recommendations: []string{"halt entry immediately"}},
	}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(1)
	riskMock.EXPECT().CalculateOverallRiskScore(ctx, eventID).Return(score, nil).Times(1)
	riskMock.EXPECT().GetLocationSpecificRiskScores(ctx, eventID).Return([]models.LocationRiskScore{{Location: "North Gate"}}, nil).Times(1)
	riskMock.EXPECT().GetIncidentTypeRiskScores(ctx, eventID).Return([]models.IncidentTypeRisk{{IncidentType: "medical"}}, nil).Times(1)
	patternsMock.EXPECT().AnalyzeIncidentPatterns(ctx, eventID).Return(patterns, nil).Times(1)
	crowdMock.EXPECT().PredictCrowdFlow(ctx, eventID).Return(predictions, nil).Times(1)
	crowdMock.EXPECT().CalculateOccupancyForecast(ctx, eventID).Return(&models.OccupancyForecast{EventID: eventID}, nil).Times(1)
	crowdMock.EXPECT().MonitorDensityZones(ctx, eventID).Return([]models.DensityZone{{ZoneID: "zone-a"}}, nil).Times(1)
	alertsMock.EXPECT().GenerateProactiveAlerts(ctx, eventID).Return(alerts, nil).Times(1)

	// Действие
	report, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, eventID, report.EventID)
	assert.Equal(t, now, report.GeneratedAt)
	assert.False(t, report.FromCache)
	assert.Equal(t, score, report.Risk.Overall)
	require.Len(t, report.Risk.ByLocation, 1)
	require.Len(t, report.Risk.ByIncidentType, 1)
	assert.Equal(t, patterns, report.Patterns)
	assert.Equal(t, predictions, report.Crowd.Predictions)
	require.NotNil(t, report.Crowd.Forecast)
	require.Len(t, report.Crowd.Zones, 1)
	assert.Equal(t, alerts, report.Alerts)
	// Среднее по трём ветвям: (0.7 + 0.8 + 0.6) / 3
	assert.InDelta(t, 0.7, report.Confidence, 1e-9)
	// Критическое оповещение даёт рекомендацию с приоритетом 1
	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, 1, report.Recommendations[0].Priority)
	assert.Equal(t, "halt entry immediately", report.Recommendations[0].Message)
}

func TestGetEventAnalytics_BranchFailureIsIsolated(t *testing.T) {
	// Подготовка: ветвь риска падает, остальные заполняются
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	patterns := []*models.IncidentPattern{{EventID: eventID, PatternType: models.PatternTemporal, Confidence: 0.9}}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(1)
	riskMock.EXPECT().CalculateOverallRiskScore(ctx, eventID).Return(nil, fmt.Errorf("расчёт не удался")).Times(1)
	patternsMock.EXPECT().AnalyzeIncidentPatterns(ctx, eventID).Return(patterns, nil).Times(1)
	crowdMock.EXPECT().PredictCrowdFlow(ctx, eventID).Return([]*models.CrowdFlowPrediction{}, nil).Times(1)
	crowdMock.EXPECT().CalculateOccupancyForecast(ctx, eventID).Return(nil, nil).Times(1)
	crowdMock.EXPECT().MonitorDensityZones(ctx, eventID).Return([]models.DensityZone{}, nil).Times(1)
	alertsMock.EXPECT().GenerateProactiveAlerts(ctx, eventID).Return([]*models.PredictiveAlert{}, nil).Times(1)

	// Действие
	report, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)

	// Проверки: отчёт целый, секция риска пустая
	require.NoError(t, err)
	assert.Nil(t, report.Risk.Overall)
	assert.Empty(t, report.Risk.ByLocation)
	assert.Equal(t, patterns, report.Patterns)
	// Уверенность считается только по доступным ветвям
	assert.InDelta(t, 0.9, report.Confidence, 1e-9)
}

func TestGetEventAnalytics_SecondCallServedFromCache(t *testing.T) {
	// Подготовка: все ветви отвечают ровно один раз
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	score := &models.RiskScore{EventID: eventID, OverallScore: 45, Confidence: 0.7}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(1)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)

	// Действие
	first, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)
	require.NoError(t, err)
	second, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)

	// Проверки
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.EventID, second.EventID)
	assert.InDelta(t, first.Confidence, second.Confidence, 1e-9)
}

func TestGetEventAnalytics_CorruptCacheEntryRecomputed(t *testing.T) {
	// Подготовка: в кэше лежит нечитаемая запись под ключом отчёта
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	key := analyticsCacheKey(eventID, "operator-7")
	require.NoError(t, service.cache.Set(ctx, key, []byte("{not json")))

	score := &models.RiskScore{EventID: eventID, OverallScore: 45, Confidence: 0.7}

	// Ожидания: отчёт пересчитывается полностью
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(1)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)

	// Действие
	report, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)

	// Проверки
	require.NoError(t, err)
	assert.False(t, report.FromCache)
	assert.Equal(t, score, report.Risk.Overall)
}

func TestGetEventAnalytics_CacheKeyIncludesUser(t *testing.T) {
	// Подготовка: отчёт другого пользователя не подхватывается из кэша
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	score := &models.RiskScore{EventID: eventID, OverallScore: 45, Confidence: 0.7}

	// Ожидания: оба прохода считают отчёт заново
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(2)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)

	// Действие
	first, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)
	require.NoError(t, err)
	second, err := service.GetEventAnalytics(ctx, eventID, "operator-8", false)

	// Проверки
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.False(t, second.FromCache)
}

func TestGetEventAnalytics_ForceRefreshBypassesCache(t *testing.T) {
	// Подготовка
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	score := &models.RiskScore{EventID: eventID, OverallScore: 45, Confidence: 0.7}

	// Ожидания: оба прохода считают отчёт заново
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(2)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)

	// Действие
	_, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)
	require.NoError(t, err)
	refreshed, err := service.GetEventAnalytics(ctx, eventID, "operator-7", true)

	// Проверки
	require.NoError(t, err)
	assert.False(t, refreshed.FromCache)
}

func TestGetEventAnalytics_EventNotFound(t *testing.T) {
	// Подготовка
	service, eventsMock, _, _, _, _ := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	report, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)

	// Проверки
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, report)
}

func TestInvalidateAnalytics_DropsCachedReport(t *testing.T) {
	// Подготовка
	service, eventsMock, riskMock, patternsMock, crowdMock, alertsMock := newTestAnalyticsService(t)
	ctx := context.Background()
	eventID := uuid.New()

	score := &models.RiskScore{EventID: eventID, OverallScore: 45, Confidence: 0.7}

	// Ожидания: после инвалидации отчёт пересчитывается
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID}, nil).Times(2)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)
	expectQuietBranches(ctx, eventID, riskMock, patternsMock, crowdMock, alertsMock, score)

	// Действие
	_, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)
	require.NoError(t, err)
	require.NoError(t, service.InvalidateAnalytics(ctx, eventID, "operator-7"))
	recomputed, err := service.GetEventAnalytics(ctx, eventID, "operator-7", false)

	// Проверки
	require.NoError(t, err)
	assert.False(t, recomputed.FromCache)
}

func TestReportConfidence_EmptyReport(t *testing.T) {
	report := &models.AnalyticsReport{}
	assert.Zero(t, reportConfidence(report))
}

func TestRankRecommendations_PriorityAndDedup(t *testing.T) {
	report := &models.AnalyticsReport{
		Alerts: []*models.PredictiveAlert{
			{AlertType: models.AlertTypeCrowd, Severity: models.SeverityCritical, Recommendations: []string{"halt entry immediately"}},
			{AlertType: models.AlertTypeWeather, Severity: models.SeverityWarning, Recommendations: []string{"prepare covered walkways"}},
		},
		Crowd: models.CrowdAnalytics{
			Forecast: &models.OccupancyForecast{
				RiskPeriods: []models.RiskPeriod{
					{RiskLevel: models.RiskLevelCritical, Recommendations: []string{"halt entry immediately", "activate crowd dispersal protocol"}},
					{RiskLevel: models.RiskLevelHigh, Recommendations: []string{"slow down entry flow"}},
				},
			},
		},
		Patterns: []*models.IncidentPattern{
			{PatternType: models.PatternSpatial, Recommendations: []string{"deploy additional staff to North Gate"}},
		},
	}

	ranked := rankRecommendations(report)

	// Дубликат "halt entry immediately" схлопнут, выживает приоритет 1
	require.Len(t, ranked, 5)
	assert.Equal(t, models.Recommendation{Priority: 1, Source: "alert:" + models.AlertTypeCrowd, Message: "halt entry immediately"}, ranked[0])
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i].Priority, ranked[i-1].Priority)
	}
	messages := make([]string, 0, len(ranked))
	for _, r := range ranked {
		messages = append(messages, r.Message)
	}
	assert.NotContains(t, messages[1:], "halt entry immediately")
}
