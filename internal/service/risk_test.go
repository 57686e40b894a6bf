package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRiskService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestRiskService(t *testing.T) (*riskService, *mocks.MockEventRepository, *mocks.MockIncidentRepository, *mocks.MockWeatherRepository, *mocks.MockRiskRepository) {
	ctrl := gomock.NewController(t)
	eventsMock := mocks.NewMockEventRepository(ctrl)
	incidentsMock := mocks.NewMockIncidentRepository(ctrl)
	weatherMock := mocks.NewMockWeatherRepository(ctrl)
	risksMock := mocks.NewMockRiskRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewRiskService(eventsMock, incidentsMock, weatherMock, risksMock, 2*time.Hour, logger)
	return service.(*riskService), eventsMock, incidentsMock, weatherMock, risksMock
}

func TestFactorWeight_CrowdDensitySteps(t *testing.T) {
	cases := []struct {
		value  float64
		weight float64
		bucket string
	}{
		{96, 0.40, models.RiskLevelCritical},
		{95, 0.40, models.RiskLevelCritical},
		{90, 0.30, models.RiskLevelHigh},
		{75, 0.20, models.RiskLevelMedium},
		{55, 0.15, models.RiskLevelLow},
		{30, 0.10, models.RiskLevelLow},
		{0, 0.10, models.RiskLevelLow},
	}
	for _, tc := range cases {
		weight, bucket := factorWeight(models.FactorCrowdDensity, tc.value)
		assert.InDelta(t, tc.weight, weight, 1e-9, "value %.0f", tc.value)
		assert.Equal(t, tc.bucket, bucket, "value %.0f", tc.value)
	}
}

func TestFactorWeight_IncidentFrequencySteps(t *testing.T) {
	// Пороги для частоты заданы в инцидентах за час
	cases := []struct {
		perHour float64
		weight  float64
		bucket  string
	}{
		{16, 0.40, models.RiskLevelCritical},
		{12, 0.30, models.RiskLevelHigh},
		{8, 0.20, models.RiskLevelMedium},
		{5, 0.15, models.RiskLevelLow},
		{3, 0.10, models.RiskLevelLow},
	}
	for _, tc := range cases {
		weight, bucket := factorWeight(models.FactorIncidentFrequency, tc.perHour)
		assert.InDelta(t, tc.weight, weight, 1e-9, "perHour %.0f", tc.perHour)
		assert.Equal(t, tc.bucket, bucket, "perHour %.0f", tc.perHour)
	}
}

func TestRiskLevelFromScore_Boundaries(t *testing.T) {
	assert.Equal(t, models.RiskLevelLow, models.RiskLevelFromScore(39.9))
	assert.Equal(t, models.RiskLevelMedium, models.RiskLevelFromScore(40))
	assert.Equal(t, models.RiskLevelHigh, models.RiskLevelFromScore(60))
	assert.Equal(t, models.RiskLevelCritical, models.RiskLevelFromScore(80))
	assert.Equal(t, models.RiskLevelCritical, models.RiskLevelFromScore(100))
}

func TestCalculateOverallRiskScore_QuietAfternoonConference(t *testing.T) {
	// Подготовка
	service, eventsMock, incidentsMock, weatherMock, risksMock := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()
	// Фиксируем будний день, 14:00
	service.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }

	event := &models.Event{
		ID:                eventID,
		EventType:         "conference",
		MaxCapacity:       1000,
		CurrentAttendance: 0,
		StaffCount:        5,
	}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(event, nil).Times(1)
	weatherMock.EXPECT().LatestByEvent(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)
	incidentsMock.EXPECT().ListByEventSince(ctx, eventID, gomock.Any()).Return([]*models.Incident{}, nil).Times(1)
	risksMock.EXPECT().UpsertRiskScore(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	score, err := service.CalculateOverallRiskScore(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, score)
	// Шесть факторов, все с весом 0.1:
	// плотность 0, погода 50 (нейтральная), частота 0, персонал 0, час 20, тип 30
	assert.InDelta(t, 100.0/6, score.OverallScore, 0.01)
	assert.Equal(t, models.RiskLevelLow, score.RiskLevel)
	// Один фактор без данных (погода): 0.8 - 0.1
	assert.InDelta(t, 0.7, score.Confidence, 1e-9)
	assert.Len(t, score.ContributingFactors, 6)
}

func TestCalculateOverallRiskScore_ModerateIncidentRateStaysLow(t *testing.T) {
	// Подготовка
	service, eventsMock, incidentsMock, weatherMock, risksMock := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()
	service.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }

	event := &models.Event{ID: eventID, EventType: "conference", MaxCapacity: 1000}

	// 6 инцидентов в 2-часовом окне = 3 в час: ниже первого порога
	incidents := make([]*models.Incident, 6)
	for i := range incidents {
		incidents[i] = &models.Incident{ID: uuid.New(), EventID: eventID}
	}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(event, nil).Times(1)
	weatherMock.EXPECT().LatestByEvent(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)
	incidentsMock.EXPECT().ListByEventSince(ctx, eventID, gomock.Any()).Return(incidents, nil).Times(1)
	risksMock.EXPECT().UpsertRiskScore(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	score, err := service.CalculateOverallRiskScore(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	var frequency *models.RiskFactor
	for i := range score.ContributingFactors {
		if score.ContributingFactors[i].FactorType == models.FactorIncidentFrequency {
			frequency = &score.ContributingFactors[i]
		}
	}
	require.NotNil(t, frequency)
	assert.InDelta(t, 3, frequency.Value, 1e-9)
	assert.Equal(t, models.RiskLevelLow, frequency.Bucket)
	assert.InDelta(t, 0.1, frequency.Weight, 1e-9)
	assert.InDelta(t, 20, frequency.Score, 1e-9)
}

func TestCalculateOverallRiskScore_EventNotFound(t *testing.T) {
	// Подготовка
	service, eventsMock, _, _, _ := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	score, err := service.CalculateOverallRiskScore(ctx, eventID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, score)
	assert.ErrorContains(t, err, "could not load event")
}

func TestCalculateOverallRiskScore_PersistFailureStillReturnsScore(t *testing.T) {
	// Подготовка
	service, eventsMock, incidentsMock, weatherMock, risksMock := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()
	service.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }

	event := &models.Event{ID: eventID, EventType: "concert", MaxCapacity: 500, CurrentAttendance: 100}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(event, nil).Times(1)
	weatherMock.EXPECT().LatestByEvent(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)
	incidentsMock.EXPECT().ListByEventSince(ctx, eventID, gomock.Any()).Return([]*models.Incident{}, nil).Times(1)
	risksMock.EXPECT().UpsertRiskScore(ctx, gomock.Any()).Return(fmt.Errorf("база недоступна")).Times(1)

	// Действие
	score, err := service.CalculateOverallRiskScore(ctx, eventID)

	// Проверки: оценка возвращается вместе с ошибкой записи
	require.Error(t, err)
	require.NotNil(t, score)
	assert.ErrorContains(t, err, "could not persist risk score")
}

func TestCalculateOverallRiskScore_MissingDataLowersConfidence(t *testing.T) {
	// Подготовка: сценарий, в котором данных нет почти нигде
	service, eventsMock, incidentsMock, weatherMock, risksMock := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()
	service.now = func() time.Time { return time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC) }

	// Без вместимости и без типа: плотность и тип деградируют в нейтральные
	event := &models.Event{ID: eventID}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(event, nil).Times(1)
	weatherMock.EXPECT().LatestByEvent(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)
	incidentsMock.EXPECT().ListByEventSince(ctx, eventID, gomock.Any()).Return(nil, fmt.Errorf("история недоступна")).Times(1)
	risksMock.EXPECT().UpsertRiskScore(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	score, err := service.CalculateOverallRiskScore(ctx, eventID)

	// Проверки: четыре нейтральных фактора, 0.8 - 0.4
	require.NoError(t, err)
	assert.InDelta(t, 0.4, score.Confidence, 1e-9)
}

func TestGetLocationSpecificRiskScores_SortedByRisk(t *testing.T) {
	// Подготовка
	service, _, incidentsMock, _, _ := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()

	incidents := []*models.Incident{
		{Location: "Gate A", Severity: "high"},
		{Location: "Gate A", Severity: "high"},
		{Location: "Food Court", Severity: "low"},
	}

	// Ожидания
	incidentsMock.EXPECT().ListByEvent(ctx, eventID).Return(incidents, nil).Times(1)

	// Действие
	scores, err := service.GetLocationSpecificRiskScores(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, scores, 2)
	// Gate A: 2 инцидента * средняя серьёзность 3 * 10 = 60
	assert.Equal(t, "Gate A", scores[0].Location)
	assert.InDelta(t, 60, scores[0].RiskScore, 1e-9)
	assert.Equal(t, models.RiskLevelHigh, scores[0].RiskLevel)
	// Food Court: 1 * 1 * 10 = 10
	assert.Equal(t, "Food Court", scores[1].Location)
	assert.InDelta(t, 10, scores[1].RiskScore, 1e-9)
}

func TestGetIncidentTypeRiskScores_CapsAtHundred(t *testing.T) {
	// Подготовка
	service, _, incidentsMock, _, _ := newTestRiskService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// 5 * 3 * 8 = 120, обрезается до 100
	incidents := make([]*models.Incident, 5)
	for i := range incidents {
		incidents[i] = &models.Incident{IncidentType: "medical", Severity: "high"}
	}

	// Ожидания
	incidentsMock.EXPECT().ListByEvent(ctx, eventID).Return(incidents, nil).Times(1)

	// Действие
	scores, err := service.GetIncidentTypeRiskScores(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.InDelta(t, 100, scores[0].RiskScore, 1e-9)
	assert.Equal(t, models.RiskLevelCritical, scores[0].RiskLevel)
}
