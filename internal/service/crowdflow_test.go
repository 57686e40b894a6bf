package service

import (
	"bytes"
	"context"
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

// newTestCrowdFlowService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestCrowdFlowService(t *testing.T) (*crowdFlowService, *mocks.MockEventRepository, *mocks.MockAttendanceRepository, *mocks.MockPredictionRepository, *mocks.MockZoneSource) {
	ctrl := gomock.NewController(t)
	eventsMock := mocks.NewMockEventRepository(ctrl)
	attendanceMock := mocks.NewMockAttendanceRepository(ctrl)
	predictionsMock := mocks.NewMockPredictionRepository(ctrl)
	zonesMock := mocks.NewMockZoneSource(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewCrowdFlowService(eventsMock, attendanceMock, predictionsMock, zonesMock, 4*time.Hour, 30*time.Minute, logger)
	return service.(*crowdFlowService), eventsMock, attendanceMock, predictionsMock, zonesMock
}

func sampleAt(eventID uuid.UUID, count int, recordedAt time.Time) *models.AttendanceSample {
	return &models.AttendanceSample{EventID: eventID, Count: count, RecordedAt: recordedAt}
}

func TestDeriveFlowRates(t *testing.T) {
	eventID := uuid.New()
	base := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	// Рост 10/мин, затем спад 5/мин, затем слабый рост 2/мин
	samples := []*models.AttendanceSample{
		sampleAt(eventID, 100, base),
		sampleAt(eventID, 200, base.Add(10*time.Minute)),
		sampleAt(eventID, 150, base.Add(20*time.Minute)),
		sampleAt(eventID, 170, base.Add(30*time.Minute)),
	}

	rates := deriveFlowRates(samples)

	assert.InDelta(t, 10, rates.entryPerMinute, 1e-9)
	assert.InDelta(t, 5, rates.exitPerMinute, 1e-9)
	assert.Equal(t, base.Add(10*time.Minute), rates.peakEntryAt)
	assert.Equal(t, base.Add(20*time.Minute), rates.peakExitAt)
}

func TestDeriveFlowRates_IgnoresZeroIntervals(t *testing.T) {
	eventID := uuid.New()
	base := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	// Два замера в одну и ту же секунду не должны дать бесконечную скорость
	samples := []*models.AttendanceSample{
		sampleAt(eventID, 100, base),
		sampleAt(eventID, 500, base),
	}

	rates := deriveFlowRates(samples)

	assert.Zero(t, rates.entryPerMinute)
	assert.Zero(t, rates.exitPerMinute)
}

func TestPredictionConfidence(t *testing.T) {
	cases := []struct {
		samples    int
		hoursAhead float64
		expected   float64
	}{
		{5, 1, 0.6},    // короткая история
		{15, 1, 0.7},   // средняя история
		{25, 1, 0.8},   // полная история, близкий слот
		{25, 3, 0.7},   // штраф за дальность > 2ч
		{25, 4.5, 0.5}, // оба штрафа за дальность
		{5, 5, 0.3},    // пол 0.3
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.expected, predictionConfidence(tc.samples, tc.hoursAhead), 1e-9,
			"samples=%d hoursAhead=%.1f", tc.samples, tc.hoursAhead)
	}
}

func TestPredictCrowdFlow_ClampsAtCapacity(t *testing.T) {
	// Подготовка
	service, eventsMock, attendanceMock, predictionsMock, _ := newTestCrowdFlowService(t)
	ctx := context.Background()
	eventID := uuid.New()
	now := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	event := &models.Event{
		ID:                eventID,
		VenueName:         "City Arena",
		MaxCapacity:       1000,
		CurrentAttendance: 400,
	}
	// Единственный интервал даёт скорость входа 10/мин
	samples := []*models.AttendanceSample{
		sampleAt(eventID, 300, now.Add(-20*time.Minute)),
		sampleAt(eventID, 400, now.Add(-10*time.Minute)),
	}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(event, nil).Times(1)
	attendanceMock.EXPECT().ListByEvent(ctx, eventID).Return(samples, nil).Times(1)
	predictionsMock.EXPECT().ReplaceBatch(ctx, eventID, gomock.Any()).Return(nil).Times(1)

	// Действие
	predictions, err := service.PredictCrowdFlow(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	require.Len(t, predictions, 8)

	// Слот 1 (через 30 минут): 400 + 10*30*0.7 = 610
	first := predictions[0]
	assert.Equal(t, now.Add(30*time.Minute), first.Timestamp)
	assert.Equal(t, 610, first.PredictedCount)
	assert.InDelta(t, 61, first.PredictedDensity, 1e-9)
	assert.Equal(t, models.RiskLevelLow, first.RiskLevel)
	assert.InDelta(t, 0.6, first.Confidence, 1e-9)
	assert.Equal(t, "City Arena", first.Location)
	assert.InDelta(t, 40, first.CurrentDensity, 1e-9)

	// Слот 3 (через 90 минут): 1030 обрезается вместимостью
	third := predictions[2]
	assert.Equal(t, 1000, third.PredictedCount)
	assert.InDelta(t, 100, third.PredictedDensity, 1e-9)
	assert.Equal(t, models.RiskLevelCritical, third.RiskLevel)
	assert.NotEmpty(t, third.Recommendations)

	// Слот 8 (через 4 часа): штраф за дальность прогноза
	last := predictions[7]
	assert.InDelta(t, 0.5, last.Confidence, 1e-9)
}

func TestPredictCrowdFlow_EventNotFound(t *testing.T) {
	// Подготовка
	service, eventsMock, _, _, _ := newTestCrowdFlowService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	predictions, err := service.PredictCrowdFlow(ctx, eventID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, predictions)
}

func TestCalculateOccupancyForecast_EmptyBatch(t *testing.T) {
	// Подготовка
	service, eventsMock, _, predictionsMock, _ := newTestCrowdFlowService(t)
	ctx := context.Background()
	eventID := uuid.New()

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID, MaxCapacity: 1000}, nil).Times(1)
	predictionsMock.EXPECT().ListByEvent(ctx, eventID).Return([]*models.CrowdFlowPrediction{}, nil).Times(1)

	// Действие
	forecast, err := service.CalculateOccupancyForecast(ctx, eventID)

	// Проверки: пустая пачка — это не ошибка, а отсутствие сводки
	require.NoError(t, err)
	assert.Nil(t, forecast)
}

func TestCalculateOccupancyForecast_RiskPeriods(t *testing.T) {
	// Подготовка
	service, eventsMock, _, predictionsMock, _ := newTestCrowdFlowService(t)
	ctx := context.Background()
	eventID := uuid.New()
	base := time.Date(2025, 6, 10, 19, 30, 0, 0, time.UTC)

	slot := func(i int, density float64, count int, level string) *models.CrowdFlowPrediction {
		return &models.CrowdFlowPrediction{
			EventID:          eventID,
			Timestamp:        base.Add(time.Duration(i) * 30 * time.Minute),
			PredictedDensity: density,
			PredictedCount:   count,
			RiskLevel:        level,
			Recommendations:  densityRecommendations(level),
		}
	}
	predictions := []*models.CrowdFlowPrediction{
		slot(0, 60, 600, models.RiskLevelLow),
		slot(1, 88, 880, models.RiskLevelHigh),
		slot(2, 96, 960, models.RiskLevelCritical),
		slot(3, 90, 900, models.RiskLevelHigh),
		slot(4, 50, 500, models.RiskLevelLow),
	}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(&models.Event{ID: eventID, MaxCapacity: 1000}, nil).Times(1)
	predictionsMock.EXPECT().ListByEvent(ctx, eventID).Return(predictions, nil).Times(1)

	// Действие
	forecast, err := service.CalculateOccupancyForecast(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, forecast)
	assert.Equal(t, base.Add(60*time.Minute), forecast.PeakTime)
	assert.InDelta(t, 96, forecast.PeakOccupancy, 1e-9)
	assert.InDelta(t, (60+88+96+90+50)/5.0, forecast.AverageOccupancy, 1e-9)
	assert.InDelta(t, 96, forecast.CapacityUtilization, 1e-9)

	// Один непрерывный отрезок: критический слот поглощает высокие вокруг
	require.Len(t, forecast.RiskPeriods, 1)
	period := forecast.RiskPeriods[0]
	assert.Equal(t, base.Add(30*time.Minute), period.StartsAt)
	assert.Equal(t, base.Add(90*time.Minute), period.EndsAt)
	assert.Equal(t, models.RiskLevelCritical, period.RiskLevel)
	assert.InDelta(t, 96, period.PeakDensity, 1e-9)
}

func TestMonitorDensityZones_UsesConfiguredSource(t *testing.T) {
	// Подготовка
	service, eventsMock, _, _, zonesMock := newTestCrowdFlowService(t)
	ctx := context.Background()
	eventID := uuid.New()
	now := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	event := &models.Event{ID: eventID, MaxCapacity: 1000}
	zones := []models.DensityZone{
		{ZoneID: "zone-a", Name: "Main Stage", Occupancy: 850, Capacity: 1000, DensityPct: 85, RiskLevel: models.RiskLevelHigh},
	}

	// Ожидания
	eventsMock.EXPECT().GetByID(ctx, eventID).Return(event, nil).Times(1)
	zonesMock.EXPECT().Zones(ctx, event, now).Return(zones, nil).Times(1)

	// Действие
	result, err := service.MonitorDensityZones(ctx, eventID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, zones, result)
}

func TestStaticZoneSource_ComputesDensityAndRisk(t *testing.T) {
	now := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)

	zones, err := NewStaticZoneSource().Zones(context.Background(), &models.Event{}, now)

	require.NoError(t, err)
	require.Len(t, zones, 4)
	// 850/1000 = 85% — уровень high
	assert.InDelta(t, 85, zones[0].DensityPct, 1e-9)
	assert.Equal(t, models.RiskLevelHigh, zones[0].RiskLevel)
	// 150/400 = 37.5% — уровень low
	assert.InDelta(t, 37.5, zones[3].DensityPct, 1e-9)
	assert.Equal(t, models.RiskLevelLow, zones[3].RiskLevel)
}
