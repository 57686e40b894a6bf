package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// PredictionRepository определяет контракт для хранения пачек прогнозов
type PredictionRepository interface {
	ReplaceBatch(ctx context.Context, eventID uuid.UUID, predictions []*models.CrowdFlowPrediction) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.CrowdFlowPrediction, error)
}

// ZoneSource - источник зонных снимков плотности.
// Сейчас единственная реализация отдаёт фиксированные значения:
// точка расширения для подключения реальной сенсорики.
type ZoneSource interface {
	Zones(ctx context.Context, event *models.Event, now time.Time) ([]models.DensityZone, error)
}

// CrowdFlowService определяет контракт движка прогноза плотности толпы
type CrowdFlowService interface {
	PredictCrowdFlow(ctx context.Context, eventID uuid.UUID) ([]*models.CrowdFlowPrediction, error)
	CalculateOccupancyForecast(ctx context.Context, eventID uuid.UUID) (*models.OccupancyForecast, error)
	MonitorDensityZones(ctx context.Context, eventID uuid.UUID) ([]models.DensityZone, error)
	StoreCrowdPredictions(ctx context.Context, eventID uuid.UUID, predictions []*models.CrowdFlowPrediction) error
}

type crowdFlowService struct {
	events      EventRepository
	attendance  AttendanceRepository
	predictions PredictionRepository
	zones       ZoneSource
	horizon     time.Duration
	step        time.Duration
	logger      *logrus.Logger
	now         func() time.Time
}

func NewCrowdFlowService(
	events EventRepository,
	attendance AttendanceRepository,
	predictions PredictionRepository,
	zones ZoneSource,
	horizon, step time.Duration,
	logger *logrus.Logger,
) CrowdFlowService {
	return &crowdFlowService{
		events:      events,
		attendance:  attendance,
		predictions: predictions,
		zones:       zones,
		horizon:     horizon,
		step:        step,
		logger:      logger,
		now:         time.Now,
	}
}

// flowRates - выведенные из истории посещаемости скорости входа/выхода.
// Хранится максимум наблюдавшейся скорости и момент её наблюдения.
type flowRates struct {
	entryPerMinute float64
	exitPerMinute  float64
	peakEntryAt    time.Time
	peakExitAt     time.Time
}

// deriveFlowRates считает скорости по соседним замерам: rate = Δcount/Δminutes.
// Рост и спад учитываются раздельно.
func deriveFlowRates(samples []*models.AttendanceSample) flowRates {
	var rates flowRates
	for i := 1; i < len(samples); i++ {
		prev, curr := samples[i-1], samples[i]
		minutes := curr.RecordedAt.Sub(prev.RecordedAt).Minutes()
		if minutes <= 0 {
			continue
		}
		delta := float64(curr.Count - prev.Count)
		rate := delta / minutes
		if rate > rates.entryPerMinute {
			rates.entryPerMinute = rate
			rates.peakEntryAt = curr.RecordedAt
		}
		if rate < 0 && -rate > rates.exitPerMinute {
			rates.exitPerMinute = -rate
			rates.peakExitAt = curr.RecordedAt
		}
	}
	return rates
}

// predictionConfidence - уверенность слота: штрафы за короткую историю
// и за дальность прогноза, пол 0.3
func predictionConfidence(sampleCount int, hoursAhead float64) float64 {
	confidence := 0.8
	if sampleCount < 10 {
		confidence -= 0.2
	} else if sampleCount < 20 {
		confidence -= 0.1
	}
	if hoursAhead > 2 {
		confidence -= 0.1
	}
	if hoursAhead > 4 {
		confidence -= 0.2
	}
	if confidence < 0.3 {
		confidence = 0.3
	}
	return confidence
}

func densityRiskLevel(densityPct float64) string {
	switch {
	case densityPct >= 95:
		return models.RiskLevelCritical
	case densityPct >= 85:
		return models.RiskLevelHigh
	case densityPct >= 70:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}

func densityRecommendations(level string) []string {
	switch level {
	case models.RiskLevelCritical:
		return []string{"halt entry and open additional exits", "activate crowd dispersal protocol"}
	case models.RiskLevelHigh:
		return []string{"slow down entry flow", "prepare overflow areas"}
	case models.RiskLevelMedium:
		return []string{"monitor entry points closely"}
	default:
		return []string{}
	}
}

// PredictCrowdFlow строит пачку прогнозов на фиксированном горизонте
// (по умолчанию 8 слотов по 30 минут) и сохраняет её, вытесняя предыдущую.
// Прогноз детерминирован: одинаковая история даёт одинаковые значения.
func (s *crowdFlowService) PredictCrowdFlow(ctx context.Context, eventID uuid.UUID) ([]*models.CrowdFlowPrediction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "crowdflow",
		"method":   "PredictCrowdFlow",
		"event_id": eventID,
	})

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		log.WithError(err).Error("Failed to load event for crowd prediction")
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	samples, err := s.attendance.ListByEvent(ctx, eventID)
	if err != nil {
		log.WithError(err).Error("Failed to load attendance history")
		return nil, fmt.Errorf("service: could not load attendance samples: %w", err)
	}

	rates := deriveFlowRates(samples)
	current := float64(event.CurrentAttendance)
	capacity := float64(event.MaxCapacity)
	currentDensity := event.DensityPercent()
	now := s.now()

	slots := int(s.horizon / s.step)
	predictions := make([]*models.CrowdFlowPrediction, 0, slots)
	for i := 1; i <= slots; i++ {
		ahead := time.Duration(i) * s.step
		minutesAhead := ahead.Minutes()
		hoursAhead := ahead.Hours()

		// Вход затухает с весом 0.7, выход - с весом 0.3, оба линейны
		predicted := current + rates.entryPerMinute*minutesAhead*0.7 - rates.exitPerMinute*minutesAhead*0.3
		predicted = math.Max(0, math.Min(capacity, predicted))

		densityPct := 0.0
		if capacity > 0 {
			densityPct = predicted / capacity * 100
		}
		level := densityRiskLevel(densityPct)

		predictions = append(predictions, &models.CrowdFlowPrediction{
			EventID:          eventID,
			Timestamp:        now.Add(ahead),
			Location:         event.VenueName,
			CurrentDensity:   currentDensity,
			PredictedDensity: densityPct,
			PredictedCount:   int(math.Round(predicted)),
			Confidence:       predictionConfidence(len(samples), hoursAhead),
			Factors: []models.CrowdFactor{
				{Name: "entry_rate_per_minute", Value: rates.entryPerMinute},
				{Name: "exit_rate_per_minute", Value: rates.exitPerMinute},
				{Name: "sample_count", Value: float64(len(samples))},
			},
			RiskLevel:       level,
			Recommendations: densityRecommendations(level),
		})
	}

	if err := s.StoreCrowdPredictions(ctx, eventID, predictions); err != nil {
		log.WithError(err).Error("Failed to persist crowd prediction batch")
		return predictions, err
	}

	log.WithField("slots", len(predictions)).Info("Crowd flow prediction completed")
	return predictions, nil
}

// StoreCrowdPredictions сохраняет пачку прогнозов, полностью заменяя предыдущую
func (s *crowdFlowService) StoreCrowdPredictions(ctx context.Context, eventID uuid.UUID, predictions []*models.CrowdFlowPrediction) error {
	if err := s.predictions.ReplaceBatch(ctx, eventID, predictions); err != nil {
		return fmt.Errorf("service: could not store crowd predictions: %w", err)
	}
	return nil
}

// CalculateOccupancyForecast сводит текущую пачку прогнозов:
// пик, среднее, загрузка площадки и непрерывные рискованные отрезки.
// Возвращает nil, если пачки нет.
func (s *crowdFlowService) CalculateOccupancyForecast(ctx context.Context, eventID uuid.UUID) (*models.OccupancyForecast, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	predictions, err := s.predictions.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load predictions: %w", err)
	}
	if len(predictions) == 0 {
		return nil, nil
	}

	peak := predictions[0]
	var sum float64
	for _, p := range predictions {
		sum += p.PredictedDensity
		if p.PredictedDensity > peak.PredictedDensity {
			peak = p
		}
	}

	utilization := 0.0
	if event.MaxCapacity > 0 {
		utilization = float64(peak.PredictedCount) / float64(event.MaxCapacity) * 100
	}

	return &models.OccupancyForecast{
		EventID:             eventID,
		PeakTime:            peak.Timestamp,
		PeakOccupancy:       peak.PredictedDensity,
		AverageOccupancy:    sum / float64(len(predictions)),
		CapacityUtilization: utilization,
		RiskPeriods:         riskPeriods(predictions),
	}, nil
}

// riskPeriods находит непрерывные отрезки слотов с уровнем high/critical
func riskPeriods(predictions []*models.CrowdFlowPrediction) []models.RiskPeriod {
	periods := make([]models.RiskPeriod, 0)
	var open *models.RiskPeriod
	for _, p := range predictions {
		risky := p.RiskLevel == models.RiskLevelHigh || p.RiskLevel == models.RiskLevelCritical
		if !risky {
			if open != nil {
				periods = append(periods, *open)
				open = nil
			}
			continue
		}
		if open == nil {
			open = &models.RiskPeriod{
				StartsAt:        p.Timestamp,
				EndsAt:          p.Timestamp,
				RiskLevel:       p.RiskLevel,
				PeakDensity:     p.PredictedDensity,
				Recommendations: p.Recommendations,
			}
			continue
		}
		open.EndsAt = p.Timestamp
		if p.PredictedDensity > open.PeakDensity {
			open.PeakDensity = p.PredictedDensity
		}
		// Критический уровень поглощает высокий внутри одного отрезка
		if p.RiskLevel == models.RiskLevelCritical {
			open.RiskLevel = models.RiskLevelCritical
			open.Recommendations = p.Recommendations
		}
	}
	if open != nil {
		periods = append(periods, *open)
	}
	return periods
}

// MonitorDensityZones возвращает снимки зон от настроенного источника
func (s *crowdFlowService) MonitorDensityZones(ctx context.Context, eventID uuid.UUID) ([]models.DensityZone, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}
	zones, err := s.zones.Zones(ctx, event, s.now())
	if err != nil {
		return nil, fmt.Errorf("service: could not load density zones: %w", err)
	}
	return zones, nil
}
