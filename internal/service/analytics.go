package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/cache"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// AnalyticsService определяет контракт сводного аналитического фасада
type AnalyticsService interface {
	GetEventAnalytics(ctx context.Context, eventID uuid.UUID, userID string, forceRefresh bool) (*models.AnalyticsReport, error)
	InvalidateAnalytics(ctx context.Context, eventID uuid.UUID, userID string) error
}

type analyticsService struct {
	events   EventRepository
	risk     RiskService
	patterns PatternService
	crowd    CrowdFlowService
	alerts   AlertService
	cache    cache.Cache
	logger   *logrus.Logger
	now      func() time.Time
}

func NewAnalyticsService(
	events EventRepository,
	risk RiskService,
	patterns PatternService,
	crowd CrowdFlowService,
	alerts AlertService,
	reportCache cache.Cache,
	logger *logrus.Logger,
) AnalyticsService {
	return &analyticsService{
		events:   events,
		risk:     risk,
		patterns: patterns,
		crowd:    crowd,
		alerts:   alerts,
		cache:    reportCache,
		logger:   logger,
		now:      time.Now,
	}
}

func analyticsCacheKey(eventID uuid.UUID, userID string) string {
	return fmt.Sprintf("analytics:%s:%s", eventID, userID)
}

// GetEventAnalytics собирает сводный отчёт по мероприятию.
// Четыре ветви (риск, паттерны, толпа, оповещения) выполняются
// параллельно и изолированно: сбой одной ветви логируется и
// оставляет её секцию пустой. Фатально только отсутствие мероприятия.
func (s *analyticsService) GetEventAnalytics(ctx context.Context, eventID uuid.UUID, userID string, forceRefresh bool) (*models.AnalyticsReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "analytics",
		"method":   "GetEventAnalytics",
		"event_id": eventID,
		"user_id":  userID,
	})

	key := analyticsCacheKey(eventID, userID)
	if !forceRefresh {
		if data, ok, err := s.cache.Get(ctx, key); err != nil {
			log.WithError(err).Warn("Analytics cache read failed, recomputing")
		} else if ok {
			var report models.AnalyticsReport
			unmarshalErr := json.Unmarshal(data, &report)
			if unmarshalErr == nil {
				report.FromCache = true
				log.Debug("Analytics report served from cache")
				return &report, nil
			}
			log.WithError(unmarshalErr).Warn("Corrupt analytics cache entry, recomputing")
		}
	}

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	report := &models.AnalyticsReport{
		EventID:     eventID,
		GeneratedAt: s.now(),
		Risk: models.RiskAnalytics{
			ByLocation:     []models.LocationRiskScore{},
			ByIncidentType: []models.IncidentTypeRisk{},
		},
		Patterns: []*models.IncidentPattern{},
		Crowd: models.CrowdAnalytics{
			Predictions: []*models.CrowdFlowPrediction{},
			Zones:       []models.DensityZone{},
		},
		Alerts: []*models.PredictiveAlert{},
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		score, err := s.risk.CalculateOverallRiskScore(ctx, eventID)
		if err != nil && score == nil {
			log.WithError(err).Warn("Risk branch failed")
			return
		}
		if err != nil {
			// Оценка есть, но не сохранилась: отчёту хватает вычисленного значения
			log.WithError(err).Warn("Risk score computed but not persisted")
		}
		report.Risk.Overall = score
		if byLocation, err := s.risk.GetLocationSpecificRiskScores(ctx, eventID); err != nil {
			log.WithError(err).Warn("Location risk breakdown failed")
		} else {
			report.Risk.ByLocation = byLocation
		}
		if byType, err := s.risk.GetIncidentTypeRiskScores(ctx, eventID); err != nil {
			log.WithError(err).Warn("Incident type risk breakdown failed")
		} else {
			report.Risk.ByIncidentType = byType
		}
	}()

	go func() {
		defer wg.Done()
		patterns, err := s.patterns.AnalyzeIncidentPatterns(ctx, eventID)
		if err != nil {
			log.WithError(err).Warn("Pattern branch failed")
			return
		}
		report.Patterns = patterns
	}()

	go func() {
		defer wg.Done()
		predictions, err := s.crowd.PredictCrowdFlow(ctx, eventID)
		if err != nil && predictions == nil {
			log.WithError(err).Warn("Crowd branch failed")
			return
		}
		if err != nil {
			log.WithError(err).Warn("Crowd predictions computed but not persisted")
		}
		report.Crowd.Predictions = predictions
		if forecast, err := s.crowd.CalculateOccupancyForecast(ctx, eventID); err != nil {
			log.WithError(err).Warn("Occupancy forecast failed")
		} else {
			report.Crowd.Forecast = forecast
		}
		if zones, err := s.crowd.MonitorDensityZones(ctx, eventID); err != nil {
			log.WithError(err).Warn("Density zone snapshot failed")
		} else {
			report.Crowd.Zones = zones
		}
	}()

	go func() {
		defer wg.Done()
		alerts, err := s.alerts.GenerateProactiveAlerts(ctx, eventID)
		if err != nil {
			log.WithError(err).Warn("Alert branch failed")
			return
		}
		report.Alerts = alerts
	}()

	wg.Wait()

	report.Confidence = reportConfidence(report)
	report.Recommendations = rankRecommendations(report)

	data, err := json.Marshal(report)
	if err == nil {
		if err := s.cache.Set(ctx, key, data); err != nil {
			log.WithError(err).Warn("Failed to cache analytics report")
		}
	}

	log.WithFields(logrus.Fields{
		"patterns": len(report.Patterns),
		"alerts":   len(report.Alerts),
	}).Info("Analytics report generated")
	return report, nil
}

// InvalidateAnalytics сбрасывает закэшированный отчёт
func (s *analyticsService) InvalidateAnalytics(ctx context.Context, eventID uuid.UUID, userID string) error {
	if err := s.cache.Invalidate(ctx, analyticsCacheKey(eventID, userID)); err != nil {
		return fmt.Errorf("service: could not invalidate analytics cache: %w", err)
	}
	return nil
}

// reportConfidence - среднее доступных уверенностей по ветвям:
// риск, паттерны и прогнозы толпы. Пустые ветви не участвуют.
func reportConfidence(report *models.AnalyticsReport) float64 {
	var values []float64
	if report.Risk.Overall != nil {
		values = append(values, report.Risk.Overall.Confidence)
	}
	if len(report.Patterns) > 0 {
		var sum float64
		for _, p := range report.Patterns {
			sum += p.Confidence
		}
		values = append(values, sum/float64(len(report.Patterns)))
	}
	if len(report.Crowd.Predictions) > 0 {
		var sum float64
		for _, p := range report.Crowd.Predictions {
			sum += p.Confidence
		}
		values = append(values, sum/float64(len(report.Crowd.Predictions)))
	}
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// rankRecommendations собирает рекомендации всех ветвей в один
// ранжированный список. Приоритет: критические оповещения, прочие
// оповещения, рискованные отрезки прогноза, паттерны. Дубликаты
// сообщений убираются, сохраняя лучший приоритет.
func rankRecommendations(report *models.AnalyticsReport) []models.Recommendation {
	recommendations := make([]models.Recommendation, 0)
	for _, alert := range report.Alerts {
		priority := 2
		if alert.Severity == models.SeverityCritical {
			priority = 1
		}
		for _, message := range alert.Recommendations {
			recommendations = append(recommendations, models.Recommendation{
				Priority: priority,
				Source:   "alert:" + alert.AlertType,
				Message:  message,
			})
		}
	}
	if report.Crowd.Forecast != nil {
		for _, period := range report.Crowd.Forecast.RiskPeriods {
			priority := 3
			if period.RiskLevel == models.RiskLevelCritical {
				priority = 2
			}
			for _, message := range period.Recommendations {
				recommendations = append(recommendations, models.Recommendation{
					Priority: priority,
					Source:   "crowd_forecast",
					Message:  message,
				})
			}
		}
	}
	for _, pattern := range report.Patterns {
		for _, message := range pattern.Recommendations {
			recommendations = append(recommendations, models.Recommendation{
				Priority: 4,
				Source:   "pattern:" + pattern.PatternType,
				Message:  message,
			})
		}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Priority < recommendations[j].Priority
	})

	seen := make(map[string]bool, len(recommendations))
	deduped := recommendations[:0]
	for _, r := range recommendations {
		if seen[r.Message] {
			continue
		}
		seen[r.Message] = true
		deduped = append(deduped, r)
	}
	return deduped
}
