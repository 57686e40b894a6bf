package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/config"
	"github.com/shenikar/event_safety_analytics/internal/dispatch"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/weather"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для хранения оповещений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.PredictiveAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PredictiveAlert, error)
	Acknowledge(ctx context.Context, id uuid.UUID, userID string, at time.Time) error
	ListActive(ctx context.Context, eventID uuid.UUID, now time.Time) ([]*models.PredictiveAlert, error)
}

// AlertService определяет контракт системы предиктивных оповещений
type AlertService interface {
	MonitorWeatherAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error)
	MonitorCrowdDensityAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error)
	CheckRiskThresholds(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error)
	GenerateProactiveAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error)
	PrioritizeAlerts(alerts []*models.PredictiveAlert) []*models.PredictiveAlert
	AcknowledgeAlert(ctx context.Context, id uuid.UUID, userID string) error
	GetActiveAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error)
}

type alertService struct {
	events     EventRepository
	attendance AttendanceRepository
	alerts     AlertRepository
	risk       RiskService
	provider   weather.Provider
	publisher  dispatch.Publisher
	cfg        *config.Config
	logger     *logrus.Logger
	now        func() time.Time
}

func NewAlertService(
	events EventRepository,
	attendance AttendanceRepository,
	alerts AlertRepository,
	risk RiskService,
	provider weather.Provider,
	publisher dispatch.Publisher,
	cfg *config.Config,
	logger *logrus.Logger,
) AlertService {
	return &alertService{
		events:     events,
		attendance: attendance,
		alerts:     alerts,
		risk:       risk,
		provider:   provider,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *alertService) newAlert(eventID uuid.UUID, alertType, severity, message string, recommendations []string, confidence float64, ttl time.Duration) *models.PredictiveAlert {
	now := s.now()
	return &models.PredictiveAlert{
		EventID:         eventID,
		AlertType:       alertType,
		Severity:        severity,
		Message:         message,
		Recommendations: recommendations,
		Confidence:      confidence,
		Timestamp:       now,
		ExpiresAt:       now.Add(ttl),
	}
}

// MonitorWeatherAlerts сравнивает текущие условия с прогнозом по метрикам.
// Первая метрика, чья дельта превысила порог, даёт ровно одно оповещение;
// дельты по метрикам не суммируются.
func (s *alertService) MonitorWeatherAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "MonitorWeatherAlerts",
		"event_id": eventID,
	})

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	current, err := s.provider.Current(ctx, event.Latitude, event.Longitude)
	if err != nil {
		// Недоступный провайдер не фатален: просто нет погодных оповещений
		log.WithError(err).Warn("Weather provider unavailable, skipping weather alerts")
		return []*models.PredictiveAlert{}, nil
	}
	forecast, err := s.provider.Forecast(ctx, event.Latitude, event.Longitude)
	if err != nil {
		log.WithError(err).Warn("Weather forecast unavailable, skipping weather alerts")
		return []*models.PredictiveAlert{}, nil
	}

	t := s.cfg.Thresholds
	var alert *models.PredictiveAlert
	switch {
	case current.Temperature-forecast.Temperature >= t.TempDropC:
		alert = s.newAlert(eventID, models.AlertTypeWeather, models.SeverityWarning,
			fmt.Sprintf("temperature expected to drop by %.1f°C", current.Temperature-forecast.Temperature),
			[]string{"advise attendees to dress warmly", "prepare heated shelter areas"},
			0.7, s.cfg.WeatherAlertTTL)
	case forecast.Temperature-current.Temperature >= t.TempRiseC:
		alert = s.newAlert(eventID, models.AlertTypeWeather, models.SeverityWarning,
			fmt.Sprintf("temperature expected to rise by %.1f°C", forecast.Temperature-current.Temperature),
			[]string{"increase water station capacity", "prepare for heat-related incidents"},
			0.7, s.cfg.WeatherAlertTTL)
	case current.Precipitation < t.PrecipitationOnset && forecast.Precipitation >= t.PrecipitationOnset:
		alert = s.newAlert(eventID, models.AlertTypeWeather, models.SeverityWarning,
			"precipitation expected to begin",
			[]string{"cover open equipment", "prepare covered walkways"},
			0.7, s.cfg.WeatherAlertTTL)
	case forecast.WindSpeed-current.WindSpeed >= t.WindIncreaseKmh:
		alert = s.newAlert(eventID, models.AlertTypeWeather, models.SeverityWarning,
			fmt.Sprintf("wind expected to increase by %.1f km/h", forecast.WindSpeed-current.WindSpeed),
			[]string{"secure temporary structures and signage"},
			0.7, s.cfg.WeatherAlertTTL)
	case forecast.Humidity-current.Humidity >= t.HumidityIncreasePct:
		alert = s.newAlert(eventID, models.AlertTypeWeather, models.SeverityInfo,
			fmt.Sprintf("humidity expected to increase by %.0f%%", forecast.Humidity-current.Humidity),
			[]string{"monitor attendee comfort levels"},
			0.6, s.cfg.WeatherAlertTTL)
	}

	if alert == nil {
		return []*models.PredictiveAlert{}, nil
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to persist weather alert")
		return nil, fmt.Errorf("service: could not persist weather alert: %w", err)
	}
	return []*models.PredictiveAlert{alert}, nil
}

// MonitorCrowdDensityAlerts проверяет текущую плотность против обоих порогов
// и отдельно экстраполирует по последним трём замерам, чтобы предупредить
// до пересечения порога.
func (s *alertService) MonitorCrowdDensityAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "MonitorCrowdDensityAlerts",
		"event_id": eventID,
	})

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	t := s.cfg.Thresholds
	density := event.DensityPercent()
	alerts := make([]*models.PredictiveAlert, 0)

	switch {
	case density >= t.CrowdCriticalPct:
		alerts = append(alerts, s.newAlert(eventID, models.AlertTypeCrowd, models.SeverityCritical,
			fmt.Sprintf("crowd density at %.1f%% of capacity (critical threshold %.0f%%)", density, t.CrowdCriticalPct),
			[]string{"halt entry immediately", "open all available exits", "deploy crowd control teams"},
			0.9, s.cfg.CrowdAlertTTL))
	case density >= t.CrowdWarningPct:
		alerts = append(alerts, s.newAlert(eventID, models.AlertTypeCrowd, models.SeverityWarning,
			fmt.Sprintf("crowd density at %.1f%% of capacity (warning threshold %.0f%%)", density, t.CrowdWarningPct),
			[]string{"slow down entry flow", "prepare overflow areas"},
			0.8, s.cfg.CrowdAlertTTL))
	}

	// Предупреждение до пересечения порога: линейная экстраполяция
	// по последним трём замерам
	if density < t.CrowdWarningPct && event.MaxCapacity > 0 {
		if predicted := s.predictThresholdCrossing(ctx, event, log); predicted != nil {
			alerts = append(alerts, predicted)
		}
	}

	for _, alert := range alerts {
		if err := s.alerts.Create(ctx, alert); err != nil {
			log.WithError(err).Error("Failed to persist crowd alert")
			return nil, fmt.Errorf("service: could not persist crowd alert: %w", err)
		}
	}
	return alerts, nil
}

func (s *alertService) predictThresholdCrossing(ctx context.Context, event *models.Event, log *logrus.Entry) *models.PredictiveAlert {
	samples, err := s.attendance.ListByEvent(ctx, event.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to load attendance samples for crowd extrapolation")
		return nil
	}
	if len(samples) < 3 {
		return nil
	}

	last := samples[len(samples)-3:]
	minutes := last[2].RecordedAt.Sub(last[0].RecordedAt).Minutes()
	if minutes <= 0 {
		return nil
	}
	ratePerMinute := float64(last[2].Count-last[0].Count) / minutes
	if ratePerMinute <= 0 {
		return nil
	}

	warningCount := s.cfg.Thresholds.CrowdWarningPct / 100 * float64(event.MaxCapacity)
	remaining := warningCount - float64(event.CurrentAttendance)
	if remaining <= 0 {
		return nil
	}
	timeToThreshold := math.Min(240, remaining/ratePerMinute)

	return s.newAlert(event.ID, models.AlertTypeCrowd, models.SeverityInfo,
		fmt.Sprintf("crowd density projected to reach %.0f%% threshold in ~%.0f minutes", s.cfg.Thresholds.CrowdWarningPct, timeToThreshold),
		[]string{"pre-position staff at entry points", "review entry throttling options"},
		0.6, s.cfg.CrowdAlertTTL)
}

// CheckRiskThresholds даёт одно оповещение, если текущая оценка риска
// пересекла предупредительный или критический порог
func (s *alertService) CheckRiskThresholds(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "CheckRiskThresholds",
		"event_id": eventID,
	})

	score, err := s.risk.CalculateOverallRiskScore(ctx, eventID)
	if err != nil && score == nil {
		return nil, fmt.Errorf("service: could not calculate risk score: %w", err)
	}
	if err != nil {
		// Оценка посчитана, но не сохранилась: для оповещений этого достаточно
		log.WithError(err).Warn("Risk score computed but not persisted")
	}

	t := s.cfg.Thresholds
	var alert *models.PredictiveAlert
	switch {
	case score.OverallScore >= t.RiskCriticalScore:
		alert = s.newAlert(eventID, models.AlertTypeRisk, models.SeverityCritical,
			fmt.Sprintf("overall risk score %.1f exceeds critical threshold %.0f", score.OverallScore, t.RiskCriticalScore),
			[]string{"convene the operations response team", "consider partial venue closure"},
			score.Confidence, s.cfg.RiskAlertTTL)
	case score.OverallScore >= t.RiskWarningScore:
		alert = s.newAlert(eventID, models.AlertTypeRisk, models.SeverityWarning,
			fmt.Sprintf("overall risk score %.1f exceeds warning threshold %.0f", score.OverallScore, t.RiskWarningScore),
			[]string{"brief supervisors on elevated risk factors"},
			score.Confidence, s.cfg.RiskAlertTTL)
	}

	if alert == nil {
		return []*models.PredictiveAlert{}, nil
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to persist risk alert")
		return nil, fmt.Errorf("service: could not persist risk alert: %w", err)
	}
	return []*models.PredictiveAlert{alert}, nil
}

// GenerateProactiveAlerts прогоняет все проверки. Сбой отдельной проверки
// деградирует в пустой список, а не валит весь проход. Критические
// оповещения уходят в очередь доставки, ошибки доставки только логируются.
func (s *alertService) GenerateProactiveAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "GenerateProactiveAlerts",
		"event_id": eventID,
	})

	// Отсутствие мероприятия фатально для всего прохода
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	all := make([]*models.PredictiveAlert, 0)

	checks := []struct {
		name string
		run  func(context.Context, uuid.UUID) ([]*models.PredictiveAlert, error)
	}{
		{"weather", s.MonitorWeatherAlerts},
		{"crowd", s.MonitorCrowdDensityAlerts},
		{"risk", s.CheckRiskThresholds},
	}
	for _, check := range checks {
		alerts, err := check.run(ctx, eventID)
		if err != nil {
			log.WithError(err).WithField("check", check.name).Warn("Alert check failed, continuing with empty result")
			continue
		}
		all = append(all, alerts...)
	}

	prioritized := s.PrioritizeAlerts(all)

	// Fire-and-forget доставка критических оповещений
	for _, alert := range prioritized {
		if alert.Severity != models.SeverityCritical || alert.Acknowledged {
			continue
		}
		notification := dispatch.AlertNotification{
			AlertID:   alert.ID,
			EventID:   alert.EventID,
			AlertType: alert.AlertType,
			Severity:  alert.Severity,
			Message:   alert.Message,
			Timestamp: alert.Timestamp,
		}
		if err := s.publisher.Publish(ctx, notification); err != nil {
			log.WithError(err).Warn("Failed to enqueue critical alert notification")
		}
	}

	log.WithField("alerts", len(prioritized)).Info("Proactive alert generation completed")
	return prioritized, nil
}

// PrioritizeAlerts сортирует стабильно: серьёзность по убыванию,
// затем уверенность по убыванию, затем время по возрастанию
func (s *alertService) PrioritizeAlerts(alerts []*models.PredictiveAlert) []*models.PredictiveAlert {
	sorted := make([]*models.PredictiveAlert, len(alerts))
	copy(sorted, alerts)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := models.SeverityRank(sorted[i].Severity), models.SeverityRank(sorted[j].Severity)
		if ri != rj {
			return ri > rj
		}
		if sorted[i].Confidence != sorted[j].Confidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// AcknowledgeAlert однократно подтверждает оповещение с указанием автора.
// Обратной операции нет.
func (s *alertService) AcknowledgeAlert(ctx context.Context, id uuid.UUID, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "AcknowledgeAlert",
		"alert_id": id,
		"user_id":  userID,
	})

	if err := s.alerts.Acknowledge(ctx, id, userID, s.now()); err != nil {
		log.WithError(err).Error("Failed to acknowledge alert")
		return fmt.Errorf("service: could not acknowledge alert: %w", err)
	}
	log.Info("Alert acknowledged")
	return nil
}

// GetActiveAlerts возвращает неподтверждённые и непросроченные оповещения, новые первыми.
// Хранилище фильтрует по тем же условиям, но инвариант активности
// проверяется ещё раз на модели, чтобы не зависеть от реализации выборки.
func (s *alertService) GetActiveAlerts(ctx context.Context, eventID uuid.UUID) ([]*models.PredictiveAlert, error) {
	now := s.now()
	alerts, err := s.alerts.ListActive(ctx, eventID, now)
	if err != nil {
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}
	active := make([]*models.PredictiveAlert, 0, len(alerts))
	for _, alert := range alerts {
		if alert.IsActive(now) {
			active = append(active, alert)
		}
	}
	return active, nil
}
