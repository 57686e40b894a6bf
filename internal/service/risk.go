package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// RiskRepository определяет контракт для хранения оценок риска
type RiskRepository interface {
	UpsertRiskScore(ctx context.Context, score *models.RiskScore) error
	GetRiskScore(ctx context.Context, eventID uuid.UUID) (*models.RiskScore, error)
}

// RiskService определяет контракт движка оценки риска
type RiskService interface {
	CalculateOverallRiskScore(ctx context.Context, eventID uuid.UUID) (*models.RiskScore, error)
	GetLocationSpecificRiskScores(ctx context.Context, eventID uuid.UUID) ([]models.LocationRiskScore, error)
	GetIncidentTypeRiskScores(ctx context.Context, eventID uuid.UUID) ([]models.IncidentTypeRisk, error)
}

type riskService struct {
	events         EventRepository
	incidents      IncidentRepository
	weatherRepo    WeatherRepository
	risks          RiskRepository
	incidentWindow time.Duration
	logger         *logrus.Logger
	now            func() time.Time
}

func NewRiskService(
	events EventRepository,
	incidents IncidentRepository,
	weatherRepo WeatherRepository,
	risks RiskRepository,
	incidentWindow time.Duration,
	logger *logrus.Logger,
) RiskService {
	return &riskService{
		events:         events,
		incidents:      incidents,
		weatherRepo:    weatherRepo,
		risks:          risks,
		incidentWindow: incidentWindow,
		logger:         logger,
		now:            time.Now,
	}
}

// factorWeight - ступенчатая функция веса фактора.
// Вес растёт по мере того, как значение фактора пересекает внутренние
// пороги, то есть тревожный сигнал сам усиливает своё влияние на итог.
// Функция тестируется отдельно от формулы агрегации.
func factorWeight(factorType string, value float64) (float64, string) {
	type step struct {
		threshold float64
		weight    float64
		bucket    string
	}
	// Шаги перечислены от критического к низкому
	var steps []step
	switch factorType {
	case models.FactorCrowdDensity:
		steps = []step{
			{95, 0.40, models.RiskLevelCritical},
			{85, 0.30, models.RiskLevelHigh},
			{70, 0.20, models.RiskLevelMedium},
			{50, 0.15, models.RiskLevelLow},
		}
	case models.FactorIncidentFrequency:
		// Пороги в инцидентах за час
		steps = []step{
			{15, 0.40, models.RiskLevelCritical},
			{12, 0.30, models.RiskLevelHigh},
			{8, 0.20, models.RiskLevelMedium},
			{5, 0.15, models.RiskLevelLow},
		}
	default:
		// Остальные факторы нормированы в балл [0,100]
		steps = []step{
			{90, 0.40, models.RiskLevelCritical},
			{75, 0.30, models.RiskLevelHigh},
			{60, 0.20, models.RiskLevelMedium},
			{40, 0.15, models.RiskLevelLow},
		}
	}
	for _, s := range steps {
		if value >= s.threshold {
			return s.weight, s.bucket
		}
	}
	return 0.1, models.RiskLevelLow
}

// neutralFactor - фактор по умолчанию при отсутствии данных.
// Оценка должна оставаться вычислимой на частичных данных.
func neutralFactor(factorType, description string) models.RiskFactor {
	return models.RiskFactor{
		FactorType:  factorType,
		HasValue:    false,
		Score:       50,
		Weight:      0.1,
		Bucket:      models.RiskLevelLow,
		Impact:      models.ImpactNeutral,
		Description: description,
	}
}

func impactForBucket(bucket string) string {
	if bucket == models.RiskLevelHigh || bucket == models.RiskLevelCritical {
		return models.ImpactNegative
	}
	return models.ImpactNeutral
}

// eventTypeScore - базовый балл риска по типу мероприятия
func eventTypeScore(eventType string) float64 {
	switch eventType {
	case "festival":
		return 75
	case "concert":
		return 70
	case "sports":
		return 60
	case "fair":
		return 50
	case "exhibition":
		return 35
	case "conference":
		return 30
	default:
		return 40
	}
}

// timeOfDayScore - балл риска по часу суток: поздний вечер и ночь опаснее
func timeOfDayScore(hour int) float64 {
	if hour >= 22 || hour <= 2 {
		return 80
	}
	if hour >= 20 || hour <= 4 {
		return 50
	}
	return 20
}

// CalculateOverallRiskScore считает шесть факторов и их взвешенное среднее.
// Побочный эффект: результат сохраняется по ключу мероприятия (last-write-wins).
// При ошибке записи оценка всё равно возвращается вместе с ошибкой,
// чтобы читающий путь мог использовать результат.
func (s *riskService) CalculateOverallRiskScore(ctx context.Context, eventID uuid.UUID) (*models.RiskScore, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "risk",
		"method":   "CalculateOverallRiskScore",
		"event_id": eventID,
	})

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		log.WithError(err).Error("Failed to load event for risk scoring")
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	now := s.now()
	factors := []models.RiskFactor{
		s.crowdDensityFactor(event),
		s.weatherFactor(ctx, eventID, log),
		s.incidentFrequencyFactor(ctx, eventID, now, log),
		s.staffLevelsFactor(event),
		s.timeOfDayFactor(now),
		s.eventTypeFactor(event),
	}

	var weightedSum, weightSum float64
	missing := 0
	for _, f := range factors {
		weightedSum += f.Score * f.Weight
		weightSum += f.Weight
		if !f.HasValue {
			missing++
		}
	}

	overall := 0.0
	if weightSum > 0 {
		overall = weightedSum / weightSum
	}
	overall = math.Max(0, math.Min(100, overall))

	confidence := 0.8 - 0.1*float64(missing)
	if confidence < 0.3 {
		confidence = 0.3
	}

	score := &models.RiskScore{
		EventID:             eventID,
		OverallScore:        overall,
		RiskLevel:           models.RiskLevelFromScore(overall),
		ContributingFactors: factors,
		Confidence:          confidence,
		LastUpdated:         now,
	}

	if err := s.risks.UpsertRiskScore(ctx, score); err != nil {
		log.WithError(err).Error("Failed to persist risk score")
		return score, fmt.Errorf("service: could not persist risk score: %w", err)
	}

	log.WithFields(logrus.Fields{
		"overall_score": overall,
		"risk_level":    score.RiskLevel,
	}).Info("Risk score calculated")
	return score, nil
}

func (s *riskService) crowdDensityFactor(event *models.Event) models.RiskFactor {
	if event.MaxCapacity <= 0 {
		return neutralFactor(models.FactorCrowdDensity, "venue capacity unknown")
	}
	density := event.DensityPercent()
	weight, bucket := factorWeight(models.FactorCrowdDensity, density)
	return models.RiskFactor{
		FactorType:  models.FactorCrowdDensity,
		Value:       density,
		HasValue:    true,
		Score:       density,
		Weight:      weight,
		Bucket:      bucket,
		Impact:      impactForBucket(bucket),
		Description: fmt.Sprintf("venue at %.1f%% of capacity", density),
	}
}

func (s *riskService) weatherFactor(ctx context.Context, eventID uuid.UUID, log *logrus.Entry) models.RiskFactor {
	reading, err := s.weatherRepo.LatestByEvent(ctx, eventID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			// Частичный сбой источника: фактор деградирует, расчёт продолжается
			log.WithError(err).Warn("Failed to load weather reading, using neutral factor")
		}
		return neutralFactor(models.FactorWeather, "no weather data available")
	}
	weight, bucket := factorWeight(models.FactorWeather, reading.RiskScore)
	return models.RiskFactor{
		FactorType:  models.FactorWeather,
		Value:       reading.RiskScore,
		HasValue:    true,
		Score:       reading.RiskScore,
		Weight:      weight,
		Bucket:      bucket,
		Impact:      impactForBucket(bucket),
		Description: fmt.Sprintf("weather condition: %s", reading.Condition),
	}
}

func (s *riskService) incidentFrequencyFactor(ctx context.Context, eventID uuid.UUID, now time.Time, log *logrus.Entry) models.RiskFactor {
	incidents, err := s.incidents.ListByEventSince(ctx, eventID, now.Add(-s.incidentWindow))
	if err != nil {
		log.WithError(err).Warn("Failed to load recent incidents, using neutral factor")
		return neutralFactor(models.FactorIncidentFrequency, "incident history unavailable")
	}
	// Нормируем в инциденты за час: пороги заданы почасово,
	// а не по сырому количеству в окне
	perHour := float64(len(incidents)) / s.incidentWindow.Hours()
	weight, bucket := factorWeight(models.FactorIncidentFrequency, perHour)
	score := math.Min(100, perHour/15*100)
	return models.RiskFactor{
		FactorType:  models.FactorIncidentFrequency,
		Value:       perHour,
		HasValue:    true,
		Score:       score,
		Weight:      weight,
		Bucket:      bucket,
		Impact:      impactForBucket(bucket),
		Description: fmt.Sprintf("%.1f incidents per hour over the last %s", perHour, s.incidentWindow),
	}
}

func (s *riskService) staffLevelsFactor(event *models.Event) models.RiskFactor {
	// Норматив: один сотрудник на 100 посетителей
	required := int(math.Ceil(float64(event.CurrentAttendance) / 100))
	ratio := 1.0
	if required > 0 {
		ratio = math.Min(1, float64(event.StaffCount)/float64(required))
	}
	score := (1 - ratio) * 100
	weight, bucket := factorWeight(models.FactorStaffLevels, score)
	return models.RiskFactor{
		FactorType:  models.FactorStaffLevels,
		Value:       ratio,
		HasValue:    true,
		Score:       score,
		Weight:      weight,
		Bucket:      bucket,
		Impact:      impactForBucket(bucket),
		Description: fmt.Sprintf("staffing at %.0f%% of required level", ratio*100),
	}
}

func (s *riskService) timeOfDayFactor(now time.Time) models.RiskFactor {
	hour := now.Hour()
	score := timeOfDayScore(hour)
	weight, bucket := factorWeight(models.FactorTimeOfDay, score)
	return models.RiskFactor{
		FactorType:  models.FactorTimeOfDay,
		Value:       float64(hour),
		HasValue:    true,
		Score:       score,
		Weight:      weight,
		Bucket:      bucket,
		Impact:      impactForBucket(bucket),
		Description: fmt.Sprintf("hour of day: %02d:00", hour),
	}
}

func (s *riskService) eventTypeFactor(event *models.Event) models.RiskFactor {
	if event.EventType == "" {
		return neutralFactor(models.FactorEventType, "event type unknown")
	}
	score := eventTypeScore(event.EventType)
	weight, bucket := factorWeight(models.FactorEventType, score)
	return models.RiskFactor{
		FactorType:  models.FactorEventType,
		Value:       score,
		HasValue:    true,
		Score:       score,
		Weight:      weight,
		Bucket:      bucket,
		Impact:      impactForBucket(bucket),
		Description: fmt.Sprintf("event type: %s", event.EventType),
	}
}

// GetLocationSpecificRiskScores группирует историю инцидентов по локациям.
// Агрегат считается на каждый запрос заново, инкрементально не поддерживается.
func (s *riskService) GetLocationSpecificRiskScores(ctx context.Context, eventID uuid.UUID) ([]models.LocationRiskScore, error) {
	incidents, err := s.incidents.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}

	type bucket struct {
		count    int
		severity float64
	}
	byLocation := make(map[string]*bucket)
	for _, inc := range incidents {
		b, ok := byLocation[inc.Location]
		if !ok {
			b = &bucket{}
			byLocation[inc.Location] = b
		}
		b.count++
		b.severity += inc.SeverityScore()
	}

	scores := make([]models.LocationRiskScore, 0, len(byLocation))
	for location, b := range byLocation {
		avg := b.severity / float64(b.count)
		risk := math.Min(100, float64(b.count)*avg*10)
		scores = append(scores, models.LocationRiskScore{
			Location:        location,
			IncidentCount:   b.count,
			AverageSeverity: avg,
			RiskScore:       risk,
			RiskLevel:       models.RiskLevelFromScore(risk),
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].RiskScore > scores[j].RiskScore })
	return scores, nil
}

// GetIncidentTypeRiskScores группирует историю инцидентов по типам
func (s *riskService) GetIncidentTypeRiskScores(ctx context.Context, eventID uuid.UUID) ([]models.IncidentTypeRisk, error) {
	incidents, err := s.incidents.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}

	type bucket struct {
		count    int
		severity float64
	}
	byType := make(map[string]*bucket)
	for _, inc := range incidents {
		b, ok := byType[inc.IncidentType]
		if !ok {
			b = &bucket{}
			byType[inc.IncidentType] = b
		}
		b.count++
		b.severity += inc.SeverityScore()
	}

	scores := make([]models.IncidentTypeRisk, 0, len(byType))
	for incidentType, b := range byType {
		avg := b.severity / float64(b.count)
		risk := math.Min(100, float64(b.count)*avg*8)
		scores = append(scores, models.IncidentTypeRisk{
			IncidentType:    incidentType,
			IncidentCount:   b.count,
			AverageSeverity: avg,
			RiskScore:       risk,
			RiskLevel:       models.RiskLevelFromScore(risk),
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].RiskScore > scores[j].RiskScore })
	return scores, nil
}
