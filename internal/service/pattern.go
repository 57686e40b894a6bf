package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/sirupsen/logrus"
)

// PatternRepository определяет контракт для хранения паттернов
type PatternRepository interface {
	UpsertPattern(ctx context.Context, pattern *models.IncidentPattern) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.IncidentPattern, error)
}

// PatternService определяет контракт движка распознавания паттернов
type PatternService interface {
	AnalyzeIncidentPatterns(ctx context.Context, eventID uuid.UUID) ([]*models.IncidentPattern, error)
	GetPatternsByType(ctx context.Context, eventID uuid.UUID, patternType string) ([]*models.IncidentPattern, error)
	GetPatternsAboveConfidence(ctx context.Context, eventID uuid.UUID, minConfidence float64) ([]*models.IncidentPattern, error)
	GetWeatherHistory(ctx context.Context, eventID uuid.UUID) ([]*models.WeatherReading, error)
	GetCrowdFlowHistory(ctx context.Context, eventID uuid.UUID) ([]*models.AttendanceSample, error)
}

type patternService struct {
	events      EventRepository
	incidents   IncidentRepository
	attendance  AttendanceRepository
	weatherRepo WeatherRepository
	patterns    PatternRepository
	logger      *logrus.Logger
	now         func() time.Time
}

func NewPatternService(
	events EventRepository,
	incidents IncidentRepository,
	attendance AttendanceRepository,
	weatherRepo WeatherRepository,
	patterns PatternRepository,
	logger *logrus.Logger,
) PatternService {
	return &patternService{
		events:      events,
		incidents:   incidents,
		attendance:  attendance,
		weatherRepo: weatherRepo,
		patterns:    patterns,
		logger:      logger,
		now:         time.Now,
	}
}

// Типы инцидентов, чувствительные к погоде и к плотности толпы
var (
	weatherSensitiveTypes = map[string]bool{
		"medical":       true,
		"slip_and_fall": true,
		"structural":    true,
		"weather":       true,
	}
	crowdRelatedTypes = map[string]bool{
		"crowd_control": true,
		"overcrowding":  true,
		"crush":         true,
		"altercation":   true,
	}
)

// AnalyzeIncidentPatterns прогоняет четыре независимых анализа и синтезирует
// паттерны из "интересных" под-паттернов. Каждый синтезированный паттерн
// сохраняется по ключу (event_id, pattern_type): если анализ нашёл несколько
// под-паттернов одного типа, в хранилище выживает только последний.
func (s *patternService) AnalyzeIncidentPatterns(ctx context.Context, eventID uuid.UUID) ([]*models.IncidentPattern, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "pattern",
		"method":   "AnalyzeIncidentPatterns",
		"event_id": eventID,
	})

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		log.WithError(err).Error("Failed to load event for pattern analysis")
		return nil, fmt.Errorf("service: could not load event: %w", err)
	}

	incidents, err := s.incidents.ListByEvent(ctx, eventID)
	if err != nil {
		log.WithError(err).Error("Failed to load incident history")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}

	now := s.now()
	synthesized := make([]*models.IncidentPattern, 0)
	synthesized = append(synthesized, s.temporalPatterns(eventID, incidents, now)...)
	synthesized = append(synthesized, s.spatialPatterns(eventID, incidents, now)...)
	synthesized = append(synthesized, s.behavioralPatterns(eventID, incidents, now)...)
	synthesized = append(synthesized, s.correlationPatterns(eventID, incidents, now)...)

	for _, pattern := range synthesized {
		if err := s.patterns.UpsertPattern(ctx, pattern); err != nil {
			log.WithError(err).Error("Failed to persist incident pattern")
			return synthesized, fmt.Errorf("service: could not persist pattern: %w", err)
		}
	}

	log.WithField("patterns", len(synthesized)).Info("Incident pattern analysis completed")
	return synthesized, nil
}

// temporalPatterns группирует инциденты по часу суток.
// Продвигаются только корзины с частотой > 2 и уверенностью > 0.7.
func (s *patternService) temporalPatterns(eventID uuid.UUID, incidents []*models.Incident, now time.Time) []*models.IncidentPattern {
	total := len(incidents)
	if total == 0 {
		return nil
	}

	type hourBucket struct {
		frequency int
		severity  float64
		types     map[string]bool
	}
	byHour := make(map[int]*hourBucket)
	for _, inc := range incidents {
		hour := inc.ReportedAt.Hour()
		b, ok := byHour[hour]
		if !ok {
			b = &hourBucket{types: make(map[string]bool)}
			byHour[hour] = b
		}
		b.frequency++
		b.severity += inc.SeverityScore()
		b.types[inc.IncidentType] = true
	}

	hours := make([]int, 0, len(byHour))
	for hour := range byHour {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	patterns := make([]*models.IncidentPattern, 0)
	for _, hour := range hours {
		b := byHour[hour]
		share := float64(b.frequency) / float64(total)
		confidence := math.Min(float64(b.frequency)/10, 1) * math.Min(share*100, 100) / 100
		if b.frequency <= 2 || confidence <= 0.7 {
			continue
		}
		meanSeverity := b.severity / float64(b.frequency)
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternTemporal,
			Confidence:  confidence,
			Description: fmt.Sprintf("incident concentration around %02d:00 (%d incidents, %.0f%% of history)", hour, b.frequency, share*100),
			Factors: []models.PatternFactor{
				{Name: "hour", Value: float64(hour)},
				{Name: "frequency", Value: float64(b.frequency)},
				{Name: "mean_severity", Value: meanSeverity},
			},
			Impact: "elevated incident load in this hour",
			Recommendations: []string{
				fmt.Sprintf("increase staff presence around %02d:00", hour),
				"pre-position medical and security teams before the peak hour",
			},
			DetectedAt:  now,
			LastUpdated: now,
		})
	}
	return patterns
}

// spatialPatterns группирует инциденты по локациям.
// Продвигаются только корзины с уровнем high или critical.
func (s *patternService) spatialPatterns(eventID uuid.UUID, incidents []*models.Incident, now time.Time) []*models.IncidentPattern {
	type locationBucket struct {
		count    int
		severity float64
	}
	byLocation := make(map[string]*locationBucket)
	for _, inc := range incidents {
		b, ok := byLocation[inc.Location]
		if !ok {
			b = &locationBucket{}
			byLocation[inc.Location] = b
		}
		b.count++
		b.severity += inc.SeverityScore()
	}

	locations := make([]string, 0, len(byLocation))
	for location := range byLocation {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	patterns := make([]*models.IncidentPattern, 0)
	for _, location := range locations {
		b := byLocation[location]
		meanSeverity := b.severity / float64(b.count)
		weighted := float64(b.count) * meanSeverity
		var level string
		switch {
		case weighted >= 15:
			level = models.RiskLevelCritical
		case weighted >= 10:
			level = models.RiskLevelHigh
		case weighted >= 5:
			level = models.RiskLevelMedium
		default:
			level = models.RiskLevelLow
		}
		if level != models.RiskLevelHigh && level != models.RiskLevelCritical {
			continue
		}
		// Эвристика связи с плотностью: база 0.6 плюс до 0.4 по числу инцидентов
		densityCorrelation := 0.6 + math.Min(0.4, float64(b.count)*0.04)
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternSpatial,
			Confidence:  densityCorrelation,
			Description: fmt.Sprintf("incident hotspot at %q (%d incidents, %s risk)", location, b.count, level),
			Factors: []models.PatternFactor{
				{Name: "incident_count", Value: float64(b.count)},
				{Name: "mean_severity", Value: meanSeverity},
				{Name: "density_correlation", Value: densityCorrelation},
			},
			Impact: fmt.Sprintf("%s risk concentration at %s", level, location),
			Recommendations: []string{
				fmt.Sprintf("deploy additional staff to %s", location),
				"review crowd flow and barriers around the hotspot",
			},
			DetectedAt:  now,
			LastUpdated: now,
		})
	}
	return patterns
}

// behavioralPatterns - паттерны реакции: скорость решения и доля эскалаций
func (s *patternService) behavioralPatterns(eventID uuid.UUID, incidents []*models.Incident, now time.Time) []*models.IncidentPattern {
	patterns := make([]*models.IncidentPattern, 0)

	var resolved int
	var totalMinutes float64
	for _, inc := range incidents {
		if minutes := inc.ResolutionMinutes(); minutes >= 0 {
			resolved++
			totalMinutes += minutes
		}
	}
	if resolved > 0 {
		mean := totalMinutes / float64(resolved)
		effectiveness := 0.4
		if mean < 5 {
			effectiveness = 0.8
		}
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternBehavioral,
			Confidence:  effectiveness,
			Description: fmt.Sprintf("mean incident resolution time %.1f minutes across %d resolved incidents", mean, resolved),
			Factors: []models.PatternFactor{
				{Name: "mean_resolution_minutes", Value: mean},
				{Name: "resolved_count", Value: float64(resolved)},
				{Name: "effectiveness", Value: effectiveness},
			},
			Impact: "response effectiveness",
			Recommendations: []string{
				"review response playbooks for slow incident categories",
			},
			DetectedAt:  now,
			LastUpdated: now,
		})
	}

	var escalated int
	for _, inc := range incidents {
		if inc.Priority == "high" || inc.Status == "escalated" {
			escalated++
		}
	}
	if escalated > 0 {
		share := float64(escalated) / float64(len(incidents))
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternBehavioral,
			Confidence:  math.Min(1, 0.5+share),
			Description: fmt.Sprintf("%d of %d incidents escalated to high priority", escalated, len(incidents)),
			Factors: []models.PatternFactor{
				{Name: "escalated_count", Value: float64(escalated)},
				{Name: "escalation_share", Value: share},
			},
			Impact: "escalation pressure on response teams",
			Recommendations: []string{
				"verify escalation criteria with the operations lead",
			},
			DetectedAt:  now,
			LastUpdated: now,
		})
	}
	return patterns
}

// correlationPatterns - три фиксированные эвристики корреляций.
// Эвристики намеренно грубые, сила связи задана константой.
func (s *patternService) correlationPatterns(eventID uuid.UUID, incidents []*models.Incident, now time.Time) []*models.IncidentPattern {
	if len(incidents) == 0 {
		return nil
	}
	patterns := make([]*models.IncidentPattern, 0)

	var weatherCount, crowdCount, eveningCount int
	for _, inc := range incidents {
		if weatherSensitiveTypes[inc.IncidentType] {
			weatherCount++
		}
		if crowdRelatedTypes[inc.IncidentType] {
			crowdCount++
		}
		hour := inc.ReportedAt.Hour()
		if hour >= 18 && hour <= 23 {
			eveningCount++
		}
	}

	if weatherCount > 0 {
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternCorrelation,
			Confidence:  0.65,
			Description: fmt.Sprintf("%d weather-sensitive incidents in history", weatherCount),
			Factors: []models.PatternFactor{
				{Name: "weather_sensitive_count", Value: float64(weatherCount)},
				{Name: "correlation_strength", Value: 0.65},
			},
			Impact:          "weather correlation",
			Recommendations: []string{"monitor weather alerts closely during this event"},
			DetectedAt:      now,
			LastUpdated:     now,
		})
	}
	if crowdCount > 0 {
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternCorrelation,
			Confidence:  0.7,
			Description: fmt.Sprintf("%d crowd-related incidents in history", crowdCount),
			Factors: []models.PatternFactor{
				{Name: "crowd_related_count", Value: float64(crowdCount)},
				{Name: "correlation_strength", Value: 0.7},
			},
			Impact:          "crowd density correlation",
			Recommendations: []string{"tighten density monitoring in high-traffic zones"},
			DetectedAt:      now,
			LastUpdated:     now,
		})
	}
	if share := float64(eveningCount) / float64(len(incidents)); share > 0.6 {
		patterns = append(patterns, &models.IncidentPattern{
			EventID:     eventID,
			PatternType: models.PatternCorrelation,
			Confidence:  0.75,
			Description: fmt.Sprintf("%.0f%% of incidents occur between 18:00 and 23:59", share*100),
			Factors: []models.PatternFactor{
				{Name: "evening_share", Value: share},
				{Name: "correlation_strength", Value: 0.75},
			},
			Impact:          "evening concentration",
			Recommendations: []string{"schedule extra shifts for evening hours"},
			DetectedAt:      now,
			LastUpdated:     now,
		})
	}
	return patterns
}

// GetPatternsByType возвращает сохранённые паттерны заданного типа
func (s *patternService) GetPatternsByType(ctx context.Context, eventID uuid.UUID, patternType string) ([]*models.IncidentPattern, error) {
	patterns, err := s.patterns.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list patterns: %w", err)
	}
	filtered := make([]*models.IncidentPattern, 0)
	for _, p := range patterns {
		if p.PatternType == patternType {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetPatternsAboveConfidence возвращает сохранённые паттерны с уверенностью не ниже порога
func (s *patternService) GetPatternsAboveConfidence(ctx context.Context, eventID uuid.UUID, minConfidence float64) ([]*models.IncidentPattern, error) {
	patterns, err := s.patterns.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list patterns: %w", err)
	}
	filtered := make([]*models.IncidentPattern, 0)
	for _, p := range patterns {
		if p.Confidence >= minConfidence {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetWeatherHistory возвращает погодные входы мероприятия
func (s *patternService) GetWeatherHistory(ctx context.Context, eventID uuid.UUID) ([]*models.WeatherReading, error) {
	readings, err := s.weatherRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list weather readings: %w", err)
	}
	return readings, nil
}

// GetCrowdFlowHistory возвращает историю замеров посещаемости
func (s *patternService) GetCrowdFlowHistory(ctx context.Context, eventID uuid.UUID) ([]*models.AttendanceSample, error) {
	samples, err := s.attendance.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attendance samples: %w", err)
	}
	return samples, nil
}
