package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/weather"
	"github.com/sirupsen/logrus"
)

// EventRepository определяет контракт для работы с бд мероприятий
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	UpdateAttendance(ctx context.Context, id uuid.UUID, count int) error
	ListEvents(ctx context.Context, page, pageSize int) ([]*models.Event, error)
	GetEventFromCache(ctx context.Context, id uuid.UUID) (*models.Event, error)
	SetEventCache(ctx context.Context, event *models.Event) error
	InvalidateEventCache(ctx context.Context, id uuid.UUID) error
}

// IncidentRepository определяет контракт для работы с историей инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Incident, error)
	ListByEventSince(ctx context.Context, eventID uuid.UUID, since time.Time) ([]*models.Incident, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

// AttendanceRepository определяет контракт для работы с замерами посещаемости
type AttendanceRepository interface {
	Save(ctx context.Context, sample *models.AttendanceSample) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.AttendanceSample, error)
	LatestByEvent(ctx context.Context, eventID uuid.UUID) (*models.AttendanceSample, error)
}

// WeatherRepository определяет контракт для работы с погодными входами
type WeatherRepository interface {
	SaveReading(ctx context.Context, reading *models.WeatherReading) error
	LatestByEvent(ctx context.Context, eventID uuid.UUID) (*models.WeatherReading, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.WeatherReading, error)
}

// EventService определяет контракт для управления мероприятиями и их телеметрией
type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	ListEvents(ctx context.Context, page, pageSize int) ([]*models.Event, error)
	ReportIncident(ctx context.Context, incident *models.Incident) error
	ResolveIncident(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, eventID uuid.UUID) ([]*models.Incident, error)
	RecordAttendance(ctx context.Context, eventID uuid.UUID, count int, at time.Time) (*models.AttendanceSample, error)
	RecordWeather(ctx context.Context, eventID uuid.UUID) (*models.WeatherReading, error)
}

type eventService struct {
	events      EventRepository
	incidents   IncidentRepository
	attendance  AttendanceRepository
	weatherRepo WeatherRepository
	provider    weather.Provider
	logger      *logrus.Logger
	now         func() time.Time
}

func NewEventService(
	events EventRepository,
	incidents IncidentRepository,
	attendance AttendanceRepository,
	weatherRepo WeatherRepository,
	provider weather.Provider,
	logger *logrus.Logger,
) EventService {
	return &eventService{
		events:      events,
		incidents:   incidents,
		attendance:  attendance,
		weatherRepo: weatherRepo,
		provider:    provider,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateEvent создает мероприятие
func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "event",
		"method":  "CreateEvent",
		"name":    event.Name,
	})
	log.Info("Attempting to create a new event")

	event.Status = "active"
	if err := s.events.Create(ctx, event); err != nil {
		log.WithError(err).Error("Failed to create event in repository")
		return fmt.Errorf("service: could not create event: %w", err)
	}

	log.WithField("event_id", event.ID).Info("Event created successfully")
	return nil
}

// GetEvent получает мероприятие по ID, сначала пробуя кеш
func (s *eventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "GetEvent",
		"event_id": id,
	})

	cached, err := s.events.GetEventFromCache(ctx, id)
	if err != nil {
		// Промах кеша не фатален, идём в бд
		log.WithError(err).Warn("Failed to read event from cache")
	}
	if cached != nil {
		return cached, nil
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get event from repository")
		return nil, fmt.Errorf("service: could not get event: %w", err)
	}

	if err := s.events.SetEventCache(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to cache event")
	}
	return event, nil
}

// UpdateEvent обновляет существующее мероприятие
func (s *eventService) UpdateEvent(ctx context.Context, event *models.Event) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "UpdateEvent",
		"event_id": event.ID,
	})
	log.Info("Attempting to update event")

	existing, err := s.events.GetByID(ctx, event.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent event")
		return fmt.Errorf("service: event %s not found for update: %w", event.ID, err)
	}

	existing.Name = event.Name
	existing.EventType = event.EventType
	existing.VenueName = event.VenueName
	existing.Latitude = event.Latitude
	existing.Longitude = event.Longitude
	existing.MaxCapacity = event.MaxCapacity
	existing.StaffCount = event.StaffCount
	existing.Status = event.Status
	existing.StartsAt = event.StartsAt
	existing.EndsAt = event.EndsAt

	if err := s.events.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update event in repository")
		return fmt.Errorf("service: could not update event: %w", err)
	}

	if err := s.events.InvalidateEventCache(ctx, event.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate event cache")
	}
	log.Info("Event updated successfully")
	return nil
}

// ListEvents возвращает список мероприятий с пагинацией
func (s *eventService) ListEvents(ctx context.Context, page, pageSize int) ([]*models.Event, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "event",
		"method":    "ListEvents",
		"page":      page,
		"page_size": pageSize,
	})

	events, err := s.events.ListEvents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list events from repository")
		return nil, fmt.Errorf("service: could not list events: %w", err)
	}
	return events, nil
}

// ReportIncident регистрирует инцидент на мероприятии
func (s *eventService) ReportIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "ReportIncident",
		"event_id": incident.EventID,
		"type":     incident.IncidentType,
	})
	log.Info("Reporting incident")

	if _, err := s.events.GetByID(ctx, incident.EventID); err != nil {
		log.WithError(err).Warn("Attempted to report incident for a non-existent event")
		return fmt.Errorf("service: event %s not found: %w", incident.EventID, err)
	}

	incident.Status = "open"
	if incident.ReportedAt.IsZero() {
		incident.ReportedAt = s.now()
	}
	if err := s.incidents.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not report incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident reported successfully")
	return nil
}

// ResolveIncident закрывает инцидент
func (s *eventService) ResolveIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "event",
		"method":      "ResolveIncident",
		"incident_id": id,
	})
	log.Info("Resolving incident")

	if err := s.incidents.Resolve(ctx, id); err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}
	return nil
}

// ListIncidents возвращает историю инцидентов мероприятия
func (s *eventService) ListIncidents(ctx context.Context, eventID uuid.UUID) ([]*models.Incident, error) {
	incidents, err := s.incidents.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// RecordAttendance сохраняет замер посещаемости и обновляет счётчик мероприятия
func (s *eventService) RecordAttendance(ctx context.Context, eventID uuid.UUID, count int, at time.Time) (*models.AttendanceSample, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "RecordAttendance",
		"event_id": eventID,
		"count":    count,
	})

	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		log.WithError(err).Warn("Attempted to record attendance for a non-existent event")
		return nil, fmt.Errorf("service: event %s not found: %w", eventID, err)
	}

	if at.IsZero() {
		at = s.now()
	}
	sample := &models.AttendanceSample{
		EventID:    eventID,
		Count:      count,
		RecordedAt: at,
	}
	if err := s.attendance.Save(ctx, sample); err != nil {
		log.WithError(err).Error("Failed to save attendance sample")
		return nil, fmt.Errorf("service: could not record attendance: %w", err)
	}

	if err := s.events.UpdateAttendance(ctx, eventID, count); err != nil {
		log.WithError(err).Error("Failed to update event attendance counter")
		return nil, fmt.Errorf("service: could not update attendance counter: %w", err)
	}
	if err := s.events.InvalidateEventCache(ctx, eventID); err != nil {
		log.WithError(err).Warn("Failed to invalidate event cache")
	}

	return sample, nil
}

// RecordWeather запрашивает провайдера и сохраняет погодный вход для оценки риска
func (s *eventService) RecordWeather(ctx context.Context, eventID uuid.UUID) (*models.WeatherReading, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "event",
		"method":   "RecordWeather",
		"event_id": eventID,
	})

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("service: event %s not found: %w", eventID, err)
	}

	conditions, err := s.provider.Current(ctx, event.Latitude, event.Longitude)
	if err != nil {
		log.WithError(err).Warn("Weather provider unavailable")
		return nil, fmt.Errorf("service: weather provider unavailable: %w", err)
	}

	reading := &models.WeatherReading{
		EventID:    eventID,
		RiskScore:  weatherRiskScore(conditions),
		Condition:  conditions.Condition,
		RecordedAt: s.now(),
	}
	if err := s.weatherRepo.SaveReading(ctx, reading); err != nil {
		log.WithError(err).Error("Failed to save weather reading")
		return nil, fmt.Errorf("service: could not save weather reading: %w", err)
	}
	return reading, nil
}

// weatherRiskScore переводит условия в балл риска [0,100].
// Эвристика грубая: осадки и ветер дают основной вклад,
// жара и мороз добавляют штраф.
func weatherRiskScore(c *models.WeatherConditions) float64 {
	score := 10.0
	score += math.Min(40, c.Precipitation*20)
	if c.WindSpeed > 20 {
		score += math.Min(25, (c.WindSpeed-20)*2)
	}
	if c.Temperature > 30 {
		score += math.Min(20, (c.Temperature-30)*4)
	}
	if c.Temperature < 0 {
		score += math.Min(20, -c.Temperature*2)
	}
	return math.Min(100, score)
}
