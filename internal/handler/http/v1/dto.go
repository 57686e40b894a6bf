package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateEventRequest DTO для создания мероприятия
// @Description DTO для создания мероприятия
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=255"`
	EventType   string    `json:"event_type" validate:"required,oneof=concert festival sports conference exhibition fair"`
	VenueName   string    `json:"venue_name" validate:"required,min=2,max=255"`
	Latitude    float64   `json:"latitude" validate:"required,latitude"`
	Longitude   float64   `json:"longitude" validate:"required,longitude"`
	MaxCapacity int       `json:"max_capacity" validate:"required,gt=0"`
	StaffCount  int       `json:"staff_count" validate:"gte=0"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

// UpdateEventRequest DTO для обновления мероприятия
// @Description DTO для обновления мероприятия
type UpdateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=2,max=255"`
	EventType   string    `json:"event_type" validate:"required,oneof=concert festival sports conference exhibition fair"`
	VenueName   string    `json:"venue_name" validate:"required,min=2,max=255"`
	Latitude    float64   `json:"latitude" validate:"required,latitude"`
	Longitude   float64   `json:"longitude" validate:"required,longitude"`
	MaxCapacity int       `json:"max_capacity" validate:"required,gt=0"`
	StaffCount  int       `json:"staff_count" validate:"gte=0"`
	Status      string    `json:"status" validate:"required,oneof=active completed cancelled"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	EndsAt      time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
}

// EventResponse DTO для ответа с информацией о мероприятии
// @Description DTO для ответа с информацией о мероприятии
type EventResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	EventType         string    `json:"event_type"`
	VenueName         string    `json:"venue_name"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	MaxCapacity       int       `json:"max_capacity"`
	CurrentAttendance int       `json:"current_attendance"`
	StaffCount        int       `json:"staff_count"`
	Status            string    `json:"status"`
	StartsAt          time.Time `json:"starts_at"`
	EndsAt            time.Time `json:"ends_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ReportIncidentRequest DTO для регистрации инцидента
// @Description DTO для регистрации инцидента
type ReportIncidentRequest struct {
	IncidentType string `json:"incident_type" validate:"required,min=2,max=100"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location" validate:"required,min=2,max=255"`
	Severity     string `json:"severity" validate:"required,oneof=low medium high"`
	Priority     string `json:"priority" validate:"required,oneof=low normal high"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           uuid.UUID  `json:"id"`
	EventID      uuid.UUID  `json:"event_id"`
	IncidentType string     `json:"incident_type"`
	Description  string     `json:"description,omitempty"`
	Location     string     `json:"location"`
	Severity     string     `json:"severity"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ReportedAt   time.Time  `json:"reported_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

// RecordAttendanceRequest DTO для замера посещаемости
// @Description DTO для замера посещаемости
type RecordAttendanceRequest struct {
	Count      int       `json:"count" validate:"gte=0"`
	RecordedAt time.Time `json:"recorded_at,omitempty"`
}

// AcknowledgeAlertRequest DTO для подтверждения оповещения
// @Description DTO для подтверждения оповещения
type AcknowledgeAlertRequest struct {
	UserID string `json:"user_id" validate:"required"`
}
