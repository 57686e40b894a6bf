package models

import (
	"time"

	"github.com/google/uuid"
)

type Incident struct {
	ID           uuid.UUID  `json:"id"`
	EventID      uuid.UUID  `json:"event_id"`
	IncidentType string     `json:"incident_type"`
	Description  string     `json:"description"`
	Location     string     `json:"location"`
	Severity     string     `json:"severity"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	ReportedAt   time.Time  `json:"reported_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SeverityScore переводит текстовую серьёзность в числовой вес для агрегатов
func (i *Incident) SeverityScore() float64 {
	switch i.Severity {
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

// ResolutionMinutes возвращает время реакции в минутах, -1 если инцидент не закрыт
func (i *Incident) ResolutionMinutes() float64 {
	if i.ResolvedAt == nil {
		return -1
	}
	return i.ResolvedAt.Sub(i.ReportedAt).Minutes()
}
