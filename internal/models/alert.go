package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы предиктивных оповещений
const (
	AlertTypeWeather  = "weather"
	AlertTypeCrowd    = "crowd"
	AlertTypeRisk     = "risk"
	AlertTypeIncident = "incident"
)

// Серьёзность оповещения
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// PredictiveAlert - оповещение, порождённое проверкой порогов.
// Единственная разрешённая мутация - однократное подтверждение.
type PredictiveAlert struct {
	ID              uuid.UUID  `json:"id"`
	EventID         uuid.UUID  `json:"event_id"`
	AlertType       string     `json:"alert_type"`
	Severity        string     `json:"severity"`
	Message         string     `json:"message"`
	Recommendations []string   `json:"recommendations"`
	Confidence      float64    `json:"confidence"`
	Timestamp       time.Time  `json:"timestamp"`
	ExpiresAt       time.Time  `json:"expires_at"`
	Acknowledged    bool       `json:"acknowledged"`
	AcknowledgedBy  *string    `json:"acknowledged_by,omitempty"`
	AcknowledgedAt  *time.Time `json:"acknowledged_at,omitempty"`
}

// IsActive сообщает, действует ли ещё оповещение на момент now
func (a *PredictiveAlert) IsActive(now time.Time) bool {
	return !a.Acknowledged && a.ExpiresAt.After(now)
}

// SeverityRank возвращает ранг серьёзности для сортировки (больше - серьёзнее)
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}
