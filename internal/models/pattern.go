package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы распознаваемых паттернов
const (
	PatternTemporal    = "temporal"
	PatternSpatial     = "spatial"
	PatternBehavioral  = "behavioral"
	PatternCorrelation = "correlation"
	PatternSeasonal    = "seasonal"
	PatternAnomaly     = "anomaly"
)

// PatternFactor - именованная характеристика внутри паттерна
type PatternFactor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// IncidentPattern - синтезированный паттерн по истории инцидентов.
// Хранится по одной записи на пару (event_id, pattern_type):
// при повторном анализе запись перезаписывается.
type IncidentPattern struct {
	ID              uuid.UUID       `json:"id"`
	EventID         uuid.UUID       `json:"event_id"`
	PatternType     string          `json:"pattern_type"`
	Confidence      float64         `json:"confidence"`
	Description     string          `json:"description"`
	Factors         []PatternFactor `json:"factors"`
	Impact          string          `json:"impact"`
	Recommendations []string        `json:"recommendations"`
	DetectedAt      time.Time       `json:"detected_at"`
	LastUpdated     time.Time       `json:"last_updated"`
}
