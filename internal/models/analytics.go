package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskAnalytics - секция риска в сводном отчёте
type RiskAnalytics struct {
	Overall        *RiskScore          `json:"overall,omitempty"`
	ByLocation     []LocationRiskScore `json:"by_location"`
	ByIncidentType []IncidentTypeRisk  `json:"by_incident_type"`
}

// CrowdAnalytics - секция прогноза толпы в сводном отчёте
type CrowdAnalytics struct {
	Predictions []*CrowdFlowPrediction `json:"predictions"`
	Forecast    *OccupancyForecast     `json:"forecast,omitempty"`
	Zones       []DensityZone          `json:"zones"`
}

// Recommendation - ранжированная рекомендация сводного отчёта.
// Priority: 1 - наивысший.
type Recommendation struct {
	Priority int    `json:"priority"`
	Source   string `json:"source"`
	Message  string `json:"message"`
}

// AnalyticsReport - сводный отчёт фасада по одному мероприятию.
// Каждая секция заполняется своей ветвью; сбой ветви оставляет
// секцию пустой, не затрагивая остальные.
type AnalyticsReport struct {
	EventID         uuid.UUID          `json:"event_id"`
	GeneratedAt     time.Time          `json:"generated_at"`
	Risk            RiskAnalytics      `json:"risk"`
	Patterns        []*IncidentPattern `json:"patterns"`
	Crowd           CrowdAnalytics     `json:"crowd"`
	Alerts          []*PredictiveAlert `json:"alerts"`
	Recommendations []Recommendation   `json:"recommendations"`
	Confidence      float64            `json:"confidence"`
	FromCache       bool               `json:"from_cache"`
}
