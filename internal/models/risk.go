package models

import (
	"time"

	"github.com/google/uuid"
)

// Уровни риска, единые для всех модулей аналитики
const (
	RiskLevelLow      = "low"
	RiskLevelMedium   = "medium"
	RiskLevelHigh     = "high"
	RiskLevelCritical = "critical"
)

// Типы факторов риска
const (
	FactorCrowdDensity      = "crowd_density"
	FactorWeather           = "weather"
	FactorIncidentFrequency = "incident_frequency"
	FactorStaffLevels       = "staff_levels"
	FactorTimeOfDay         = "time_of_day"
	FactorEventType         = "event_type"
)

// Влияние фактора на общий риск
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// RiskLevelFromScore переводит балл [0,100] в уровень риска.
// Пороги 40/60/80 - единственный набор порогов в системе.
func RiskLevelFromScore(score float64) string {
	switch {
	case score >= 80:
		return RiskLevelCritical
	case score >= 60:
		return RiskLevelHigh
	case score >= 40:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// RiskFactor - один взвешенный сигнал в составе общей оценки.
// Живёт только внутри RiskScore, отдельно не хранится.
type RiskFactor struct {
	FactorType  string  `json:"factor_type"`
	Value       float64 `json:"value"`
	HasValue    bool    `json:"has_value"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Bucket      string  `json:"bucket"`
	Impact      string  `json:"impact"`
	Description string  `json:"description"`
}

// RiskScore - итоговая оценка риска мероприятия.
// Хранится по одной записи на мероприятие (upsert по event_id).
type RiskScore struct {
	EventID             uuid.UUID    `json:"event_id"`
	OverallScore        float64      `json:"overall_score"`
	RiskLevel           string       `json:"risk_level"`
	ContributingFactors []RiskFactor `json:"contributing_factors"`
	Confidence          float64      `json:"confidence"`
	LastUpdated         time.Time    `json:"last_updated"`
}

// LocationRiskScore - агрегат риска по локации, считается на лету из истории инцидентов
type LocationRiskScore struct {
	Location        string  `json:"location"`
	IncidentCount   int     `json:"incident_count"`
	AverageSeverity float64 `json:"average_severity"`
	RiskScore       float64 `json:"risk_score"`
	RiskLevel       string  `json:"risk_level"`
}

// IncidentTypeRisk - агрегат риска по типу инцидента
type IncidentTypeRisk struct {
	IncidentType    string  `json:"incident_type"`
	IncidentCount   int     `json:"incident_count"`
	AverageSeverity float64 `json:"average_severity"`
	RiskScore       float64 `json:"risk_score"`
	RiskLevel       string  `json:"risk_level"`
}
