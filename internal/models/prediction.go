package models

import (
	"time"

	"github.com/google/uuid"
)

// CrowdFactor - входной сигнал, повлиявший на прогноз плотности
type CrowdFactor struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CrowdFlowPrediction - прогноз плотности толпы на один 30-минутный слот.
// Прогнозы пишутся пачкой по 8 слотов (горизонт 4 часа), новая пачка
// полностью заменяет предыдущую.
type CrowdFlowPrediction struct {
	ID               uuid.UUID     `json:"id"`
	EventID          uuid.UUID     `json:"event_id"`
	Timestamp        time.Time     `json:"timestamp"`
	Location         string        `json:"location"`
	CurrentDensity   float64       `json:"current_density"`
	PredictedDensity float64       `json:"predicted_density"`
	PredictedCount   int           `json:"predicted_count"`
	Confidence       float64       `json:"confidence"`
	Factors          []CrowdFactor `json:"factors"`
	RiskLevel        string        `json:"risk_level"`
	Recommendations  []string      `json:"recommendations"`
	CreatedAt        time.Time     `json:"created_at"`
}

// RiskPeriod - непрерывный отрезок прогноза с высоким или критическим риском
type RiskPeriod struct {
	StartsAt        time.Time `json:"starts_at"`
	EndsAt          time.Time `json:"ends_at"`
	RiskLevel       string    `json:"risk_level"`
	PeakDensity     float64   `json:"peak_density"`
	Recommendations []string  `json:"recommendations"`
}

// OccupancyForecast - сводка по пачке прогнозов, не хранится в бд
type OccupancyForecast struct {
	EventID             uuid.UUID    `json:"event_id"`
	PeakTime            time.Time    `json:"peak_time"`
	PeakOccupancy       float64      `json:"peak_occupancy"`
	AverageOccupancy    float64      `json:"average_occupancy"`
	CapacityUtilization float64      `json:"capacity_utilization"`
	RiskPeriods         []RiskPeriod `json:"risk_periods"`
}

// DensityZone - снимок заполненности одной зоны площадки.
// Пока значения фиксированные, см. ZoneSource в crowdflow.
type DensityZone struct {
	ZoneID        string    `json:"zone_id"`
	Name          string    `json:"name"`
	Occupancy     int       `json:"occupancy"`
	Capacity      int       `json:"capacity"`
	DensityPct    float64   `json:"density_pct"`
	RiskLevel     string    `json:"risk_level"`
	PredictedPeak time.Time `json:"predicted_peak"`
}
