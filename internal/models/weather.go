package models

import (
	"time"

	"github.com/google/uuid"
)

// WeatherConditions - текущая погода от внешнего провайдера
type WeatherConditions struct {
	Temperature   float64   `json:"temperature"`
	Humidity      float64   `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	Precipitation float64   `json:"precipitation"`
	Condition     string    `json:"condition"`
	Forecast      string    `json:"forecast"`
	ObservedAt    time.Time `json:"observed_at"`
}

// WeatherReading - сохранённый погодный вход для оценки риска мероприятия
type WeatherReading struct {
	ID         int64     `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	RiskScore  float64   `json:"risk_score"`
	Condition  string    `json:"condition"`
	RecordedAt time.Time `json:"recorded_at"`
}
