package weather

import (
	"context"
	"time"

	"github.com/shenikar/event_safety_analytics/internal/models"
)

// SimulatedProvider отдаёт фиксированные условия.
// Это заглушка на время, пока не подключён реальный провайдер:
// используется, когда WEATHER_BASE_URL не задан, и в тестах.
type SimulatedProvider struct {
	Conditions models.WeatherConditions
	Next       models.WeatherConditions
}

// NewSimulatedProvider создает провайдера с умеренной летней погодой
func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{
		Conditions: models.WeatherConditions{
			Temperature:   21,
			Humidity:      55,
			WindSpeed:     12,
			Precipitation: 0,
			Condition:     "partly cloudy",
			Forecast:      "stable through the evening",
		},
		Next: models.WeatherConditions{
			Temperature:   20,
			Humidity:      58,
			WindSpeed:     14,
			Precipitation: 0,
			Condition:     "partly cloudy",
			Forecast:      "stable through the evening",
		},
	}
}

func (p *SimulatedProvider) Current(_ context.Context, _, _ float64) (*models.WeatherConditions, error) {
	c := p.Conditions
	c.ObservedAt = time.Now()
	return &c, nil
}

func (p *SimulatedProvider) Forecast(_ context.Context, _, _ float64) (*models.WeatherConditions, error) {
	c := p.Next
	c.ObservedAt = time.Now()
	return &c, nil
}
