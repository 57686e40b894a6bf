package weather

import (
	"context"

	"github.com/shenikar/event_safety_analytics/internal/models"
)

// Provider - внешний источник погодных данных по координатам.
// Недоступность провайдера не фатальна: проверки погоды просто
// не дают оповещений.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*models.WeatherConditions, error)
	Forecast(ctx context.Context, lat, lon float64) (*models.WeatherConditions, error)
}
