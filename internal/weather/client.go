package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// HTTPProvider ходит во внешний погодный API.
// Все вызовы идут через circuit breaker: после серии отказов
// запросы отсекаются сразу, пока провайдер не восстановится.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*models.WeatherConditions]
	logger     *logrus.Logger
	now        func() time.Time
}

// NewHTTPProvider создает провайдера с таймаутом и circuit breaker
func NewHTTPProvider(baseURL string, timeout time.Duration, logger *logrus.Logger) *HTTPProvider {
	settings := gobreaker.Settings{
		Name:    "weather-provider",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Weather provider circuit breaker state changed")
		},
	}
	return &HTTPProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker[*models.WeatherConditions](settings),
		logger:     logger,
		now:        time.Now,
	}
}

// conditionsResponse - формат ответа погодного API
type conditionsResponse struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Condition     string  `json:"condition"`
	Forecast      string  `json:"forecast"`
}

// Current возвращает текущие условия по координатам
func (p *HTTPProvider) Current(ctx context.Context, lat, lon float64) (*models.WeatherConditions, error) {
	return p.fetch(ctx, "/v1/current", lat, lon)
}

// Forecast возвращает ближайший прогнозный замер по координатам
func (p *HTTPProvider) Forecast(ctx context.Context, lat, lon float64) (*models.WeatherConditions, error) {
	return p.fetch(ctx, "/v1/forecast", lat, lon)
}

func (p *HTTPProvider) fetch(ctx context.Context, path string, lat, lon float64) (*models.WeatherConditions, error) {
	return p.breaker.Execute(func() (*models.WeatherConditions, error) {
		endpoint := fmt.Sprintf("%s%s?lat=%s&lon=%s",
			p.baseURL,
			path,
			url.QueryEscape(fmt.Sprintf("%.4f", lat)),
			url.QueryEscape(fmt.Sprintf("%.4f", lon)),
		)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create weather request: %w", err)
		}

		resp, err := p.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("weather provider request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
		}

		var body conditionsResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode weather response: %w", err)
		}

		return &models.WeatherConditions{
			Temperature:   body.Temperature,
			Humidity:      body.Humidity,
			WindSpeed:     body.WindSpeed,
			Precipitation: body.Precipitation,
			Condition:     body.Condition,
			Forecast:      body.Forecast,
			ObservedAt:    p.now(),
		}, nil
	})
}
