package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AlertThresholds - пороги для предиктивных оповещений.
// Значения по умолчанию соответствуют продуктовым требованиям,
// но могут быть переопределены через окружение.
type AlertThresholds struct {
	TempDropC           float64 `env:"ALERT_TEMP_DROP_C" envDefault:"5"`
	TempRiseC           float64 `env:"ALERT_TEMP_RISE_C" envDefault:"8"`
	PrecipitationOnset  float64 `env:"ALERT_PRECIP_ONSET_MM" envDefault:"0.1"`
	WindIncreaseKmh     float64 `env:"ALERT_WIND_INCREASE_KMH" envDefault:"10"`
	HumidityIncreasePct float64 `env:"ALERT_HUMIDITY_INCREASE_PCT" envDefault:"20"`
	CrowdWarningPct     float64 `env:"ALERT_CROWD_WARNING_PCT" envDefault:"75"`
	CrowdCriticalPct    float64 `env:"ALERT_CROWD_CRITICAL_PCT" envDefault:"90"`
	RiskWarningScore    float64 `env:"ALERT_RISK_WARNING_SCORE" envDefault:"60"`
	RiskCriticalScore   float64 `env:"ALERT_RISK_CRITICAL_SCORE" envDefault:"80"`
}

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Weather Provider Config
	WeatherBaseURL string        `env:"WEATHER_BASE_URL"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`

	// Analytics Config
	AnalyticsCacheTTL time.Duration `env:"ANALYTICS_CACHE_TTL" envDefault:"5m"`
	IncidentWindow    time.Duration `env:"INCIDENT_WINDOW" envDefault:"2h"`
	PredictionHorizon time.Duration `env:"PREDICTION_HORIZON" envDefault:"4h"`
	PredictionStep    time.Duration `env:"PREDICTION_STEP" envDefault:"30m"`

	// Alert Config
	Thresholds      AlertThresholds
	WeatherAlertTTL time.Duration `env:"WEATHER_ALERT_TTL" envDefault:"2h"`
	CrowdAlertTTL   time.Duration `env:"CROWD_ALERT_TTL" envDefault:"30m"`
	RiskAlertTTL    time.Duration `env:"RISK_ALERT_TTL" envDefault:"15m"`

	// Dispatch Config (push критических оповещений)
	DispatchURL        string        `env:"DISPATCH_URL"`
	DispatchSecret     string        `env:"DISPATCH_SECRET"`
	DispatchTimeout    time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"5s"`
	DispatchMaxRetries int           `env:"DISPATCH_MAX_RETRIES" envDefault:"3"`
	DispatchBaseDelay  time.Duration `env:"DISPATCH_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:      getEnvAsInt("REDIS_POOL_SIZE", 10),
		WeatherBaseURL:     os.Getenv("WEATHER_BASE_URL"),
		WeatherTimeout:     getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		AnalyticsCacheTTL:  getEnvAsDuration("ANALYTICS_CACHE_TTL", 5*time.Minute),
		IncidentWindow:     getEnvAsDuration("INCIDENT_WINDOW", 2*time.Hour),
		PredictionHorizon:  getEnvAsDuration("PREDICTION_HORIZON", 4*time.Hour),
		PredictionStep:     getEnvAsDuration("PREDICTION_STEP", 30*time.Minute),
		WeatherAlertTTL:    getEnvAsDuration("WEATHER_ALERT_TTL", 2*time.Hour),
		CrowdAlertTTL:      getEnvAsDuration("CROWD_ALERT_TTL", 30*time.Minute),
		RiskAlertTTL:       getEnvAsDuration("RISK_ALERT_TTL", 15*time.Minute),
		DispatchURL:        os.Getenv("DISPATCH_URL"),
		DispatchSecret:     os.Getenv("DISPATCH_SECRET"),
		DispatchTimeout:    getEnvAsDuration("DISPATCH_TIMEOUT", 5*time.Second),
		DispatchMaxRetries: getEnvAsInt("DISPATCH_MAX_RETRIES", 3),
		DispatchBaseDelay:  getEnvAsDuration("DISPATCH_BASE_DELAY", time.Second),
		Thresholds: AlertThresholds{
			TempDropC:           getEnvAsFloat("ALERT_TEMP_DROP_C", 5),
			TempRiseC:           getEnvAsFloat("ALERT_TEMP_RISE_C", 8),
			PrecipitationOnset:  getEnvAsFloat("ALERT_PRECIP_ONSET_MM", 0.1),
			WindIncreaseKmh:     getEnvAsFloat("ALERT_WIND_INCREASE_KMH", 10),
			HumidityIncreasePct: getEnvAsFloat("ALERT_HUMIDITY_INCREASE_PCT", 20),
			CrowdWarningPct:     getEnvAsFloat("ALERT_CROWD_WARNING_PCT", 75),
			CrowdCriticalPct:    getEnvAsFloat("ALERT_CROWD_CRITICAL_PCT", 90),
			RiskWarningScore:    getEnvAsFloat("ALERT_RISK_WARNING_SCORE", 60),
			RiskCriticalScore:   getEnvAsFloat("ALERT_RISK_CRITICAL_SCORE", 80),
		},
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
