package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
)

type WeatherRepository struct {
	db *pgxpool.Pool
}

func NewWeatherRepository(db *pgxpool.Pool) service.WeatherRepository {
	return &WeatherRepository{db: db}
}

// SaveReading сохраняет погодный вход для оценки риска
func (r *WeatherRepository) SaveReading(ctx context.Context, reading *models.WeatherReading) error {
	query := `
		INSERT INTO weather_readings (event_id, risk_score, condition, recorded_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		reading.EventID,
		reading.RiskScore,
		reading.Condition,
		reading.RecordedAt,
	).Scan(&reading.ID)
	if err != nil {
		return fmt.Errorf("failed to save weather reading: %w", err)
	}
	return nil
}

// LatestByEvent возвращает последний погодный вход или ErrNotFound
func (r *WeatherRepository) LatestByEvent(ctx context.Context, eventID uuid.UUID) (*models.WeatherReading, error) {
	query := `
		SELECT id, event_id, risk_score, condition, recorded_at
		FROM weather_readings
		WHERE event_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;
	`
	reading := &models.WeatherReading{}
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&reading.ID,
		&reading.EventID,
		&reading.RiskScore,
		&reading.Condition,
		&reading.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("weather reading for event %s: %w", eventID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest weather reading: %w", err)
	}
	return reading, nil
}

// ListByEvent возвращает погодные входы мероприятия по возрастанию времени
func (r *WeatherRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.WeatherReading, error) {
	query := `
		SELECT id, event_id, risk_score, condition, recorded_at
		FROM weather_readings
		WHERE event_id = $1
		ORDER BY recorded_at ASC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weather readings: %w", err)
	}
	defer rows.Close()

	readings := make([]*models.WeatherReading, 0)
	for rows.Next() {
		reading := &models.WeatherReading{}
		if err := rows.Scan(&reading.ID, &reading.EventID, &reading.RiskScore, &reading.Condition, &reading.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan weather row: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return readings, nil
}
