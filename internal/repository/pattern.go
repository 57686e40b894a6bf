package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
)

type PatternRepository struct {
	db *pgxpool.Pool
}

func NewPatternRepository(db *pgxpool.Pool) service.PatternRepository {
	return &PatternRepository{db: db}
}

// UpsertPattern сохраняет паттерн по ключу (event_id, pattern_type).
// Повторный анализ того же типа перезаписывает предыдущую запись,
// поэтому на мероприятие хранится не больше одного паттерна каждого типа.
func (r *PatternRepository) UpsertPattern(ctx context.Context, pattern *models.IncidentPattern) error {
	factors, err := json.Marshal(pattern.Factors)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern factors: %w", err)
	}
	recommendations, err := json.Marshal(pattern.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal pattern recommendations: %w", err)
	}

	query := `
		INSERT INTO incident_patterns (event_id, pattern_type, confidence, description, factors, impact, recommendations, detected_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (event_id, pattern_type) DO UPDATE SET
			confidence = EXCLUDED.confidence,
			description = EXCLUDED.description,
			factors = EXCLUDED.factors,
			impact = EXCLUDED.impact,
			recommendations = EXCLUDED.recommendations,
			last_updated = EXCLUDED.last_updated
		RETURNING id;
	`
	err = r.db.QueryRow(ctx, query,
		pattern.EventID,
		pattern.PatternType,
		pattern.Confidence,
		pattern.Description,
		factors,
		pattern.Impact,
		recommendations,
		pattern.DetectedAt,
	).Scan(&pattern.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert incident pattern: %w", err)
	}
	return nil
}

// ListByEvent возвращает сохранённые паттерны мероприятия
func (r *PatternRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.IncidentPattern, error) {
	query := `
		SELECT id, event_id, pattern_type, confidence, description, factors, impact, recommendations, detected_at, last_updated
		FROM incident_patterns
		WHERE event_id = $1
		ORDER BY pattern_type;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident patterns: %w", err)
	}
	defer rows.Close()

	patterns := make([]*models.IncidentPattern, 0)
	for rows.Next() {
		pattern := &models.IncidentPattern{}
		var factors, recommendations []byte
		err := rows.Scan(
			&pattern.ID,
			&pattern.EventID,
			&pattern.PatternType,
			&pattern.Confidence,
			&pattern.Description,
			&factors,
			&pattern.Impact,
			&recommendations,
			&pattern.DetectedAt,
			&pattern.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pattern row: %w", err)
		}
		if err := json.Unmarshal(factors, &pattern.Factors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pattern factors: %w", err)
		}
		if err := json.Unmarshal(recommendations, &pattern.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pattern recommendations: %w", err)
		}
		patterns = append(patterns, pattern)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return patterns, nil
}
