package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
)

type RiskRepository struct {
	db *pgxpool.Pool
}

func NewRiskRepository(db *pgxpool.Pool) service.RiskRepository {
	return &RiskRepository{db: db}
}

// UpsertRiskScore сохраняет оценку риска по принципу "последняя запись побеждает".
// Один INSERT ... ON CONFLICT - запись атомарна в рамках вызова.
func (r *RiskRepository) UpsertRiskScore(ctx context.Context, score *models.RiskScore) error {
	factors, err := json.Marshal(score.ContributingFactors)
	if err != nil {
		return fmt.Errorf("failed to marshal risk factors: %w", err)
	}

	query := `
		INSERT INTO risk_scores (event_id, overall_score, risk_level, contributing_factors, confidence, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO UPDATE SET
			overall_score = EXCLUDED.overall_score,
			risk_level = EXCLUDED.risk_level,
			contributing_factors = EXCLUDED.contributing_factors,
			confidence = EXCLUDED.confidence,
			last_updated = EXCLUDED.last_updated;
	`
	_, err = r.db.Exec(ctx, query,
		score.EventID,
		score.OverallScore,
		score.RiskLevel,
		factors,
		score.Confidence,
		score.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert risk score: %w", err)
	}
	return nil
}

// GetRiskScore возвращает сохранённую оценку риска мероприятия
func (r *RiskRepository) GetRiskScore(ctx context.Context, eventID uuid.UUID) (*models.RiskScore, error) {
	query := `
		SELECT event_id, overall_score, risk_level, contributing_factors, confidence, last_updated
		FROM risk_scores
		WHERE event_id = $1;
	`
	score := &models.RiskScore{}
	var factors []byte
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&score.EventID,
		&score.OverallScore,
		&score.RiskLevel,
		&factors,
		&score.Confidence,
		&score.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("risk score for event %s: %w", eventID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get risk score: %w", err)
	}

	if err := json.Unmarshal(factors, &score.ContributingFactors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk factors: %w", err)
	}
	return score, nil
}
