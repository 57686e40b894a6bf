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

type PredictionRepository struct {
	db *pgxpool.Pool
}

func NewPredictionRepository(db *pgxpool.Pool) service.PredictionRepository {
	return &PredictionRepository{db: db}
}

// ReplaceBatch атомарно заменяет пачку прогнозов мероприятия:
// старая пачка удаляется и новая вставляется в одной транзакции.
func (r *PredictionRepository) ReplaceBatch(ctx context.Context, eventID uuid.UUID, predictions []*models.CrowdFlowPrediction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin predictions transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM crowd_predictions WHERE event_id = $1;`, eventID); err != nil {
		return fmt.Errorf("failed to delete prior prediction batch: %w", err)
	}

	query := `
		INSERT INTO crowd_predictions (event_id, ts, location, current_density, predicted_density, predicted_count, confidence, factors, risk_level, recommendations)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at;
	`
	for _, p := range predictions {
		factors, err := json.Marshal(p.Factors)
		if err != nil {
			return fmt.Errorf("failed to marshal prediction factors: %w", err)
		}
		recommendations, err := json.Marshal(p.Recommendations)
		if err != nil {
			return fmt.Errorf("failed to marshal prediction recommendations: %w", err)
		}
		err = tx.QueryRow(ctx, query,
			p.EventID,
			p.Timestamp,
			p.Location,
			p.CurrentDensity,
			p.PredictedDensity,
			p.PredictedCount,
			p.Confidence,
			factors,
			p.RiskLevel,
			recommendations,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert prediction: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit prediction batch: %w", err)
	}
	return nil
}

// ListByEvent возвращает текущую пачку прогнозов по возрастанию времени слота
func (r *PredictionRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.CrowdFlowPrediction, error) {
	query := `
		SELECT id, event_id, ts, location, current_density, predicted_density, predicted_count, confidence, factors, risk_level, recommendations, created_at
		FROM crowd_predictions
		WHERE event_id = $1
		ORDER BY ts ASC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	predictions := make([]*models.CrowdFlowPrediction, 0)
	for rows.Next() {
		p := &models.CrowdFlowPrediction{}
		var factors, recommendations []byte
		err := rows.Scan(
			&p.ID,
			&p.EventID,
			&p.Timestamp,
			&p.Location,
			&p.CurrentDensity,
			&p.PredictedDensity,
			&p.PredictedCount,
			&p.Confidence,
			&factors,
			&p.RiskLevel,
			&recommendations,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction row: %w", err)
		}
		if err := json.Unmarshal(factors, &p.Factors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prediction factors: %w", err)
		}
		if err := json.Unmarshal(recommendations, &p.Recommendations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prediction recommendations: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return predictions, nil
}
