package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `
	id,
	event_id,
	alert_type,
	severity,
	message,
	recommendations,
	confidence,
	created_at,
	expires_at,
	acknowledged,
	acknowledged_by,
	acknowledged_at`

func scanAlert(row pgx.Row) (*models.PredictiveAlert, error) {
	alert := &models.PredictiveAlert{}
	var recommendations []byte
	err := row.Scan(
		&alert.ID,
		&alert.EventID,
		&alert.AlertType,
		&alert.Severity,
		&alert.Message,
		&recommendations,
		&alert.Confidence,
		&alert.Timestamp,
		&alert.ExpiresAt,
		&alert.Acknowledged,
		&alert.AcknowledgedBy,
		&alert.AcknowledgedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(recommendations, &alert.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert recommendations: %w", err)
	}
	return alert, nil
}

// Create вставляет новое оповещение. Дедупликации нет:
// каждый проход проверок добавляет собственные строки.
func (r *AlertRepository) Create(ctx context.Context, alert *models.PredictiveAlert) error {
	recommendations, err := json.Marshal(alert.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal alert recommendations: %w", err)
	}

	query := `
		INSERT INTO alerts (event_id, alert_type, severity, message, recommendations, confidence, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;
	`
	err = r.db.QueryRow(ctx, query,
		alert.EventID,
		alert.AlertType,
		alert.Severity,
		alert.Message,
		recommendations,
		alert.Confidence,
		alert.Timestamp,
		alert.ExpiresAt,
	).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetByID возвращает оповещение по его UUID
func (r *AlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PredictiveAlert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts WHERE id = $1;`, alertColumns)
	alert, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// Acknowledge однократно подтверждает оповещение.
// Повторное подтверждение не затирает автора первого.
func (r *AlertRepository) Acknowledge(ctx context.Context, id uuid.UUID, userID string, at time.Time) error {
	query := `
		UPDATE alerts SET
			acknowledged = TRUE,
			acknowledged_by = $1,
			acknowledged_at = $2
		WHERE id = $3 AND acknowledged = FALSE;
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, at, id)
	if err != nil {
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found or already acknowledged: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListActive возвращает неподтверждённые и непросроченные оповещения, новые первыми
func (r *AlertRepository) ListActive(ctx context.Context, eventID uuid.UUID, now time.Time) ([]*models.PredictiveAlert, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM alerts
		WHERE event_id = $1 AND acknowledged = FALSE AND expires_at > $2
		ORDER BY created_at DESC;
	`, alertColumns)
	rows, err := r.db.Query(ctx, query, eventID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.PredictiveAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}
