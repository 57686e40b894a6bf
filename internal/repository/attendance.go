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

type AttendanceRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceRepository(db *pgxpool.Pool) service.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Save сохраняет замер посещаемости
func (r *AttendanceRepository) Save(ctx context.Context, sample *models.AttendanceSample) error {
	query := `
		INSERT INTO attendance_samples (event_id, count, recorded_at)
		VALUES ($1, $2, $3) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		sample.EventID,
		sample.Count,
		sample.RecordedAt,
	).Scan(&sample.ID)
	if err != nil {
		return fmt.Errorf("failed to save attendance sample: %w", err)
	}
	return nil
}

// ListByEvent возвращает замеры посещаемости мероприятия по возрастанию времени
func (r *AttendanceRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.AttendanceSample, error) {
	query := `
		SELECT id, event_id, count, recorded_at
		FROM attendance_samples
		WHERE event_id = $1
		ORDER BY recorded_at ASC;
	`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance samples: %w", err)
	}
	defer rows.Close()

	samples := make([]*models.AttendanceSample, 0)
	for rows.Next() {
		sample := &models.AttendanceSample{}
		if err := rows.Scan(&sample.ID, &sample.EventID, &sample.Count, &sample.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return samples, nil
}

// LatestByEvent возвращает последний замер или ErrNotFound
func (r *AttendanceRepository) LatestByEvent(ctx context.Context, eventID uuid.UUID) (*models.AttendanceSample, error) {
	query := `
		SELECT id, event_id, count, recorded_at
		FROM attendance_samples
		WHERE event_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1;
	`
	sample := &models.AttendanceSample{}
	err := r.db.QueryRow(ctx, query, eventID).Scan(&sample.ID, &sample.EventID, &sample.Count, &sample.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("attendance for event %s: %w", eventID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest attendance sample: %w", err)
	}
	return sample, nil
}
