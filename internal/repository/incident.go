package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

const incidentColumns = `
	id,
	event_id,
	incident_type,
	description,
	location,
	severity,
	priority,
	status,
	reported_at,
	resolved_at,
	created_at,
	updated_at`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.EventID,
		&incident.IncidentType,
		&incident.Description,
		&incident.Location,
		&incident.Severity,
		&incident.Priority,
		&incident.Status,
		&incident.ReportedAt,
		&incident.ResolvedAt,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	return incident, err
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (event_id, incident_type, description, location, severity, priority, status, reported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.EventID,
		incident.IncidentType,
		incident.Description,
		incident.Location,
		incident.Severity,
		incident.Priority,
		incident.Status,
		incident.ReportedAt,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE id = $1;`, incidentColumns)
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListByEvent возвращает всю историю инцидентов мероприятия
func (r *IncidentRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE event_id = $1 ORDER BY reported_at ASC;`, incidentColumns)
	return r.queryIncidents(ctx, query, eventID)
}

// ListByEventSince возвращает инциденты мероприятия, зарегистрированные после момента since
func (r *IncidentRepository) ListByEventSince(ctx context.Context, eventID uuid.UUID, since time.Time) ([]*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM incidents WHERE event_id = $1 AND reported_at >= $2 ORDER BY reported_at ASC;`, incidentColumns)
	return r.queryIncidents(ctx, query, eventID, since)
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// Resolve закрывает инцидент и фиксирует время решения
func (r *IncidentRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			resolved_at = NOW(),
			updated_at = NOW()
		WHERE id = $1 AND resolved_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to resolve incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found or already resolved: %w", id, models.ErrNotFound)
	}
	return nil
}
