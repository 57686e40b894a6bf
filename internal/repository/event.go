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
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/event_safety_analytics/internal/models"
	"github.com/shenikar/event_safety_analytics/internal/service"
)

type EventRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewEventRepository(db *pgxpool.Pool, redisClient *redis.Client) service.EventRepository {
	return &EventRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const eventColumns = `
	id,
	name,
	event_type,
	venue_name,
	latitude,
	longitude,
	max_capacity,
	current_attendance,
	staff_count,
	status,
	starts_at,
	ends_at,
	created_at,
	updated_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.EventType,
		&event.VenueName,
		&event.Latitude,
		&event.Longitude,
		&event.MaxCapacity,
		&event.CurrentAttendance,
		&event.StaffCount,
		&event.Status,
		&event.StartsAt,
		&event.EndsAt,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	return event, err
}

// Create создает новую запись о мероприятии в бд
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (name, event_type, venue_name, latitude, longitude, max_capacity, current_attendance, staff_count, status, starts_at, ends_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		event.Name,
		event.EventType,
		event.VenueName,
		event.Latitude,
		event.Longitude,
		event.MaxCapacity,
		event.CurrentAttendance,
		event.StaffCount,
		event.Status,
		event.StartsAt,
		event.EndsAt,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID возвращает мероприятие по его UUID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1;`, eventColumns)
	event, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}
	return event, nil
}

// Update обновляет мероприятие
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events SET
			name = $1,
			event_type = $2,
			venue_name = $3,
			latitude = $4,
			longitude = $5,
			max_capacity = $6,
			current_attendance = $7,
			staff_count = $8,
			status = $9,
			starts_at = $10,
			ends_at = $11,
			updated_at = NOW()
		WHERE id = $12;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		event.Name,
		event.EventType,
		event.VenueName,
		event.Latitude,
		event.Longitude,
		event.MaxCapacity,
		event.CurrentAttendance,
		event.StaffCount,
		event.Status,
		event.StartsAt,
		event.EndsAt,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event with id %s: %w", event.ID, models.ErrNotFound)
	}
	return nil
}

// UpdateAttendance обновляет текущее число посетителей
func (r *EventRepository) UpdateAttendance(ctx context.Context, id uuid.UUID, count int) error {
	query := `
		UPDATE events SET
			current_attendance = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, count, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("event with id %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListEvents возвращает список мероприятий с пагинацией
func (r *EventRepository) ListEvents(ctx context.Context, page, pageSize int) ([]*models.Event, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY starts_at DESC LIMIT $1 OFFSET $2;`, eventColumns)
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return events, nil
}

// GetEventFromCache пытается получить мероприятие из Redis
func (r *EventRepository) GetEventFromCache(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	key := fmt.Sprintf("event:%s", id.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event from cache: %w", err)
	}

	event := &models.Event{}
	if err := json.Unmarshal(val, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event from cache: %w", err)
	}
	return event, nil
}

// SetEventCache сохраняет мероприятие в Redis
func (r *EventRepository) SetEventCache(ctx context.Context, event *models.Event) error {
	key := fmt.Sprintf("event:%s", event.ID.String())
	val, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for cache: %w", err)
	}
	// Срок жизни кэша - 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set event in cache: %w", err)
	}
	return nil
}

// InvalidateEventCache удаляет мероприятие из Redis кэша
func (r *EventRepository) InvalidateEventCache(ctx context.Context, id uuid.UUID) error {
	key := fmt.Sprintf("event:%s", id.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate event cache: %w", err)
	}
	return nil
}
