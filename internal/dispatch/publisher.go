package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const alertQueueKey = "alert_notifications"

// AlertNotification - полезная нагрузка push-уведомления о критическом оповещении.
// Отправка fire-and-forget: статус доставки в состояние оповещения не возвращается.
type AlertNotification struct {
	AlertID   uuid.UUID `json:"alert_id"`
	EventID   uuid.UUID `json:"event_id"`
	AlertType string    `json:"alert_type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher - интерфейс для постановки уведомлений в очередь
type Publisher interface {
	Publish(ctx context.Context, notification AlertNotification) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, notification AlertNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal alert notification: %w", err)
	}

	// LPUSH добавляет уведомление в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert notification to Redis: %w", err)
	}
	return nil
}
