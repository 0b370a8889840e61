package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	dispatchQueueKey = "dispatch_events"
)

// DispatchEvent - событие диспетчеризации, доставляемое внешнему потребителю.
// Консоль по-прежнему обновляется опросом; очередь нужна только для внешних систем.
type DispatchEvent struct {
	Event          string     `json:"event"` // incident.created, incident.status_changed, unit.assigned, unit.released, unit.status_changed
	IncidentID     *uuid.UUID `json:"incident_id,omitempty"`
	IncidentNumber string     `json:"incident_number,omitempty"`
	UnitID         *uuid.UUID `json:"unit_id,omitempty"`
	Callsign       string     `json:"callsign,omitempty"`
	Status         string     `json:"status,omitempty"`
	Timestamp      time.Time  `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий диспетчеризации
type EventPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, dispatchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
