package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sigo_companion/internal/models"
)

const (
	webhookQueueKey = "sigo:lifecycle_events"
)

// EventType - тип события жизненного цикла
type EventType string

const (
	EventIncidentCreated       EventType = "incident.created"
	EventIncidentStatusChanged EventType = "incident.status_changed"
	EventIncidentUpdated       EventType = "incident.updated"
	EventIncidentDeleted       EventType = "incident.deleted"
	EventDraftExportedOffline  EventType = "draft.exported_offline"
)

// Event - событие, отправляемое во внешний вебхук
type Event struct {
	ID             uuid.UUID        `json:"id"`
	Type           EventType        `json:"type"`
	IncidentID     string           `json:"incident_id,omitempty"`
	DraftID        string           `json:"draft_id,omitempty"`
	Protocol       string           `json:"protocol,omitempty"`
	Status         models.Status    `json:"status,omitempty"`
	PreviousStatus models.Status    `json:"previous_status,omitempty"`
	ShareURL       string           `json:"share_url,omitempty"`
	Incident       *models.Incident `json:"incident,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

// NewEvent заполняет id и время события
func NewEvent(t EventType) Event {
	return Event{ID: uuid.New(), Type: t, Timestamp: time.Now().UTC()}
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher кладёт события в очередь Redis, доставкой занимается Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда очередь не нужна (sigo-cli)
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
