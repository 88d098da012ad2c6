package pubsub

import (
	"context"
	"encoding/json"

	"catalog-admin-core/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const changeChannel = "catalog:changes"

// envelope wraps a change event on the wire with the origin instance id so
// an instance can skip events it published itself.
type envelope struct {
	Origin string              `json:"origin"`
	Event  *domain.ChangeEvent `json:"event"`
}

// RedisBridge fans change events out across service instances: every local
// event is published to a Redis channel, and events from other instances are
// replayed into the local feed. With a nil client it degrades to the local
// feed only.
type RedisBridge struct {
	feed     *ChangeFeed
	client   *redis.Client
	instance string
	logger   zerolog.Logger
}

// NewRedisBridge creates a bridge in front of the local feed. client may be
// nil for single-instance deployments.
func NewRedisBridge(feed *ChangeFeed, client *redis.Client, logger zerolog.Logger) *RedisBridge {
	return &RedisBridge{
		feed:     feed,
		client:   client,
		instance: uuid.NewString(),
		logger:   logger,
	}
}

// Publish delivers the event locally and, when Redis is configured, to every
// other instance. Fan-out failures are logged, never surfaced: local
// subscribers have already been served.
func (b *RedisBridge) Publish(event *domain.ChangeEvent) {
	b.feed.Publish(event)

	if b.client == nil {
		return
	}

	payload, err := json.Marshal(envelope{Origin: b.instance, Event: event})
	if err != nil {
		b.logger.Error().Err(err).Msg("Failed to marshal change event")
		return
	}

	if err := b.client.Publish(context.Background(), changeChannel, payload).Err(); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to fan out change event")
	}
}

// Run consumes remote events until ctx is cancelled. No-op without Redis.
func (b *RedisBridge) Run(ctx context.Context) {
	if b.client == nil {
		return
	}

	sub := b.client.Subscribe(ctx, changeChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				b.logger.Warn().Err(err).Msg("Dropping malformed change event")
				continue
			}
			if env.Origin == b.instance || env.Event == nil {
				continue
			}
			b.feed.Publish(env.Event)
		}
	}
}
