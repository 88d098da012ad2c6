package pubsub

import (
	"context"
	"slices"
	"sync"

	"catalog-admin-core/internal/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Subscription is an explicit handle on the change feed. It is released
// either by Close or by cancellation of the context it was created with,
// whichever comes first; both paths are idempotent.
type Subscription struct {
	ID     string
	Filter *EventFilter
	Events chan *domain.ChangeEvent
	Done   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
}

// Close releases the subscription.
func (s *Subscription) Close() {
	s.cancel()
}

// EventFilter narrows the events a subscription receives.
type EventFilter struct {
	Collections []string      // filter by collection names
	Tenant      domain.Tenant // filter by tenant key
}

// ChangeFeed broadcasts store change events to subscribed admin sessions.
// Events are delivered in publish order; a slow subscriber whose buffer fills
// drops events rather than blocking the writer.
type ChangeFeed struct {
	mu            sync.RWMutex
	subscriptions map[string]*Subscription
	logger        zerolog.Logger
}

// NewChangeFeed creates a new change feed.
func NewChangeFeed(logger zerolog.Logger) *ChangeFeed {
	return &ChangeFeed{
		subscriptions: make(map[string]*Subscription),
		logger:        logger,
	}
}

// Subscribe creates a new subscription. The handle is released when ctx is
// cancelled even if the caller never calls Close.
func (f *ChangeFeed) Subscribe(ctx context.Context, filter *EventFilter) *Subscription {
	subCtx, cancel := context.WithCancel(ctx)

	sub := &Subscription{
		ID:     uuid.NewString(),
		Filter: filter,
		Events: make(chan *domain.ChangeEvent, 16),
		Done:   make(chan struct{}),
		ctx:    subCtx,
		cancel: cancel,
	}

	f.mu.Lock()
	f.subscriptions[sub.ID] = sub
	f.mu.Unlock()

	f.logger.Debug().
		Str("subscriptionId", sub.ID).
		Interface("filter", filter).
		Msg("Change feed subscription created")

	go func() {
		<-subCtx.Done()
		f.unsubscribe(sub.ID)
	}()

	return sub
}

func (f *ChangeFeed) unsubscribe(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	sub, exists := f.subscriptions[id]
	if !exists {
		return
	}

	close(sub.Events)
	close(sub.Done)
	delete(f.subscriptions, id)

	f.logger.Debug().
		Str("subscriptionId", id).
		Msg("Change feed subscription removed")
}

// Publish broadcasts an event to all matching subscribers. Non-blocking.
func (f *ChangeFeed) Publish(event *domain.ChangeEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, sub := range f.subscriptions {
		if !matchesFilter(event, sub.Filter) {
			continue
		}
		select {
		case sub.Events <- event:
		case <-sub.ctx.Done():
		default:
			f.logger.Warn().
				Str("subscriptionId", sub.ID).
				Str("collection", event.Collection).
				Msg("Subscriber buffer full, dropping event")
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (f *ChangeFeed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscriptions)
}

func matchesFilter(event *domain.ChangeEvent, filter *EventFilter) bool {
	if filter == nil {
		return true
	}
	if len(filter.Collections) > 0 && !slices.Contains(filter.Collections, event.Collection) {
		return false
	}
	return filter.Tenant == "" || event.Tenant == filter.Tenant
}
