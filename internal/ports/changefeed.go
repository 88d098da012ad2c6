package ports

import "catalog-admin-core/internal/domain"

// ChangePublisher receives a change event after every successful store write.
// Services publish fire-and-forget; delivery to subscribers is best effort.
type ChangePublisher interface {
	Publish(event *domain.ChangeEvent)
}
