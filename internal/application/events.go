package application

import (
	"time"

	"catalog-admin-core/internal/domain"
)

func newChangeEvent(op domain.ChangeOp, collection, id string, tenant domain.Tenant) *domain.ChangeEvent {
	return &domain.ChangeEvent{
		Collection: collection,
		Op:         op,
		DocumentID: id,
		Tenant:     tenant,
		At:         time.Now(),
	}
}
