package ports

import (
	"context"

	"catalog-admin-core/internal/domain"
)

// TaxonomyRepository persists per-tenant classification documents.
//
// MergeDefaults must use the store's atomic array-union primitive (safe under
// concurrent writers). ReplaceList is a whole-array replace with no version
// check: concurrent replacers can lose updates. That asymmetry is deliberate
// and mirrors the admin panel's behavior.
type TaxonomyRepository interface {
	// Get retrieves the classification document for a tenant, or nil when absent.
	Get(ctx context.Context, tenant domain.Tenant) (*domain.TaxonomySet, error)

	// MergeDefaults unions the given names into the tenant's lists, creating
	// the document if needed. Idempotent.
	MergeDefaults(ctx context.Context, tenant domain.Tenant, brands, categories []string) error

	// ReplaceList overwrites the whole option list for kind.
	ReplaceList(ctx context.Context, tenant domain.Tenant, kind domain.OptionKind, names []string) error
}

// SectionRepository persists admin-defined custom sections.
type SectionRepository interface {
	Create(ctx context.Context, section *domain.CustomSection) error
	Get(ctx context.Context, id string) (*domain.CustomSection, error)
	List(ctx context.Context) ([]*domain.CustomSection, error)

	// PushItem appends one item via the store's atomic array append.
	PushItem(ctx context.Context, sectionID string, item domain.SectionItem) error

	// ReplaceItems overwrites the whole item list (non-atomic).
	ReplaceItems(ctx context.Context, sectionID string, items []domain.SectionItem) error

	Delete(ctx context.Context, id string) error
}

// OptionRepository persists the flat quick-add option collections
// (categories, brands, websites).
type OptionRepository interface {
	Add(ctx context.Context, coll domain.OptionCollection, name string) (*domain.Option, error)
	Delete(ctx context.Context, coll domain.OptionCollection, id string) error
	List(ctx context.Context, coll domain.OptionCollection) ([]*domain.Option, error)
}

// ProductRepository persists denormalized product records.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id string, product *domain.Product) error
	Get(ctx context.Context, id string) (*domain.Product, error)

	// List returns products ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Product, error)

	Delete(ctx context.Context, id string) error
}

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, id string, project *domain.Project) error
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository persists staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByKey(ctx context.Context, key string) (*domain.User, error)
}
