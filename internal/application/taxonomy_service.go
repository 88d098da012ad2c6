package application

import (
	"context"
	"fmt"
	"strings"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	classificationsCollection = "classifications"
	sectionsCollection        = "custom_sections"
)

// TaxonomyDefaults is the built-in option set seeded for one tenant.
type TaxonomyDefaults struct {
	Brands     []string
	Categories []string
}

// TaxonomyService keeps per-tenant brand/category lists and admin-defined
// custom sections consistent across concurrently open admin sessions.
//
// Writes against the classification lists are whole-array replaces with no
// version token; two sessions mutating the same list concurrently can lose an
// update. Seeding and section-item appends use the store's atomic array
// primitives and are safe under concurrent writers.
type TaxonomyService struct {
	taxonomyRepo ports.TaxonomyRepository
	sectionRepo  ports.SectionRepository
	publisher    ports.ChangePublisher
	defaults     map[domain.Tenant]TaxonomyDefaults
	logger       zerolog.Logger
}

// NewTaxonomyService creates a new taxonomy service. defaults maps each known
// tenant to its built-in option lists.
func NewTaxonomyService(
	taxonomyRepo ports.TaxonomyRepository,
	sectionRepo ports.SectionRepository,
	publisher ports.ChangePublisher,
	defaults map[domain.Tenant]TaxonomyDefaults,
	logger zerolog.Logger,
) *TaxonomyService {
	return &TaxonomyService{
		taxonomyRepo: taxonomyRepo,
		sectionRepo:  sectionRepo,
		publisher:    publisher,
		defaults:     defaults,
		logger:       logger,
	}
}

// EnsureSeeded merges the tenant's built-in defaults into its classification
// document, creating it when absent. Defaults already present are left where
// they are; defaults removed by an admin elsewhere are re-added here, since
// the union cannot distinguish "never seeded" from "seeded then removed".
// Idempotent.
func (s *TaxonomyService) EnsureSeeded(ctx context.Context, tenant domain.Tenant) (*domain.TaxonomySet, error) {
	d, ok := s.defaults[tenant]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTenant, tenant)
	}

	brands := normalizeAll(d.Brands)
	categories := normalizeAll(d.Categories)

	if err := s.taxonomyRepo.MergeDefaults(ctx, tenant, brands, categories); err != nil {
		return nil, fmt.Errorf("failed to seed tenant %s: %w", tenant, err)
	}

	set, err := s.taxonomyRepo.Get(ctx, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to read seeded classification: %w", err)
	}

	s.publishChange(domain.OpUpdated, classificationsCollection, string(tenant), tenant)

	s.logger.Info().
		Str("tenant", string(tenant)).
		Int("brands", len(set.Brands)).
		Int("categories", len(set.Categories)).
		Msg("Seeded tenant classification")

	return set, nil
}

// Get returns the tenant's current classification document, seeding it on
// first access.
func (s *TaxonomyService) Get(ctx context.Context, tenant domain.Tenant) (*domain.TaxonomySet, error) {
	if _, ok := s.defaults[tenant]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTenant, tenant)
	}

	set, err := s.taxonomyRepo.Get(ctx, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to get classification: %w", err)
	}
	if set == nil {
		return s.EnsureSeeded(ctx, tenant)
	}
	return set, nil
}

// AddOption adds a normalized name to the tenant's brand or category list.
// Empty and duplicate names are no-ops with no store write. The updated set
// is returned either way.
func (s *TaxonomyService) AddOption(ctx context.Context, tenant domain.Tenant, kind domain.OptionKind, rawName string) (*domain.TaxonomySet, error) {
	if !domain.ValidOptionKind(kind) {
		return nil, fmt.Errorf("%w: unknown option kind %q", domain.ErrInvalidInput, kind)
	}

	set, err := s.currentSet(ctx, tenant)
	if err != nil {
		return nil, err
	}

	name := domain.NormalizeName(rawName)
	if name == "" {
		s.logger.Debug().Str("tenant", string(tenant)).Msg("Ignoring empty option name")
		return set, nil
	}
	if set.Contains(kind, name) {
		return set, nil
	}

	names := append([]string{name}, set.List(kind)...)
	if err := s.taxonomyRepo.ReplaceList(ctx, tenant, kind, names); err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", kind, err)
	}

	s.setList(set, kind, names)
	s.publishChange(domain.OpUpdated, classificationsCollection, string(tenant), tenant)

	return set, nil
}

// RemoveOption removes a name (by exact normalized match) from the tenant's
// brand or category list. An absent name is a no-op with no store write.
func (s *TaxonomyService) RemoveOption(ctx context.Context, tenant domain.Tenant, kind domain.OptionKind, rawName string) (*domain.TaxonomySet, error) {
	if !domain.ValidOptionKind(kind) {
		return nil, fmt.Errorf("%w: unknown option kind %q", domain.ErrInvalidInput, kind)
	}

	set, err := s.currentSet(ctx, tenant)
	if err != nil {
		return nil, err
	}

	name := domain.NormalizeName(rawName)
	if !set.Contains(kind, name) {
		return set, nil
	}

	names := make([]string, 0, len(set.List(kind))-1)
	for _, v := range set.List(kind) {
		if v != name {
			names = append(names, v)
		}
	}

	if err := s.taxonomyRepo.ReplaceList(ctx, tenant, kind, names); err != nil {
		return nil, fmt.Errorf("failed to remove %s: %w", kind, err)
	}

	s.setList(set, kind, names)
	s.publishChange(domain.OpUpdated, classificationsCollection, string(tenant), tenant)

	return set, nil
}

// CreateSection creates a new custom section with an upper-cased title and
// an empty item list. An empty title is a validation error; nothing is
// written.
func (s *TaxonomyService) CreateSection(ctx context.Context, rawTitle string) (*domain.CustomSection, error) {
	title := strings.ToUpper(strings.TrimSpace(rawTitle))
	if title == "" {
		return nil, fmt.Errorf("section title: %w", domain.ErrEmptyName)
	}

	section := &domain.CustomSection{
		Title: title,
		Items: []domain.SectionItem{},
	}

	if err := s.sectionRepo.Create(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	s.publishChange(domain.OpCreated, sectionsCollection, section.ID, "")

	s.logger.Info().Str("sectionId", section.ID).Str("title", title).Msg("Created custom section")

	return section, nil
}

// AddSectionItem appends an item with a fresh id to the section via the
// store's atomic append. The name is stored verbatim, not normalized, and no
// uniqueness check is made against existing items. An empty name is a no-op.
func (s *TaxonomyService) AddSectionItem(ctx context.Context, sectionID, rawName string) (*domain.SectionItem, error) {
	if strings.TrimSpace(rawName) == "" {
		s.logger.Debug().Str("sectionId", sectionID).Msg("Ignoring empty section item")
		return nil, nil
	}

	item := domain.SectionItem{
		ID:   uuid.NewString(),
		Name: rawName,
	}

	if err := s.sectionRepo.PushItem(ctx, sectionID, item); err != nil {
		return nil, fmt.Errorf("failed to add section item: %w", err)
	}

	s.publishChange(domain.OpUpdated, sectionsCollection, sectionID, "")

	return &item, nil
}

// DeleteSectionItem removes one item by id, writing back the whole filtered
// list. Unlike AddSectionItem this is a read-modify-write and can lose a
// concurrent append.
func (s *TaxonomyService) DeleteSectionItem(ctx context.Context, sectionID, itemID string) error {
	section, err := s.sectionRepo.Get(ctx, sectionID)
	if err != nil {
		return fmt.Errorf("failed to get section: %w", err)
	}
	if section == nil {
		return fmt.Errorf("section %s: %w", sectionID, domain.ErrNotFound)
	}

	items := make([]domain.SectionItem, 0, len(section.Items))
	for _, it := range section.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}

	if err := s.sectionRepo.ReplaceItems(ctx, sectionID, items); err != nil {
		return fmt.Errorf("failed to delete section item: %w", err)
	}

	s.publishChange(domain.OpUpdated, sectionsCollection, sectionID, "")

	return nil
}

// DeleteSection deletes the section document outright. Product records that
// copied a value from it keep their snapshot.
func (s *TaxonomyService) DeleteSection(ctx context.Context, sectionID string) error {
	if err := s.sectionRepo.Delete(ctx, sectionID); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}

	s.publishChange(domain.OpDeleted, sectionsCollection, sectionID, "")

	s.logger.Info().Str("sectionId", sectionID).Msg("Deleted custom section")

	return nil
}

// ListSections returns all custom sections in creation order.
func (s *TaxonomyService) ListSections(ctx context.Context) ([]*domain.CustomSection, error) {
	sections, err := s.sectionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// Tenants returns the configured tenant keys.
func (s *TaxonomyService) Tenants() []domain.Tenant {
	keys := make([]domain.Tenant, 0, len(s.defaults))
	for k := range s.defaults {
		keys = append(keys, k)
	}
	return keys
}

// currentSet reads the tenant's set, substituting an empty set when the
// document does not exist yet.
func (s *TaxonomyService) currentSet(ctx context.Context, tenant domain.Tenant) (*domain.TaxonomySet, error) {
	if _, ok := s.defaults[tenant]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTenant, tenant)
	}

	set, err := s.taxonomyRepo.Get(ctx, tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to get classification: %w", err)
	}
	if set == nil {
		set = &domain.TaxonomySet{Tenant: tenant}
	}
	return set, nil
}

func (s *TaxonomyService) setList(set *domain.TaxonomySet, kind domain.OptionKind, names []string) {
	if kind == domain.OptionBrand {
		set.Brands = names
	} else {
		set.Categories = names
	}
}

func (s *TaxonomyService) publishChange(op domain.ChangeOp, collection, id string, tenant domain.Tenant) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(newChangeEvent(op, collection, id, tenant))
}

// normalizeAll normalizes every name and drops empties and duplicates,
// preserving first-seen order.
func normalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, v := range raw {
		n := domain.NormalizeName(v)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
