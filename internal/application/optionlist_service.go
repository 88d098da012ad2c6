package application

import (
	"context"
	"fmt"
	"strings"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

// OptionListService manages the flat quick-add option collections shown on
// the product form sidebar (categories, brands, websites). These are global
// lists of individual documents, distinct from the per-tenant classification
// sets managed by TaxonomyService.
type OptionListService struct {
	optionRepo ports.OptionRepository
	publisher  ports.ChangePublisher
	logger     zerolog.Logger
}

// NewOptionListService creates a new option list service.
func NewOptionListService(
	optionRepo ports.OptionRepository,
	publisher ports.ChangePublisher,
	logger zerolog.Logger,
) *OptionListService {
	return &OptionListService{
		optionRepo: optionRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Add inserts a trimmed name into the collection. An empty name is a no-op
// with no store write; nil is returned for both the option and the error.
func (s *OptionListService) Add(ctx context.Context, coll domain.OptionCollection, rawName string) (*domain.Option, error) {
	if !domain.ValidOptionCollection(coll) {
		return nil, fmt.Errorf("%w: unknown option collection %q", domain.ErrInvalidInput, coll)
	}

	name := strings.TrimSpace(rawName)
	if name == "" {
		s.logger.Debug().Str("collection", string(coll)).Msg("Ignoring empty option name")
		return nil, nil
	}

	option, err := s.optionRepo.Add(ctx, coll, name)
	if err != nil {
		return nil, fmt.Errorf("failed to add option: %w", err)
	}

	s.publish(domain.OpCreated, coll, option.ID)

	return option, nil
}

// Delete removes an option by id.
func (s *OptionListService) Delete(ctx context.Context, coll domain.OptionCollection, id string) error {
	if !domain.ValidOptionCollection(coll) {
		return fmt.Errorf("%w: unknown option collection %q", domain.ErrInvalidInput, coll)
	}

	if err := s.optionRepo.Delete(ctx, coll, id); err != nil {
		return fmt.Errorf("failed to delete option: %w", err)
	}

	s.publish(domain.OpDeleted, coll, id)

	return nil
}

// List returns the collection's options in creation order.
func (s *OptionListService) List(ctx context.Context, coll domain.OptionCollection) ([]*domain.Option, error) {
	if !domain.ValidOptionCollection(coll) {
		return nil, fmt.Errorf("%w: unknown option collection %q", domain.ErrInvalidInput, coll)
	}

	options, err := s.optionRepo.List(ctx, coll)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}
	return options, nil
}

func (s *OptionListService) publish(op domain.ChangeOp, coll domain.OptionCollection, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(newChangeEvent(op, string(coll), id, ""))
}
