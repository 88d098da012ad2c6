package application

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/ports"

	"github.com/rs/zerolog"
)

const productsCollection = "products"

// FileInput is a local file attached to the form but not yet uploaded.
type FileInput struct {
	Filename string
	Data     []byte
}

// SectionSelection carries the values an admin ticked within one custom
// section. Only the first selection survives into the record; the form's
// single-select behavior collapses anything further.
type SectionSelection struct {
	SectionID string
	Title     string
	Selected  []string
}

// PublishProductInput is the form state handed to PublishProduct. Image
// fields come in two flavors: a pending local file, or the URL kept from a
// previous publish when editing.
type PublishProductInput struct {
	ID               string // set in edit mode
	Name             string
	ShortDescription string
	SKU              string
	RegularPrice     string // raw form value, parsed permissively
	SalePrice        string
	TechnicalSpecs   []domain.SpecBlock
	Sections         []SectionSelection
	MainImageFile    *FileInput
	MainImageURL     string
	GalleryImageFile *FileInput
	GalleryImageURL  string
	Category         string
	Brand            string
	Website          string
}

// PublishService validates form state, resolves pending files to durable
// asset URLs and writes the denormalized product record in a single store
// call. Nothing is mutated before that write, so a failed publish needs no
// rollback; assets uploaded before the failure are orphaned, not cleaned up.
type PublishService struct {
	productRepo ports.ProductRepository
	assetHost   ports.AssetHost
	publisher   ports.ChangePublisher
	logger      zerolog.Logger
}

// NewPublishService creates a new publish service.
func NewPublishService(
	productRepo ports.ProductRepository,
	assetHost ports.AssetHost,
	publisher ports.ChangePublisher,
	logger zerolog.Logger,
) *PublishService {
	return &PublishService{
		productRepo: productRepo,
		assetHost:   assetHost,
		publisher:   publisher,
		logger:      logger,
	}
}

// PublishProduct assembles and writes one product record. Validation runs
// before any network call; a validation failure leaves zero writes behind.
func (s *PublishService) PublishProduct(ctx context.Context, input PublishProductInput) (*domain.Product, error) {
	var missing []string
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if input.MainImageFile == nil && input.MainImageURL == "" {
		missing = append(missing, "main image")
	}
	if len(missing) > 0 {
		return nil, &domain.MissingFieldError{Fields: missing}
	}

	mainURL, err := s.resolveAsset(ctx, "main image", input.MainImageFile, input.MainImageURL)
	if err != nil {
		return nil, err
	}
	galleryURL, err := s.resolveAsset(ctx, "gallery image", input.GalleryImageFile, input.GalleryImageURL)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:               input.ID,
		Name:             input.Name,
		ShortDescription: input.ShortDescription,
		SKU:              input.SKU,
		RegularPrice:     domain.ParsePrice(input.RegularPrice),
		SalePrice:        domain.ParsePrice(input.SalePrice),
		TechnicalSpecs:   input.TechnicalSpecs,
		DynamicSpecs:     dynamicSpecs(input.Sections),
		MainImage:        mainURL,
		GalleryImage:     galleryURL,
		Category:         orDefault(input.Category, domain.DefaultCategory),
		Brand:            orDefault(input.Brand, domain.DefaultBrand),
		Website:          orDefault(input.Website, domain.DefaultWebsite),
	}

	op := domain.OpCreated
	if input.ID == "" {
		if err := s.productRepo.Create(ctx, product); err != nil {
			return nil, fmt.Errorf("failed to publish product: %w", err)
		}
	} else {
		op = domain.OpUpdated
		if err := s.productRepo.Update(ctx, input.ID, product); err != nil {
			return nil, fmt.Errorf("failed to publish product: %w", err)
		}
	}

	s.publish(op, product.ID)

	s.logger.Info().
		Str("productId", product.ID).
		Str("name", product.Name).
		Str("op", string(op)).
		Msg("Published product")

	return product, nil
}

// GetProduct retrieves one product.
func (s *PublishService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.productRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

// ListProducts returns all products, newest first.
func (s *PublishService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product by id.
func (s *PublishService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.publish(domain.OpDeleted, id)

	return nil
}

// resolveAsset uploads a pending file or passes through the existing URL.
func (s *PublishService) resolveAsset(ctx context.Context, field string, file *FileInput, existingURL string) (string, error) {
	if file == nil {
		return existingURL, nil
	}

	url, err := s.assetHost.Upload(ctx, file.Filename, bytes.NewReader(file.Data))
	if err != nil {
		return "", &domain.UploadError{Field: field, Err: err}
	}
	return url, nil
}

func (s *PublishService) publish(op domain.ChangeOp, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(newChangeEvent(op, productsCollection, id, ""))
}

// dynamicSpecs takes the first selected value of every touched section.
func dynamicSpecs(sections []SectionSelection) []domain.DynamicSpec {
	specs := make([]domain.DynamicSpec, 0, len(sections))
	for _, sec := range sections {
		if len(sec.Selected) == 0 {
			continue
		}
		specs = append(specs, domain.DynamicSpec{Title: sec.Title, Value: sec.Selected[0]})
	}
	return specs
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
