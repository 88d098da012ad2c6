package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin-core/internal/domain"
)

func newPublishFixture() (*PublishService, *fakeProductRepo, *fakeAssetHost, *recordingPublisher) {
	products := newFakeProductRepo()
	assets := newFakeAssetHost()
	publisher := &recordingPublisher{}
	service := NewPublishService(products, assets, publisher, zerolog.Nop())
	return service, products, assets, publisher
}

func validProductInput() PublishProductInput {
	return PublishProductInput{
		Name:          "LED Bulb 9W",
		MainImageFile: &FileInput{Filename: "bulb.jpg", Data: []byte("jpeg")},
		RegularPrice:  "249.50",
	}
}

func TestPublishProduct_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing name and image", func(t *testing.T) {
		service, products, assets, publisher := newPublishFixture()

		_, err := service.PublishProduct(ctx, PublishProductInput{})

		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"name", "main image"}, missing.Fields)
		assert.Zero(t, products.writes, "validation failure must not write")
		assert.Zero(t, assets.uploadCount(), "validation failure must not upload")
		assert.Zero(t, publisher.count())
	})

	t.Run("missing image only", func(t *testing.T) {
		service, products, _, _ := newPublishFixture()

		_, err := service.PublishProduct(ctx, PublishProductInput{Name: "LED Bulb"})

		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"main image"}, missing.Fields)
		assert.Zero(t, products.writes)
	})

	t.Run("existing URL satisfies the image requirement", func(t *testing.T) {
		service, _, assets, _ := newPublishFixture()

		product, err := service.PublishProduct(ctx, PublishProductInput{
			Name:         "LED Bulb",
			MainImageURL: "https://cdn.example.com/existing.jpg",
		})
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/existing.jpg", product.MainImage)
		assert.Zero(t, assets.uploadCount(), "kept URL must not re-upload")
	})
}

func TestPublishProduct_Create(t *testing.T) {
	ctx := context.Background()
	service, products, assets, publisher := newPublishFixture()

	input := validProductInput()
	input.GalleryImageFile = &FileInput{Filename: "gallery.jpg", Data: []byte("jpeg")}
	input.SalePrice = "199"
	input.Sections = []SectionSelection{
		{SectionID: "s1", Title: "COLORS", Selected: []string{"red", "blue"}},
		{SectionID: "s2", Title: "WATTAGE", Selected: nil},
	}

	product, err := service.PublishProduct(ctx, input)
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "https://cdn.example.com/bulb.jpg", product.MainImage)
	assert.Equal(t, "https://cdn.example.com/gallery.jpg", product.GalleryImage)
	assert.Equal(t, 249.50, product.RegularPrice)
	assert.Equal(t, 199.0, product.SalePrice)
	assert.Equal(t, 2, assets.uploadCount())
	assert.Equal(t, 1, products.writes)

	require.Len(t, product.DynamicSpecs, 1, "untouched sections are skipped")
	assert.Equal(t, "COLORS", product.DynamicSpecs[0].Title)
	assert.Equal(t, "red", product.DynamicSpecs[0].Value, "only the first selection survives")

	require.Equal(t, 1, publisher.count())
	assert.Equal(t, domain.OpCreated, publisher.last().Op)
	assert.Equal(t, productsCollection, publisher.last().Collection)
}

func TestPublishProduct_Defaults(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newPublishFixture()

	product, err := service.PublishProduct(ctx, validProductInput())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCategory, product.Category)
	assert.Equal(t, domain.DefaultBrand, product.Brand)
	assert.Equal(t, domain.DefaultWebsite, product.Website)
}

func TestPublishProduct_PermissivePrice(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newPublishFixture()

	input := validProductInput()
	input.RegularPrice = "abc"
	input.SalePrice = ""

	product, err := service.PublishProduct(ctx, input)
	require.NoError(t, err)

	assert.Zero(t, product.RegularPrice, "unparseable price becomes zero, not an error")
	assert.Zero(t, product.SalePrice)
}

func TestPublishProduct_UploadFailure(t *testing.T) {
	// Main image uploads first; when the gallery upload fails, the record is
	// not written and the already-uploaded main image is left orphaned on the
	// asset host.
	ctx := context.Background()
	service, products, assets, publisher := newPublishFixture()
	assets.failAfter = 1

	input := validProductInput()
	input.GalleryImageFile = &FileInput{Filename: "gallery.jpg", Data: []byte("jpeg")}

	_, err := service.PublishProduct(ctx, input)

	var upload *domain.UploadError
	require.ErrorAs(t, err, &upload)
	assert.Equal(t, "gallery image", upload.Field)
	assert.Zero(t, products.writes, "failed publish must not write")
	assert.Equal(t, 1, assets.uploadCount(), "earlier upload is orphaned")
	assert.Zero(t, publisher.count())
}

func TestPublishProduct_Edit(t *testing.T) {
	ctx := context.Background()
	service, products, assets, publisher := newPublishFixture()

	created, err := service.PublishProduct(ctx, validProductInput())
	require.NoError(t, err)

	input := validProductInput()
	input.ID = created.ID
	input.Name = "LED Bulb 12W"
	input.MainImageFile = nil
	input.MainImageURL = created.MainImage

	updated, err := service.PublishProduct(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "LED Bulb 12W", updated.Name)
	assert.Equal(t, created.MainImage, updated.MainImage)
	assert.Equal(t, 1, assets.uploadCount(), "edit with kept URL does not upload")
	assert.Equal(t, 2, products.writes)
	assert.Equal(t, domain.OpUpdated, publisher.last().Op)

	stored, err := service.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "LED Bulb 12W", stored.Name)
}

func TestPublishProduct_EditMissing(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newPublishFixture()

	input := validProductInput()
	input.ID = "no-such-id"

	_, err := service.PublishProduct(ctx, input)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()
	service, _, _, _ := newPublishFixture()

	_, err := service.GetProduct(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	service, _, _, publisher := newPublishFixture()

	created, err := service.PublishProduct(ctx, validProductInput())
	require.NoError(t, err)

	require.NoError(t, service.DeleteProduct(ctx, created.ID))

	_, err = service.GetProduct(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.OpDeleted, publisher.last().Op)
}
