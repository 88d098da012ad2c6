package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin-core/internal/domain"
)

func newProjectFixture() (*ProjectService, *fakeProjectRepo, *fakeAssetHost, *recordingPublisher) {
	projects := newFakeProjectRepo()
	assets := newFakeAssetHost()
	publisher := &recordingPublisher{}
	service := NewProjectService(projects, assets, publisher, zerolog.Nop())
	return service, projects, assets, publisher
}

func TestSaveProject(t *testing.T) {
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		service, projects, assets, _ := newProjectFixture()

		_, err := service.Save(ctx, SaveProjectInput{
			MainImageFile: &FileInput{Filename: "site.jpg", Data: []byte("jpeg")},
		})

		var missing *domain.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"title"}, missing.Fields)
		assert.Zero(t, projects.writes)
		assert.Zero(t, assets.uploadCount())
	})

	t.Run("status defaults to published", func(t *testing.T) {
		service, _, _, _ := newProjectFixture()

		project, err := service.Save(ctx, SaveProjectInput{Title: "Warehouse Retrofit"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPublished, project.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		service, projects, _, _ := newProjectFixture()

		_, err := service.Save(ctx, SaveProjectInput{Title: "Warehouse Retrofit", Status: "live"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, projects.writes)
	})

	t.Run("uploads pending files", func(t *testing.T) {
		service, _, assets, publisher := newProjectFixture()

		project, err := service.Save(ctx, SaveProjectInput{
			Title:         "Warehouse Retrofit",
			Status:        domain.StatusDraft,
			MainImageFile: &FileInput{Filename: "site.jpg", Data: []byte("jpeg")},
			LogoFile:      &FileInput{Filename: "logo.png", Data: []byte("png")},
		})
		require.NoError(t, err)

		assert.Equal(t, "https://cdn.example.com/site.jpg", project.MainImage)
		assert.Equal(t, "https://cdn.example.com/logo.png", project.Logo)
		assert.Equal(t, 2, assets.uploadCount())
		assert.Equal(t, domain.OpCreated, publisher.last().Op)
	})

	t.Run("edit keeps stored URLs", func(t *testing.T) {
		service, projects, assets, publisher := newProjectFixture()

		created, err := service.Save(ctx, SaveProjectInput{
			Title:         "Warehouse Retrofit",
			MainImageFile: &FileInput{Filename: "site.jpg", Data: []byte("jpeg")},
		})
		require.NoError(t, err)

		updated, err := service.Save(ctx, SaveProjectInput{
			ID:           created.ID,
			Title:        "Warehouse Retrofit Phase 2",
			MainImageURL: created.MainImage,
			Status:       domain.StatusArchived,
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.MainImage, updated.MainImage)
		assert.Equal(t, domain.StatusArchived, updated.Status)
		assert.Equal(t, 1, assets.uploadCount())
		assert.Equal(t, 2, projects.writes)
		assert.Equal(t, domain.OpUpdated, publisher.last().Op)
	})

	t.Run("upload failure leaves no record", func(t *testing.T) {
		service, projects, assets, _ := newProjectFixture()
		assets.failAfter = 0

		_, err := service.Save(ctx, SaveProjectInput{
			Title:         "Warehouse Retrofit",
			MainImageFile: &FileInput{Filename: "site.jpg", Data: []byte("jpeg")},
		})

		var upload *domain.UploadError
		require.ErrorAs(t, err, &upload)
		assert.Equal(t, "main image", upload.Field)
		assert.Zero(t, projects.writes)
	})
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	service, _, _, publisher := newProjectFixture()

	created, err := service.Save(ctx, SaveProjectInput{Title: "Warehouse Retrofit"})
	require.NoError(t, err)

	got, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	all, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Equal(t, domain.OpDeleted, publisher.last().Op)

	_, err = service.Get(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
