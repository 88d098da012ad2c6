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

const projectsCollection = "projects"

// SaveProjectInput is the project form state. In edit mode (ID set) the image
// URLs carry the previously stored values and are kept unless a new file is
// attached.
type SaveProjectInput struct {
	ID            string
	Title         string
	Details       string
	Website       string
	Status        domain.ProjectStatus
	MainImageFile *FileInput
	MainImageURL  string
	LogoFile      *FileInput
	LogoURL       string
}

// ProjectService manages portfolio projects: validate, upload pending
// images, write the record once.
type ProjectService struct {
	projectRepo ports.ProjectRepository
	assetHost   ports.AssetHost
	publisher   ports.ChangePublisher
	logger      zerolog.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(
	projectRepo ports.ProjectRepository,
	assetHost ports.AssetHost,
	publisher ports.ChangePublisher,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		assetHost:   assetHost,
		publisher:   publisher,
		logger:      logger,
	}
}

// Save creates a new project or updates an existing one. A missing title
// fails before any upload or store call.
func (s *ProjectService) Save(ctx context.Context, input SaveProjectInput) (*domain.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &domain.MissingFieldError{Fields: []string{"title"}}
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPublished
	}
	if !domain.ValidProjectStatus(status) {
		return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrInvalidInput, status)
	}

	mainURL := input.MainImageURL
	if input.MainImageFile != nil {
		url, err := s.assetHost.Upload(ctx, input.MainImageFile.Filename, bytes.NewReader(input.MainImageFile.Data))
		if err != nil {
			return nil, &domain.UploadError{Field: "main image", Err: err}
		}
		mainURL = url
	}

	logoURL := input.LogoURL
	if input.LogoFile != nil {
		url, err := s.assetHost.Upload(ctx, input.LogoFile.Filename, bytes.NewReader(input.LogoFile.Data))
		if err != nil {
			return nil, &domain.UploadError{Field: "logo", Err: err}
		}
		logoURL = url
	}

	project := &domain.Project{
		ID:        input.ID,
		Title:     input.Title,
		Details:   input.Details,
		Website:   input.Website,
		MainImage: mainURL,
		Logo:      logoURL,
		Status:    status,
	}

	op := domain.OpCreated
	if input.ID == "" {
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return nil, fmt.Errorf("failed to save project: %w", err)
		}
	} else {
		op = domain.OpUpdated
		if err := s.projectRepo.Update(ctx, input.ID, project); err != nil {
			return nil, fmt.Errorf("failed to save project: %w", err)
		}
	}

	s.publish(op, project.ID)

	s.logger.Info().
		Str("projectId", project.ID).
		Str("title", project.Title).
		Str("op", string(op)).
		Msg("Saved project")

	return project, nil
}

// Get retrieves one project.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projectRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return project, nil
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Delete removes a project by id.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.publish(domain.OpDeleted, id)

	return nil
}

func (s *ProjectService) publish(op domain.ChangeOp, id string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(newChangeEvent(op, projectsCollection, id, ""))
}
