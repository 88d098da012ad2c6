package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-admin-core/internal/application"
	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/infrastructure/metrics"
	"catalog-admin-core/internal/infrastructure/pubsub"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// API exposes the admin CRUD surface over REST. Every route maps 1:1 to an
// application service operation; live updates are streamed from the change
// feed over server-sent events.
type API struct {
	taxonomy *application.TaxonomyService
	options  *application.OptionListService
	products *application.PublishService
	projects *application.ProjectService
	admin    *application.AdminService
	feed     *pubsub.ChangeFeed
	logger   zerolog.Logger
}

// New creates the API handler set.
func New(
	taxonomy *application.TaxonomyService,
	options *application.OptionListService,
	products *application.PublishService,
	projects *application.ProjectService,
	admin *application.AdminService,
	feed *pubsub.ChangeFeed,
	logger zerolog.Logger,
) *API {
	return &API{
		taxonomy: taxonomy,
		options:  options,
		products: products,
		projects: projects,
		admin:    admin,
		feed:     feed,
		logger:   logger,
	}
}

// Routes mounts all admin routes on r.
func (a *API) Routes(r chi.Router) {
	r.Route("/classifications/{tenant}", func(r chi.Router) {
		r.Get("/", a.handleGetClassification)
		r.Post("/seed", a.handleSeedClassification)
		r.Post("/{kind}", a.handleAddOption)
		r.Delete("/{kind}/{name}", a.handleRemoveOption)
	})

	r.Route("/sections", func(r chi.Router) {
		r.Get("/", a.handleListSections)
		r.Post("/", a.handleCreateSection)
		r.Delete("/{id}", a.handleDeleteSection)
		r.Post("/{id}/items", a.handleAddSectionItem)
		r.Delete("/{id}/items/{itemId}", a.handleDeleteSectionItem)
	})

	r.Route("/options/{collection}", func(r chi.Router) {
		r.Get("/", a.handleListOptions)
		r.Post("/", a.handleAddOptionListEntry)
		r.Delete("/{id}", a.handleDeleteOptionListEntry)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", a.handleListProducts)
		r.Post("/", a.handlePublishProduct)
		r.Get("/{id}", a.handleGetProduct)
		r.Put("/{id}", a.handlePublishProduct)
		r.Delete("/{id}", a.handleDeleteProduct)
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", a.handleListProjects)
		r.Post("/", a.handleSaveProject)
		r.Get("/{id}", a.handleGetProject)
		r.Put("/{id}", a.handleSaveProject)
		r.Delete("/{id}", a.handleDeleteProject)
	})

	r.Get("/events", a.handleEvents)
	r.Post("/auth/register", a.handleRegister)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError maps error kinds to HTTP statuses. Bodies carry a
// human-readable string only; there is no structured error code.
func (a *API) respondError(w http.ResponseWriter, err error) {
	var missing *domain.MissingFieldError
	var upload *domain.UploadError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &missing),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.As(err, &upload):
		status = http.StatusBadGateway
		metrics.UploadFailures.Inc()
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownTenant):
		status = http.StatusNotFound
	default:
		metrics.StoreWriteFailures.Inc()
	}

	if status >= http.StatusInternalServerError {
		a.logger.Error().Err(err).Msg("Request failed")
	}

	respondJSON(w, status, map[string]string{"error": err.Error()})
}

var errBadRequest = errors.New("invalid request body")

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errBadRequest
	}
	return nil
}
