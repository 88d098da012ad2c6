package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"catalog-admin-core/internal/application"
	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/infrastructure/metrics"

	"github.com/go-chi/chi/v5"
)

type projectRequest struct {
	Title        string `json:"title"`
	Details      string `json:"details"`
	Website      string `json:"website"`
	Status       string `json:"status"`
	MainImageURL string `json:"main_image_url"`
	LogoURL      string `json:"logo_url"`
}

func (req *projectRequest) toInput() application.SaveProjectInput {
	return application.SaveProjectInput{
		Title:        req.Title,
		Details:      req.Details,
		Website:      req.Website,
		Status:       domain.ProjectStatus(req.Status),
		MainImageURL: req.MainImageURL,
		LogoURL:      req.LogoURL,
	}
}

// handleSaveProject serves both create (POST /projects) and edit
// (PUT /projects/{id}). Multipart bodies carry a "payload" JSON field plus
// pending files under "mainImage" and "logo".
func (a *API) handleSaveProject(w http.ResponseWriter, r *http.Request) {
	input, err := a.decodeProjectInput(r)
	if err != nil {
		a.respondError(w, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	project, err := a.projects.Save(r.Context(), input)
	if err != nil {
		metrics.PublishTotal.WithLabelValues("project", "failure").Inc()
		a.respondError(w, err)
		return
	}
	metrics.PublishTotal.WithLabelValues("project", "success").Inc()

	status := http.StatusCreated
	if input.ID != "" {
		status = http.StatusOK
	}
	respondJSON(w, status, project)
}

func (a *API) decodeProjectInput(r *http.Request) (application.SaveProjectInput, error) {
	var req projectRequest

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := decodeBody(r, &req); err != nil {
			return application.SaveProjectInput{}, err
		}
		return req.toInput(), nil
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return application.SaveProjectInput{}, errBadRequest
	}
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &req); err != nil {
		return application.SaveProjectInput{}, errBadRequest
	}

	input := req.toInput()

	mainFile, err := formFile(r, "mainImage")
	if err != nil {
		return application.SaveProjectInput{}, err
	}
	input.MainImageFile = mainFile

	logoFile, err := formFile(r, "logo")
	if err != nil {
		return application.SaveProjectInput{}, err
	}
	input.LogoFile = logoFile

	return input, nil
}

func (a *API) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := a.projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

func (a *API) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.List(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}

	if projects == nil {
		projects = []*domain.Project{}
	}
	respondJSON(w, http.StatusOK, projects)
}

func (a *API) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := a.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
