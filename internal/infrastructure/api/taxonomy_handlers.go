package api

import (
	"net/http"

	"catalog-admin-core/internal/domain"

	"github.com/go-chi/chi/v5"
)

type nameRequest struct {
	Name string `json:"name"`
}

type titleRequest struct {
	Title string `json:"title"`
}

func (a *API) handleGetClassification(w http.ResponseWriter, r *http.Request) {
	tenant := domain.Tenant(chi.URLParam(r, "tenant"))

	set, err := a.taxonomy.Get(r.Context(), tenant)
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, set)
}

func (a *API) handleSeedClassification(w http.ResponseWriter, r *http.Request) {
	tenant := domain.Tenant(chi.URLParam(r, "tenant"))

	set, err := a.taxonomy.EnsureSeeded(r.Context(), tenant)
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, set)
}

func (a *API) handleAddOption(w http.ResponseWriter, r *http.Request) {
	tenant := domain.Tenant(chi.URLParam(r, "tenant"))
	kind := domain.OptionKind(chi.URLParam(r, "kind"))

	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		a.respondError(w, err)
		return
	}

	set, err := a.taxonomy.AddOption(r.Context(), tenant, kind, req.Name)
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, set)
}

func (a *API) handleRemoveOption(w http.ResponseWriter, r *http.Request) {
	tenant := domain.Tenant(chi.URLParam(r, "tenant"))
	kind := domain.OptionKind(chi.URLParam(r, "kind"))
	name := chi.URLParam(r, "name")

	set, err := a.taxonomy.RemoveOption(r.Context(), tenant, kind, name)
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, set)
}

func (a *API) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := a.taxonomy.ListSections(r.Context())
	if err != nil {
		a.respondError(w, err)
		return
	}

	if sections == nil {
		sections = []*domain.CustomSection{}
	}
	respondJSON(w, http.StatusOK, sections)
}

func (a *API) handleCreateSection(w http.ResponseWriter, r *http.Request) {
	var req titleRequest
	if err := decodeBody(r, &req); err != nil {
		a.respondError(w, err)
		return
	}

	section, err := a.taxonomy.CreateSection(r.Context(), req.Title)
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, section)
}

func (a *API) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := a.taxonomy.DeleteSection(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAddSectionItem(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		a.respondError(w, err)
		return
	}

	item, err := a.taxonomy.AddSectionItem(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		a.respondError(w, err)
		return
	}
	if item == nil {
		// Empty name: accepted and ignored.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

func (a *API) handleDeleteSectionItem(w http.ResponseWriter, r *http.Request) {
	err := a.taxonomy.DeleteSectionItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemId"))
	if err != nil {
		a.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
