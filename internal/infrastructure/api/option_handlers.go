package api

import (
	"net/http"

	"catalog-admin-core/internal/domain"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleListOptions(w http.ResponseWriter, r *http.Request) {
	coll := domain.OptionCollection(chi.URLParam(r, "collection"))

	options, err := a.options.List(r.Context(), coll)
	if err != nil {
		a.respondError(w, err)
		return
	}

	if options == nil {
		options = []*domain.Option{}
	}
	respondJSON(w, http.StatusOK, options)
}

func (a *API) handleAddOptionListEntry(w http.ResponseWriter, r *http.Request) {
	coll := domain.OptionCollection(chi.URLParam(r, "collection"))

	var req nameRequest
	if err := decodeBody(r, &req); err != nil {
		a.respondError(w, err)
		return
	}

	option, err := a.options.Add(r.Context(), coll, req.Name)
	if err != nil {
		a.respondError(w, err)
		return
	}
	if option == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respondJSON(w, http.StatusCreated, option)
}

func (a *API) handleDeleteOptionListEntry(w http.ResponseWriter, r *http.Request) {
	coll := domain.OptionCollection(chi.URLParam(r, "collection"))

	if err := a.options.Delete(r.Context(), coll, chi.URLParam(r, "id")); err != nil {
		a.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
