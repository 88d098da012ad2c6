package api

import (
	"net/http"

	"catalog-admin-core/internal/application"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url"`
	Provider string `json:"provider"`
}

// handleRegister upserts a staff account and returns it with its admin key.
func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		a.respondError(w, err)
		return
	}

	user, err := a.admin.Register(r.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Provider: req.Provider,
	})
	if err != nil {
		a.respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
