package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"catalog-admin-core/internal/domain"
	"catalog-admin-core/internal/infrastructure/pubsub"
)

// handleEvents streams change events to the session over server-sent events.
// The subscription is scoped to the request context: closing the connection
// releases it on every exit path.
func (a *API) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	var filter *pubsub.EventFilter
	collections := strings.TrimSpace(r.URL.Query().Get("collections"))
	tenant := strings.TrimSpace(r.URL.Query().Get("tenant"))
	if collections != "" || tenant != "" {
		filter = &pubsub.EventFilter{Tenant: domain.Tenant(tenant)}
		if collections != "" {
			filter.Collections = strings.Split(collections, ",")
		}
	}

	sub := a.feed.Subscribe(r.Context(), filter)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-sub.Events:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				a.logger.Error().Err(err).Msg("Failed to marshal change event")
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
