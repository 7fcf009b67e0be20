package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"xdimension/internal/services"
)

// ItemsProxyHandler exposes the third-party item catalog through the local
// API without persisting anything.
type ItemsProxyHandler struct {
	Client *services.UpstreamClient
}

func (h *ItemsProxyHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Client.ListItems(r.Context())
	if err != nil {
		log.Printf("ListItems upstream error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	h.respond(w, resp)
}

func (h *ItemsProxyHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Client.SearchItems(r.Context(), req.Keyword)
	if err != nil {
		log.Printf("SearchItems upstream error: %v", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to search items")
		return
	}
	h.respond(w, resp)
}

func (h *ItemsProxyHandler) respond(w http.ResponseWriter, resp services.UpstreamResponse) {
	if !resp.IsJSON {
		// Upstream returned something like an HTML error page; pass it
		// through verbatim with the original status code.
		if resp.ContentType != "" {
			w.Header().Set("Content-Type", resp.ContentType)
		}
		w.WriteHeader(resp.StatusCode)
		w.Write(resp.Raw)
		return
	}
	writeJSON(w, resp.StatusCode, resp.Items)
}
