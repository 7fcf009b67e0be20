package handlers

import (
	"encoding/json"
	"net/http"
)

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// principalFromContext extracts the authenticated user id placed into the
// request context by the JWT middleware.
func principalFromContext(r *http.Request) (string, bool) {
	principal, ok := r.Context().Value("user_id").(string)
	if !ok || principal == "" {
		return "", false
	}
	return principal, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeJSONError keeps client-facing messages coarse; raw database or
// upstream error text never reaches the response body.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
