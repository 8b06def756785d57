package handlers

import (
	"encoding/json"
	"net/http"
)

// GeminiStatus reports whether a provider key is configured, without ever
// returning the key itself.
func (a *App) GeminiStatus(w http.ResponseWriter, r *http.Request) {
	key, err := a.Credentials.GeminiAPIKey(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to read integration")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"configured": key != ""})
}

type geminiKeyRequest struct {
	APIKey string `json:"api_key"`
}

// GeminiSetKey stores or rotates the provider key. The generation client
// resolves the key per attempt, so rotation takes effect without a restart.
func (a *App) GeminiSetKey(w http.ResponseWriter, r *http.Request) {
	var req geminiKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Credentials.SetGeminiAPIKey(r.Context(), req.APIKey); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "saved"})
}
