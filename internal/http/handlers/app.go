package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"studio/internal/infra"
	"studio/internal/infra/credentials"
	"studio/internal/middleware"
	"studio/internal/providers/copywriter"
	"studio/internal/providers/genai"
	"studio/internal/providers/image"
	"studio/internal/providers/video"
	"studio/internal/storage"
)

// App holds the handler dependencies. One instance is built at startup and
// shared across all requests.
type App struct {
	Config      *infra.Config
	Logger      *infra.Logger
	SQL         infra.SQLExecutor
	Credentials *credentials.Store
	Images      image.Generator
	Videos      video.Generator
	Copy        copywriter.Generator
	Store       *storage.FileStore
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]any{
			"code":    errCode,
			"message": message,
		},
	})
}

// apiError renders a classified generation failure. The kind, remediation
// hint, and retryability travel to the frontend so it can decide what to show
// and whether a retry button makes sense.
func (a *App) apiError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *genai.APIError
	if !errors.As(err, &apiErr) {
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Msg("unclassified generation failure")
		a.error(w, http.StatusInternalServerError, "internal", "generation failed")
		return
	}
	a.Logger.Warn().
		Str("kind", string(apiErr.Kind)).
		Int("upstream_code", apiErr.Code).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("generation failed")
	a.json(w, statusForKind(apiErr), map[string]any{
		"error": map[string]any{
			"kind":        string(apiErr.Kind),
			"reason":      string(apiErr.Reason),
			"message":     apiErr.Message,
			"remediation": apiErr.Remediation(),
			"retryable":   apiErr.Retryable(),
		},
	})
}

func statusForKind(err *genai.APIError) int {
	switch err.Kind {
	case genai.KindRateLimited:
		return http.StatusTooManyRequests
	case genai.KindAuthenticationFailed:
		if err.Code == http.StatusForbidden {
			return http.StatusForbidden
		}
		return http.StatusUnauthorized
	case genai.KindSafetyBlocked:
		return http.StatusUnprocessableEntity
	case genai.KindModelUnavailable:
		return http.StatusNotFound
	case genai.KindServerOverloaded, genai.KindNetworkUnreachable:
		return http.StatusBadGateway
	case genai.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
