package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"studio/internal/middleware"
	"studio/internal/providers/copywriter"
)

type copyGenerateRequest struct {
	Product     string   `json:"product"`
	Description string   `json:"description"`
	Tone        string   `json:"tone"`
	Keywords    []string `json:"keywords"`
}

func (a *App) CopyGenerate(w http.ResponseWriter, r *http.Request) {
	var req copyGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Product) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "product required")
		return
	}

	result, err := a.Copy.Generate(r.Context(), copywriter.GenerateRequest{
		Product:     req.Product,
		Description: req.Description,
		Tone:        req.Tone,
		Locale:      middleware.LocaleFromContext(r.Context()),
		Keywords:    req.Keywords,
	})
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	a.json(w, http.StatusOK, result)
}
