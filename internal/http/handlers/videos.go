package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"studio/internal/providers/video"
)

type videoGenerateRequest struct {
	Prompt      string              `json:"prompt"`
	AspectRatio string              `json:"aspect_ratio"`
	Image       *imageSourcePayload `json:"image"`
}

// VideosGenerate runs a clip job synchronously. The underlying provider polls
// the long-running operation, so this handler can hold the connection for
// minutes; write timeouts are sized accordingly.
func (a *App) VideosGenerate(w http.ResponseWriter, r *http.Request) {
	var req videoGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt required")
		return
	}

	genReq := video.GenerateRequest{
		Prompt:      req.Prompt,
		AspectRatio: req.AspectRatio,
	}
	if req.Image != nil && req.Image.Data != "" {
		data, err := base64.StdEncoding.DecodeString(req.Image.Data)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "image must be base64 encoded")
			return
		}
		genReq.Image = &video.Source{Data: data, MIME: req.Image.MIME}
	}

	asset, err := a.Videos.Generate(r.Context(), genReq)
	if err != nil {
		a.apiError(w, r, err)
		return
	}
	if asset.URI == "" {
		a.json(w, http.StatusOK, map[string]any{"status": "no_output"})
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"status": "done",
		"uri":    asset.URI,
		"format": asset.Format,
	})
}
