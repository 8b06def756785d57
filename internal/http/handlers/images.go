package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"studio/internal/middleware"
	"studio/internal/providers/image"
	"studio/pkg/zip"
)

type imageSourcePayload struct {
	Data string `json:"data"`
	MIME string `json:"mime"`
}

type imageGenerateRequest struct {
	Prompt      string               `json:"prompt"`
	Style       string               `json:"style"`
	Background  string               `json:"background"`
	Notes       string               `json:"notes"`
	AspectRatio string               `json:"aspect_ratio"`
	Resolution  string               `json:"resolution"`
	Quality     string               `json:"quality"`
	Variations  int                  `json:"variations"`
	Sources     []imageSourcePayload `json:"sources"`
}

type imageAssetResponse struct {
	DataURI    string `json:"data_uri"`
	Caption    string `json:"caption,omitempty"`
	StorageKey string `json:"storage_key,omitempty"`
	URL        string `json:"url,omitempty"`
}

func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req imageGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" && len(req.Sources) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "prompt or sources required")
		return
	}

	sources := make([]image.Source, 0, len(req.Sources))
	for _, src := range req.Sources {
		data, err := base64.StdEncoding.DecodeString(src.Data)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "sources must be base64 encoded")
			return
		}
		sources = append(sources, image.Source{Data: data, MIME: src.MIME})
	}

	assets, err := a.Images.Generate(r.Context(), image.GenerateRequest{
		Prompt:      req.Prompt,
		Style:       req.Style,
		Background:  req.Background,
		Notes:       req.Notes,
		Locale:      middleware.LocaleFromContext(r.Context()),
		AspectRatio: req.AspectRatio,
		Resolution:  req.Resolution,
		Quality:     image.NormalizeQuality(req.Quality),
		Variations:  req.Variations,
		Sources:     sources,
	})
	if err != nil {
		a.apiError(w, r, err)
		return
	}

	items := make([]imageAssetResponse, 0, len(assets))
	for _, asset := range assets {
		item := imageAssetResponse{DataURI: asset.DataURI, Caption: asset.Caption}
		if key, err := a.persistDataURI(r, asset.DataURI); err == nil && key != "" {
			item.StorageKey = key
			item.URL = strings.TrimRight(a.Config.StorageBaseURL, "/") + "/" + key
		}
		items = append(items, item)
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// persistDataURI writes the decoded image to local storage. Persistence is
// best effort; the data URI in the response is the source of truth for the
// frontend either way.
func (a *App) persistDataURI(r *http.Request, dataURI string) (string, error) {
	if a.Store == nil {
		return "", nil
	}
	payload, ok := strings.CutPrefix(dataURI, "data:image/png;base64,")
	if !ok {
		return "", fmt.Errorf("unsupported data uri")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("images/%s/%s.png", time.Now().UTC().Format("2006-01-02"), uuid.NewString())
	return a.Store.Write(r.Context(), key, data)
}

type imageExportRequest struct {
	Assets []struct {
		Filename string `json:"filename"`
		DataURI  string `json:"data_uri"`
	} `json:"assets"`
}

// ImagesExport bundles previously generated renditions into a zip download so
// the frontend can offer a one-click export.
func (a *App) ImagesExport(w http.ResponseWriter, r *http.Request) {
	var req imageExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if len(req.Assets) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "assets required")
		return
	}

	var assets []zip.Asset
	for i, item := range req.Assets {
		payload, ok := strings.CutPrefix(item.DataURI, "data:image/png;base64,")
		if !ok {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			continue
		}
		name := strings.TrimSpace(item.Filename)
		if name == "" {
			name = fmt.Sprintf("image-%d.png", i+1)
		}
		assets = append(assets, zip.Asset{Filename: name, MIME: "image/png", Data: data})
	}
	if len(assets) == 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "no decodable assets")
		return
	}

	archive := zip.ArchiveAssets(assets)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename=studio-export.zip`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
