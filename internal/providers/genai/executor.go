package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// The provider rejects requests whose text part is empty, so image-only
// requests get a neutral instruction instead.
const defaultPromptText = "Analyze input assets."

// buildPayload maps the abstract config onto the provider request shape.
// Image sizing parameters are only attached for image-capable models; the
// text models reject them.
func buildPayload(req Request) geminiGenerateContentRequest {
	parts := make([]geminiPart, 0, len(req.Images)+1)
	for _, img := range req.Images {
		mime := strings.TrimSpace(img.MIMEType)
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		}})
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = defaultPromptText
	}
	parts = append(parts, geminiPart{Text: prompt})

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}

	cfg := req.Config
	if sys := strings.TrimSpace(cfg.SystemInstruction); sys != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: sys}}}
	}
	if cfg.UseSearchGrounding {
		payload.Tools = []geminiTool{{GoogleSearch: &geminiGoogleSearch{}}}
	}

	gen := &geminiGenerationConfig{
		Temperature:      cfg.Temperature,
		Seed:             cfg.Seed,
		MaxOutputTokens:  cfg.EffectiveMaxOutputTokens(),
		ResponseMimeType: cfg.ResponseMIMEType,
	}
	if cfg.ThinkingBudget != nil {
		gen.ThinkingConfig = &geminiThinkingConfig{ThinkingBudget: cfg.ThinkingBudget}
	}
	if cfg.Model.ImageCapable() && (cfg.AspectRatio != "" || cfg.Resolution != "") {
		gen.ImageConfig = &geminiImageConfig{
			AspectRatio: string(cfg.AspectRatio),
			ImageSize:   string(cfg.Resolution),
		}
	}
	if *gen != (geminiGenerationConfig{}) {
		payload.GenerationConfig = gen
	}
	return payload
}

// execute issues exactly one generateContent attempt. It never sleeps,
// retries, or classifies; failures surface to the orchestrator untouched
// (as a *StatusError for non-2xx responses).
func (c *Client) execute(ctx context.Context, apiKey string, req Request) (*geminiGenerateContentResponse, error) {
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(string(req.Config.Model)))
	var response geminiGenerateContentResponse
	if err := c.postJSON(ctx, apiKey, path, buildPayload(req), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *Client) postJSON(ctx context.Context, apiKey, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", apiKey)
	return c.do(httpReq, out)
}

func (c *Client) getJSON(ctx context.Context, apiKey, path string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", apiKey)
	return c.do(httpReq, out)
}

func (c *Client) do(httpReq *http.Request, out any) error {
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
			return &StatusError{Code: resp.StatusCode, Body: apiErr.Error.Message}
		}
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}
