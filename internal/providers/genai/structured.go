package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// GenerateStructured asks the model for a JSON-shaped response and parses it
// into T. Models still wrap JSON in markdown fences on occasion, so the text
// is stripped before unmarshalling. Parse failures surface as classified
// errors; callers never see a raw json error.
func GenerateStructured[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T
	req.Config.ResponseMIMEType = "application/json"

	result, err := c.Generate(ctx, req)
	if err != nil {
		return zero, err
	}

	cleaned := extractJSONFragment(result.Text)
	if cleaned == "" {
		return zero, Classify(errors.New("model returned an empty structured payload"))
	}
	var decoded T
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return zero, Classify(fmt.Errorf("parse structured response: %w", err))
	}
	return decoded, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
