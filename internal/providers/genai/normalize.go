package genai

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// FinishReason describes why generation stopped, normalized from the
// provider's free-form enum.
type FinishReason string

const (
	FinishStop      FinishReason = "stop"
	FinishMaxTokens FinishReason = "max_tokens"
	FinishAbnormal  FinishReason = "abnormal"
)

// GroundingSource is one web citation attached to a grounded response.
type GroundingSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Result is the normalized outcome of a successful generation. Text-only
// responses are valid; ImageDataURI is empty when no inline image came back.
type Result struct {
	Text         string
	ImageDataURI string
	Grounding    []GroundingSource
	FinishReason FinishReason
}

// normalize validates a raw response and extracts a clean result, or returns
// a classified error. Partial results never escape: a blocked or empty
// response yields an error and nothing else.
func normalize(resp *geminiGenerateContentResponse) (*Result, error) {
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, &APIError{
			Kind:    KindSafetyBlocked,
			Code:    400,
			Message: fmt.Sprintf("prompt was blocked by safety filters (%s)", resp.PromptFeedback.BlockReason),
		}
	}
	if len(resp.Candidates) == 0 {
		// Terminal by policy: an empty candidate list is treated as a bad
		// request, not a transient glitch, so the orchestrator will not
		// spend its retry budget on it.
		return nil, &APIError{Kind: KindInvalidRequest, Code: 400, Message: "model returned no content"}
	}

	candidate := resp.Candidates[0]
	finish := FinishStop
	switch reason := strings.ToUpper(strings.TrimSpace(candidate.FinishReason)); reason {
	case "", "STOP":
		finish = FinishStop
	case "MAX_TOKENS":
		finish = FinishMaxTokens
	case "SAFETY", "IMAGE_SAFETY":
		return nil, &APIError{Kind: KindSafetyBlocked, Code: 400, Message: "response was blocked by safety filters"}
	case "RECITATION":
		return nil, &APIError{Kind: KindSafetyBlocked, Code: 400, Message: "response was blocked because it matched copyrighted material"}
	default:
		return nil, &APIError{
			Kind:    KindInvalidRequest,
			Code:    400,
			Message: fmt.Sprintf("generation stopped abnormally (%s)", reason),
		}
	}

	result := &Result{FinishReason: finish}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
		if result.ImageDataURI == "" && part.InlineData != nil && part.InlineData.Data != "" {
			result.ImageDataURI = toPNGDataURI(part.InlineData.Data)
		}
	}
	result.Text = text.String()

	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil {
				continue
			}
			result.Grounding = append(result.Grounding, GroundingSource{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}

	return result, nil
}

// toPNGDataURI re-encodes inline image payloads as a PNG data URI, the only
// image shape the studio frontend consumes. Invalid base64 is dropped rather
// than propagated.
func toPNGDataURI(encoded string) string {
	if _, err := base64.StdEncoding.DecodeString(encoded); err != nil {
		return ""
	}
	return "data:image/png;base64," + encoded
}
