package genai

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestNormalizePromptBlockRaisesSafety(t *testing.T) {
	resp := &geminiGenerateContentResponse{
		PromptFeedback: &geminiPromptFeedback{BlockReason: "PROHIBITED_CONTENT"},
	}
	_, err := normalize(resp)
	assertKind(t, err, KindSafetyBlocked)
}

func TestNormalizeZeroCandidates(t *testing.T) {
	result, err := normalize(&geminiGenerateContentResponse{})
	if result != nil {
		t.Fatalf("result = %+v, want nil on failure", result)
	}
	classified := assertKind(t, err, KindInvalidRequest)
	if !strings.Contains(classified.Message, "no content") {
		t.Fatalf("Message = %q", classified.Message)
	}
	if classified.Retryable() {
		t.Fatal("zero candidates is terminal, not retryable")
	}
}

func TestNormalizeFinishReasons(t *testing.T) {
	tests := []struct {
		reason   string
		wantKind Kind
		wantFin  FinishReason
	}{
		{"STOP", "", FinishStop},
		{"", "", FinishStop},
		{"MAX_TOKENS", "", FinishMaxTokens},
		{"SAFETY", KindSafetyBlocked, ""},
		{"IMAGE_SAFETY", KindSafetyBlocked, ""},
		{"RECITATION", KindSafetyBlocked, ""},
		{"MALFORMED_FUNCTION_CALL", KindInvalidRequest, ""},
	}
	for _, tt := range tests {
		resp := &geminiGenerateContentResponse{Candidates: []geminiCandidate{{
			FinishReason: tt.reason,
			Content:      geminiContent{Parts: []geminiPart{{Text: "hi"}}},
		}}}
		result, err := normalize(resp)
		if tt.wantKind != "" {
			assertKind(t, err, tt.wantKind)
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tt.reason, err)
		}
		if result.FinishReason != tt.wantFin {
			t.Errorf("%s: FinishReason = %s, want %s", tt.reason, result.FinishReason, tt.wantFin)
		}
	}
}

func TestNormalizeRecitationMessageMentionsCopyright(t *testing.T) {
	resp := &geminiGenerateContentResponse{Candidates: []geminiCandidate{{FinishReason: "RECITATION"}}}
	_, err := normalize(resp)
	classified := assertKind(t, err, KindSafetyBlocked)
	if !strings.Contains(classified.Message, "copyright") {
		t.Fatalf("Message = %q, want copyright mention", classified.Message)
	}
}

func TestNormalizeExtractsTextImageAndGrounding(t *testing.T) {
	imgData := base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})
	resp := &geminiGenerateContentResponse{Candidates: []geminiCandidate{{
		FinishReason: "STOP",
		Content: geminiContent{Parts: []geminiPart{
			{Text: "Here is "},
			{InlineData: &geminiInlineData{MimeType: "image/webp", Data: imgData}},
			{Text: "your mockup."},
		}},
		GroundingMetadata: &geminiGroundingMetadata{GroundingChunks: []geminiGroundingChunk{
			{Web: &geminiGroundingWeb{URI: "https://example.com/a", Title: "A"}},
			{},
		}},
	}}}
	result, err := normalize(resp)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if result.Text != "Here is your mockup." {
		t.Fatalf("Text = %q", result.Text)
	}
	if result.ImageDataURI != "data:image/png;base64,"+imgData {
		t.Fatalf("ImageDataURI = %q", result.ImageDataURI)
	}
	if len(result.Grounding) != 1 || result.Grounding[0].URI != "https://example.com/a" {
		t.Fatalf("Grounding = %+v", result.Grounding)
	}
}

func TestNormalizeTextOnlyResponseIsValid(t *testing.T) {
	resp := &geminiGenerateContentResponse{Candidates: []geminiCandidate{{
		Content: geminiContent{Parts: []geminiPart{{Text: "plain text"}}},
	}}}
	result, err := normalize(resp)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if result.ImageDataURI != "" {
		t.Fatalf("ImageDataURI = %q, want empty", result.ImageDataURI)
	}
}

func assertKind(t *testing.T, err error, want Kind) *APIError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a classified error of kind %s", want)
	}
	var classified *APIError
	if !errors.As(err, &classified) {
		t.Fatalf("error %v is not an *APIError", err)
	}
	if classified.Kind != want {
		t.Fatalf("Kind = %s, want %s", classified.Kind, want)
	}
	return classified
}
