package copywriter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"studio/internal/providers/genai"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestWriter(rt roundTripFunc) *GeminiWriter {
	client := genai.NewClient(genai.Options{
		APIKey:     "test-key",
		HTTPClient: &http.Client{Transport: rt},
	})
	return NewGeminiWriter(client)
}

func copyResponseBody(text string) io.ReadCloser {
	encoded, _ := json.Marshal(text)
	body := fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%s}]},"finishReason":"STOP"}]}`, encoded)
	return io.NopCloser(strings.NewReader(body))
}

func TestGenerateParsesFencedPayload(t *testing.T) {
	var captured struct {
		GenerationConfig struct {
			ResponseMimeType string `json:"responseMimeType"`
			ThinkingConfig   *struct {
				ThinkingBudget int `json:"thinkingBudget"`
			} `json:"thinkingConfig"`
		} `json:"generationConfig"`
	}
	writer := newTestWriter(func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		text := "```json\n{\"headline\":\"spring roast\",\"tagline\":\"wake up bright\",\"body\":\"Small-batch beans.\",\"keywords\":[\"Coffee\",\"coffee\",\"roast\"],\"hashtags\":[\"#Spring Roast\",\"coffee\"]}\n```"
		return &http.Response{StatusCode: http.StatusOK, Body: copyResponseBody(text)}, nil
	})

	result, err := writer.Generate(context.Background(), GenerateRequest{Product: "coffee"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if result.Headline != "Spring Roast" {
		t.Fatalf("expected title-cased headline, got %q", result.Headline)
	}
	if want := []string{"Coffee", "roast"}; !reflect.DeepEqual(result.Keywords, want) {
		t.Fatalf("expected deduplicated keywords %v, got %v", want, result.Keywords)
	}
	if want := []string{"#springroast", "#coffee"}; !reflect.DeepEqual(result.Hashtags, want) {
		t.Fatalf("expected normalized hashtags %v, got %v", want, result.Hashtags)
	}
	if captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("expected JSON response mime type, got %q", captured.GenerationConfig.ResponseMimeType)
	}
	if captured.GenerationConfig.ThinkingConfig == nil || captured.GenerationConfig.ThinkingConfig.ThinkingBudget != copyThinkingBudget {
		t.Fatalf("expected thinking budget %d, got %+v", copyThinkingBudget, captured.GenerationConfig.ThinkingConfig)
	}
}

func TestGenerateFallsBackToProductKeyword(t *testing.T) {
	writer := newTestWriter(func(r *http.Request) (*http.Response, error) {
		text := `{"headline":"","tagline":"t","body":"b","keywords":[],"hashtags":[]}`
		return &http.Response{StatusCode: http.StatusOK, Body: copyResponseBody(text)}, nil
	})

	result, err := writer.Generate(context.Background(), GenerateRequest{Product: "Herbal Tea"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if result.Headline != "Herbal Tea" {
		t.Fatalf("expected product fallback headline, got %q", result.Headline)
	}
	if want := []string{"herbal tea"}; !reflect.DeepEqual(result.Keywords, want) {
		t.Fatalf("expected fallback keywords %v, got %v", want, result.Keywords)
	}
}

func TestGenerateClassifiesMalformedPayload(t *testing.T) {
	writer := newTestWriter(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK, Body: copyResponseBody("{not json")}, nil
	})

	_, err := writer.Generate(context.Background(), GenerateRequest{Product: "x"})
	var apiErr *genai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
}

func TestBuildCopyPromptIncludesInputs(t *testing.T) {
	prompt := buildCopyPrompt(GenerateRequest{
		Product:     "sourdough",
		Description: "baked daily",
		Tone:        "warm",
		Locale:      "de",
		Keywords:    []string{"artisan", "local"},
	})
	for _, want := range []string{`"sourdough"`, "baked daily", "warm", "'de'", "artisan, local"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
