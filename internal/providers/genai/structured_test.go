package genai

import (
	"context"
	"net/http"
	"testing"
)

type copyPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

func TestGenerateStructuredRequestsJSONAndParses(t *testing.T) {
	var capturedMime string
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		var req geminiGenerateContentRequest
		decodeRequestBody(t, r, &req)
		if req.GenerationConfig != nil {
			capturedMime = req.GenerationConfig.ResponseMimeType
		}
		return jsonResponse(200, textCandidateBody("```json\n{\"title\":\"Neon Tee\",\"description\":\"Bold.\",\"keywords\":[\"neon\"]}\n```")), nil
	})

	got, err := GenerateStructured[copyPayload](context.Background(), client, Request{
		Prompt: "write copy",
		Config: Config{Model: ModelReasoning},
	})
	if err != nil {
		t.Fatalf("GenerateStructured: %v", err)
	}
	if capturedMime != "application/json" {
		t.Fatalf("responseMimeType = %q, want application/json", capturedMime)
	}
	if got.Title != "Neon Tee" || len(got.Keywords) != 1 {
		t.Fatalf("decoded = %+v", got)
	}
}

func TestGenerateStructuredMalformedJSONIsClassified(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(200, textCandidateBody("{not json")), nil
	})
	_, err := GenerateStructured[copyPayload](context.Background(), client, Request{Prompt: "p"})
	assertKind(t, err, KindUnknown)
}

func TestGenerateStructuredEmptyTextIsClassified(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(200, textCandidateBody("   ")), nil
	})
	_, err := GenerateStructured[copyPayload](context.Background(), client, Request{Prompt: "p"})
	if Classify(err).Kind == "" {
		t.Fatal("expected a classified error")
	}
}

func TestGenerateStructuredPropagatesGenerateErrors(t *testing.T) {
	client := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(401, map[string]any{"error": map[string]any{"code": 401, "message": "API key not valid"}}), nil
	})
	_, err := GenerateStructured[copyPayload](context.Background(), client, Request{Prompt: "p"})
	assertKind(t, err, KindAuthenticationFailed)
}

func TestExtractJSONFragment(t *testing.T) {
	tests := []struct{ in, want string }{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
		{"preamble {\"a\":1} trailer", `{"a":1}`},
		{"[1,2]", "[1,2]"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := extractJSONFragment(tt.in); got != tt.want {
			t.Errorf("extractJSONFragment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
