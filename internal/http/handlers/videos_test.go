package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio/internal/providers/genai"
	"studio/internal/providers/video"
)

func TestVideosGenerateReturnsURI(t *testing.T) {
	fake := &fakeVideoGenerator{asset: &video.Asset{URI: "https://files.example/clip.mp4", Format: "video/mp4"}}
	app := newTestApp()
	app.Videos = fake

	body := `{"prompt":"waves at dawn","aspect_ratio":"16:9"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/videos/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.VideosGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "done" || resp["uri"] != "https://files.example/clip.mp4" {
		t.Fatalf("unexpected response %v", resp)
	}
	if fake.last.AspectRatio != "16:9" {
		t.Fatalf("aspect ratio not passed through, got %q", fake.last.AspectRatio)
	}
}

func TestVideosGenerateEmptyURIIsNoOutput(t *testing.T) {
	app := newTestApp()
	app.Videos = &fakeVideoGenerator{asset: &video.Asset{}}

	req := httptest.NewRequest(http.MethodPost, "/v1/videos/generate", strings.NewReader(`{"prompt":"x"}`))
	rec := httptest.NewRecorder()
	app.VideosGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "no_output" {
		t.Fatalf("unexpected status %q", resp["status"])
	}
}

func TestVideosGenerateRequiresPrompt(t *testing.T) {
	app := newTestApp()
	app.Videos = &fakeVideoGenerator{}

	req := httptest.NewRequest(http.MethodPost, "/v1/videos/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	app.VideosGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestVideosGenerateMapsOverloadTo502(t *testing.T) {
	app := newTestApp()
	app.Videos = &fakeVideoGenerator{err: &genai.APIError{
		Kind: genai.KindServerOverloaded, Code: 503, Message: "model overloaded",
	}}

	req := httptest.NewRequest(http.MethodPost, "/v1/videos/generate", strings.NewReader(`{"prompt":"x"}`))
	rec := httptest.NewRecorder()
	app.VideosGenerate(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
