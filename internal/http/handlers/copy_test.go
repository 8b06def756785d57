package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio/internal/middleware"
	"studio/internal/providers/copywriter"
)

func TestCopyGenerateReturnsResult(t *testing.T) {
	fake := &fakeCopyGenerator{result: &copywriter.Result{
		Headline: "Spring Roast",
		Tagline:  "wake up bright",
		Keywords: []string{"coffee"},
	}}
	app := newTestApp()
	app.Copy = fake

	body := `{"product":"coffee","tone":"warm"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/copy/generate", strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), middleware.LocaleKey, "de"))
	rec := httptest.NewRecorder()
	app.CopyGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp copywriter.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Headline != "Spring Roast" {
		t.Fatalf("unexpected headline %q", resp.Headline)
	}
	if fake.last.Locale != "de" {
		t.Fatalf("expected request locale from context, got %q", fake.last.Locale)
	}
}

func TestCopyGenerateRequiresProduct(t *testing.T) {
	app := newTestApp()
	app.Copy = &fakeCopyGenerator{}

	req := httptest.NewRequest(http.MethodPost, "/v1/copy/generate", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	app.CopyGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
