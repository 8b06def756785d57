package genai

import "testing"

func intPtr(v int) *int { return &v }

func TestEffectiveMaxOutputTokensDefaultsAboveThinkingBudget(t *testing.T) {
	cfg := Config{ThinkingBudget: intPtr(1000)}
	if got := cfg.EffectiveMaxOutputTokens(); got != 3048 {
		t.Fatalf("EffectiveMaxOutputTokens() = %d, want 3048", got)
	}
}

func TestEffectiveMaxOutputTokensRaisesSmallExplicitBudget(t *testing.T) {
	cfg := Config{ThinkingBudget: intPtr(1000), MaxOutputTokens: 500}
	if got := cfg.EffectiveMaxOutputTokens(); got != 2024 {
		t.Fatalf("EffectiveMaxOutputTokens() = %d, want 2024", got)
	}
}

func TestEffectiveMaxOutputTokensKeepsLargeExplicitBudget(t *testing.T) {
	cfg := Config{ThinkingBudget: intPtr(1000), MaxOutputTokens: 8000}
	if got := cfg.EffectiveMaxOutputTokens(); got != 8000 {
		t.Fatalf("EffectiveMaxOutputTokens() = %d, want 8000", got)
	}
}

func TestEffectiveMaxOutputTokensWithoutThinking(t *testing.T) {
	cfg := Config{MaxOutputTokens: 256}
	if got := cfg.EffectiveMaxOutputTokens(); got != 256 {
		t.Fatalf("EffectiveMaxOutputTokens() = %d, want 256", got)
	}
	if got := (Config{}).EffectiveMaxOutputTokens(); got != 0 {
		t.Fatalf("EffectiveMaxOutputTokens() = %d, want 0 (provider default)", got)
	}
}

func TestRetriesDefaults(t *testing.T) {
	if got := (Config{}).retries(); got != 2 {
		t.Fatalf("default retries = %d, want 2", got)
	}
	if got := (Config{MaxRetries: 5}).retries(); got != 5 {
		t.Fatalf("retries = %d, want 5", got)
	}
	if got := (Config{MaxRetries: -1}).retries(); got != 0 {
		t.Fatalf("retries = %d, want 0 for negative", got)
	}
}

func TestModelImageCapable(t *testing.T) {
	if ModelReasoning.ImageCapable() || ModelVideo.ImageCapable() {
		t.Fatal("text and video models must not accept image sizing parameters")
	}
	if !ModelImage.ImageCapable() || !ModelImageHD.ImageCapable() {
		t.Fatal("both image tiers must accept image sizing parameters")
	}
}
