package copywriter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"studio/internal/providers/genai"
)

// GenerateRequest describes the marketing copy the caller wants.
type GenerateRequest struct {
	Product     string
	Description string
	Tone        string
	Locale      string
	Keywords    []string
}

// Result is one finished copy block.
type Result struct {
	Headline string   `json:"headline"`
	Tagline  string   `json:"tagline"`
	Body     string   `json:"body"`
	Keywords []string `json:"keywords"`
	Hashtags []string `json:"hashtags"`
}

// Generator is the contract the HTTP layer programs against.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Result, error)
}

// GeminiWriter produces copy through the shared generation client using the
// structured JSON response path.
type GeminiWriter struct {
	client *genai.Client
}

func NewGeminiWriter(client *genai.Client) *GeminiWriter {
	return &GeminiWriter{client: client}
}

// copyThinkingBudget reserves reasoning tokens so the model plans the copy
// before writing it. Output budget coordination happens in the client.
const copyThinkingBudget = 1024

func (w *GeminiWriter) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	budget := copyThinkingBudget
	payload, err := genai.GenerateStructured[Result](ctx, w.client, genai.Request{
		Prompt: buildCopyPrompt(req),
		Config: genai.Config{
			Model:          genai.ModelReasoning,
			ThinkingBudget: &budget,
		},
	})
	if err != nil {
		return nil, err
	}

	titler := cases.Title(language.Und)
	payload.Headline = titler.String(coalesce(payload.Headline, req.Product))
	payload.Tagline = strings.TrimSpace(payload.Tagline)
	payload.Body = strings.TrimSpace(payload.Body)
	payload.Keywords = normalizeKeywords(payload.Keywords, strings.ToLower(strings.TrimSpace(req.Product)))
	payload.Hashtags = normalizeHashtags(payload.Hashtags)
	return &payload, nil
}

func buildCopyPrompt(req GenerateRequest) string {
	locale := coalesce(req.Locale, "en")
	tone := coalesce(req.Tone, "confident and friendly")
	sb := &strings.Builder{}
	sb.WriteString("You are a marketing copywriter. Respond strictly with JSON matching this schema: ")
	sb.WriteString(`{"headline":string,"tagline":string,"body":string,"keywords":string[],"hashtags":string[]}`)
	fmt.Fprintf(sb, ". Write in locale '%s' with a %s tone.", locale, tone)
	fmt.Fprintf(sb, " Product: %q.", strings.TrimSpace(req.Product))
	if desc := strings.TrimSpace(req.Description); desc != "" {
		fmt.Fprintf(sb, " Details: %s.", desc)
	}
	if len(req.Keywords) > 0 {
		fmt.Fprintf(sb, " Work in these keywords where natural: %s.", strings.Join(req.Keywords, ", "))
	}
	sb.WriteString(" Keep the body under 80 words and make the hashtags lowercase without spaces.")
	return sb.String()
}

func normalizeKeywords(keywords []string, fallback string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		lower := strings.ToLower(kw)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		result = append(result, kw)
	}
	if len(result) == 0 && fallback != "" {
		result = []string{fallback}
	}
	return result
}

func normalizeHashtags(tags []string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		tag = strings.TrimPrefix(tag, "#")
		tag = strings.ReplaceAll(tag, " ", "")
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, "#"+tag)
	}
	return result
}

func coalesce(values ...string) string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

var _ Generator = (*GeminiWriter)(nil)
