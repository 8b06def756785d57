package image

import (
	"context"
	"sync"

	"studio/internal/providers/genai"
)

// GeminiGenerator renders images through the shared generation client.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

// Generate fans the request out into N variations, one model call each, and
// collects whatever succeeded. Variations run concurrently; the shared client
// handles retries per call. Only when every variation fails does the first
// error propagate, so one safety block cannot sink an otherwise good batch.
func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) ([]Asset, error) {
	count := clampVariations(req.Variations)
	prompt := BuildStudioPrompt(req)

	model := genai.ModelImage
	if NormalizeQuality(string(req.Quality)) == QualityHD {
		model = genai.ModelImageHD
	}

	images := make([]genai.ImagePart, 0, len(req.Sources))
	for _, src := range req.Sources {
		if len(src.Data) == 0 {
			continue
		}
		images = append(images, genai.ImagePart{Data: src.Data, MIMEType: src.MIME})
	}

	results := make([]*Asset, count)
	errs := make([]error, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			res, err := g.client.Generate(ctx, genai.Request{
				Prompt: prompt,
				Images: images,
				Config: genai.Config{
					Model:       model,
					AspectRatio: normalizeAspectRatio(req.AspectRatio),
					Resolution:  genai.Resolution(req.Resolution),
				},
			})
			if err != nil {
				errs[slot] = err
				return
			}
			if res.ImageDataURI == "" {
				return
			}
			results[slot] = &Asset{DataURI: res.ImageDataURI, Caption: res.Text}
		}(i)
	}
	wg.Wait()

	assets := make([]Asset, 0, count)
	for _, r := range results {
		if r != nil {
			assets = append(assets, *r)
		}
	}
	if len(assets) == 0 {
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}
	return assets, nil
}

func normalizeAspectRatio(aspect string) genai.AspectRatio {
	switch aspect {
	case string(genai.AspectLandscape):
		return genai.AspectLandscape
	case string(genai.AspectPortrait):
		return genai.AspectPortrait
	case string(genai.AspectPhoto):
		return genai.AspectPhoto
	case string(genai.AspectWide):
		return genai.AspectWide
	case string(genai.AspectSquare):
		return genai.AspectSquare
	default:
		return ""
	}
}

var _ Generator = (*GeminiGenerator)(nil)
