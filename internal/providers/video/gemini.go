package video

import (
	"context"

	"studio/internal/providers/genai"
)

// GenerateRequest describes one clip generation job.
type GenerateRequest struct {
	Prompt      string
	AspectRatio string
	Image       *Source
}

// Source is an optional still image the clip should animate from.
type Source struct {
	Data []byte
	MIME string
}

// Asset is a finished clip. URI points at provider-hosted storage; an empty
// URI with a nil error means the job completed without producing output.
type Asset struct {
	URI    string
	Format string
}

// Generator is the contract the HTTP layer programs against.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Asset, error)
}

// GeminiGenerator renders clips through the shared generation client's
// long-running video API.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (*Asset, error) {
	videoReq := genai.VideoRequest{
		Prompt:      req.Prompt,
		AspectRatio: genai.AspectRatio(req.AspectRatio),
	}
	if req.Image != nil && len(req.Image.Data) > 0 {
		videoReq.Image = &genai.ImagePart{Data: req.Image.Data, MIMEType: req.Image.MIME}
	}
	uri, err := g.client.GenerateVideo(ctx, videoReq)
	if err != nil {
		return nil, err
	}
	return &Asset{URI: uri, Format: "video/mp4"}, nil
}

var _ Generator = (*GeminiGenerator)(nil)
