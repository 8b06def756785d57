package image

import (
	"context"
	"strings"
)

// Quality selects the image model tier.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

// maxVariations bounds how many renditions one request may fan out to.
const maxVariations = 4

// Source is an uploaded reference image used as conditioning input.
type Source struct {
	Data []byte
	MIME string
}

// GenerateRequest describes one normalized image generation call.
type GenerateRequest struct {
	Prompt      string
	Style       string
	Background  string
	Notes       string
	Locale      string
	AspectRatio string
	Resolution  string
	Quality     Quality
	Variations  int
	Sources     []Source
}

// Asset is a generated rendition. DataURI is a base64 PNG data URI ready for
// an <img> tag; Caption carries any text the model produced alongside it.
type Asset struct {
	DataURI string
	Caption string
}

// Generator is the contract the HTTP layer programs against.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Asset, error)
}

// NormalizeQuality sanitizes free-form user input into a supported tier.
func NormalizeQuality(q string) Quality {
	if strings.EqualFold(strings.TrimSpace(q), string(QualityHD)) {
		return QualityHD
	}
	return QualityStandard
}

func clampVariations(n int) int {
	if n < 1 {
		return 1
	}
	if n > maxVariations {
		return maxVariations
	}
	return n
}
