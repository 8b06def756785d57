package image

import (
	"fmt"
	"strings"
)

// BuildStudioPrompt converts the structured request into a natural language
// instruction tuned for text-to-image models. It layers creative direction,
// reference handling, and locale guidance in a stable order so repeated calls
// with the same input produce the same prompt.
func BuildStudioPrompt(req GenerateRequest) string {
	var lines []string

	subject := strings.TrimSpace(req.Prompt)
	if subject != "" {
		lines = append(lines, subject)
	} else {
		lines = append(lines, "Create a polished, production-ready image.")
	}

	var direction []string
	if style := strings.TrimSpace(req.Style); style != "" {
		direction = append(direction, fmt.Sprintf("visual style %q", style))
	}
	if bg := strings.TrimSpace(req.Background); bg != "" {
		direction = append(direction, fmt.Sprintf("background %q", bg))
	}
	if len(direction) > 0 {
		lines = append(lines, "Visual direction: "+strings.Join(direction, ", ")+".")
	}

	if note := strings.TrimSpace(req.Notes); note != "" {
		lines = append(lines, fmt.Sprintf("Creative guidance: %s.", note))
	}

	if len(req.Sources) > 0 {
		lines = append(lines, "Use the attached reference images as the main subject. Preserve their shape, texture, and any logos without warping.")
	}

	if NormalizeQuality(string(req.Quality)) == QualityHD {
		lines = append(lines, "Render with high-fidelity lighting, sharp focus, and clean post-processing.")
	}

	if locale := strings.TrimSpace(req.Locale); locale != "" {
		lines = append(lines, fmt.Sprintf("Use %s language for any on-image typography or signage.", strings.ToUpper(locale)))
	}

	return strings.Join(lines, "\n")
}
