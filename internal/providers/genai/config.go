package genai

// Model identifies a supported generation model.
type Model string

const (
	// ModelReasoning handles text analysis and structured extraction.
	ModelReasoning Model = "gemini-2.5-pro"
	// ModelImage is the fast image synthesis tier.
	ModelImage Model = "gemini-2.5-flash-image"
	// ModelImageHD is the slower, higher fidelity image tier.
	ModelImageHD Model = "gemini-3-pro-image-preview"
	// ModelVideo produces short clips through the long-running video API.
	ModelVideo Model = "veo-3.0-fast-generate-001"
)

// ImageCapable reports whether image sizing parameters apply to the model.
// Attaching them to a text model is rejected by the API.
func (m Model) ImageCapable() bool {
	return m == ModelImage || m == ModelImageHD
}

// AspectRatio constrains output framing for image and video models.
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectLandscape AspectRatio = "16:9"
	AspectPortrait  AspectRatio = "9:16"
	AspectPhoto     AspectRatio = "4:5"
	AspectWide      AspectRatio = "3:2"
)

// Resolution selects the output resolution tier for image models.
type Resolution string

const (
	Resolution1K Resolution = "1K"
	Resolution2K Resolution = "2K"
	Resolution4K Resolution = "4K"
)

const (
	defaultMaxRetries    = 2
	thinkingReserveFloor = 1024
	thinkingReserve      = 2048
)

// Config captures the abstract generation intent. The executor maps it to the
// provider request shape; zero values mean "let the provider decide".
type Config struct {
	Model       Model
	AspectRatio AspectRatio
	Resolution  Resolution

	// ThinkingBudget reserves reasoning tokens for deep-analysis models.
	// When set, MaxOutputTokens is raised so reasoning cannot starve the
	// visible output (see EffectiveMaxOutputTokens).
	ThinkingBudget  *int
	MaxOutputTokens int

	UseSearchGrounding bool
	SystemInstruction  string
	ResponseMIMEType   string

	// MaxRetries is the number of retries after the initial attempt.
	// Zero means the default (2); negative disables retries.
	MaxRetries int

	Seed        *int64
	Temperature *float64
}

// EffectiveMaxOutputTokens coordinates the output budget with the thinking
// budget. If reasoning were allowed to consume the whole budget the visible
// response would come back truncated or empty.
func (c Config) EffectiveMaxOutputTokens() int {
	if c.ThinkingBudget == nil {
		return c.MaxOutputTokens
	}
	budget := *c.ThinkingBudget
	if budget < 0 {
		budget = 0
	}
	if c.MaxOutputTokens <= 0 {
		return budget + thinkingReserve
	}
	if c.MaxOutputTokens < budget+thinkingReserveFloor {
		return budget + thinkingReserveFloor
	}
	return c.MaxOutputTokens
}

func (c Config) retries() int {
	if c.MaxRetries < 0 {
		return 0
	}
	if c.MaxRetries == 0 {
		return defaultMaxRetries
	}
	return c.MaxRetries
}

// ImagePart is one user-supplied image attached to a request.
type ImagePart struct {
	Data     []byte
	MIMEType string
}

// Request is the value object handed to Generate. It is not retained after
// the call completes.
type Request struct {
	Prompt string
	Images []ImagePart
	Config Config
}
