package genai

// Wire shapes for the generateContent and predictLongRunning endpoints.
// Upstream JSON is loosely structured and evolves; everything is parsed into
// these optional-field records at the boundary and never propagated raw.

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiTool struct {
	GoogleSearch *geminiGoogleSearch `json:"googleSearch,omitempty"`
}

type geminiGoogleSearch struct{}

type geminiThinkingConfig struct {
	ThinkingBudget *int `json:"thinkingBudget,omitempty"`
}

type geminiImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      *float64              `json:"temperature,omitempty"`
	Seed             *int64                `json:"seed,omitempty"`
	MaxOutputTokens  int                   `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string                `json:"responseMimeType,omitempty"`
	ThinkingConfig   *geminiThinkingConfig `json:"thinkingConfig,omitempty"`
	ImageConfig      *geminiImageConfig    `json:"imageConfig,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiGroundingWeb struct {
	URI   string `json:"uri,omitempty"`
	Title string `json:"title,omitempty"`
}

type geminiGroundingChunk struct {
	Web *geminiGroundingWeb `json:"web,omitempty"`
}

type geminiGroundingMetadata struct {
	GroundingChunks []geminiGroundingChunk `json:"groundingChunks,omitempty"`
}

type geminiCandidate struct {
	Content           geminiContent            `json:"content"`
	FinishReason      string                   `json:"finishReason,omitempty"`
	GroundingMetadata *geminiGroundingMetadata `json:"groundingMetadata,omitempty"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Status  string `json:"status,omitempty"`
	} `json:"error"`
}

// Long-running video generation.

type geminiVideoInstance struct {
	Prompt string            `json:"prompt"`
	Image  *geminiInlineData `json:"image,omitempty"`
}

type geminiVideoParameters struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type geminiVideoRequest struct {
	Instances  []geminiVideoInstance  `json:"instances"`
	Parameters *geminiVideoParameters `json:"parameters,omitempty"`
}

type geminiOperationError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type geminiGeneratedVideo struct {
	URI string `json:"uri,omitempty"`
}

type geminiGeneratedSample struct {
	Video *geminiGeneratedVideo `json:"video,omitempty"`
}

type geminiVideoResult struct {
	GeneratedSamples []geminiGeneratedSample `json:"generatedSamples,omitempty"`
}

type geminiOperationResponse struct {
	GenerateVideoResponse *geminiVideoResult `json:"generateVideoResponse,omitempty"`
}

type geminiOperation struct {
	Name     string                   `json:"name,omitempty"`
	Done     bool                     `json:"done,omitempty"`
	Error    *geminiOperationError    `json:"error,omitempty"`
	Response *geminiOperationResponse `json:"response,omitempty"`
}
