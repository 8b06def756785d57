package genai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	videoPollInterval = 5 * time.Second
	videoMaxPolls     = 60
)

// VideoRequest describes one video generation job.
type VideoRequest struct {
	Prompt      string
	Image       *ImagePart
	Model       Model
	AspectRatio AspectRatio
}

// GenerateVideo submits a long-running video job and polls it to completion.
// It returns the provider URI of the finished clip, or "" when the job
// completed without producing one (a valid no-output outcome, not a failure).
// The poll loop is bounded at 60 iterations of 5 seconds; exceeding the bound
// raises a classified timeout error. Job submission failures are classified
// and raised immediately, never retried here.
func (c *Client) GenerateVideo(ctx context.Context, req VideoRequest) (string, error) {
	apiKey, err := c.creds(ctx)
	if err != nil {
		return "", Classify(err)
	}
	if strings.TrimSpace(apiKey) == "" {
		return "", &APIError{
			Kind:    KindAuthenticationFailed,
			Code:    401,
			Reason:  ReasonInvalidKey,
			Message: "no API key is configured",
		}
	}

	model := req.Model
	if model == "" {
		model = ModelVideo
	}

	instance := geminiVideoInstance{Prompt: strings.TrimSpace(req.Prompt)}
	if req.Image != nil && len(req.Image.Data) > 0 {
		mime := strings.TrimSpace(req.Image.MIMEType)
		if mime == "" {
			mime = "image/png"
		}
		instance.Image = &geminiInlineData{
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(req.Image.Data),
		}
	}
	payload := geminiVideoRequest{Instances: []geminiVideoInstance{instance}}
	if req.AspectRatio != "" {
		payload.Parameters = &geminiVideoParameters{AspectRatio: string(req.AspectRatio)}
	}

	var op geminiOperation
	path := fmt.Sprintf("/models/%s:predictLongRunning", url.PathEscape(string(model)))
	if err := c.postJSON(ctx, apiKey, path, payload, &op); err != nil {
		return "", Classify(err)
	}

	opName := op.Name
	for polls := 0; !op.Done; polls++ {
		if polls >= c.maxPolls {
			return "", &APIError{
				Kind:    KindUnknown,
				Code:    504,
				Message: "video generation timed out before the job completed",
			}
		}
		if err := c.sleep(ctx, c.pollInterval); err != nil {
			return "", Classify(err)
		}
		if opName == "" {
			return "", Classify(errors.New("video operation has no name"))
		}
		var refreshed geminiOperation
		if err := c.getJSON(ctx, apiKey, "/"+strings.TrimLeft(opName, "/"), &refreshed); err != nil {
			return "", Classify(err)
		}
		op = refreshed
		if op.Name != "" {
			opName = op.Name
		}
	}

	if op.Error != nil {
		return "", Classify(&StatusError{Code: op.Error.Code, Body: op.Error.Message})
	}

	c.logger.Debug().Str("model", string(model)).Msg("genai: video job completed")
	return videoResultURI(op), nil
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func videoResultURI(op geminiOperation) string {
	if op.Response == nil || op.Response.GenerateVideoResponse == nil {
		return ""
	}
	for _, sample := range op.Response.GenerateVideoResponse.GeneratedSamples {
		if sample.Video != nil && sample.Video.URI != "" {
			return sample.Video.URI
		}
	}
	return ""
}
