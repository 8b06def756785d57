package genai

import (
	"context"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"studio/internal/infra"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	defaultBackoffBase   = time.Second
	defaultBackoffJitter = 500 * time.Millisecond
)

// CredentialSource resolves the provider API key. It is invoked fresh on
// every attempt so key rotation is picked up mid-call and no attempt runs
// with a stale key.
type CredentialSource func(ctx context.Context) (string, error)

// Options controls how the client is configured.
type Options struct {
	// APIKey is a fixed key. Ignored when Credentials is set.
	APIKey      string
	Credentials CredentialSource
	BaseURL     string
	HTTPClient  *http.Client
	Logger      *infra.Logger
}

// Client is the single entry point for synchronous generation. One instance
// is constructed at process start and shared; it holds no per-call state, so
// any number of Generate calls may be in flight concurrently.
type Client struct {
	creds      CredentialSource
	baseURL    string
	httpClient *http.Client
	logger     *infra.Logger

	// Overridable in tests.
	backoffBase   time.Duration
	backoffJitter time.Duration
	pollInterval  time.Duration
	maxPolls      int
}

// NewClient constructs a client with sane defaults. Callers may provide a nil
// HTTP client; a reusable one with a generation-sized timeout is created.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	creds := opts.Credentials
	if creds == nil {
		key := strings.TrimSpace(opts.APIKey)
		creds = func(context.Context) (string, error) { return key, nil }
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		creds:         creds,
		baseURL:       baseURL,
		httpClient:    httpClient,
		logger:        logger,
		backoffBase:   defaultBackoffBase,
		backoffJitter: defaultBackoffJitter,
		pollInterval:  videoPollInterval,
		maxPolls:      videoMaxPolls,
	}
}

// Generate runs one orchestrated generation call: resolve credentials, issue
// a single attempt, normalize the response, and retry transient failures
// with exponential backoff. Non-retryable failures (bad key, safety block,
// malformed request) short-circuit immediately; they will never succeed by
// retrying and would only burn multi-second backoff delays.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	retries := req.Config.retries()
	var lastErr *APIError

	for attempt := 0; attempt <= retries; attempt++ {
		apiKey, err := c.creds(ctx)
		if err != nil {
			return nil, Classify(err)
		}
		if strings.TrimSpace(apiKey) == "" {
			return nil, &APIError{
				Kind:    KindAuthenticationFailed,
				Code:    401,
				Reason:  ReasonInvalidKey,
				Message: "no API key is configured",
			}
		}

		resp, err := c.execute(ctx, apiKey, req)
		if err == nil {
			var result *Result
			result, err = normalize(resp)
			if err == nil {
				return result, nil
			}
		}

		apiErr := Classify(err)
		if !apiErr.Retryable() {
			return nil, apiErr
		}
		lastErr = apiErr

		if attempt < retries {
			c.logger.Warn().
				Str("model", string(req.Config.Model)).
				Str("kind", string(apiErr.Kind)).
				Int("attempt", attempt+1).
				Msg("genai: attempt failed, backing off")
			if err := c.backoff(ctx, attempt); err != nil {
				return nil, Classify(err)
			}
		}
	}

	return nil, lastErr
}

// backoff sleeps 2^attempt seconds plus up to 500ms of jitter so concurrent
// callers do not retry in lockstep. Cancellation aborts the sleep promptly.
func (c *Client) backoff(ctx context.Context, attempt int) error {
	delay := (1 << attempt) * c.backoffBase
	if c.backoffJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(c.backoffJitter)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
