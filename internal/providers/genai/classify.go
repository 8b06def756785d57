package genai

import (
	"errors"
	"strings"
)

// Classify maps an arbitrary failure (transport error, provider status
// response, plain error string) onto the closed taxonomy. It is idempotent:
// an already classified error is returned unchanged.
//
// Precedence matters. A 403 whose body mentions billing must resolve to the
// billing sub-reason, never to a generic permission failure, and quota text
// must win over any later match.
func Classify(err error) *APIError {
	if err == nil {
		return nil
	}

	var classified *APIError
	if errors.As(err, &classified) {
		return classified
	}

	status := 0
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Code
	}

	msg := strings.ToLower(err.Error())
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(msg, s) {
				return true
			}
		}
		return false
	}

	switch {
	case status == 429 || has("quota", "exhausted"):
		return &APIError{Kind: KindRateLimited, Code: 429, Message: "rate limit or quota exceeded"}

	case status == 401 || has("api key", "unauthenticated"):
		return &APIError{Kind: KindAuthenticationFailed, Code: 401, Reason: ReasonInvalidKey, Message: "API key is missing or invalid"}

	case status == 403 || has("permission denied"):
		reason := ReasonAccessDenied
		message := "permission denied for this model or project"
		switch {
		case has("billing"):
			reason = ReasonBilling
			message = "billing is not active for this API key"
		case has("region", "location is not supported"):
			reason = ReasonRegion
			message = "the API is not available in this region"
		}
		return &APIError{Kind: KindAuthenticationFailed, Code: 403, Reason: reason, Message: message}

	case has("safety", "blocked", "harmful"):
		return &APIError{Kind: KindSafetyBlocked, Code: 400, Message: "request was blocked by safety filters"}

	case status == 404 || has("not found"):
		return &APIError{Kind: KindModelUnavailable, Code: 404, Message: "model not found or unavailable"}

	case status == 500 || status == 502 || status == 503 || status == 504 || has("overloaded", "busy", "capacity"):
		code := status
		if code == 0 {
			code = 503
		}
		return &APIError{Kind: KindServerOverloaded, Code: code, Message: "the model is overloaded or temporarily unavailable"}

	case has("fetch", "network", "connection"):
		return &APIError{Kind: KindNetworkUnreachable, Message: "network error while contacting the API"}

	case status == 400 || has("invalid argument"):
		reason := Reason("")
		message := "the request was rejected as invalid"
		if has("image") {
			reason = ReasonImage
			message = "an input image was rejected as invalid"
		}
		return &APIError{Kind: KindInvalidRequest, Code: 400, Reason: reason, Message: message}
	}

	code := status
	if code == 0 {
		code = 500
	}
	return &APIError{Kind: KindUnknown, Code: code, Message: err.Error()}
}
