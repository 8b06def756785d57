package genai

import "fmt"

// Kind identifies one member of the closed error taxonomy. The HTTP layer
// pattern-matches on these values, so adding a kind is a breaking change for
// every consumer.
type Kind string

const (
	KindRateLimited          Kind = "rate_limited"
	KindAuthenticationFailed Kind = "authentication_failed"
	KindSafetyBlocked        Kind = "safety_blocked"
	KindModelUnavailable     Kind = "model_unavailable"
	KindServerOverloaded     Kind = "server_overloaded"
	KindNetworkUnreachable   Kind = "network_unreachable"
	KindInvalidRequest       Kind = "invalid_request"
	KindUnknown              Kind = "unknown"
)

// Reason refines a kind where the provider distinguishes failure causes that
// need different user guidance.
type Reason string

const (
	ReasonInvalidKey   Reason = "invalid_key"
	ReasonBilling      Reason = "billing"
	ReasonRegion       Reason = "region"
	ReasonAccessDenied Reason = "access_denied"
	ReasonImage        Reason = "image"
)

// APIError is the classified form of any upstream failure. It is constructed
// once by Classify (or directly by the normalizer) and never re-classified.
type APIError struct {
	Kind    Kind
	Code    int
	Reason  Reason
	Message string
}

func (e *APIError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Retryable reports whether a retry has any chance of succeeding. Auth
// failures, safety blocks and malformed requests repeat deterministically and
// must never consume the retry budget.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindAuthenticationFailed, KindSafetyBlocked:
		return false
	case KindInvalidRequest:
		return !(e.Code >= 400 && e.Code < 500)
	default:
		return true
	}
}

// Remediation returns the user guidance associated with the error kind. The
// UI renders these verbatim next to the failure.
func (e *APIError) Remediation() string {
	switch e.Kind {
	case KindRateLimited:
		return "Rate limit reached. Wait a moment and try again."
	case KindAuthenticationFailed:
		switch e.Reason {
		case ReasonBilling:
			return "Billing is not active for this API key. Check your billing settings."
		case ReasonRegion:
			return "The API is not available in your region."
		default:
			return "Check that your API key is valid and has access to this model."
		}
	case KindSafetyBlocked:
		return "The request was blocked by safety filters. Simplify the prompt or remove restricted content."
	case KindModelUnavailable:
		return "The selected model is unavailable. Try a different model."
	case KindServerOverloaded:
		return "The model is overloaded right now. Try again shortly."
	case KindNetworkUnreachable:
		return "Could not reach the API. Check your network connection."
	case KindInvalidRequest:
		if e.Reason == ReasonImage {
			return "One of the input images was rejected. Try a smaller or different image."
		}
		return "The request was rejected. Adjust the prompt or options and try again."
	default:
		return "Something went wrong. Try again, and simplify the request if it keeps failing."
	}
}

// StatusError carries a non-2xx provider response so the classifier can match
// on the numeric status as well as the body text. The executor produces it;
// nothing else should.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini status %d: %s", e.Code, e.Body)
}
