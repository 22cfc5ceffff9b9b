package service

import (
	"fmt"
	"net/http"
	"strings"
)

type Kind int

const (
	KindUpstreamFailure Kind = iota
	KindValidation
	KindUpstreamNotFound
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstreamNotFound:
		return "upstream_not_found"
	case KindConfiguration:
		return "configuration"
	default:
		return "upstream_failure"
	}
}

const (
	MessageLocationRequired = "Location parameter is required"
	MessageLocationNotFound = "Location not found. Please check the spelling and try again."
	MessageUnavailable      = "Weather service temporarily unavailable"
	MessageFetchFailed      = "Failed to fetch weather data. Please try again."
)

// Error is the client-facing form of a failure. Message is safe to return to callers;
// Cause is for logs only.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ClassifyError maps a failure to its client-facing status by the text of its message.
// The first matching rule wins. The location rule ignores case because the provider
// capitalizes its message ("No matching location found."); the key rule does not.
func ClassifyError(err error) *Error {
	message := err.Error()

	switch {
	case strings.Contains(strings.ToLower(message), "no matching location found"):
		return &Error{Kind: KindUpstreamNotFound, Status: http.StatusNotFound, Message: MessageLocationNotFound, Cause: err}
	case strings.Contains(message, "API key"):
		return &Error{Kind: KindConfiguration, Status: http.StatusUnauthorized, Message: MessageUnavailable, Cause: err}
	default:
		return &Error{Kind: KindUpstreamFailure, Status: http.StatusInternalServerError, Message: MessageFetchFailed, Cause: err}
	}
}
