package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion indicates the provider answered but returned no usable
// text (no choices, or a blank message).
var ErrEmptyCompletion = errors.New("empty completion")

// ErrRateLimit indicates the provider returned 429.
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down, unreachable, or
// rejected the request for a non-rate-limit reason.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider unavailable: %v", e.Err)
	}
	return "provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
