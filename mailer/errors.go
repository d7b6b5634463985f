package mailer

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("email service not configured")
	ErrFailedToSend  = errors.New("failed to send email")
)

// ProviderError is what the provider said went wrong. It is serialized into
// the endpoint's error body uninterpreted.
type ProviderError struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Name, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *ProviderError) Unwrap() error { return ErrFailedToSend }
