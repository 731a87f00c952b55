package openai

import "fmt"

// ConfigError reports a missing or unusable provider configuration.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// HTTPError is returned when the provider answers with a non-2xx status.
// Body carries the response text for diagnostics.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("OpenAI error %d: %s", e.StatusCode, e.Body)
}

// ProtocolError is returned when a 2xx response does not have the expected shape.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return e.Reason
}
