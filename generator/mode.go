package generator

// Mode selects how test cases are produced. It is fixed when the service is
// constructed and never changes per request.
type Mode string

const (
	ModeMock     Mode = "mock"
	ModeProvider Mode = "provider"
)

// ModeFromAPIKey returns ModeProvider for any non-empty credential. The key
// format is not validated.
func ModeFromAPIKey(apiKey string) Mode {
	if apiKey == "" {
		return ModeMock
	}
	return ModeProvider
}

// Label is the human readable form reported by the HTTP API, e.g. "mock mode".
func (m Mode) Label() string {
	return string(m) + " mode"
}
