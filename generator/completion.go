package generator

import "encoding/json"

const (
	MockModel = "mock-generator"

	MockNote     = "Mock mode; set OPENAI_API_KEY to use a real model."
	FallbackNote = "Model did not return valid JSON; wrapping raw text."
)

type Risk string

const (
	RiskHigh    Risk = "high"
	RiskMedium  Risk = "medium"
	RiskUnknown Risk = "unknown"
)

type TestCase struct {
	Title          string   `json:"title"`
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expected_result"`
	Risk           Risk     `json:"risk"`
}

// MockCompletion is the completion produced in mock mode.
type MockCompletion struct {
	Cases []TestCase `json:"cases"`
	Note  string     `json:"note"`
}

// FallbackCompletion wraps model output that is not valid JSON.
type FallbackCompletion struct {
	Note string `json:"note"`
	Raw  string `json:"raw"`
}

// ParseCompletion returns raw unchanged as a json.RawMessage when it is valid
// JSON, otherwise a FallbackCompletion carrying the original text. It never fails.
func ParseCompletion(raw string) any {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	return FallbackCompletion{
		Note: FallbackNote,
		Raw:  raw,
	}
}
