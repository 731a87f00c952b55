package dto

const (
	ErrTaskRequired       = "task is required as a string"
	ErrGenerationFailed   = "generation_failed"
	ErrScenarioListFailed = "scenario_list_failed"
	ErrNotFound           = "not_found"
	ErrInternal           = "internal_error"
)

// GenerateRequest is the body of POST /api/generate. A non-string task or
// context fails JSON binding.
type GenerateRequest struct {
	Task    string `json:"task" binding:"required"`
	Context string `json:"context"`
}

type GenerateResponse struct {
	RunId      string `json:"runId"`
	Model      string `json:"model"`
	LatencyMs  int64  `json:"latency_ms"`
	Completion any    `json:"completion"`
	Mode       string `json:"mode"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
