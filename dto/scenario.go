package dto

// ScenarioEntry is a scenario as listed by GET /api/scenarios.
type ScenarioEntry struct {
	Name    string `json:"name"`
	Task    string `json:"task"`
	Context string `json:"context"`
	Notes   string `json:"notes"`
}

type ScenarioListResponse struct {
	Scenarios []ScenarioEntry `json:"scenarios"`
}
