package model

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// RunRecord is the outcome of one batch scenario run. Field order is the
// order written to the JSON report.
type RunRecord struct {
	Scenario   string `json:"scenario"`
	Model      string `json:"model"`
	Mode       string `json:"mode"`
	LatencyMs  int64  `json:"latency_ms"`
	Completion any    `json:"completion"`
	Task       string `json:"task"`
	Context    string `json:"context"`
	Notes      string `json:"notes"`
}

// ReportBaseName is the file name stem shared by the run's reports.
func (r *RunRecord) ReportBaseName() string {
	return Slugify(r.Scenario)
}

// Slugify replaces each whitespace run with a hyphen and lowercases the result.
func Slugify(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, "-"))
}
