package generator

import (
	"fmt"
	"strings"
)

const (
	mockCaseCount    = 3
	mockMaxSeedWords = 3
	// mockDefaultSource seeds the title when both task and context are empty.
	mockDefaultSource = "demo"
	// mockDefaultBase is used when the chosen source holds only whitespace.
	mockDefaultBase = "case"
)

var (
	mockSteps = []string{
		"Set up preconditions from the spec",
		"Execute the described action",
		"Observe system response",
	}
	mockExpectedResult = "System behaves as specified without errors"
)

// mockBase derives the title suffix from the first words of the context,
// falling back to the task, then to "demo", when the earlier one is empty.
func mockBase(req Request) string {
	source := req.Context
	if source == "" {
		source = req.Task
	}
	if source == "" {
		source = mockDefaultSource
	}

	seeds := strings.Fields(source)
	if len(seeds) > mockMaxSeedWords {
		seeds = seeds[:mockMaxSeedWords]
	}
	if len(seeds) == 0 {
		return mockDefaultBase
	}

	return strings.ToLower(strings.Join(seeds, "-"))
}

// MockGenerate is the offline generator. Its output depends only on req.
func MockGenerate(req Request) *Result {
	base := mockBase(req)

	cases := make([]TestCase, 0, mockCaseCount)
	for i := range mockCaseCount {
		risk := RiskMedium
		if i == 0 {
			risk = RiskHigh
		}
		cases = append(cases, TestCase{
			Title:          fmt.Sprintf("Test %d - %s", i+1, base),
			Steps:          append([]string(nil), mockSteps...),
			ExpectedResult: mockExpectedResult,
			Risk:           risk,
		})
	}

	return &Result{
		Model: MockModel,
		Completion: MockCompletion{
			Cases: cases,
			Note:  MockNote,
		},
	}
}
