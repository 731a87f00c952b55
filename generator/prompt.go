package generator

import (
	"fmt"

	"github.com/qa-demo/casegen/relay/model"
)

const (
	systemPrompt = "You are a QA assistant that generates concise, high-quality test cases. Return JSON only."

	userPromptTemplate = "Generate 3-5 test cases for the following task. " +
		"Return JSON with fields: title, steps (array), expected_result, risk. " +
		"Avoid guessing unknown details. If context is insufficient, set risk to \"unknown\".\n" +
		"Task: %s\nContext: %s"

	noContextPlaceholder = "None provided"
)

// BuildPrompt returns the system and user messages sent to the provider.
func BuildPrompt(req Request) []model.Message {
	ctx := req.Context
	if ctx == "" {
		ctx = noContextPlaceholder
	}

	return []model.Message{
		{Role: model.RoleSystem, Content: systemPrompt},
		{Role: model.RoleUser, Content: fmt.Sprintf(userPromptTemplate, req.Task, ctx)},
	}
}
