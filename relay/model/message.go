package model

import "strings"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	ContentTypeText            = "text"
	ContentTypeOutputJSONDelta = "output_json_delta"
)

// Message is a single chat message. Content is a plain string on requests we
// build; upstream responses may also carry a list of content parts.
type Message struct {
	Role    string  `json:"role,omitempty"`
	Content any     `json:"content,omitempty"`
	Name    *string `json:"name,omitempty"`
}

func (m Message) IsStringContent() bool {
	_, ok := m.Content.(string)
	return ok
}

// StringContent flattens the message content into text. Text parts and
// partial JSON deltas are concatenated in order; other part types are skipped.
func (m Message) StringContent() string {
	switch content := m.Content.(type) {
	case string:
		return content
	case []any:
		var b strings.Builder
		for _, item := range content {
			part, ok := item.(map[string]any)
			if !ok {
				continue
			}
			switch part["type"] {
			case ContentTypeText:
				if text, ok := part["text"].(string); ok {
					b.WriteString(text)
				}
			case ContentTypeOutputJSONDelta:
				if text, ok := part["partial_json"].(string); ok {
					b.WriteString(text)
				}
			}
		}
		return b.String()
	default:
		return ""
	}
}
