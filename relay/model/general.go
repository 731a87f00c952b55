package model

const (
	ResponseFormatText       = "text"
	ResponseFormatJSONObject = "json_object"
)

type ResponseFormat struct {
	Type string `json:"type,omitempty"`
}

// GeneralOpenAIRequest is the chat completions request body.
type GeneralOpenAIRequest struct {
	Model          string          `json:"model,omitempty"`
	Messages       []Message       `json:"messages,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	User           string          `json:"user,omitempty"`
}

type TextResponseChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// TextResponse is the chat completions response body.
type TextResponse struct {
	Id      string               `json:"id"`
	Model   string               `json:"model,omitempty"`
	Object  string               `json:"object"`
	Created int64                `json:"created"`
	Choices []TextResponseChoice `json:"choices"`
	Usage   Usage                `json:"usage"`
	Error   *Error               `json:"error,omitempty"`
}
