package openai

const (
	ChannelName         = "openai"
	DefaultBaseURL      = "https://api.openai.com"
	ChatCompletionsPath = "/v1/chat/completions"

	// maxErrorBodyBytes bounds how much of a failed upstream response is kept for diagnostics.
	maxErrorBodyBytes = 64 << 10
)
