package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/client"
	"github.com/qa-demo/casegen/common/logger"
	"github.com/qa-demo/casegen/relay/adaptor"
	"github.com/qa-demo/casegen/relay/model"
)

var _ adaptor.Adaptor = (*Adaptor)(nil)

// Adaptor calls an OpenAI-compatible chat completions endpoint.
type Adaptor struct {
	APIKey  string
	BaseURL string
	// Client defaults to client.HTTPClient when nil.
	Client *http.Client
}

func New(apiKey, baseURL string) *Adaptor {
	return &Adaptor{
		APIKey:  apiKey,
		BaseURL: baseURL,
	}
}

func (a *Adaptor) GetChannelName() string {
	return ChannelName
}

func (a *Adaptor) GetRequestURL() string {
	return GetFullRequestURL(a.BaseURL, ChatCompletionsPath)
}

func (a *Adaptor) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return client.HTTPClient
}

// ConvertRequest builds the chat completions body. JSON object output is
// requested as a hint; providers are free to ignore it.
func (a *Adaptor) ConvertRequest(messages []model.Message, modelName string) *model.GeneralOpenAIRequest {
	return &model.GeneralOpenAIRequest{
		Model:          modelName,
		Messages:       messages,
		ResponseFormat: &model.ResponseFormat{Type: model.ResponseFormatJSONObject},
	}
}

// Call sends messages to the provider and returns the first choice's content verbatim.
func (a *Adaptor) Call(ctx context.Context, messages []model.Message, modelName string) (string, error) {
	if a.APIKey == "" {
		return "", &ConfigError{Reason: "OPENAI_API_KEY not set"}
	}

	req, err := adaptor.NewJSONRequest(ctx, a.GetRequestURL(), a.ConvertRequest(messages, modelName))
	if err != nil {
		return "", errors.Wrap(err, "build chat completions request")
	}
	req.Header.Set("Authorization", "Bearer "+a.APIKey)

	resp, err := adaptor.DoRequest(a.httpClient(), a.GetChannelName(), req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if readErr != nil {
			logger.Logger.Warn("failed to read upstream error body", zap.Error(readErr))
		}
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return ParseContent(resp.Body)
}

// ParseContent decodes a chat completions response and extracts the first
// choice's message content.
func ParseContent(body io.Reader) (string, error) {
	var textResponse model.TextResponse
	if err := json.NewDecoder(body).Decode(&textResponse); err != nil {
		return "", &ProtocolError{Reason: "OpenAI response is not valid JSON: " + err.Error()}
	}

	if len(textResponse.Choices) == 0 {
		return "", &ProtocolError{Reason: "OpenAI response missing content"}
	}

	content := textResponse.Choices[0].Message.StringContent()
	if content == "" {
		return "", &ProtocolError{Reason: "OpenAI response missing content"}
	}

	return content, nil
}
