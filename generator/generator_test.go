package generator

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qa-demo/casegen/relay/adaptor/openai"
	"github.com/qa-demo/casegen/relay/model"
)

type stubProvider struct {
	content  string
	err      error
	calls    int
	model    string
	messages []model.Message
}

func (p *stubProvider) Call(_ context.Context, messages []model.Message, modelName string) (string, error) {
	p.calls++
	p.model = modelName
	p.messages = messages
	return p.content, p.err
}

func (p *stubProvider) GetChannelName() string { return "stub" }

func TestModeFromAPIKey(t *testing.T) {
	require.Equal(t, ModeMock, ModeFromAPIKey(""))
	require.Equal(t, ModeProvider, ModeFromAPIKey("sk-anything"))
	require.Equal(t, ModeProvider, ModeFromAPIKey("not-a-real-key"))
	require.Equal(t, ModeProvider, ModeFromAPIKey("   "))

	require.Equal(t, "mock mode", ModeMock.Label())
	require.Equal(t, "provider mode", ModeProvider.Label())
}

func TestServiceMockModeNeverCallsProvider(t *testing.T) {
	provider := &stubProvider{content: `{"cases":[]}`}
	svc := New(Config{Mode: ModeMock, Model: "gpt-4o-mini"}, provider)

	result, err := svc.Generate(context.Background(), Request{Task: "Hello world"})
	require.NoError(t, err)
	require.Zero(t, provider.calls)
	require.Equal(t, MockModel, result.Model)
	require.Equal(t, MockModel, svc.Model())

	completion, ok := result.Completion.(MockCompletion)
	require.True(t, ok)
	require.Len(t, completion.Cases, 3)
	require.Equal(t, "Test 1 - hello-world", completion.Cases[0].Title)
}

func TestServiceDefaults(t *testing.T) {
	svc := New(Config{}, nil)
	require.Equal(t, ModeMock, svc.Mode())

	result, err := svc.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, MockModel, result.Model)
}

func TestServiceProviderModePassesJSONThrough(t *testing.T) {
	raw := `{"cases":[{"title":"Login works","steps":["open","submit"],"expected_result":"dashboard","risk":"unknown"}]}`
	provider := &stubProvider{content: raw}
	svc := New(Config{Mode: ModeProvider, Model: "gpt-4o"}, provider)

	result, err := svc.Generate(context.Background(), Request{Task: "Login", Context: "SSO enabled"})
	require.NoError(t, err)
	require.Equal(t, 1, provider.calls)
	require.Equal(t, "gpt-4o", provider.model)
	require.Equal(t, "gpt-4o", result.Model)

	completion, ok := result.Completion.(json.RawMessage)
	require.True(t, ok)
	require.JSONEq(t, raw, string(completion))
}

func TestServiceProviderModeWrapsInvalidJSON(t *testing.T) {
	provider := &stubProvider{content: "not-json"}
	svc := New(Config{Mode: ModeProvider, Model: "gpt-4o-mini"}, provider)

	result, err := svc.Generate(context.Background(), Request{Task: "anything"})
	require.NoError(t, err)
	require.Equal(t, FallbackCompletion{Note: FallbackNote, Raw: "not-json"}, result.Completion)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"model":"gpt-4o-mini","completion":{"note":"Model did not return valid JSON; wrapping raw text.","raw":"not-json"}}`,
		string(encoded))
}

func TestServiceProviderErrorPropagates(t *testing.T) {
	upstreamErr := &openai.HTTPError{StatusCode: 500, Body: "upstream exploded"}
	provider := &stubProvider{err: upstreamErr}
	svc := New(Config{Mode: ModeProvider, Model: "gpt-4o-mini"}, provider)

	result, err := svc.Generate(context.Background(), Request{Task: "anything"})
	require.Nil(t, result)
	require.Same(t, upstreamErr, err)
}

func TestServiceProviderModeWithoutProvider(t *testing.T) {
	svc := New(Config{Mode: ModeProvider}, nil)

	_, err := svc.Generate(context.Background(), Request{Task: "anything"})
	require.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		messages := BuildPrompt(Request{Task: "Login", Context: "SSO enabled"})
		require.Len(t, messages, 2)
		require.Equal(t, model.RoleSystem, messages[0].Role)
		require.Contains(t, messages[0].StringContent(), "Return JSON only")
		require.Equal(t, model.RoleUser, messages[1].Role)

		user := messages[1].StringContent()
		require.Contains(t, user, "Generate 3-5 test cases")
		require.Contains(t, user, "title, steps (array), expected_result, risk")
		require.Contains(t, user, `set risk to "unknown"`)
		require.True(t, strings.HasSuffix(user, "Task: Login\nContext: SSO enabled"))
	})

	t.Run("without context", func(t *testing.T) {
		messages := BuildPrompt(Request{Task: "Login"})
		require.True(t, strings.HasSuffix(messages[1].StringContent(), "Context: None provided"))
	})
}

func TestParseCompletion(t *testing.T) {
	require.Equal(t, json.RawMessage(`[1,2]`), ParseCompletion(`[1,2]`))
	require.Equal(t, json.RawMessage(" {\"a\":1}\n"), ParseCompletion(" {\"a\":1}\n"))
	require.Equal(t, FallbackCompletion{Note: FallbackNote, Raw: "```json\n{}\n```"}, ParseCompletion("```json\n{}\n```"))
	require.Equal(t, FallbackCompletion{Note: FallbackNote, Raw: ""}, ParseCompletion(""))
}
