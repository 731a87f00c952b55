package generator

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/common/logger"
	"github.com/qa-demo/casegen/monitor"
	"github.com/qa-demo/casegen/relay/adaptor"
	"github.com/qa-demo/casegen/relay/adaptor/openai"
)

// Request is the input of a single generation.
type Request struct {
	Task    string
	Context string
}

// Result is the normalized generation output. Completion is either a
// MockCompletion, the provider's JSON as a json.RawMessage, or a FallbackCompletion.
type Result struct {
	Model      string `json:"model"`
	Completion any    `json:"completion"`
}

// Generator produces test cases for a task.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
	Mode() Mode
	Model() string
}

type Config struct {
	Mode Mode
	// Model is the provider model id. Ignored in mock mode.
	Model string
}

// Service selects between the mock and provider paths based on its Config.
type Service struct {
	cfg      Config
	provider adaptor.Adaptor
}

var _ Generator = (*Service)(nil)

// New builds a Service. provider may be nil in mock mode.
func New(cfg Config, provider adaptor.Adaptor) *Service {
	if cfg.Mode == "" {
		cfg.Mode = ModeMock
	}
	if cfg.Model == "" {
		cfg.Model = config.DefaultOpenAIModel
	}
	return &Service{cfg: cfg, provider: provider}
}

// NewFromConfig wires a Service from the process configuration.
func NewFromConfig() *Service {
	return New(
		Config{
			Mode:  ModeFromAPIKey(config.OpenAIAPIKey),
			Model: config.OpenAIModel,
		},
		openai.New(config.OpenAIAPIKey, config.OpenAIBaseURL),
	)
}

func (s *Service) Mode() Mode {
	return s.cfg.Mode
}

// Model reports the model id results will carry.
func (s *Service) Model() string {
	if s.cfg.Mode == ModeProvider {
		return s.cfg.Model
	}
	return MockModel
}

// Generate never fails in mock mode. In provider mode provider errors are
// returned unchanged; invalid JSON output is wrapped, not reported.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	var (
		result *Result
		err    error
	)
	switch s.cfg.Mode {
	case ModeProvider:
		result, err = s.generateWithProvider(ctx, req)
	default:
		result = MockGenerate(req)
	}

	elapsed := time.Since(start)
	monitor.RecordGeneration(string(s.cfg.Mode), s.Model(), err, elapsed)
	if err != nil {
		logger.Logger.Warn("generation failed",
			zap.String("mode", string(s.cfg.Mode)),
			zap.String("model", s.Model()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, err
	}

	logger.Logger.Debug("generation finished",
		zap.String("mode", string(s.cfg.Mode)),
		zap.String("model", result.Model),
		zap.Duration("elapsed", elapsed))
	return result, nil
}

func (s *Service) generateWithProvider(ctx context.Context, req Request) (*Result, error) {
	if s.provider == nil {
		return nil, errors.New("provider mode requires a provider adaptor")
	}

	raw, err := s.provider.Call(ctx, BuildPrompt(req), s.cfg.Model)
	if err != nil {
		return nil, err
	}

	completion := ParseCompletion(raw)
	if _, wrapped := completion.(FallbackCompletion); wrapped {
		logger.Logger.Warn("model did not return valid JSON, wrapping raw text",
			zap.String("model", s.cfg.Model),
			zap.Int("raw_len", len(raw)))
	}

	return &Result{
		Model:      s.cfg.Model,
		Completion: completion,
	}, nil
}
