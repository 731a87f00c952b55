package config

import (
	"strings"

	"github.com/qa-demo/casegen/common/env"
)

var (
	// OpenAIAPIKey is the provider credential. Any non-empty value, whitespace
	// included, switches the generator into provider mode for the lifetime of the process.
	OpenAIAPIKey = env.String("OPENAI_API_KEY", "")
	// OpenAIModel is the model identifier sent to the provider.
	OpenAIModel = strings.TrimSpace(env.String("OPENAI_MODEL", DefaultOpenAIModel))
	// OpenAIBaseURL points the provider adapter at api.openai.com or any OpenAI-compatible gateway.
	OpenAIBaseURL = strings.TrimSuffix(strings.TrimSpace(env.String("OPENAI_BASE_URL", DefaultOpenAIBaseURL)), "/")

	// ServerPort overrides the --port flag when running inside container or PaaS environments.
	ServerPort = strings.TrimSpace(env.String("PORT", ""))
	// GinMode allows forcing Gin into release mode (or other modes) without recompiling.
	GinMode = strings.TrimSpace(env.String("GIN_MODE", ""))

	// ScenariosDir holds the *.json scenario fixtures listed by the API and run by the batch runner.
	ScenariosDir = env.String("SCENARIOS_DIR", "./scenarios")
	// ReportsDir receives the per-scenario JSON and Markdown reports written by the batch runner.
	ReportsDir = env.String("REPORTS_DIR", "./reports")
	// PublicDir is served as static content at the site root.
	PublicDir = env.String("PUBLIC_DIR", "./public")

	// DebugEnabled toggles verbose structured logging when DEBUG=true.
	DebugEnabled = env.Bool("DEBUG", false)

	// RelayProxy provides an HTTP proxy for outbound requests to the provider.
	RelayProxy = env.String("RELAY_PROXY", "")
	// RelayTimeout bounds provider HTTP requests (seconds). Zero disables the timeout.
	RelayTimeout = env.Int("RELAY_TIMEOUT", 0)

	// ShutdownTimeoutSec specifies how long (seconds) the HTTP server drains in-flight requests on shutdown.
	ShutdownTimeoutSec = env.Int("SHUTDOWN_TIMEOUT", 30)

	// EnablePrometheusMetrics exposes the /metrics endpoint for Prometheus scrapers when true.
	EnablePrometheusMetrics = env.Bool("ENABLE_PROMETHEUS_METRICS", true)

	// LogPushAPI defines the webhook endpoint for escalated log alerts.
	LogPushAPI = env.String("LOG_PUSH_API", "")
	// LogPushType labels outbound log alerts so downstream processors can route them.
	LogPushType = env.String("LOG_PUSH_TYPE", "")
	// LogPushToken authenticates outbound log alert requests.
	LogPushToken = env.String("LOG_PUSH_TOKEN", "")
)

const (
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultOpenAIBaseURL = "https://api.openai.com"
	// MaxRequestBodyBytes caps JSON request bodies accepted by the API.
	MaxRequestBodyBytes = 1 << 20
)
