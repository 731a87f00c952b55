package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/common/helper"
	"github.com/qa-demo/casegen/common/logger"
	"github.com/qa-demo/casegen/generator"
	"github.com/qa-demo/casegen/middleware"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	scenariosDir, publicDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(scenariosDir, "login.json"),
		[]byte(`{"name":"Login","task":"Log in"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(publicDir, "index.html"),
		[]byte("<html>casegen</html>"), 0o644))

	oldScenarios, oldPublic, oldMetrics := config.ScenariosDir, config.PublicDir, config.EnablePrometheusMetrics
	config.ScenariosDir, config.PublicDir, config.EnablePrometheusMetrics = scenariosDir, publicDir, true
	t.Cleanup(func() {
		config.ScenariosDir, config.PublicDir, config.EnablePrometheusMetrics = oldScenarios, oldPublic, oldMetrics
	})

	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(
		middleware.PanicRecover(),
		gmw.NewLoggerMiddleware(gmw.WithLogger(logger.Logger.Named("test"))),
		middleware.RequestId(),
	)
	SetRouter(server, generator.New(generator.Config{Mode: generator.ModeMock}, nil))
	return server
}

func serve(server *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestApiRoutes(t *testing.T) {
	server := newTestServer(t)

	w := serve(server, httptest.NewRequest(http.MethodGet, "/api/scenarios", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"scenarios":[{"name":"Login","task":"Log in","context":"","notes":""}]}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get(helper.RequestIdKey))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"task":"Log in"}`))
	req.Header.Set("Content-Type", "application/json")
	w = serve(server, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"mode":"mock mode"`)

	w = serve(server, httptest.NewRequest(http.MethodOptions, "/api/generate", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "mock mode", w.Header().Get(helper.GeneratorModeKey))

	w = serve(server, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
}

func TestRequestBodyLimit(t *testing.T) {
	server := newTestServer(t)

	body := `{"task":"` + strings.Repeat("a", config.MaxRequestBodyBytes+1) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := serve(server, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"task is required as a string"}`, w.Body.String())
}

func TestCORSExposesGeneratorHeaders(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("Origin", "http://example.com")
	w := serve(server, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	exposed := w.Header().Get("Access-Control-Expose-Headers")
	require.Contains(t, exposed, helper.GeneratorModeKey)
	require.Contains(t, exposed, helper.RequestIdKey)
}

func TestStaticAndNotFound(t *testing.T) {
	server := newTestServer(t)

	w := serve(server, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "casegen")

	w = serve(server, httptest.NewRequest(http.MethodGet, "/missing.js", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"not_found"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)

	serve(server, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	w := serve(server, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "casegen_http_requests_total")
	require.Contains(t, w.Body.String(), `path="/api/status"`)
}

func TestGenerateOptionsWithOrigin(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(server, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "mock mode", w.Header().Get(helper.GeneratorModeKey))
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = serve(server, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "mock mode", w.Header().Get(helper.GeneratorModeKey))
}
