package monitor

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelMode   = "mode"
	labelModel  = "model"
	labelStatus = "status"
	labelMethod = "method"
	labelPath   = "path"

	StatusSuccess = "success"
	StatusError   = "error"
)

var registry = prometheus.NewRegistry()

var generationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "casegen_generation_total",
	Help: "The number of test case generations by mode, model and outcome",
}, []string{labelMode, labelModel, labelStatus})

var generationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "casegen_generation_duration_seconds",
	Help:    "Wall-clock duration of test case generations",
	Buckets: []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 30, 60},
}, []string{labelMode})

var httpRequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "casegen_http_requests_total",
	Help: "The number of HTTP requests served by route and status code",
}, []string{labelMethod, labelPath, labelStatus})

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		generationCounter,
		generationDuration,
		httpRequestCounter,
	)
}

// RecordGeneration records the outcome and latency of one generation.
func RecordGeneration(mode, model string, err error, elapsed time.Duration) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	generationCounter.WithLabelValues(mode, model, status).Inc()
	generationDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// RecordHTTPRequest counts a served request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func RecordHTTPRequest(method, path string, statusCode int) {
	httpRequestCounter.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

// Handler exposes the package registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
