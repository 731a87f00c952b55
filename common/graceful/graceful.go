package graceful

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/logger"
)

// Lifecycle manager for graceful shutdown and request draining.

var (
	inFlightRequests int64
	draining         atomic.Bool
)

// drainPollInterval is a var so tests can shorten it.
var drainPollInterval = 100 * time.Millisecond

// BeginRequest increments the in-flight request counter and returns a function
// to decrement it. Use with `defer` at the top of request handlers/middlewares.
func BeginRequest() func() {
	atomic.AddInt64(&inFlightRequests, 1)
	var done atomic.Bool
	return func() {
		if done.CompareAndSwap(false, true) {
			atomic.AddInt64(&inFlightRequests, -1)
		}
	}
}

// InFlight reports the number of requests currently being served.
func InFlight() int64 { return atomic.LoadInt64(&inFlightRequests) }

// SetDraining flips the draining flag to true.
func SetDraining() { draining.Store(true) }

// IsDraining returns whether the server is currently draining.
func IsDraining() bool { return draining.Load() }

// Drain waits for in-flight requests to reach zero, bounded by ctx deadline.
// Call it after http.Server.Shutdown stops accepting new connections.
func Drain(ctx context.Context) error {
	ticker := time.NewTicker(drainPollInterval)
	defer ticker.Stop()

	for {
		n := InFlight()
		if n == 0 {
			logger.Logger.Info("graceful drain complete")
			return nil
		}

		select {
		case <-ctx.Done():
			logger.Logger.Error("graceful drain timeout",
				zap.Int64("in_flight_requests", n))
			return ctx.Err()
		case <-ticker.C:
			logger.Logger.Debug("draining...", zap.Int64("in_flight_requests", n))
		}
	}
}
