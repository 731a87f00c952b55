package helper

import (
	"fmt"
	"sync/atomic"
	"time"
)

// GetTimestamp get current timestamp in seconds
func GetTimestamp() int64 {
	return time.Now().Unix()
}

func GetTimeString() string {
	now := time.Now()
	return fmt.Sprintf("%s%d", now.Format("20060102150405"), now.UnixNano()%1e9)
}

// CalcElapsedTime return the elapsed time in milliseconds (ms)
func CalcElapsedTime(start time.Time) int64 {
	return ElapsedMilliseconds(time.Since(start))
}

// ElapsedMilliseconds converts a duration to whole milliseconds, reporting 1
// for sub-millisecond but non-zero durations so latency never reads as 0.
func ElapsedMilliseconds(elapsed time.Duration) int64 {
	ms := elapsed.Milliseconds()
	if ms == 0 && elapsed > 0 {
		return 1
	}
	return ms
}

var lastRunID atomic.Int64

// GenRunID returns a `run_<unix ms>` token for a run started at start.
// Tokens are strictly increasing within the process, so two runs in the
// same millisecond still get distinct ids.
func GenRunID(start time.Time) string {
	ms := start.UnixMilli()
	for {
		last := lastRunID.Load()
		next := ms
		if next <= last {
			next = last + 1
		}
		if lastRunID.CompareAndSwap(last, next) {
			return fmt.Sprintf("run_%d", next)
		}
	}
}
