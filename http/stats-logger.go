package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// statsLogger periodically logs request count and average latency per
// endpoint, so ingestion volume is visible without an external metrics
// stack.
type statsLogger struct {
	mu    sync.Mutex
	stats map[string]*endpointStats

	flushInterval time.Duration
}

type endpointStats struct {
	count     int
	totalTime time.Duration
}

func newStatsLogger() *statsLogger {
	sl := &statsLogger{
		stats:         make(map[string]*endpointStats),
		flushInterval: 5 * time.Second,
	}
	go sl.flushLoop()
	return sl
}

func (sl *statsLogger) flushLoop() {
	ticker := time.NewTicker(sl.flushInterval)
	for range ticker.C {
		sl.flush()
	}
}

func (sl *statsLogger) flush() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	for endpoint, stats := range sl.stats {
		if stats.count == 0 {
			continue
		}
		avgTimeMs := float64(stats.totalTime.Microseconds()) / float64(stats.count) / 1000.0
		slog.Info("endpoint stats",
			"endpoint", endpoint,
			"count", stats.count,
			"avg_time_ms", fmt.Sprintf("%.2f", avgTimeMs),
			"period", sl.flushInterval,
		)
		stats.count = 0
		stats.totalTime = 0
	}
}

func (sl *statsLogger) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		start := time.Now()

		next.ServeHTTP(w, r)

		duration := time.Since(start)

		sl.mu.Lock()
		if _, exists := sl.stats[endpoint]; !exists {
			sl.stats[endpoint] = &endpointStats{}
		}
		sl.stats[endpoint].count++
		sl.stats[endpoint].totalTime += duration
		sl.mu.Unlock()
	})
}
