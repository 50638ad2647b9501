package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type boardStats struct {
	builds          int
	failures        int
	lineupFallbacks int
	advisories      map[string]int
	lastDuration    time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// board builds, mirroring them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	board boardStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		board: boardStats{advisories: make(map[string]int)},
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordBoardBuild tracks one board build and whether it failed.
func (r *Recorder) RecordBoardBuild(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.board.builds++
	r.board.lastDuration = duration
	if err != nil {
		r.board.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordBoardBuild(duration, err)
	}
}

// RecordLineupFallback tracks a date rendered without lineups.
func (r *Recorder) RecordLineupFallback() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.board.lineupFallbacks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLineupFallback()
	}
}

// RecordAdvisory tracks an advisory note attached to an outcome.
func (r *Recorder) RecordAdvisory(kind string) {
	if r == nil || kind == "" {
		return
	}

	r.mu.Lock()
	r.board.advisories[kind]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAdvisory(kind)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// BoardSnapshot is a copy of the board build counters.
type BoardSnapshot struct {
	Builds          int
	Failures        int
	LineupFallbacks int
	Advisories      map[string]int
	LastDuration    time.Duration
}

// Board returns a copy of the board build counters.
func (r *Recorder) Board() BoardSnapshot {
	if r == nil {
		return BoardSnapshot{Advisories: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	advisories := make(map[string]int, len(r.board.advisories))
	for k, v := range r.board.advisories {
		advisories[k] = v
	}
	return BoardSnapshot{
		Builds:          r.board.builds,
		Failures:        r.board.failures,
		LineupFallbacks: r.board.lineupFallbacks,
		Advisories:      advisories,
		LastDuration:    r.board.lastDuration,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
