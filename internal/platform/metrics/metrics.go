package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	rateLimited     uint64
	totalDurationMs uint64

	pageEmissions   uint64
	sessionsMounted uint64
	sessionsExpired uint64
	activeSessions  int64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// PageEmitted counts one visible page delivered by a table to its screen.
func (c *Collector) PageEmitted(string) {
	atomic.AddUint64(&c.pageEmissions, 1)
}

func (c *Collector) SessionMounted() {
	atomic.AddUint64(&c.sessionsMounted, 1)
	atomic.AddInt64(&c.activeSessions, 1)
}

func (c *Collector) SessionsClosed(n int, expired bool) {
	if n <= 0 {
		return
	}
	if expired {
		atomic.AddUint64(&c.sessionsExpired, uint64(n))
	}
	atomic.AddInt64(&c.activeSessions, -int64(n))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":        total,
		"errorsTotal":          errs,
		"rateLimitedTotal":     limited,
		"avgDurationMs":        avg,
		"totalDurationMs":      totalMs,
		"pageEmissionsTotal":   atomic.LoadUint64(&c.pageEmissions),
		"sessionsMountedTotal": atomic.LoadUint64(&c.sessionsMounted),
		"sessionsExpiredTotal": atomic.LoadUint64(&c.sessionsExpired),
		"sessionsActive":       atomic.LoadInt64(&c.activeSessions),
	}
}
