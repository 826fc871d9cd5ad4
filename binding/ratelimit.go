package binding

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit configures per-client rate limiting for a Handler.
type RateLimit struct {
	Rate    float64                      // requests per second
	Burst   int                          // max burst
	KeyFunc func(r *http.Request) string // default: remote IP
	MaxIdle time.Duration                // drop limiters idle longer than this (default: 5m)
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one token bucket per client key. Idle buckets are pruned
// lazily, at most once per minute.
type limiterSet struct {
	cfg RateLimit

	mu          sync.Mutex
	limiters    map[string]*limiterEntry
	lastCleanup time.Time
}

func newLimiterSet(cfg RateLimit) *limiterSet {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = remoteHost
	}
	if cfg.MaxIdle <= 0 {
		cfg.MaxIdle = 5 * time.Minute
	}
	return &limiterSet{cfg: cfg, limiters: make(map[string]*limiterEntry)}
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// allow reports whether the client of r may proceed now.
func (s *limiterSet) allow(r *http.Request) bool {
	key := s.cfg.KeyFunc(r)

	s.mu.Lock()
	now := time.Now()
	if now.Sub(s.lastCleanup) >= time.Minute {
		for k, e := range s.limiters {
			if now.Sub(e.lastSeen) > s.cfg.MaxIdle {
				delete(s.limiters, k)
			}
		}
		s.lastCleanup = now
	}

	entry, ok := s.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(s.cfg.Rate), s.cfg.Burst)}
		s.limiters[key] = entry
	}
	entry.lastSeen = now
	s.mu.Unlock()

	return entry.limiter.Allow()
}

// retryAfter is the Retry-After header value in whole seconds, at least 1.
func (s *limiterSet) retryAfter() string {
	if s.cfg.Rate <= 0 || s.cfg.Rate >= 1 {
		return "1"
	}
	return strconv.FormatFloat(1/s.cfg.Rate, 'f', 0, 64)
}
