package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long a client's bucket is kept after its last request.
const idleTTL = 10 * time.Minute

// clientLimiter keeps one token bucket per client key.
type clientLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	clients   map[string]*visitor
	lastSweep time.Time
	now       func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientLimiter allows perSecond sustained requests per client with
// bursts of burst.
func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		clients: make(map[string]*visitor),
		now:     time.Now,
	}
}

// Allow reports whether key may make a request now.
func (l *clientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	v, ok := l.clients[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep drops idle clients at most once per minute (caller holds lock).
func (l *clientLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for key, v := range l.clients {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.clients, key)
		}
	}
}

// size returns the number of tracked clients.
func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
