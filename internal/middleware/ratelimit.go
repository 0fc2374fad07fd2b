package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientIdleTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	cl := &clientLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go cl.evictIdle()
	return cl
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	c, ok := cl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

func (cl *clientLimiter) evictIdle() {
	ticker := time.NewTicker(clientIdleTTL)
	defer ticker.Stop()

	for range ticker.C {
		cl.mu.Lock()
		for ip, c := range cl.clients {
			if time.Since(c.lastSeen) > clientIdleTTL {
				delete(cl.clients, ip)
			}
		}
		cl.mu.Unlock()
	}
}

// RateLimit returns middleware that throttles requests per client IP.
// rps is the sustained requests per second, burst the allowed burst size.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newClientLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				writeJSONMessage(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
