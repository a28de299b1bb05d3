// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/utils"
)

const tooManyRequestsMessage = "too many requests from this IP address, please try again later"

// RateLimiter counts requests per key in fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*rateWindow
	now     func() time.Time
}

type rateWindow struct {
	count int
	reset time.Time
}

// RateDecision is the outcome of one [RateLimiter.Allow] call.
type RateDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

// Allow records a request from key and reports whether it fits in the
// current window.
func (l *RateLimiter) Allow(key string) RateDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.reset) {
		w = &rateWindow{reset: now.Add(l.window)}
		l.windows[key] = w
	}

	w.count++
	return RateDecision{
		Allowed:   w.count <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-w.count, 0),
		Reset:     w.reset,
	}
}

// Prune drops windows that ended before now and returns how many were
// removed.
func (l *RateLimiter) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if !now.Before(w.reset) {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// withRateLimit limits requests per client IP. It relies on RealIP having
// rewritten RemoteAddr.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := h.rateLimiter.Allow(clientIP(r))

		resetIn := int(math.Ceil(time.Until(decision.Reset).Seconds()))
		w.Header().Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		w.Header().Set("RateLimit-Reset", strconv.Itoa(max(resetIn, 0)))

		if !decision.Allowed {
			logger.FromRequest(r).Warn().Str("ip", clientIP(r)).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", strconv.Itoa(max(resetIn, 0)))
			utils.WriteMessage(w, tooManyRequestsMessage, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port when RemoteAddr still carries one.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
