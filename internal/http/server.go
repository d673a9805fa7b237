// Package http exposes the derived financial views as a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"denizkartim/internal/cache"
	"denizkartim/internal/insights"
	"denizkartim/internal/middleware/trace"
)

// CacheOptions size the per-view report caches.
type CacheOptions struct {
	TTL        time.Duration
	MaxEntries int
}

type Server struct {
	http.Server

	service     *insights.Service
	rateLimiter *rateLimiter

	// Per-view report caches. The dataset is immutable for the process
	// lifetime, so entries only ever expire, they are never invalidated.
	transactionCache  *cache.LRUCache[insights.TransactionReport]
	subscriptionCache *cache.LRUCache[insights.SubscriptionReport]
	accountCache      *cache.LRUCache[insights.AccountReport]
	summaryCache      *cache.LRUCache[insights.SummaryReport]
	snapshotCache     *cache.LRUCache[*insights.Snapshot]

	cacheManager *cache.Manager
	shutdownOnce sync.Once
}

// NewServer wires the routes and starts the cache cleanup loop.
func NewServer(addr string, service *insights.Service, opts CacheOptions) *Server {
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 100
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		service:           service,
		rateLimiter:       newRateLimiter(),
		transactionCache:  cache.NewLRUCache[insights.TransactionReport](opts.MaxEntries, opts.TTL),
		subscriptionCache: cache.NewLRUCache[insights.SubscriptionReport](1, opts.TTL),
		accountCache:      cache.NewLRUCache[insights.AccountReport](1, opts.TTL),
		summaryCache:      cache.NewLRUCache[insights.SummaryReport](1, opts.TTL),
		snapshotCache:     cache.NewLRUCache[*insights.Snapshot](1, opts.TTL),
		cacheManager:      cache.NewManager(),
	}

	s.cacheManager.Register(s.transactionCache)
	s.cacheManager.Register(s.subscriptionCache)
	s.cacheManager.Register(s.accountCache)
	s.cacheManager.Register(s.summaryCache)
	s.cacheManager.Register(s.snapshotCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	traced := trace.NewMiddleware(clientIP)
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, traced.Middleware(s.withLimits(h)))
	}

	handle("/api/transactions", s.handleTransactions)
	handle("/api/subscriptions", s.handleSubscriptions)
	handle("/api/insights", s.handleAccountInsights)
	handle("/api/summary", s.handleSummary)
	handle("/api/snapshot", s.handleSnapshot)

	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/ready", s.handleReady)

	return s
}

// Shutdown stops the cleanup goroutines before closing the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.stop()
		err = s.Server.Shutdown(ctx)
	})
	return err
}

// withLimits enforces the per-client rate limit and pins down response
// headers shared by every API endpoint.
func (s *Server) withLimits(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.rateLimiter.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			NewJSONResponse().
				Status(http.StatusTooManyRequests).
				Error("rate limit exceeded").
				Write(w)
			return
		}
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			NewJSONResponse().
				Status(http.StatusMethodNotAllowed).
				Error("method not allowed").
				Write(w)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.service == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
