package http

import (
	"log/slog"
	"net/http"
)

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	filters := ParseFilters(r.URL.Query())
	key := cacheKey(filters)

	report, found := s.transactionCache.Get(key)
	if !found {
		report = s.service.QueryTransactions(filters)
		s.transactionCache.Set(key, report)
	} else {
		slog.DebugContext(r.Context(), "transaction report cache hit", "key", key)
	}

	NewJSONResponse().Body(report).Write(w)
}

func (s *Server) handleSubscriptions(w http.ResponseWriter, r *http.Request) {
	report, found := s.subscriptionCache.Get("all")
	if !found {
		report = s.service.Subscriptions()
		s.subscriptionCache.Set("all", report)
	} else {
		slog.DebugContext(r.Context(), "subscription report cache hit")
	}

	NewJSONResponse().Body(report).Write(w)
}

func (s *Server) handleAccountInsights(w http.ResponseWriter, r *http.Request) {
	report, found := s.accountCache.Get("all")
	if !found {
		report = s.service.AccountInsights()
		s.accountCache.Set("all", report)
	} else {
		slog.DebugContext(r.Context(), "account report cache hit")
	}

	NewJSONResponse().Body(report).Write(w)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	report, found := s.summaryCache.Get("all")
	if !found {
		report = s.service.FinancialSummary()
		s.summaryCache.Set("all", report)
	} else {
		slog.DebugContext(r.Context(), "summary report cache hit")
	}

	NewJSONResponse().Body(report).Write(w)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, found := s.snapshotCache.Get("all")
	if !found {
		var err error
		snap, err = s.service.Snapshot(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "snapshot failed", "error", err)
			NewJSONResponse().
				Status(http.StatusInternalServerError).
				Error("snapshot failed").
				Write(w)
			return
		}
		s.snapshotCache.Set("all", snap)
	} else {
		slog.DebugContext(r.Context(), "snapshot cache hit")
	}

	NewJSONResponse().Body(snap).Write(w)
}
