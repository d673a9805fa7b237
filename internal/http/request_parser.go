package http

import (
	"net/url"
	"strings"

	"denizkartim/internal/insights"
)

// ParseFilters extracts transaction filters from the query string. Malformed
// or unknown values degrade to zero values and match everything; query
// parameters never produce an error response.
func ParseFilters(query url.Values) insights.Filters {
	f := insights.Filters{
		CardRef:  strings.TrimSpace(query.Get("card")),
		Category: strings.TrimSpace(query.Get("category")),
		Currency: strings.ToUpper(strings.TrimSpace(query.Get("currency"))),
	}

	switch insights.TypeFilter(strings.ToLower(strings.TrimSpace(query.Get("type")))) {
	case insights.TypeDebit:
		f.Type = insights.TypeDebit
	case insights.TypeCredit:
		f.Type = insights.TypeCredit
	case insights.TypeInstallment:
		f.Type = insights.TypeInstallment
	default:
		f.Type = insights.TypeAll
	}

	return f
}

// cacheKey flattens the filters into a stable cache key.
func cacheKey(f insights.Filters) string {
	return strings.Join([]string{f.CardRef, f.Category, f.Currency, string(f.Type)}, "|")
}
