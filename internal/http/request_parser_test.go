package http

import (
	"net/url"
	"testing"

	"denizkartim/internal/insights"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  insights.Filters
	}{
		{
			name:  "empty query",
			query: "",
			want:  insights.Filters{Type: insights.TypeAll},
		},
		{
			name:  "all fields",
			query: "card=CARD-1&category=Market&currency=try&type=debit",
			want: insights.Filters{
				CardRef:  "CARD-1",
				Category: "Market",
				Currency: "TRY",
				Type:     insights.TypeDebit,
			},
		},
		{
			name:  "type case insensitive",
			query: "type=INSTALLMENT",
			want:  insights.Filters{Type: insights.TypeInstallment},
		},
		{
			name:  "unknown type degrades to all",
			query: "type=banana",
			want:  insights.Filters{Type: insights.TypeAll},
		},
		{
			name:  "whitespace trimmed",
			query: "card=%20CARD-2%20&type=%20credit%20",
			want:  insights.Filters{CardRef: "CARD-2", Type: insights.TypeCredit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.query, err)
			}
			got := ParseFilters(query)
			if got != tt.want {
				t.Errorf("ParseFilters() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCacheKeyDistinguishesFilters(t *testing.T) {
	a := cacheKey(insights.Filters{CardRef: "CARD-1", Type: insights.TypeAll})
	b := cacheKey(insights.Filters{CardRef: "CARD-1", Type: insights.TypeDebit})
	c := cacheKey(insights.Filters{Category: "CARD-1", Type: insights.TypeAll})

	if a == b {
		t.Error("keys must differ by type filter")
	}
	if a == c {
		t.Error("keys must not collide across fields")
	}
}
