package insights

import (
	"testing"
	"time"

	"denizkartim/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transactionsDataset() *core.Dataset {
	usdPurchase := core.CardTransaction{
		ID:          "CT-5",
		Amount:      core.MoneyAmount{Value: dec("-12.99"), Currency: "USD"},
		Time:        fixedNow.Add(-30 * time.Hour),
		Direction:   core.Debit,
		Description: "SPOTIFY USA",
		MCC:         "5815",
	}

	return &core.Dataset{
		Cards: []core.Card{
			creditCard("CARD-1", "Bonus Platin"),
			creditCard("CARD-2", "Bonus Gold"),
			{Ref: "CARD-3", Type: core.CardTypeDebit, ProductName: "Banka Kartı"},
		},
		CardTransactions: map[string]map[string]core.PeriodTransactions{
			"CARD-1": {
				"TRY": currentPeriod(
					debit("CT-1", "MIGROS", "-450.00", "5411", fixedNow.Add(-2*time.Hour)),
					debit("CT-2", "NETFLIX.COM", "-99.90", "4899", fixedNow.Add(-26*time.Hour)),
					credit("CT-3", "EKSTRE ODEMESI", "2000.00", fixedNow.Add(-50*time.Hour)),
					installment("CT-4", "VATAN BILGISAYAR", "-1000.00", 3, fixedNow.Add(-3*time.Hour)),
				),
				"USD": currentPeriod(usdPurchase),
			},
			"CARD-2": {
				"TRY": currentPeriod(
					debit("CT-6", "STARBUCKS", "-120.00", "5814", fixedNow.Add(-1*time.Hour)),
				),
			},
			"CARD-3": {
				"TRY": currentPeriod(debit("CT-7", "ATM", "-500.00", "", fixedNow)),
			},
		},
	}
}

func TestQueryTransactionsUnfiltered(t *testing.T) {
	svc := NewService(transactionsDataset(), WithClock(clock))

	report := svc.QueryTransactions(Filters{})

	// CARD-3 is a debit card, its feed never enters the view.
	require.Len(t, report.Transactions, 6)
	assert.Equal(t, 6, report.Count)

	for i := 1; i < len(report.Transactions); i++ {
		assert.False(t, report.Transactions[i-1].Time.Before(report.Transactions[i].Time),
			"transactions must be newest first")
	}

	assert.Equal(t, "1669.90", report.TotalSpend.StringFixed(2))
	assert.Equal(t, "2000.00", report.TotalPayments.StringFixed(2))

	first := report.Transactions[0]
	assert.Equal(t, "STARBUCKS", first.Description)
	assert.Equal(t, "Bonus Gold", first.CardName)
	assert.Equal(t, "Yeme & İçme", first.Category)
}

func TestQueryTransactionsFilters(t *testing.T) {
	svc := NewService(transactionsDataset(), WithClock(clock))

	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{"by card", Filters{CardRef: "CARD-2"}, []string{"CT-6"}},
		{"by category", Filters{Category: "Market"}, []string{"CT-1"}},
		{"by currency", Filters{Currency: "USD"}, []string{"CT-5"}},
		{"installments only", Filters{Type: TypeInstallment}, []string{"CT-4"}},
		{"credits only", Filters{Type: TypeCredit}, []string{"CT-3"}},
		{"conjunctive", Filters{CardRef: "CARD-1", Type: TypeDebit, Currency: "TRY"}, []string{"CT-4", "CT-1", "CT-2"}},
		{"unknown type is all", Filters{CardRef: "CARD-2", Type: "bogus"}, []string{"CT-6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := svc.QueryTransactions(tt.filters)
			got := make([]string, 0, len(report.Transactions))
			for _, txn := range report.Transactions {
				got = append(got, txn.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestCategorySummaryIgnoresTypeFilter(t *testing.T) {
	svc := NewService(transactionsDataset(), WithClock(clock))

	report := svc.QueryTransactions(Filters{Type: TypeCredit})

	require.Len(t, report.Transactions, 1)
	assert.NotEmpty(t, report.Categories, "spending breakdown must survive the type filter")
}

func TestCategorySummaryShares(t *testing.T) {
	svc := NewService(transactionsDataset(), WithClock(clock))

	report := svc.QueryTransactions(Filters{})
	require.NotEmpty(t, report.Categories)

	var percentSum float64
	for i, share := range report.Categories {
		percentSum += share.Percent
		if i > 0 {
			assert.True(t, report.Categories[i-1].Total.GreaterThanOrEqual(share.Total),
				"categories must be sorted by total descending")
		}
	}
	assert.InDelta(t, 100.0, percentSum, 0.5)

	top := report.Categories[0]
	assert.Equal(t, "Teknoloji", top.Category)
	assert.Equal(t, "1000.00", top.Total.StringFixed(2))
}

func TestCategorySummaryEmptyInput(t *testing.T) {
	svc := NewService(&core.Dataset{}, WithClock(clock))

	report := svc.QueryTransactions(Filters{})

	assert.Empty(t, report.Categories)
	assert.Equal(t, "0.00", report.TotalSpend.StringFixed(2))
}

func TestGroupByDateLabels(t *testing.T) {
	today := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	thisWeek := time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC) // Thursday
	older := time.Date(2026, 2, 23, 8, 0, 0, 0, time.UTC)

	ds := &core.Dataset{
		Cards: []core.Card{creditCard("CARD-1", "Bonus Platin")},
		CardTransactions: map[string]map[string]core.PeriodTransactions{
			"CARD-1": {
				"TRY": currentPeriod(
					debit("CT-1", "A", "-10.00", "", today),
					debit("CT-2", "B", "-10.00", "", yesterday),
					debit("CT-3", "C", "-10.00", "", thisWeek),
					debit("CT-4", "D", "-10.00", "", older),
				),
			},
		},
	}

	report := NewService(ds, WithClock(clock)).QueryTransactions(Filters{})

	require.Len(t, report.Groups, 4)
	assert.Equal(t, "Bugün", report.Groups[0].Label)
	assert.Equal(t, "Dün", report.Groups[1].Label)
	assert.Equal(t, "Perşembe, 12 Mart", report.Groups[2].Label)
	assert.Equal(t, "23 Şubat", report.Groups[3].Label)

	for i := 1; i < len(report.Groups); i++ {
		assert.Greater(t, report.Groups[i-1].Date, report.Groups[i].Date,
			"groups must be newest day first")
	}
}
