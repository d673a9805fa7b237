// Package insights derives the dashboard views from the loaded dataset:
// enriched card transactions, detected subscriptions, account-level salary
// and bill detection, and the portfolio-wide financial summary. Every
// derivation is a pure function over the immutable dataset.
package insights

import "github.com/shopspring/decimal"

// Bill categories used by the account detector.
const (
	BillCategoryUtility = "fatura"
	BillCategoryRent    = "kira"
	BillCategoryCard    = "kredi"
	BillCategoryOther   = "diger"
)

// BillPattern matches account debits by a keyword in the uppercased
// description. Patterns are ordered; the first matching pattern wins and
// each keyword is recorded at most once.
type BillPattern struct {
	Keyword  string
	Name     string
	Category string
}

// Rules holds the detection tables. They are injected so tests can
// substitute small fixtures.
type Rules struct {
	// SalaryKeywords mark an account credit as a salary deposit.
	SalaryKeywords []string

	// BillPatterns, scanned in order against account debits.
	BillPatterns []BillPattern

	// SubscriptionExclusions lists MCC codes that never qualify as
	// subscriptions: habitual repeat spending at similar price points
	// (fuel, groceries, dining) would otherwise produce false positives.
	SubscriptionExclusions map[string]struct{}

	// SimilarityTolerance is the relative amount difference below which two
	// charges count as the same recurring fee.
	SimilarityTolerance decimal.Decimal

	// RecentLimit caps the recent account transaction list.
	RecentLimit int

	// ProjectionPeriods is the last period offset included in the merged
	// installment projection.
	ProjectionPeriods int
}

func DefaultRules() Rules {
	return Rules{
		SalaryKeywords: []string{"MAAS", "MAAŞ", "MAAS ODEMESI", "UCRET"},
		BillPatterns: []BillPattern{
			{Keyword: "IGDAS", Name: "İGDAŞ Doğalgaz", Category: BillCategoryUtility},
			{Keyword: "TURK TELEKOM", Name: "Türk Telekom", Category: BillCategoryUtility},
			{Keyword: "ISKI", Name: "İSKİ Su Faturası", Category: BillCategoryUtility},
			{Keyword: "KIRA", Name: "Kira Ödemesi", Category: BillCategoryRent},
			{Keyword: "ELEKTRIK", Name: "Elektrik Faturası", Category: BillCategoryUtility},
			{Keyword: "DOGALGAZ", Name: "Doğalgaz Faturası", Category: BillCategoryUtility},
			{Keyword: "KREDI KARTI ODEME", Name: "Kredi Kartı Ödemesi", Category: BillCategoryCard},
		},
		SubscriptionExclusions: map[string]struct{}{
			"5541": {}, // akaryakıt
			"5542": {}, // akaryakıt (otomasyon)
			"5814": {}, // fast food
			"5812": {}, // restoran
			"5813": {}, // bar, kafe
			"5411": {}, // market
			"5912": {}, // eczane
			"5651": {}, // giyim
			"5311": {}, // mağaza
			"5944": {}, // kuyumcu
			"5722": {}, // ev aletleri
			"7011": {}, // otel
			"4511": {}, // havayolu
		},
		SimilarityTolerance: decimal.NewFromFloat(0.10),
		RecentLimit:         8,
		ProjectionPeriods:   12,
	}
}
