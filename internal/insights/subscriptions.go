package insights

import (
	"sort"
	"strings"
	"time"

	"denizkartim/internal/core"

	"github.com/shopspring/decimal"
)

// Subscription is a recurring charge detected by matching a current-period
// debit against the previous-period sample of the same card and currency.
type Subscription struct {
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CardRef       string          `json:"cardRef"`
	CardName      string          `json:"cardName"`
	Category      string          `json:"category"`
	LastChargedAt time.Time       `json:"lastChargedAt"`
}

type SubscriptionReport struct {
	Subscriptions []Subscription  `json:"subscriptions"`
	TotalTRY      decimal.Decimal `json:"totalTRY"`
	TotalUSD      decimal.Decimal `json:"totalUSD"`
	Count         int             `json:"count"`
}

// normalizeDescription uppercases, trims, and collapses whitespace runs so
// "netflix.com  " and "NETFLIX.COM" compare equal.
func normalizeDescription(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// similarAmounts reports whether two non-negative amounts are within the
// relative tolerance. Two zero charges match; a zero against a non-zero
// never does.
func similarAmounts(a, b, tolerance decimal.Decimal) bool {
	aZero, bZero := a.IsZero(), b.IsZero()
	if aZero && bZero {
		return true
	}
	if aZero || bZero {
		return false
	}
	max := a
	if b.GreaterThan(a) {
		max = b
	}
	return a.Sub(b).Abs().Div(max).LessThan(tolerance)
}

// detectSubscriptions compares each credit card's current period against its
// previous-period sample, per currency. A current debit qualifies when it is
// not an installment, its MCC is not excluded, and the previous period holds
// a non-installment debit with the identical normalized description and a
// similar amount. The (card, currency, normalized description) key is
// emitted at most once, first match wins.
func detectSubscriptions(ds *core.Dataset, catalog core.Catalog, rules Rules) SubscriptionReport {
	var subs []Subscription
	seen := make(map[string]struct{})

	for _, card := range ds.Cards {
		if !card.IsCredit() {
			continue
		}
		current, okCurrent := ds.CardTransactions[card.Ref]
		previous, okPrevious := ds.PreviousPeriods[card.Ref]
		if !okCurrent || !okPrevious {
			continue
		}

		currencies := make([]string, 0, len(current))
		for c := range current {
			currencies = append(currencies, c)
		}
		sort.Strings(currencies)

		for _, currency := range currencies {
			currentPeriod := current[currency]
			previousPeriod, ok := previous[currency]
			if !ok {
				continue
			}

			for _, t := range currentPeriod.Transactions {
				if t.Direction != core.Debit || t.IsInstallment() {
					continue
				}
				if t.MCC != "" {
					if _, excluded := rules.SubscriptionExclusions[t.MCC]; excluded {
						continue
					}
				}

				desc := normalizeDescription(t.Description)
				amount := t.Amount.Value.Abs()

				if !matchesPreviousPeriod(previousPeriod.Transactions, desc, amount, rules.SimilarityTolerance) {
					continue
				}

				key := card.Ref + ":" + currency + ":" + desc
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				subs = append(subs, Subscription{
					Name:          t.Description,
					Amount:        amount,
					Currency:      t.Amount.Currency,
					CardRef:       card.Ref,
					CardName:      card.ProductName,
					Category:      catalog.ByMCC(t.MCC).Name,
					LastChargedAt: t.Time,
				})
			}
		}
	}

	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].Currency != subs[j].Currency {
			return subs[i].Currency == "TRY"
		}
		return subs[i].Amount.GreaterThan(subs[j].Amount)
	})

	report := SubscriptionReport{Subscriptions: subs, Count: len(subs)}
	for _, s := range subs {
		switch s.Currency {
		case "TRY":
			report.TotalTRY = report.TotalTRY.Add(s.Amount)
		case "USD":
			report.TotalUSD = report.TotalUSD.Add(s.Amount)
		}
	}
	return report
}

func matchesPreviousPeriod(previous []core.CardTransaction, desc string, amount, tolerance decimal.Decimal) bool {
	for _, p := range previous {
		if p.Direction != core.Debit || p.IsInstallment() {
			continue
		}
		if normalizeDescription(p.Description) != desc {
			continue
		}
		if similarAmounts(amount, p.Amount.Value.Abs(), tolerance) {
			return true
		}
	}
	return false
}
