package insights

import (
	"sort"
	"time"

	"denizkartim/internal/core"

	"github.com/shopspring/decimal"
)

// Transaction is a card transaction enriched with its owning card and the
// category resolved from the merchant code.
type Transaction struct {
	ID                string          `json:"id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Time              time.Time       `json:"time"`
	Direction         core.Direction  `json:"direction"`
	Description       string          `json:"description"`
	MCC               string          `json:"mcc,omitempty"`
	InstallmentCount  int             `json:"installmentCount,omitempty"`
	InstallmentPeriod int             `json:"installmentPeriod,omitempty"`
	Installment       bool            `json:"installment"`
	CardRef           string          `json:"cardRef"`
	CardName          string          `json:"cardName"`
	CardScheme        string          `json:"cardScheme"`
	Category          string          `json:"category"`
	CategoryIcon      string          `json:"categoryIcon"`
	CategoryColor     string          `json:"categoryColor"`
}

// TypeFilter selects transactions by kind. An empty or unrecognized value
// behaves as TypeAll.
type TypeFilter string

const (
	TypeAll         TypeFilter = "all"
	TypeDebit       TypeFilter = "debit"
	TypeCredit      TypeFilter = "credit"
	TypeInstallment TypeFilter = "installment"
)

// Filters restrict the transaction view. All fields are optional and
// conjunctive; zero values match everything.
type Filters struct {
	CardRef  string
	Category string
	Currency string
	Type     TypeFilter
}

// DateGroup is one calendar day of transactions, newest day first in the
// report, entries inside keeping their time-descending order.
type DateGroup struct {
	Date         string        `json:"date"`
	Label        string        `json:"label"`
	Transactions []Transaction `json:"transactions"`
}

// CategoryShare is one category's slice of TRY debit spending.
type CategoryShare struct {
	Category string          `json:"category"`
	Icon     string          `json:"icon"`
	Color    string          `json:"color"`
	Total    decimal.Decimal `json:"total"`
	Percent  float64         `json:"percent"`
	Count    int             `json:"count"`
}

type TransactionReport struct {
	Transactions  []Transaction   `json:"transactions"`
	Groups        []DateGroup     `json:"groups"`
	Categories    []CategoryShare `json:"categories"`
	TotalSpend    decimal.Decimal `json:"totalSpend"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	Count         int             `json:"count"`
}

// enrichAll flattens every credit card's period transactions into one
// time-descending list. Optional card and currency arguments restrict the
// walk; missing data contributes zero records.
func enrichAll(ds *core.Dataset, catalog core.Catalog, cardRef, currency string) []Transaction {
	var out []Transaction

	for _, card := range ds.Cards {
		if !card.IsCredit() {
			continue
		}
		if cardRef != "" && card.Ref != cardRef {
			continue
		}
		periods, ok := ds.CardTransactions[card.Ref]
		if !ok {
			continue
		}

		currencies := make([]string, 0, len(periods))
		if currency != "" {
			currencies = append(currencies, currency)
		} else {
			for c := range periods {
				currencies = append(currencies, c)
			}
			sort.Strings(currencies)
		}

		for _, c := range currencies {
			period, ok := periods[c]
			if !ok {
				continue
			}
			for _, t := range period.Transactions {
				cat := catalog.ByMCC(t.MCC)
				out = append(out, Transaction{
					ID:                t.ID,
					Amount:            t.Amount.Value,
					Currency:          t.Amount.Currency,
					Time:              t.Time,
					Direction:         t.Direction,
					Description:       t.Description,
					MCC:               t.MCC,
					InstallmentCount:  t.InstallmentCount,
					InstallmentPeriod: t.InstallmentPeriod,
					Installment:       t.IsInstallment(),
					CardRef:           card.Ref,
					CardName:          card.ProductName,
					CardScheme:        card.Scheme,
					Category:          cat.Name,
					CategoryIcon:      cat.Icon,
					CategoryColor:     cat.Color,
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})
	return out
}

// applyFilters returns a new slice preserving relative order.
func applyFilters(txns []Transaction, f Filters) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if f.CardRef != "" && t.CardRef != f.CardRef {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.Currency != "" && t.Currency != f.Currency {
			continue
		}
		switch f.Type {
		case TypeDebit:
			if t.Direction != core.Debit {
				continue
			}
		case TypeCredit:
			if t.Direction != core.Credit {
				continue
			}
		case TypeInstallment:
			if !t.Installment {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func groupByDate(txns []Transaction, now time.Time) []DateGroup {
	index := make(map[string]int)
	var groups []DateGroup

	for _, t := range txns {
		key := t.Time.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DateGroup{
				Date:  key,
				Label: dateLabel(now, t.Time),
			})
		}
		groups[i].Transactions = append(groups[i].Transactions, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}

// categorySummary aggregates TRY debit spending by category name. Shares
// round to one decimal; an empty input yields an empty list, never a
// division by zero.
func categorySummary(txns []Transaction) []CategoryShare {
	index := make(map[string]int)
	var shares []CategoryShare

	for _, t := range txns {
		if t.Direction != core.Debit || t.Currency != "TRY" {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(shares)
			index[t.Category] = i
			shares = append(shares, CategoryShare{
				Category: t.Category,
				Icon:     t.CategoryIcon,
				Color:    t.CategoryColor,
			})
		}
		shares[i].Total = shares[i].Total.Add(t.Amount.Abs())
		shares[i].Count++
	}

	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Total)
	}
	for i := range shares {
		shares[i].Percent = core.Percentage(shares[i].Total, total).InexactFloat64()
		shares[i].Total = shares[i].Total.Round(2)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Total.GreaterThan(shares[j].Total)
	})
	return shares
}

// spendTotals sums TRY debits and TRY credits of the fully filtered set.
func spendTotals(txns []Transaction) (spend, payments decimal.Decimal) {
	for _, t := range txns {
		if t.Currency != "TRY" {
			continue
		}
		switch t.Direction {
		case core.Debit:
			spend = spend.Add(t.Amount.Abs())
		case core.Credit:
			payments = payments.Add(t.Amount.Abs())
		}
	}
	return spend.Round(2), payments.Round(2)
}
