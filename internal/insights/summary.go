package insights

import (
	"math"
	"sort"
	"time"

	"denizkartim/internal/core"

	"github.com/shopspring/decimal"
)

// UpcomingPayment is one card's statement due. DaysLeft is negative when
// the due date has already passed.
type UpcomingPayment struct {
	CardRef       string          `json:"cardRef"`
	CardName      string          `json:"cardName"`
	CardScheme    string          `json:"cardScheme"`
	DueDate       time.Time       `json:"dueDate"`
	StatementDebt decimal.Decimal `json:"statementDebt"`
	MinPayment    decimal.Decimal `json:"minPayment"`
	DaysLeft      int             `json:"daysLeft"`
}

// PointTotal merges one point program's balance across cards.
type PointTotal struct {
	Kind  string          `json:"kind"`
	Total decimal.Decimal `json:"total"`
}

// ProjectionSlice carries one period of the merged installment load, the
// amount re-serialized with the fixture's negative-for-debt convention.
type ProjectionSlice struct {
	Period int    `json:"period"`
	Amount string `json:"amount"`
}

type SummaryReport struct {
	TotalDebt             decimal.Decimal   `json:"totalDebt"`
	TotalLimit            decimal.Decimal   `json:"totalLimit"`
	TotalAvailableLimit   decimal.Decimal   `json:"totalAvailableLimit"`
	TotalMinPayment       decimal.Decimal   `json:"totalMinPayment"`
	UsageRatio            float64           `json:"usageRatio"`
	UpcomingPayments      []UpcomingPayment `json:"upcomingPayments"`
	Points                []PointTotal      `json:"points"`
	InstallmentProjection []ProjectionSlice `json:"installmentProjection"`
	AccountBalanceTRY     decimal.Decimal   `json:"accountBalanceTRY"`
	AccountBalanceUSD     decimal.Decimal   `json:"accountBalanceUSD"`
	OverdraftDebt         decimal.Decimal   `json:"overdraftDebt"`
}

// buildSummary rolls every primary credit card's TRY detail into portfolio
// totals. Cards without a TRY detail are skipped silently.
func buildSummary(ds *core.Dataset, rules Rules, now time.Time) SummaryReport {
	var report SummaryReport

	pointIndex := make(map[string]int)
	projection := make([]decimal.Decimal, rules.ProjectionPeriods+1)

	for _, card := range ds.Cards {
		if !card.IsCredit() || card.IsVirtual() {
			continue
		}
		detail, ok := ds.CardDetails[card.Ref]["TRY"]
		if !ok {
			continue
		}

		statementDebt := detail.RemainingStatementDebt.Abs()
		minPayment := detail.RemainingMinPayment.Abs()

		report.TotalDebt = report.TotalDebt.Add(statementDebt)
		report.TotalLimit = report.TotalLimit.Add(detail.TotalLimit)
		report.TotalAvailableLimit = report.TotalAvailableLimit.Add(detail.AvailableLimit)
		report.TotalMinPayment = report.TotalMinPayment.Add(minPayment)

		if statementDebt.IsPositive() {
			report.UpcomingPayments = append(report.UpcomingPayments, UpcomingPayment{
				CardRef:       card.Ref,
				CardName:      card.ProductName,
				CardScheme:    card.Scheme,
				DueDate:       detail.DueDate,
				StatementDebt: statementDebt,
				MinPayment:    minPayment,
				DaysLeft:      daysUntil(now, detail.DueDate),
			})
		}

		for _, p := range detail.Points {
			i, ok := pointIndex[p.Kind]
			if !ok {
				i = len(report.Points)
				pointIndex[p.Kind] = i
				report.Points = append(report.Points, PointTotal{Kind: p.Kind})
			}
			report.Points[i].Total = report.Points[i].Total.Add(p.Value)
		}

		for _, slice := range detail.InstallmentSchedule {
			if slice.Period >= 0 && slice.Period <= rules.ProjectionPeriods {
				projection[slice.Period] = projection[slice.Period].Add(slice.Amount.Abs())
			}
		}
	}

	sort.SliceStable(report.UpcomingPayments, func(i, j int) bool {
		return report.UpcomingPayments[i].DueDate.Before(report.UpcomingPayments[j].DueDate)
	})

	report.InstallmentProjection = make([]ProjectionSlice, len(projection))
	for period, amount := range projection {
		report.InstallmentProjection[period] = ProjectionSlice{
			Period: period,
			Amount: core.SignedDebtString(amount),
		}
	}

	// A negative TRY balance is overdraft debt. The figure is overwritten,
	// not accumulated: the product assumes a single overdraft account.
	for _, balance := range ds.Balances {
		switch balance.Currency {
		case "TRY":
			if balance.Amount.IsNegative() {
				report.OverdraftDebt = balance.Amount.Abs()
			} else {
				report.AccountBalanceTRY = report.AccountBalanceTRY.Add(balance.Amount)
			}
		case "USD":
			report.AccountBalanceUSD = report.AccountBalanceUSD.Add(balance.Amount)
		}
	}

	used := report.TotalLimit.Sub(report.TotalAvailableLimit)
	report.UsageRatio = core.Percentage(used, report.TotalLimit).InexactFloat64()

	return report
}

func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
