package insights

import (
	"sort"
	"strings"
	"time"

	"denizkartim/internal/core"

	"github.com/shopspring/decimal"
)

// Salary is the most recent account credit whose description carries a
// salary keyword.
type Salary struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Time        time.Time       `json:"time"`
	Sender      string          `json:"sender"`
}

// Bill is a recurring payment matched from the account ledger. Amount keeps
// the ledger sign.
type Bill struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Time        time.Time       `json:"time"`
	Category    string          `json:"category"`
}

// AccountEntry is one ledger entry annotated with its account's display
// name for the recent-activity list.
type AccountEntry struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Direction      core.Direction  `json:"direction"`
	Time           time.Time       `json:"time"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	Channel        string          `json:"channel"`
	Kind           string          `json:"kind"`
	AccountName    string          `json:"accountName"`
}

type IncomeExpense struct {
	Salary          decimal.Decimal `json:"salary"`
	RegularExpenses decimal.Decimal `json:"regularExpenses"`
	CardPayments    decimal.Decimal `json:"cardPayments"`
	Remaining       decimal.Decimal `json:"remaining"`
}

type AccountReport struct {
	Salary             *Salary         `json:"salary"`
	Bills              []Bill          `json:"bills"`
	TotalBills         decimal.Decimal `json:"totalBills"`
	RecentTransactions []AccountEntry  `json:"recentTransactions"`
	IncomeExpense      IncomeExpense   `json:"incomeExpense"`
}

type annotatedEntry struct {
	core.AccountTransaction
	accountName string
}

// detectAccountInsights scans the merged TRY account ledger, newest first,
// for salary deposits and recurring bills, and rolls the result up against
// the card minimum payments.
func detectAccountInsights(ds *core.Dataset, rules Rules) AccountReport {
	merged := mergeTRYTransactions(ds)

	report := AccountReport{
		Salary: detectSalary(merged, rules.SalaryKeywords),
	}

	report.Bills = detectBills(merged, rules.BillPatterns)
	for _, b := range report.Bills {
		if b.Category == BillCategoryCard {
			continue
		}
		report.TotalBills = report.TotalBills.Add(b.Amount)
	}

	report.RecentTransactions = recentEntries(merged, rules.RecentLimit)

	cardPayments := cardMinimumPayments(ds)
	salaryAmount := decimal.Zero
	if report.Salary != nil {
		salaryAmount = report.Salary.Amount
	}
	remaining := salaryAmount.Sub(report.TotalBills).Sub(cardPayments)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	report.IncomeExpense = IncomeExpense{
		Salary:          salaryAmount,
		RegularExpenses: report.TotalBills,
		CardPayments:    cardPayments,
		Remaining:       remaining,
	}
	return report
}

func mergeTRYTransactions(ds *core.Dataset) []annotatedEntry {
	var merged []annotatedEntry
	for _, account := range ds.Accounts {
		if account.Currency != "TRY" {
			continue
		}
		for _, t := range ds.AccountTransactions[account.Ref] {
			merged = append(merged, annotatedEntry{
				AccountTransaction: t,
				accountName:        account.DisplayName(),
			})
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.After(merged[j].Time)
	})
	return merged
}

// detectSalary stops at the first match: the scan is newest-first, so the
// most recent salary wins.
func detectSalary(merged []annotatedEntry, keywords []string) *Salary {
	for _, entry := range merged {
		if entry.Direction != core.Credit {
			continue
		}
		desc := strings.ToUpper(entry.Description)
		for _, kw := range keywords {
			if !strings.Contains(desc, kw) {
				continue
			}
			sender := "Bilinmiyor"
			if entry.Counterparty != nil && entry.Counterparty.Name != "" {
				sender = entry.Counterparty.Name
			}
			return &Salary{
				Amount:      entry.Amount,
				Description: entry.Description,
				Time:        entry.Time,
				Sender:      sender,
			}
		}
	}
	return nil
}

// detectBills records each keyword's most recent debit once. A transaction
// feeds at most one pattern.
func detectBills(merged []annotatedEntry, patterns []BillPattern) []Bill {
	var bills []Bill
	matched := make(map[string]struct{})

	for _, entry := range merged {
		if entry.Direction != core.Debit {
			continue
		}
		desc := strings.ToUpper(entry.Description)
		for _, p := range patterns {
			if _, done := matched[p.Keyword]; done {
				continue
			}
			if !strings.Contains(desc, p.Keyword) {
				continue
			}
			matched[p.Keyword] = struct{}{}
			bills = append(bills, Bill{
				Name:        p.Name,
				Amount:      entry.Amount,
				Description: entry.Description,
				Time:        entry.Time,
				Category:    p.Category,
			})
			break
		}
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Amount.GreaterThan(bills[j].Amount)
	})
	return bills
}

// recentEntries drops card payment debits, already surfaced by the card
// summary, and keeps the newest entries.
func recentEntries(merged []annotatedEntry, limit int) []AccountEntry {
	var out []AccountEntry
	for _, entry := range merged {
		if strings.Contains(strings.ToUpper(entry.Description), "KREDI KARTI ODEME") {
			continue
		}
		out = append(out, AccountEntry{
			ID:             entry.ID,
			Description:    entry.Description,
			Amount:         entry.Amount,
			Direction:      entry.Direction,
			Time:           entry.Time,
			RunningBalance: entry.RunningBalance,
			Channel:        entry.Channel,
			Kind:           entry.Kind,
			AccountName:    entry.accountName,
		})
		if len(out) == limit {
			break
		}
	}
	return out
}

// cardMinimumPayments sums the remaining TRY minimum payments of primary
// credit cards. Virtual cards share their parent's debt and are skipped.
func cardMinimumPayments(ds *core.Dataset) decimal.Decimal {
	total := decimal.Zero
	for _, card := range ds.Cards {
		if !card.IsCredit() || card.IsVirtual() {
			continue
		}
		detail, ok := ds.CardDetails[card.Ref]["TRY"]
		if !ok {
			continue
		}
		total = total.Add(detail.RemainingMinPayment.Abs())
	}
	return total
}
