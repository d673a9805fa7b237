package insights

import (
	"time"

	"denizkartim/internal/core"

	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func creditCard(ref, name string) core.Card {
	return core.Card{
		Ref:         ref,
		Type:        core.CardTypeCredit,
		SubType:     core.CardSubTypePrimary,
		ProductName: name,
		Scheme:      "V",
	}
}

func virtualCard(ref, name, parentNumber string) core.Card {
	return core.Card{
		Ref:          ref,
		Type:         core.CardTypeCredit,
		SubType:      core.CardSubTypeVirtual,
		ParentNumber: parentNumber,
		ProductName:  name,
		Scheme:       "V",
	}
}

func debit(id, desc, amount, mcc string, at time.Time) core.CardTransaction {
	return core.CardTransaction{
		ID:          id,
		Amount:      core.MoneyAmount{Value: dec(amount), Currency: "TRY"},
		Time:        at,
		Direction:   core.Debit,
		Description: desc,
		MCC:         mcc,
	}
}

func credit(id, desc, amount string, at time.Time) core.CardTransaction {
	return core.CardTransaction{
		ID:          id,
		Amount:      core.MoneyAmount{Value: dec(amount), Currency: "TRY"},
		Time:        at,
		Direction:   core.Credit,
		Description: desc,
	}
}

func installment(id, desc, amount string, count int, at time.Time) core.CardTransaction {
	t := debit(id, desc, amount, "5732", at)
	t.InstallmentCount = count
	return t
}

func currentPeriod(txns ...core.CardTransaction) core.PeriodTransactions {
	return core.PeriodTransactions{Period: 0, Transactions: txns}
}

func previousPeriod(txns ...core.CardTransaction) core.PeriodTransactions {
	return core.PeriodTransactions{Period: -1, Transactions: txns}
}
