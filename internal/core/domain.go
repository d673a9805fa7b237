package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction marks a ledger entry as debit or credit. The fixture carries the
// direction as a separate flag, so the flag is authoritative, not the sign of
// the stored amount.
type Direction string

const (
	Debit  Direction = "B"
	Credit Direction = "A"
)

// Card type and sub-type codes as used by the fixture.
const (
	CardTypeCredit = "K"
	CardTypeDebit  = "B"

	CardSubTypePrimary = "A"
	CardSubTypeVirtual = "S"
)

type (
	// Dataset is the full mock dataset loaded once from a backend. Nothing in
	// the engine mutates it; every derived view is a fresh structure.
	Dataset struct {
		Meta                []BankConnection
		Accounts            []Account
		Balances            []Balance
		AccountTransactions map[string][]AccountTransaction          // account ref -> ledger entries
		Cards               []Card
		CardDetails         map[string]map[string]CardDetail         // card ref -> currency -> period detail
		CardTransactions    map[string]map[string]PeriodTransactions // card ref -> currency -> current period
		PreviousPeriods     map[string]map[string]PeriodTransactions // card ref -> currency -> previous-period sample
	}

	// BankConnection is one open-banking consent record from the fixture's
	// _meta section.
	BankConnection struct {
		Description string
		BankCode    string // HHS code
		BankName    string
		Provider    string
		Consents    []string
		GrantedAt   time.Time
		ExpiresAt   time.Time
		HolderType  string
	}

	Account struct {
		Ref         string
		Number      string
		BranchName  string
		ShortName   string
		Currency    string
		Type        string
		Kind        string
		ProductName string
		Status      string
		OpenedAt    time.Time
	}

	// Balance is the current balance of one account, 1:1 via AccountRef.
	// A negative TRY balance on an overdraft account is debt, not a deposit.
	Balance struct {
		AccountRef string
		Amount     decimal.Decimal
		Blocked    decimal.Decimal
		Currency   string
		Time       time.Time
		Credit     *AccountCredit
	}

	// AccountCredit describes an attached overdraft facility.
	AccountCredit struct {
		UsedAmount        decimal.Decimal
		IncludedInBalance bool
	}

	Counterparty struct {
		MaskedIBAN string
		Name       string
		TaxID      string
	}

	AccountTransaction struct {
		ID             string
		RefNo          string
		Amount         decimal.Decimal
		RunningBalance decimal.Decimal
		Currency       string
		Time           time.Time
		Channel        string
		Direction      Direction
		Kind           string
		Purpose        string
		StatementNo    string
		Description    string
		Counterparty   *Counterparty
	}

	Card struct {
		Ref          string
		Number       string
		ParentNumber string // set on virtual cards, refs the physical card's number
		Type         string
		SubType      string
		Form         string
		Kind         string
		Status       string
		Scheme       string
		ProductName  string
		BankCode     string
	}

	PointBalance struct {
		Kind  string
		Value decimal.Decimal
	}

	// InstallmentSlice is one period of a card's installment projection.
	// Period 0 is the current billing cycle.
	InstallmentSlice struct {
		Period int
		Amount decimal.Decimal
	}

	// CardDetail holds one card's per-currency period figures. Debts arrive
	// negative; presentation takes the absolute value.
	CardDetail struct {
		TotalLimit                decimal.Decimal
		AvailableLimit            decimal.Decimal
		PeriodActivityTotal       decimal.Decimal
		StatementDebt             decimal.Decimal
		RemainingStatementDebt    decimal.Decimal
		MinPayment                decimal.Decimal
		RemainingMinPayment       decimal.Decimal
		StatementDate             time.Time
		DueDate                   time.Time
		CashLimit                 decimal.Decimal
		RemainingCashLimit        decimal.Decimal
		Currency                  string
		Points                    []PointBalance
		RemainingInstallmentTotal decimal.Decimal
		InstallmentSchedule       []InstallmentSlice
	}

	MoneyAmount struct {
		Value    decimal.Decimal
		Currency string
	}

	TransactionPoint struct {
		Value  decimal.Decimal
		Unit   string
		Status string
	}

	CardTransaction struct {
		ID                string
		Amount            MoneyAmount
		OriginalAmount    *MoneyAmount
		Time              time.Time
		Direction         Direction
		Description       string
		Points            []TransactionPoint
		InstallmentTotal  *MoneyAmount
		InstallmentCount  int // 0 when the purchase is not split
		InstallmentPeriod int
		MCC               string
	}

	PeriodTransactions struct {
		Period       int
		Transactions []CardTransaction
	}
)

// DisplayName returns the short name the user gave the account, falling back
// to the bank's product name.
func (a Account) DisplayName() string {
	if a.ShortName != "" {
		return a.ShortName
	}
	return a.ProductName
}

// IsCredit reports whether the card is a credit card.
func (c Card) IsCredit() bool { return c.Type == CardTypeCredit }

// IsVirtual reports whether the card is a virtual sub-card. Virtual cards
// share their parent's limit and debt and must not be double-counted.
func (c Card) IsVirtual() bool { return c.SubType == CardSubTypeVirtual }

// IsInstallment reports whether the purchase is split into installments.
// A count of 0 (absent) or 1 is a plain purchase.
func (t CardTransaction) IsInstallment() bool { return t.InstallmentCount > 1 }
