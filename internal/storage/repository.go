// Package storage keeps the mock dataset as a SQLite snapshot: a packaging
// of the JSON fixture for hosts that prefer a single binary-friendly file.
// cmd/fixture-import writes it; the server only ever reads it.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"denizkartim/internal/core"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const (
	periodCurrent  = "current"
	periodPrevious = "previous"
)

type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(dbPath string) (*SnapshotRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SnapshotRepository{db: db}, nil
}

func (r *SnapshotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Import replaces the snapshot contents with the given dataset. The write
// happens in one transaction so a half-imported snapshot is never visible.
func (r *SnapshotRepository) Import(ctx context.Context, ds *core.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		"card_transactions", "card_periods", "card_installments", "card_points",
		"card_details", "cards", "account_transactions", "balances", "accounts",
		"bank_connections",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, m := range ds.Meta {
		consents, err := json.Marshal(m.Consents)
		if err != nil {
			return fmt.Errorf("encode consents: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bank_connections (hhs_code, bank_name, provider, description, consents, granted_at, expires_at, holder_type)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.BankCode, m.BankName, m.Provider, m.Description, string(consents),
			timeString(m.GrantedAt), timeString(m.ExpiresAt), m.HolderType); err != nil {
			return fmt.Errorf("insert bank connection: %w", err)
		}
	}

	for _, a := range ds.Accounts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accounts (ref, number, branch_name, short_name, currency, type, kind, product_name, status, opened_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.Ref, a.Number, a.BranchName, a.ShortName, a.Currency, a.Type, a.Kind,
			a.ProductName, a.Status, timeString(a.OpenedAt)); err != nil {
			return fmt.Errorf("insert account %s: %w", a.Ref, err)
		}
	}

	for _, b := range ds.Balances {
		var creditUsed any
		var creditIncluded any
		if b.Credit != nil {
			creditUsed = b.Credit.UsedAmount.String()
			creditIncluded = boolInt(b.Credit.IncludedInBalance)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO balances (account_ref, amount, blocked, currency, balance_time, credit_used, credit_included)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			b.AccountRef, b.Amount.String(), b.Blocked.String(), b.Currency,
			timeString(b.Time), creditUsed, creditIncluded); err != nil {
			return fmt.Errorf("insert balance %s: %w", b.AccountRef, err)
		}
	}

	for ref, txns := range ds.AccountTransactions {
		for _, t := range txns {
			var cpIBAN, cpName, cpTaxID any
			if t.Counterparty != nil {
				cpIBAN, cpName, cpTaxID = t.Counterparty.MaskedIBAN, t.Counterparty.Name, t.Counterparty.TaxID
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO account_transactions (id, account_ref, ref_no, amount, running_balance, currency, txn_time,
				 channel, direction, kind, purpose, statement_no, description, cp_masked_iban, cp_name, cp_tax_id)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, ref, t.RefNo, t.Amount.String(), t.RunningBalance.String(), t.Currency,
				timeString(t.Time), t.Channel, string(t.Direction), t.Kind, t.Purpose,
				t.StatementNo, t.Description, cpIBAN, cpName, cpTaxID); err != nil {
				return fmt.Errorf("insert account transaction %s: %w", t.ID, err)
			}
		}
	}

	for _, c := range ds.Cards {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cards (ref, number, parent_number, type, sub_type, form, kind, status, scheme, product_name, bank_code)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Ref, c.Number, c.ParentNumber, c.Type, c.SubType, c.Form, c.Kind,
			c.Status, c.Scheme, c.ProductName, c.BankCode); err != nil {
			return fmt.Errorf("insert card %s: %w", c.Ref, err)
		}
	}

	for ref, byCurrency := range ds.CardDetails {
		for currency, d := range byCurrency {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO card_details (card_ref, currency, total_limit, available_limit, period_activity_total,
				 statement_debt, remaining_statement_debt, min_payment, remaining_min_payment, statement_date,
				 due_date, cash_limit, remaining_cash_limit, remaining_installment_total)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				ref, currency, d.TotalLimit.String(), d.AvailableLimit.String(),
				d.PeriodActivityTotal.String(), d.StatementDebt.String(),
				d.RemainingStatementDebt.String(), d.MinPayment.String(),
				d.RemainingMinPayment.String(), timeString(d.StatementDate),
				timeString(d.DueDate), d.CashLimit.String(), d.RemainingCashLimit.String(),
				d.RemainingInstallmentTotal.String()); err != nil {
				return fmt.Errorf("insert card detail %s/%s: %w", ref, currency, err)
			}
			for _, p := range d.Points {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO card_points (card_ref, currency, kind, value) VALUES (?, ?, ?, ?)`,
					ref, currency, p.Kind, p.Value.String()); err != nil {
					return fmt.Errorf("insert card point %s/%s: %w", ref, currency, err)
				}
			}
			for _, s := range d.InstallmentSchedule {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO card_installments (card_ref, currency, period, amount) VALUES (?, ?, ?, ?)`,
					ref, currency, s.Period, s.Amount.String()); err != nil {
					return fmt.Errorf("insert card installment %s/%s: %w", ref, currency, err)
				}
			}
		}
	}

	if err := importPeriods(ctx, tx, ds.CardTransactions, periodCurrent); err != nil {
		return err
	}
	if err := importPeriods(ctx, tx, ds.PreviousPeriods, periodPrevious); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

func importPeriods(ctx context.Context, tx *sql.Tx, periods map[string]map[string]core.PeriodTransactions, kind string) error {
	for ref, byCurrency := range periods {
		for currency, period := range byCurrency {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO card_periods (card_ref, currency, period_kind, period) VALUES (?, ?, ?, ?)`,
				ref, currency, kind, period.Period); err != nil {
				return fmt.Errorf("insert card period %s/%s: %w", ref, currency, err)
			}
			for seq, t := range period.Transactions {
				var originalAmount, originalCurrency any
				if t.OriginalAmount != nil {
					originalAmount = t.OriginalAmount.Value.String()
					originalCurrency = t.OriginalAmount.Currency
				}
				var installmentTotal, installmentTotalCurrency any
				if t.InstallmentTotal != nil {
					installmentTotal = t.InstallmentTotal.Value.String()
					installmentTotalCurrency = t.InstallmentTotal.Currency
				}
				var pointsJSON any
				if len(t.Points) > 0 {
					raw, err := json.Marshal(t.Points)
					if err != nil {
						return fmt.Errorf("encode transaction points %s: %w", t.ID, err)
					}
					pointsJSON = string(raw)
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO card_transactions (id, card_ref, currency, period_kind, seq, amount, amount_currency,
					 original_amount, original_currency, txn_time, direction, description, points_json,
					 installment_total, installment_total_currency, installment_count, installment_period, mcc)
					 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
					t.ID, ref, currency, kind, seq, t.Amount.Value.String(), t.Amount.Currency,
					originalAmount, originalCurrency, timeString(t.Time), string(t.Direction),
					t.Description, pointsJSON, installmentTotal, installmentTotalCurrency,
					t.InstallmentCount, t.InstallmentPeriod, t.MCC); err != nil {
					return fmt.Errorf("insert card transaction %s: %w", t.ID, err)
				}
			}
		}
	}
	return nil
}

// Load reads the whole snapshot back into memory.
func (r *SnapshotRepository) Load(ctx context.Context) (*core.Dataset, error) {
	ds := &core.Dataset{
		AccountTransactions: make(map[string][]core.AccountTransaction),
		CardDetails:         make(map[string]map[string]core.CardDetail),
		CardTransactions:    make(map[string]map[string]core.PeriodTransactions),
		PreviousPeriods:     make(map[string]map[string]core.PeriodTransactions),
	}

	if err := r.loadConnections(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadAccounts(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadBalances(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadAccountTransactions(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadCards(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadCardDetails(ctx, ds); err != nil {
		return nil, err
	}
	if err := r.loadCardTransactions(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func (r *SnapshotRepository) loadConnections(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT hhs_code, bank_name, provider, description, consents, granted_at, expires_at, holder_type FROM bank_connections`)
	if err != nil {
		return fmt.Errorf("query bank connections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m core.BankConnection
		var consents, grantedAt, expiresAt string
		if err := rows.Scan(&m.BankCode, &m.BankName, &m.Provider, &m.Description, &consents, &grantedAt, &expiresAt, &m.HolderType); err != nil {
			return fmt.Errorf("scan bank connection: %w", err)
		}
		if err := json.Unmarshal([]byte(consents), &m.Consents); err != nil {
			return fmt.Errorf("decode consents: %w", err)
		}
		m.GrantedAt = parseTimeString(grantedAt)
		m.ExpiresAt = parseTimeString(expiresAt)
		ds.Meta = append(ds.Meta, m)
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadAccounts(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ref, number, branch_name, short_name, currency, type, kind, product_name, status, opened_at FROM accounts`)
	if err != nil {
		return fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a core.Account
		var openedAt string
		if err := rows.Scan(&a.Ref, &a.Number, &a.BranchName, &a.ShortName, &a.Currency, &a.Type, &a.Kind, &a.ProductName, &a.Status, &openedAt); err != nil {
			return fmt.Errorf("scan account: %w", err)
		}
		a.OpenedAt = parseTimeString(openedAt)
		ds.Accounts = append(ds.Accounts, a)
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadBalances(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_ref, amount, blocked, currency, balance_time, credit_used, credit_included FROM balances`)
	if err != nil {
		return fmt.Errorf("query balances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b core.Balance
		var amount, blocked, balanceTime string
		var creditUsed sql.NullString
		var creditIncluded sql.NullInt64
		if err := rows.Scan(&b.AccountRef, &amount, &blocked, &b.Currency, &balanceTime, &creditUsed, &creditIncluded); err != nil {
			return fmt.Errorf("scan balance: %w", err)
		}
		if b.Amount, err = core.ParseAmount(amount); err != nil {
			return fmt.Errorf("balance %s: %w", b.AccountRef, err)
		}
		if b.Blocked, err = core.ParseOptionalAmount(blocked); err != nil {
			return fmt.Errorf("balance %s blocked: %w", b.AccountRef, err)
		}
		b.Time = parseTimeString(balanceTime)
		if creditUsed.Valid {
			used, err := core.ParseOptionalAmount(creditUsed.String)
			if err != nil {
				return fmt.Errorf("balance %s credit: %w", b.AccountRef, err)
			}
			b.Credit = &core.AccountCredit{UsedAmount: used, IncludedInBalance: creditIncluded.Int64 == 1}
		}
		ds.Balances = append(ds.Balances, b)
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadAccountTransactions(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_ref, ref_no, amount, running_balance, currency, txn_time, channel, direction,
		 kind, purpose, statement_no, description, cp_masked_iban, cp_name, cp_tax_id
		 FROM account_transactions ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("query account transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t core.AccountTransaction
		var accountRef, amount, running, txnTime, direction string
		var cpIBAN, cpName, cpTaxID sql.NullString
		if err := rows.Scan(&t.ID, &accountRef, &t.RefNo, &amount, &running, &t.Currency, &txnTime,
			&t.Channel, &direction, &t.Kind, &t.Purpose, &t.StatementNo, &t.Description,
			&cpIBAN, &cpName, &cpTaxID); err != nil {
			return fmt.Errorf("scan account transaction: %w", err)
		}
		if t.Amount, err = core.ParseAmount(amount); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if t.RunningBalance, err = core.ParseAmount(running); err != nil {
			return fmt.Errorf("transaction %s balance: %w", t.ID, err)
		}
		t.Time = parseTimeString(txnTime)
		t.Direction = core.Direction(direction)
		if cpName.Valid {
			t.Counterparty = &core.Counterparty{
				MaskedIBAN: cpIBAN.String,
				Name:       cpName.String,
				TaxID:      cpTaxID.String,
			}
		}
		ds.AccountTransactions[accountRef] = append(ds.AccountTransactions[accountRef], t)
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadCards(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ref, number, parent_number, type, sub_type, form, kind, status, scheme, product_name, bank_code FROM cards`)
	if err != nil {
		return fmt.Errorf("query cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c core.Card
		if err := rows.Scan(&c.Ref, &c.Number, &c.ParentNumber, &c.Type, &c.SubType, &c.Form,
			&c.Kind, &c.Status, &c.Scheme, &c.ProductName, &c.BankCode); err != nil {
			return fmt.Errorf("scan card: %w", err)
		}
		ds.Cards = append(ds.Cards, c)
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadCardDetails(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT card_ref, currency, total_limit, available_limit, period_activity_total, statement_debt,
		 remaining_statement_debt, min_payment, remaining_min_payment, statement_date, due_date,
		 cash_limit, remaining_cash_limit, remaining_installment_total FROM card_details`)
	if err != nil {
		return fmt.Errorf("query card details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref string
		var d core.CardDetail
		raw := make([]string, 10)
		var statementDate, dueDate string
		if err := rows.Scan(&ref, &d.Currency, &raw[0], &raw[1], &raw[2], &raw[3], &raw[4],
			&raw[5], &raw[6], &statementDate, &dueDate, &raw[7], &raw[8], &raw[9]); err != nil {
			return fmt.Errorf("scan card detail: %w", err)
		}
		fields := []*decimal.Decimal{
			&d.TotalLimit, &d.AvailableLimit, &d.PeriodActivityTotal, &d.StatementDebt,
			&d.RemainingStatementDebt, &d.MinPayment, &d.RemainingMinPayment,
			&d.CashLimit, &d.RemainingCashLimit, &d.RemainingInstallmentTotal,
		}
		for i, dst := range fields {
			v, err := core.ParseOptionalAmount(raw[i])
			if err != nil {
				return fmt.Errorf("card detail %s/%s: %w", ref, d.Currency, err)
			}
			*dst = v
		}
		d.StatementDate = parseTimeString(statementDate)
		d.DueDate = parseTimeString(dueDate)

		if ds.CardDetails[ref] == nil {
			ds.CardDetails[ref] = make(map[string]core.CardDetail)
		}
		ds.CardDetails[ref][d.Currency] = d
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := r.loadCardPoints(ctx, ds); err != nil {
		return err
	}
	return r.loadCardInstallments(ctx, ds)
}

func (r *SnapshotRepository) loadCardPoints(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx, `SELECT card_ref, currency, kind, value FROM card_points ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("query card points: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref, currency, kind, value string
		if err := rows.Scan(&ref, &currency, &kind, &value); err != nil {
			return fmt.Errorf("scan card point: %w", err)
		}
		v, err := core.ParseAmount(value)
		if err != nil {
			return fmt.Errorf("card point %s/%s: %w", ref, currency, err)
		}
		detail, ok := ds.CardDetails[ref][currency]
		if !ok {
			continue
		}
		detail.Points = append(detail.Points, core.PointBalance{Kind: kind, Value: v})
		ds.CardDetails[ref][currency] = detail
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadCardInstallments(ctx context.Context, ds *core.Dataset) error {
	rows, err := r.db.QueryContext(ctx, `SELECT card_ref, currency, period, amount FROM card_installments ORDER BY period`)
	if err != nil {
		return fmt.Errorf("query card installments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref, currency, amount string
		var period int
		if err := rows.Scan(&ref, &currency, &period, &amount); err != nil {
			return fmt.Errorf("scan card installment: %w", err)
		}
		v, err := core.ParseAmount(amount)
		if err != nil {
			return fmt.Errorf("card installment %s/%s: %w", ref, currency, err)
		}
		detail, ok := ds.CardDetails[ref][currency]
		if !ok {
			continue
		}
		detail.InstallmentSchedule = append(detail.InstallmentSchedule, core.InstallmentSlice{Period: period, Amount: v})
		ds.CardDetails[ref][currency] = detail
	}
	return rows.Err()
}

func (r *SnapshotRepository) loadCardTransactions(ctx context.Context, ds *core.Dataset) error {
	periods := map[string]map[string]map[string]int{} // kind -> ref -> currency -> period
	rows, err := r.db.QueryContext(ctx, `SELECT card_ref, currency, period_kind, period FROM card_periods`)
	if err != nil {
		return fmt.Errorf("query card periods: %w", err)
	}
	for rows.Next() {
		var ref, currency, kind string
		var period int
		if err := rows.Scan(&ref, &currency, &kind, &period); err != nil {
			rows.Close()
			return fmt.Errorf("scan card period: %w", err)
		}
		if periods[kind] == nil {
			periods[kind] = map[string]map[string]int{}
		}
		if periods[kind][ref] == nil {
			periods[kind][ref] = map[string]int{}
		}
		periods[kind][ref][currency] = period
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	txnRows, err := r.db.QueryContext(ctx,
		`SELECT id, card_ref, currency, period_kind, amount, amount_currency, original_amount, original_currency,
		 txn_time, direction, description, points_json, installment_total, installment_total_currency,
		 installment_count, installment_period, mcc
		 FROM card_transactions ORDER BY card_ref, currency, period_kind, seq`)
	if err != nil {
		return fmt.Errorf("query card transactions: %w", err)
	}
	defer txnRows.Close()

	for txnRows.Next() {
		var t core.CardTransaction
		var ref, currency, kind, amount, amountCurrency, txnTime, direction string
		var originalAmount, originalCurrency, pointsJSON, installmentTotal, installmentTotalCurrency sql.NullString
		if err := txnRows.Scan(&t.ID, &ref, &currency, &kind, &amount, &amountCurrency,
			&originalAmount, &originalCurrency, &txnTime, &direction, &t.Description,
			&pointsJSON, &installmentTotal, &installmentTotalCurrency,
			&t.InstallmentCount, &t.InstallmentPeriod, &t.MCC); err != nil {
			return fmt.Errorf("scan card transaction: %w", err)
		}
		value, err := core.ParseAmount(amount)
		if err != nil {
			return fmt.Errorf("card transaction %s: %w", t.ID, err)
		}
		t.Amount = core.MoneyAmount{Value: value, Currency: amountCurrency}
		if originalAmount.Valid {
			v, err := core.ParseAmount(originalAmount.String)
			if err != nil {
				return fmt.Errorf("card transaction %s original: %w", t.ID, err)
			}
			t.OriginalAmount = &core.MoneyAmount{Value: v, Currency: originalCurrency.String}
		}
		if installmentTotal.Valid {
			v, err := core.ParseAmount(installmentTotal.String)
			if err != nil {
				return fmt.Errorf("card transaction %s installment total: %w", t.ID, err)
			}
			t.InstallmentTotal = &core.MoneyAmount{Value: v, Currency: installmentTotalCurrency.String}
		}
		if pointsJSON.Valid {
			if err := json.Unmarshal([]byte(pointsJSON.String), &t.Points); err != nil {
				return fmt.Errorf("card transaction %s points: %w", t.ID, err)
			}
		}
		t.Time = parseTimeString(txnTime)
		t.Direction = core.Direction(direction)

		target := ds.CardTransactions
		if kind == periodPrevious {
			target = ds.PreviousPeriods
		}
		if target[ref] == nil {
			target[ref] = make(map[string]core.PeriodTransactions)
		}
		entry := target[ref][currency]
		entry.Period = periods[kind][ref][currency]
		entry.Transactions = append(entry.Transactions, t)
		target[ref][currency] = entry
	}
	return txnRows.Err()
}

func timeString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseTimeString(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
