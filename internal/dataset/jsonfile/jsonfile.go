// Package jsonfile loads the mock dataset from its canonical JSON fixture.
//
// The fixture follows the Turkish open-banking field naming (hesaplar,
// kartlar, kartHareketleri, ...). Monetary strings are parsed into decimals
// here, once; a malformed number fails the load instead of surfacing later.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"denizkartim/internal/core"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads and decodes the fixture file.
func (s *Store) Load(_ context.Context) (*core.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Decode(raw)
}

// Decode parses a fixture document from raw JSON.
func Decode(raw []byte) (*core.Dataset, error) {
	var root wireRoot
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return root.toDataset()
}

// --- wire schema ---

type (
	wireRoot struct {
		Meta                []wireMeta                            `json:"_meta"`
		Accounts            []wireAccount                         `json:"hesaplar"`
		Balances            []wireBalance                         `json:"bakiyeler"`
		AccountTransactions map[string][]wireAccountTxn           `json:"hesapIslemleri"`
		Cards               []wireCard                            `json:"kartlar"`
		CardDetails         map[string]map[string]wireCardDetail  `json:"kartDetaylari"`
		CardTransactions    map[string]map[string]wirePeriod      `json:"kartHareketleri"`
		PreviousPeriods     map[string]map[string]wirePeriod      `json:"oncekiDonemOrnekleri"`
	}

	wireMeta struct {
		Description string   `json:"aciklama"`
		HHS         string   `json:"hhs"`
		HHSCode     string   `json:"hhsKod"`
		BankName    string   `json:"bankaAdi"`
		Provider    string   `json:"yos"`
		Consents    []string `json:"izinTurleri"`
		GrantedAt   string   `json:"rizaOlusTrh"`
		ExpiresAt   string   `json:"erisimIzniSonTrh"`
		HolderType  string   `json:"ohkTip"`
	}

	wireAccount struct {
		Ref         string  `json:"hspRef"`
		Number      string  `json:"hspNo"`
		BranchCode  string  `json:"hspShb"`
		BranchName  string  `json:"subeAdi"`
		ShortName   *string `json:"kisaAd"`
		Currency    string  `json:"prBrm"`
		Type        string  `json:"hspTur"`
		Kind        string  `json:"hspTip"`
		ProductName string  `json:"hspUrunAdi"`
		Status      string  `json:"hspDrm"`
		OpenedAt    string  `json:"hspAclsTrh"`
	}

	wireAccountCredit struct {
		UsedAmount string `json:"kulKrdTtr"`
		Included   string `json:"krdDhlGstr"`
	}

	wireBalance struct {
		Ref      string             `json:"hspRef"`
		Amount   string             `json:"bkyTtr"`
		Blocked  *string            `json:"blkTtr"`
		Currency string             `json:"prBrm"`
		Time     string             `json:"bkyZmn"`
		Credit   *wireAccountCredit `json:"krdHsp"`
	}

	wireCounterparty struct {
		MaskedIBAN *string `json:"krsMskIBAN"`
		Name       string  `json:"krsUnvan"`
		TaxID      *string `json:"krsKimlikVrs"`
	}

	wireAccountTxn struct {
		ID             string            `json:"islNo"`
		RefNo          string            `json:"refNo"`
		Amount         string            `json:"islTtr"`
		RunningBalance string            `json:"gnclBky"`
		Currency       string            `json:"prBrm"`
		Time           string            `json:"islGrckZaman"`
		Channel        string            `json:"kanal"`
		Direction      string            `json:"brcAlc"`
		Kind           string            `json:"islTur"`
		Purpose        string            `json:"islAmc"`
		StatementNo    *string           `json:"odmStmNo"`
		Description    string            `json:"islAcklm"`
		Counterparty   *wireCounterparty `json:"krsTrf"`
	}

	wireCard struct {
		Ref          string  `json:"kartRef"`
		Number       string  `json:"kartNo"`
		ParentNumber *string `json:"asilKartNo"`
		Type         string  `json:"kartTipi"`
		SubType      string  `json:"altKartTipi"`
		Form         string  `json:"kartFormu"`
		Kind         string  `json:"kartTuru"`
		Status       string  `json:"kartStatu"`
		Scheme       string  `json:"kartSema"`
		ProductName  string  `json:"kartUrunAdi"`
		BankCode     string  `json:"hhsKod"`
	}

	wirePoint struct {
		Value string `json:"puanDegeri"`
		Kind  string `json:"puanTipi"`
	}

	wireInstallmentSlice struct {
		Period int    `json:"donem"`
		Amount string `json:"taksitTutari"`
	}

	wireCardDetail struct {
		TotalLimit                string                 `json:"toplamLimit"`
		AvailableLimit            string                 `json:"kullanilabilirLimit"`
		PeriodActivityTotal       string                 `json:"donemIciHareketToplami"`
		StatementDebt             string                 `json:"ekstreBorcu"`
		RemainingStatementDebt    string                 `json:"kalanEkstreBorcu"`
		MinPayment                string                 `json:"asgariOdemeTutari"`
		RemainingMinPayment       string                 `json:"kalanAsgariOdemeTutari"`
		StatementDate             string                 `json:"hesapKesimTarihi"`
		DueDate                   string                 `json:"sonOdemeTarihi"`
		CashLimit                 string                 `json:"nakitCekimLimiti"`
		RemainingCashLimit        string                 `json:"kalanNakitCekimLimiti"`
		Currency                  string                 `json:"prBrm"`
		Points                    []wirePoint            `json:"puanBilgisi"`
		RemainingInstallmentTotal string                 `json:"kalanToplamTaksitTutari"`
		InstallmentSchedule       []wireInstallmentSlice `json:"donemTaksitTutarBilgisi"`
	}

	wireAmount struct {
		Value    string `json:"ttr"`
		Currency string `json:"prBrm"`
	}

	wireTxnPoint struct {
		Value  string `json:"islemPuani"`
		Unit   string `json:"islemPuanBirimi"`
		Status string `json:"islemPuanDurumu"`
	}

	wireCardTxn struct {
		ID                string         `json:"islemNo"`
		Amount            wireAmount     `json:"islemTutari"`
		OriginalAmount    *wireAmount    `json:"orijinalIslemTutari"`
		Time              string         `json:"islemTarihi"`
		Direction         string         `json:"borcAlacak"`
		Description       string         `json:"islemAciklamasi"`
		Points            []wireTxnPoint `json:"islemPuanBilgileri"`
		InstallmentTotal  *wireAmount    `json:"toplamTaksitTutari"`
		InstallmentCount  *int           `json:"toplamTaksitSayisi"`
		InstallmentPeriod *int           `json:"taksitDonemi"`
		MCC               *string        `json:"saticiKategoriKodu"`
	}

	wirePeriod struct {
		Period       int           `json:"donem"`
		Transactions []wireCardTxn `json:"hareketBilgileri"`
	}
)

// --- conversion ---

func (r wireRoot) toDataset() (*core.Dataset, error) {
	ds := &core.Dataset{
		AccountTransactions: make(map[string][]core.AccountTransaction, len(r.AccountTransactions)),
		CardDetails:         make(map[string]map[string]core.CardDetail, len(r.CardDetails)),
		CardTransactions:    make(map[string]map[string]core.PeriodTransactions, len(r.CardTransactions)),
		PreviousPeriods:     make(map[string]map[string]core.PeriodTransactions, len(r.PreviousPeriods)),
	}

	for _, m := range r.Meta {
		ds.Meta = append(ds.Meta, core.BankConnection{
			Description: m.Description,
			BankCode:    m.HHSCode,
			BankName:    m.BankName,
			Provider:    m.Provider,
			Consents:    m.Consents,
			GrantedAt:   parseTime(m.GrantedAt),
			ExpiresAt:   parseTime(m.ExpiresAt),
			HolderType:  m.HolderType,
		})
	}

	for _, a := range r.Accounts {
		ds.Accounts = append(ds.Accounts, core.Account{
			Ref:         a.Ref,
			Number:      a.Number,
			BranchName:  a.BranchName,
			ShortName:   deref(a.ShortName),
			Currency:    a.Currency,
			Type:        a.Type,
			Kind:        a.Kind,
			ProductName: a.ProductName,
			Status:      a.Status,
			OpenedAt:    parseTime(a.OpenedAt),
		})
	}

	for _, b := range r.Balances {
		bal, err := b.toBalance()
		if err != nil {
			return nil, fmt.Errorf("balance %s: %w", b.Ref, err)
		}
		ds.Balances = append(ds.Balances, bal)
	}

	for ref, txns := range r.AccountTransactions {
		out := make([]core.AccountTransaction, 0, len(txns))
		for _, t := range txns {
			converted, err := t.toTransaction()
			if err != nil {
				return nil, fmt.Errorf("account %s transaction %s: %w", ref, t.ID, err)
			}
			out = append(out, converted)
		}
		ds.AccountTransactions[ref] = out
	}

	for _, c := range r.Cards {
		ds.Cards = append(ds.Cards, core.Card{
			Ref:          c.Ref,
			Number:       c.Number,
			ParentNumber: deref(c.ParentNumber),
			Type:         c.Type,
			SubType:      c.SubType,
			Form:         c.Form,
			Kind:         c.Kind,
			Status:       c.Status,
			Scheme:       c.Scheme,
			ProductName:  c.ProductName,
			BankCode:     c.BankCode,
		})
	}

	for ref, byCurrency := range r.CardDetails {
		out := make(map[string]core.CardDetail, len(byCurrency))
		for currency, d := range byCurrency {
			converted, err := d.toDetail(currency)
			if err != nil {
				return nil, fmt.Errorf("card %s detail %s: %w", ref, currency, err)
			}
			out[currency] = converted
		}
		ds.CardDetails[ref] = out
	}

	var err error
	if ds.CardTransactions, err = convertPeriods(r.CardTransactions); err != nil {
		return nil, fmt.Errorf("card transactions: %w", err)
	}
	if ds.PreviousPeriods, err = convertPeriods(r.PreviousPeriods); err != nil {
		return nil, fmt.Errorf("previous periods: %w", err)
	}

	return ds, nil
}

func (b wireBalance) toBalance() (core.Balance, error) {
	amount, err := core.ParseAmount(b.Amount)
	if err != nil {
		return core.Balance{}, err
	}
	blocked, err := core.ParseOptionalAmount(deref(b.Blocked))
	if err != nil {
		return core.Balance{}, err
	}
	bal := core.Balance{
		AccountRef: b.Ref,
		Amount:     amount,
		Blocked:    blocked,
		Currency:   b.Currency,
		Time:       parseTime(b.Time),
	}
	if b.Credit != nil {
		used, err := core.ParseOptionalAmount(b.Credit.UsedAmount)
		if err != nil {
			return core.Balance{}, err
		}
		bal.Credit = &core.AccountCredit{
			UsedAmount:        used,
			IncludedInBalance: b.Credit.Included == "E",
		}
	}
	return bal, nil
}

func (t wireAccountTxn) toTransaction() (core.AccountTransaction, error) {
	amount, err := core.ParseAmount(t.Amount)
	if err != nil {
		return core.AccountTransaction{}, err
	}
	running, err := core.ParseAmount(t.RunningBalance)
	if err != nil {
		return core.AccountTransaction{}, err
	}
	txn := core.AccountTransaction{
		ID:             t.ID,
		RefNo:          t.RefNo,
		Amount:         amount,
		RunningBalance: running,
		Currency:       t.Currency,
		Time:           parseTime(t.Time),
		Channel:        t.Channel,
		Direction:      core.Direction(t.Direction),
		Kind:           t.Kind,
		Purpose:        t.Purpose,
		StatementNo:    deref(t.StatementNo),
		Description:    t.Description,
	}
	if t.Counterparty != nil {
		txn.Counterparty = &core.Counterparty{
			MaskedIBAN: deref(t.Counterparty.MaskedIBAN),
			Name:       t.Counterparty.Name,
			TaxID:      deref(t.Counterparty.TaxID),
		}
	}
	return txn, nil
}

func (d wireCardDetail) toDetail(currency string) (core.CardDetail, error) {
	detail := core.CardDetail{
		StatementDate: parseTime(d.StatementDate),
		DueDate:       parseTime(d.DueDate),
		Currency:      currency,
	}

	var err error
	if detail.TotalLimit, err = core.ParseAmount(d.TotalLimit); err != nil {
		return detail, fmt.Errorf("toplamLimit: %w", err)
	}
	if detail.AvailableLimit, err = core.ParseAmount(d.AvailableLimit); err != nil {
		return detail, fmt.Errorf("kullanilabilirLimit: %w", err)
	}
	if detail.PeriodActivityTotal, err = core.ParseOptionalAmount(d.PeriodActivityTotal); err != nil {
		return detail, fmt.Errorf("donemIciHareketToplami: %w", err)
	}
	if detail.StatementDebt, err = core.ParseOptionalAmount(d.StatementDebt); err != nil {
		return detail, fmt.Errorf("ekstreBorcu: %w", err)
	}
	if detail.RemainingStatementDebt, err = core.ParseOptionalAmount(d.RemainingStatementDebt); err != nil {
		return detail, fmt.Errorf("kalanEkstreBorcu: %w", err)
	}
	if detail.MinPayment, err = core.ParseOptionalAmount(d.MinPayment); err != nil {
		return detail, fmt.Errorf("asgariOdemeTutari: %w", err)
	}
	if detail.RemainingMinPayment, err = core.ParseOptionalAmount(d.RemainingMinPayment); err != nil {
		return detail, fmt.Errorf("kalanAsgariOdemeTutari: %w", err)
	}
	if detail.CashLimit, err = core.ParseOptionalAmount(d.CashLimit); err != nil {
		return detail, fmt.Errorf("nakitCekimLimiti: %w", err)
	}
	if detail.RemainingCashLimit, err = core.ParseOptionalAmount(d.RemainingCashLimit); err != nil {
		return detail, fmt.Errorf("kalanNakitCekimLimiti: %w", err)
	}
	if detail.RemainingInstallmentTotal, err = core.ParseOptionalAmount(d.RemainingInstallmentTotal); err != nil {
		return detail, fmt.Errorf("kalanToplamTaksitTutari: %w", err)
	}

	for _, p := range d.Points {
		value, err := core.ParseAmount(p.Value)
		if err != nil {
			return detail, fmt.Errorf("puanDegeri: %w", err)
		}
		detail.Points = append(detail.Points, core.PointBalance{Kind: p.Kind, Value: value})
	}

	for _, s := range d.InstallmentSchedule {
		amount, err := core.ParseAmount(s.Amount)
		if err != nil {
			return detail, fmt.Errorf("taksitTutari donem %d: %w", s.Period, err)
		}
		detail.InstallmentSchedule = append(detail.InstallmentSchedule, core.InstallmentSlice{
			Period: s.Period,
			Amount: amount,
		})
	}

	return detail, nil
}

func (t wireCardTxn) toTransaction() (core.CardTransaction, error) {
	amount, err := t.Amount.toMoney()
	if err != nil {
		return core.CardTransaction{}, fmt.Errorf("islemTutari: %w", err)
	}
	txn := core.CardTransaction{
		ID:                t.ID,
		Amount:            amount,
		Time:              parseTime(t.Time),
		Direction:         core.Direction(t.Direction),
		Description:       t.Description,
		InstallmentCount:  derefInt(t.InstallmentCount),
		InstallmentPeriod: derefInt(t.InstallmentPeriod),
		MCC:               deref(t.MCC),
	}
	if t.OriginalAmount != nil {
		original, err := t.OriginalAmount.toMoney()
		if err != nil {
			return core.CardTransaction{}, fmt.Errorf("orijinalIslemTutari: %w", err)
		}
		txn.OriginalAmount = &original
	}
	if t.InstallmentTotal != nil {
		total, err := t.InstallmentTotal.toMoney()
		if err != nil {
			return core.CardTransaction{}, fmt.Errorf("toplamTaksitTutari: %w", err)
		}
		txn.InstallmentTotal = &total
	}
	for _, p := range t.Points {
		value, err := core.ParseOptionalAmount(p.Value)
		if err != nil {
			return core.CardTransaction{}, fmt.Errorf("islemPuani: %w", err)
		}
		txn.Points = append(txn.Points, core.TransactionPoint{Value: value, Unit: p.Unit, Status: p.Status})
	}
	return txn, nil
}

func (a wireAmount) toMoney() (core.MoneyAmount, error) {
	value, err := core.ParseAmount(a.Value)
	if err != nil {
		return core.MoneyAmount{}, err
	}
	return core.MoneyAmount{Value: value, Currency: a.Currency}, nil
}

func convertPeriods(in map[string]map[string]wirePeriod) (map[string]map[string]core.PeriodTransactions, error) {
	out := make(map[string]map[string]core.PeriodTransactions, len(in))
	for cardRef, byCurrency := range in {
		converted := make(map[string]core.PeriodTransactions, len(byCurrency))
		for currency, period := range byCurrency {
			txns := make([]core.CardTransaction, 0, len(period.Transactions))
			for _, t := range period.Transactions {
				txn, err := t.toTransaction()
				if err != nil {
					return nil, fmt.Errorf("card %s %s transaction %s: %w", cardRef, currency, t.ID, err)
				}
				txns = append(txns, txn)
			}
			converted[currency] = core.PeriodTransactions{Period: period.Period, Transactions: txns}
		}
		out[cardRef] = converted
	}
	return out, nil
}

// parseTime accepts the fixture's two timestamp shapes: RFC3339 and plain
// dates. Unparseable values map to the zero time, matching the permissive
// Date handling of the consuming views.
func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
