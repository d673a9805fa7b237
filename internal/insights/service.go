package insights

import (
	"context"
	"time"

	"denizkartim/internal/core"

	"golang.org/x/sync/errgroup"
)

// Service is the read-only facade over the loaded dataset. It holds no
// mutable state; every method returns a fresh derived structure, so calls
// are safe from any number of goroutines.
type Service struct {
	data    *core.Dataset
	catalog core.Catalog
	rules   Rules
	now     func() time.Time
}

type Option func(*Service)

// WithCatalog replaces the default MCC category catalog.
func WithCatalog(c core.Catalog) Option {
	return func(s *Service) { s.catalog = c }
}

// WithRules replaces the default detection rules.
func WithRules(r Rules) Option {
	return func(s *Service) { s.rules = r }
}

// WithClock fixes the clock used for date labels and due-date countdowns.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(data *core.Dataset, opts ...Option) *Service {
	s := &Service{
		data:    data,
		catalog: core.DefaultCatalog(),
		rules:   DefaultRules(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryTransactions builds the filtered transaction view. The category
// summary intentionally ignores the type filter: the spending breakdown
// stays stable while the user flips between debit, credit, and installment
// tabs.
func (s *Service) QueryTransactions(f Filters) TransactionReport {
	all := enrichAll(s.data, s.catalog, f.CardRef, f.Currency)
	filtered := applyFilters(all, f)

	withoutType := f
	withoutType.Type = TypeAll
	forCategories := applyFilters(all, withoutType)

	spend, payments := spendTotals(filtered)

	return TransactionReport{
		Transactions:  filtered,
		Groups:        groupByDate(filtered, s.now()),
		Categories:    categorySummary(forCategories),
		TotalSpend:    spend,
		TotalPayments: payments,
		Count:         len(filtered),
	}
}

func (s *Service) Subscriptions() SubscriptionReport {
	return detectSubscriptions(s.data, s.catalog, s.rules)
}

func (s *Service) AccountInsights() AccountReport {
	return detectAccountInsights(s.data, s.rules)
}

func (s *Service) FinancialSummary() SummaryReport {
	return buildSummary(s.data, s.rules, s.now())
}

// Snapshot bundles all four views, unfiltered.
type Snapshot struct {
	Transactions  TransactionReport  `json:"transactions"`
	Subscriptions SubscriptionReport `json:"subscriptions"`
	Accounts      AccountReport      `json:"accounts"`
	Summary       SummaryReport      `json:"summary"`
}

// Snapshot computes the four views concurrently. The engines are pure
// functions over immutable data, so the fan-out needs no locking.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Transactions = s.QueryTransactions(Filters{})
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Subscriptions = s.Subscriptions()
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Accounts = s.AccountInsights()
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		snap.Summary = s.FinancialSummary()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
