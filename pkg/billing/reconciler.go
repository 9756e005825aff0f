package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/usagerecord"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
	"github.com/ringledger/ringledger/pkg/logger"
	"github.com/ringledger/ringledger/pkg/metrics"
)

// UsageReporter pushes metered usage to the billing provider. Satisfied by
// the Stripe client; replaced with a mock in tests.
type UsageReporter interface {
	ReportUsage(ctx context.Context, subscriptionItemID string, quantity int64, at time.Time) error
}

// StripeReporter reports usage records against Stripe subscription items.
type StripeReporter struct{}

// NewStripeReporter configures the Stripe client and returns a reporter.
func NewStripeReporter(secretKey string) *StripeReporter {
	stripe.Key = secretKey
	return &StripeReporter{}
}

// ReportUsage creates one usage record for a subscription item.
func (r *StripeReporter) ReportUsage(ctx context.Context, subscriptionItemID string, quantity int64, at time.Time) error {
	params := &stripe.UsageRecordParams{
		SubscriptionItem: stripe.String(subscriptionItemID),
		Quantity:         stripe.Int64(quantity),
		Timestamp:        stripe.Int64(at.Unix()),
		Action:           stripe.String(string(stripe.UsageRecordActionIncrement)),
	}
	params.Context = ctx

	if _, err := usagerecord.New(params); err != nil {
		return fmt.Errorf("failed to create usage record: %w", err)
	}

	return nil
}

// Service reconciles the usage ledger: it aggregates unreported entries into
// each tenant's monthly spend and, when a Stripe subscription item is
// configured, reports the usage and marks the entries reported. The sync
// pipeline itself never touches monthly spend.
type Service struct {
	db       *ent.Client
	reporter UsageReporter
	log      logger.Logger
	metrics  *metrics.Metrics
}

// NewService creates a new billing reconciliation service. The reporter and
// metrics arguments may be nil.
func NewService(db *ent.Client, reporter UsageReporter, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:       db,
		reporter: reporter,
		log:      log,
		metrics:  m,
	}
}

// ReconcileAll runs reconciliation for every tenant with a billing account.
func (s *Service) ReconcileAll(ctx context.Context) error {
	accounts, err := s.db.BillingAccount.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load billing accounts: %w", err)
	}

	for _, acct := range accounts {
		if err := s.ReconcileTenant(ctx, acct.TenantID); err != nil {
			s.log.Error("reconciliation failed", "tenant_id", acct.TenantID, "error", err)
		}
	}

	return nil
}

// ReconcileTenant aggregates the tenant's unreported ledger entries into
// monthly spend and reports them to the billing provider.
func (s *Service) ReconcileTenant(ctx context.Context, tenantID int) error {
	acct, err := s.db.BillingAccount.
		Query().
		Where(billingaccount.TenantIDEQ(tenantID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load billing account: %w", err)
	}

	entries, err := s.db.UsageLedgerEntry.
		Query().
		Where(
			usageledgerentry.TenantIDEQ(tenantID),
			usageledgerentry.ReportedAtIsNil(),
		).
		Order(ent.Asc(usageledgerentry.FieldOccurredAt)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load unreported entries: %w", err)
	}

	if len(entries) == 0 {
		return nil
	}

	var totalCents int64
	now := time.Now()

	for _, entry := range entries {
		if s.reporter != nil && acct.StripeSubscriptionItemID != "" {
			if err := s.reporter.ReportUsage(ctx, acct.StripeSubscriptionItemID, entry.AmountCents, entry.OccurredAt); err != nil {
				// leave the entry unreported; the next pass retries it
				s.log.Warn("usage report failed", "entry_id", entry.ID, "error", err)
				continue
			}
			if s.metrics != nil {
				s.metrics.UsageEntriesReported.Inc()
			}
		}

		if _, err := entry.Update().SetReportedAt(now).Save(ctx); err != nil {
			return fmt.Errorf("failed to mark entry %d reported: %w", entry.ID, err)
		}

		totalCents += entry.AmountCents
	}

	if totalCents > 0 {
		if _, err := acct.Update().
			AddMonthlySpendCents(totalCents).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to update monthly spend: %w", err)
		}
	}

	s.log.Info("reconciled usage", "tenant_id", tenantID, "entries", len(entries), "cents", totalCents)
	return nil
}

// ResetMonthlySpend zeroes every account's monthly aggregate; scheduled for
// the first day of each month.
func (s *Service) ResetMonthlySpend(ctx context.Context) error {
	if err := s.db.BillingAccount.
		Update().
		SetMonthlySpendCents(0).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset monthly spend: %w", err)
	}
	return nil
}
