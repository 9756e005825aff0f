package billing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/enttest"
	"github.com/ringledger/ringledger/ent/usageledgerentry"
)

type reportedUsage struct {
	subscriptionItemID string
	quantity           int64
}

// mockReporter records usage reports and optionally fails them
type mockReporter struct {
	reports []reportedUsage
	err     error
}

func (m *mockReporter) ReportUsage(ctx context.Context, subscriptionItemID string, quantity int64, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, reportedUsage{subscriptionItemID, quantity})
	return nil
}

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func createTenantWithAccount(t *testing.T, db *ent.Client, subscriptionItemID string) (*ent.Tenant, *ent.BillingAccount) {
	ctx := context.Background()

	tenant, err := db.Tenant.Create().SetName("Test Tenant").Save(ctx)
	require.NoError(t, err)

	builder := db.BillingAccount.
		Create().
		SetTenantID(tenant.ID).
		SetInboundRateCents(100).
		SetOutboundRateCents(100)
	if subscriptionItemID != "" {
		builder = builder.SetStripeSubscriptionItemID(subscriptionItemID)
	}
	acct, err := builder.Save(ctx)
	require.NoError(t, err)

	return tenant, acct
}

func createUnreportedEntry(t *testing.T, db *ent.Client, tenantID int, amountCents int64) *ent.UsageLedgerEntry {
	ctx := context.Background()

	rec, err := db.CallRecord.
		Create().
		SetTenantID(tenantID).
		SetProviderCallID(fmt.Sprintf("call-%d-%d", tenantID, amountCents)).
		SetDirection("inbound").
		SetFromNumber("+12125551234").
		Save(ctx)
	require.NoError(t, err)

	entry, err := db.UsageLedgerEntry.
		Create().
		SetTenantID(tenantID).
		SetCallRecordID(rec.ID).
		SetAmountCents(amountCents).
		SetEntryType(usageledgerentry.EntryTypeInboundCall).
		SetOccurredAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	return entry
}

func TestReconcileTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - reports entries and aggregates spend", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, _ := createTenantWithAccount(t, db, "si_test")
		createUnreportedEntry(t, db, tenant.ID, 583)
		createUnreportedEntry(t, db, tenant.ID, 100)

		reporter := &mockReporter{}
		svc := NewService(db, reporter, nil, nil)

		require.NoError(t, svc.ReconcileTenant(ctx, tenant.ID))

		require.Len(t, reporter.reports, 2)
		assert.Equal(t, "si_test", reporter.reports[0].subscriptionItemID)

		unreported, err := db.UsageLedgerEntry.Query().
			Where(usageledgerentry.ReportedAtIsNil()).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, unreported)

		acct, err := db.BillingAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(683), acct.MonthlySpendCents)
	})

	t.Run("Success - second pass finds nothing to report", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, _ := createTenantWithAccount(t, db, "si_test")
		createUnreportedEntry(t, db, tenant.ID, 583)

		reporter := &mockReporter{}
		svc := NewService(db, reporter, nil, nil)

		require.NoError(t, svc.ReconcileTenant(ctx, tenant.ID))
		require.NoError(t, svc.ReconcileTenant(ctx, tenant.ID))

		assert.Len(t, reporter.reports, 1)

		acct, err := db.BillingAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(583), acct.MonthlySpendCents)
	})

	t.Run("Success - failed report stays unreported for retry", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, _ := createTenantWithAccount(t, db, "si_test")
		createUnreportedEntry(t, db, tenant.ID, 583)

		reporter := &mockReporter{err: errors.New("stripe unavailable")}
		svc := NewService(db, reporter, nil, nil)

		require.NoError(t, svc.ReconcileTenant(ctx, tenant.ID))

		unreported, err := db.UsageLedgerEntry.Query().
			Where(usageledgerentry.ReportedAtIsNil()).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, unreported)

		acct, err := db.BillingAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), acct.MonthlySpendCents)
	})

	t.Run("Success - no subscription item still aggregates locally", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, _ := createTenantWithAccount(t, db, "")
		createUnreportedEntry(t, db, tenant.ID, 250)

		reporter := &mockReporter{}
		svc := NewService(db, reporter, nil, nil)

		require.NoError(t, svc.ReconcileTenant(ctx, tenant.ID))

		assert.Empty(t, reporter.reports)

		acct, err := db.BillingAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(250), acct.MonthlySpendCents)
	})

	t.Run("Failure - missing billing account", func(t *testing.T) {
		db := setupTestDB(t)
		tenant, err := db.Tenant.Create().SetName("No Account").Save(ctx)
		require.NoError(t, err)

		svc := NewService(db, &mockReporter{}, nil, nil)
		require.Error(t, svc.ReconcileTenant(ctx, tenant.ID))
	})
}

func TestResetMonthlySpend(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - zeroes every account", func(t *testing.T) {
		db := setupTestDB(t)
		_, acct := createTenantWithAccount(t, db, "si_test")
		_, err := acct.Update().SetMonthlySpendCents(12345).Save(ctx)
		require.NoError(t, err)

		svc := NewService(db, nil, nil, nil)
		require.NoError(t, svc.ResetMonthlySpend(ctx))

		fresh, err := db.BillingAccount.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), fresh.MonthlySpendCents)
	})
}
