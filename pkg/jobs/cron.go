package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/crmconnection"
	"github.com/ringledger/ringledger/pkg/billing"
	"github.com/ringledger/ringledger/pkg/cache"
	"github.com/ringledger/ringledger/pkg/callsync"
	"github.com/ringledger/ringledger/pkg/logger"
)

// CronManager manages the scheduled jobs: periodic auto-sync for tenants
// that enabled it, nightly usage reconciliation, and the monthly spend reset.
type CronManager struct {
	cron     *cron.Cron
	db       *ent.Client
	sync     *callsync.Service
	billing  *billing.Service
	cache    *cache.Client
	log      logger.Logger
	cooldown time.Duration

	reconciliationEnabled bool
}

// Config holds scheduler configuration.
type Config struct {
	CooldownMinutes       int
	ReconciliationEnabled bool
}

// NewCronManager creates a new cron manager.
func NewCronManager(db *ent.Client, syncService *callsync.Service, billingService *billing.Service, cacheClient *cache.Client, log logger.Logger, cfg Config) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	if cfg.CooldownMinutes <= 0 {
		cfg.CooldownMinutes = 5
	}

	return &CronManager{
		cron:     cron.New(),
		db:       db,
		sync:     syncService,
		billing:  billingService,
		cache:    cacheClient,
		log:      log,
		cooldown: time.Duration(cfg.CooldownMinutes) * time.Minute,

		reconciliationEnabled: cfg.ReconciliationEnabled,
	}
}

// SetupJobs configures all scheduled jobs.
func (cm *CronManager) SetupJobs() error {
	// Every minute: sync tenants whose auto-sync interval has elapsed
	_, err := cm.cron.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := cm.RunDueSyncs(ctx); err != nil {
			cm.log.Error("auto-sync sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	if cm.reconciliationEnabled {
		// Nightly at 1 AM: aggregate and report usage
		_, err = cm.cron.AddFunc("0 1 * * *", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()

			if err := cm.billing.ReconcileAll(ctx); err != nil {
				cm.log.Error("usage reconciliation failed", "error", err)
			}
		})
		if err != nil {
			return err
		}

		// First of the month at midnight: reset monthly aggregates
		_, err = cm.cron.AddFunc("0 0 1 * *", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := cm.billing.ResetMonthlySpend(ctx); err != nil {
				cm.log.Error("monthly spend reset failed", "error", err)
			}
		})
		if err != nil {
			return err
		}
	}

	cm.log.Info("cron jobs configured",
		"auto_sync", "every minute",
		"reconciliation", cm.reconciliationEnabled)

	return nil
}

// RunDueSyncs triggers an automatic sync for every connection whose interval
// has elapsed. Runs are sequential to respect upstream rate limits; a redis
// cooldown key keeps overlapping sweeps from hammering the same tenant.
func (cm *CronManager) RunDueSyncs(ctx context.Context) error {
	conns, err := cm.db.CRMConnection.
		Query().
		Where(crmconnection.AutoSync(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load auto-sync connections: %w", err)
	}

	now := time.Now()
	for _, conn := range conns {
		if conn.LastSyncAt != nil {
			due := conn.LastSyncAt.Add(time.Duration(conn.SyncIntervalMinutes) * time.Minute)
			if now.Before(due) {
				continue
			}
		}

		if !cm.acquireCooldown(ctx, conn.TenantID) {
			continue
		}

		result, err := cm.sync.Run(ctx, &callsync.SyncRequest{
			TenantID: conn.TenantID,
			Kind:     callsync.KindAuto,
		})
		if err != nil {
			if errors.Is(err, callsync.ErrReauthRequired) {
				cm.log.Warn("auto-sync needs re-authentication", "tenant_id", conn.TenantID)
			} else {
				cm.log.Error("auto-sync failed", "tenant_id", conn.TenantID, "error", err)
			}
			continue
		}

		cm.log.Info("auto-sync completed",
			"tenant_id", conn.TenantID,
			"run_id", result.RunID,
			"inserted", result.Inserted,
			"updated", result.Updated,
			"skipped", result.Skipped)
	}

	return nil
}

// acquireCooldown sets the per-tenant cooldown marker; when the cache is
// unavailable the sync proceeds rather than silently stalling.
func (cm *CronManager) acquireCooldown(ctx context.Context, tenantID int) bool {
	if cm.cache == nil {
		return true
	}

	key := fmt.Sprintf("callsync:cooldown:%d", tenantID)
	ok, err := cm.cache.SetNX(ctx, key, 1, cm.cooldown)
	if err != nil {
		cm.log.Warn("cooldown check failed", "tenant_id", tenantID, "error", err)
		return true
	}

	return ok
}

// Start starts the cron scheduler.
func (cm *CronManager) Start() {
	cm.log.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the cron scheduler.
func (cm *CronManager) Stop() {
	cm.log.Info("stopping cron scheduler")
	cm.cron.Stop()
}
