package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/ringledger/ringledger/ent"
	"github.com/ringledger/ringledger/ent/billingaccount"
	"github.com/ringledger/ringledger/ent/callrecord"
)

// GeneratorConfig configures tenant fixture generation
type GeneratorConfig struct {
	Tenants         int
	AgentsPerTenant int
	CallsPerTenant  int
	Timezone        string
	UnlimitedChance float64 // 0.0-1.0 (probability of an unlimited inbound plan)
}

// DefaultConfig returns sensible defaults for local development
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Tenants:         3,
		AgentsPerTenant: 4,
		CallsPerTenant:  120,
		Timezone:        "America/New_York",
		UnlimitedChance: 0.3,
	}
}

// SeedTenants creates tenants with agents, phone numbers, billing accounts,
// CRM connections and historical call records for development and demos.
func SeedTenants(ctx context.Context, db *ent.Client, cfg GeneratorConfig) error {
	if cfg.Tenants <= 0 {
		cfg = DefaultConfig()
	}

	for i := 0; i < cfg.Tenants; i++ {
		tenant, err := db.Tenant.
			Create().
			SetName(gofakeit.Company()).
			SetTimezone(cfg.Timezone).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		if err := seedConnection(ctx, db, tenant.ID); err != nil {
			return err
		}
		if err := seedBillingAccount(ctx, db, tenant.ID, cfg.UnlimitedChance); err != nil {
			return err
		}

		agents, err := seedAgents(ctx, db, tenant.ID, cfg.AgentsPerTenant)
		if err != nil {
			return err
		}
		if err := seedCalls(ctx, db, tenant.ID, agents, cfg.CallsPerTenant); err != nil {
			return err
		}
	}

	return nil
}

func seedConnection(ctx context.Context, db *ent.Client, tenantID int) error {
	_, err := db.CRMConnection.
		Create().
		SetTenantID(tenantID).
		SetLocationID(gofakeit.UUID()).
		SetAccessToken(gofakeit.UUID()).
		SetRefreshToken(gofakeit.UUID()).
		SetTokenExpiresAt(time.Now().Add(24 * time.Hour)).
		SetAutoSync(true).
		SetSyncIntervalMinutes(15).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create crm connection: %w", err)
	}
	return nil
}

func seedBillingAccount(ctx context.Context, db *ent.Client, tenantID int, unlimitedChance float64) error {
	plan := billingaccount.InboundPlanMetered
	if rand.Float64() < unlimitedChance {
		plan = billingaccount.InboundPlanUnlimited
	}

	_, err := db.BillingAccount.
		Create().
		SetTenantID(tenantID).
		SetInboundRateCents(100).
		SetOutboundRateCents(100).
		SetInboundPlan(plan).
		SetStripeCustomerID("cus_" + gofakeit.LetterN(14)).
		SetStripeSubscriptionItemID("si_" + gofakeit.LetterN(14)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create billing account: %w", err)
	}
	return nil
}

func seedAgents(ctx context.Context, db *ent.Client, tenantID, count int) ([]*ent.Agent, error) {
	agents := make([]*ent.Agent, 0, count)
	for i := 0; i < count; i++ {
		agent, err := db.Agent.
			Create().
			SetTenantID(tenantID).
			SetProviderUserID(gofakeit.UUID()).
			SetName(gofakeit.Name()).
			SetEmail(gofakeit.Email()).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create agent: %w", err)
		}

		number := gofakeit.Phone()
		_, err = db.PhoneNumber.
			Create().
			SetTenantID(tenantID).
			SetAgentID(agent.ID).
			SetNumber("+1" + number).
			SetNormalized(number).
			SetLabel(gofakeit.RandomString([]string{"Main", "Direct", "Mobile"})).
			SetActive(true).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create phone number: %w", err)
		}

		agents = append(agents, agent)
	}
	return agents, nil
}

func seedCalls(ctx context.Context, db *ent.Client, tenantID int, agents []*ent.Agent, count int) error {
	for i := 0; i < count; i++ {
		direction := callrecord.DirectionInbound
		if rand.Float64() < 0.5 {
			direction = callrecord.DirectionOutbound
		}

		duration := rand.Intn(900)
		started := time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour)
		ended := started.Add(time.Duration(duration) * time.Second)

		create := db.CallRecord.
			Create().
			SetTenantID(tenantID).
			SetProviderCallID(gofakeit.UUID()).
			SetDirection(direction).
			SetFromNumber("+1" + gofakeit.Phone()).
			SetToNumber("+1" + gofakeit.Phone()).
			SetStatus(gofakeit.RandomString([]string{"completed", "no-answer", "voicemail"})).
			SetDuration(duration).
			SetCost(float64(duration) / 60.0).
			SetContactName(gofakeit.Name()).
			SetStartedAt(started).
			SetEndedAt(ended)

		if len(agents) > 0 && rand.Float64() < 0.8 {
			create = create.SetAgentID(agents[rand.Intn(len(agents))].ID)
		}

		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to create call record: %w", err)
		}
	}
	return nil
}
