package main

import (
	"context"
	"flag"
	"log"

	"github.com/ringledger/ringledger/config"
	"github.com/ringledger/ringledger/pkg/database"
	"github.com/ringledger/ringledger/pkg/testdata"
)

func main() {
	tenants := flag.Int("tenants", 3, "number of tenants to create")
	agents := flag.Int("agents", 4, "agents per tenant")
	calls := flag.Int("calls", 120, "call records per tenant")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	gen := testdata.DefaultConfig()
	gen.Tenants = *tenants
	gen.AgentsPerTenant = *agents
	gen.CallsPerTenant = *calls

	if err := testdata.SeedTenants(context.Background(), db.Ent, gen); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Seeded %d tenants (%d agents, %d calls each)", gen.Tenants, gen.AgentsPerTenant, gen.CallsPerTenant)
}
