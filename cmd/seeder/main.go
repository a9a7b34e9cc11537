package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtchart/internal/config"
	"github.com/mauv0809/courtchart/internal/database"
	"github.com/mauv0809/courtchart/internal/override"
	"github.com/mauv0809/courtchart/internal/snapshot"
)

// The seeder copies the inline overrides of snapshot files into the ledger
// database configured by the environment, so that the service applies them
// without the snapshot carrying them.
func main() {
	log.Info("Starting override seeder...")
	if len(os.Args) < 2 {
		log.Fatal("Usage: seeder <snapshot.yaml>...")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	ledger := override.New(db)
	startTime := time.Now()
	seeded := 0

	for _, path := range os.Args[1:] {
		snap, err := snapshot.Load(path)
		if err != nil {
			log.Fatalf("Failed to load snapshot %s: %s", path, err)
		}
		if snap.TournamentID == "" {
			log.Warn("Skipping snapshot without tournament id", "path", path)
			continue
		}
		for _, o := range snap.Overrides {
			if _, err := ledger.RecordOverride(snap.TournamentID, o.WinsLevel, o.ResolvedOrder, o.Reason, o.ResolvedBy); err != nil {
				log.Fatalf("Failed to record override for %d wins in %s: %s", o.WinsLevel, snap.TournamentID, err)
			}
			seeded++
		}
		log.Info("Seeded snapshot", "path", path, "tournament", snap.TournamentID, "overrides", len(snap.Overrides))
	}

	log.Info("Successfully seeded overrides.", "count", seeded, "duration", time.Since(startTime))
}
