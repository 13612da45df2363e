package app

import (
	"context"
	"log"

	"github.com/louisbranch/hearthbound/internal/services/progression/content"
	"github.com/louisbranch/hearthbound/internal/services/progression/storage/sqlite"
)

// RuntimeConfig holds the runtime dependencies for the progression service.
type RuntimeConfig struct {
	DBPath string
}

// Run opens the progression store, applies migrations, and keeps the
// service resident until the context is canceled.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	NewService(store, content.NewCatalog())
	log.Printf("progression service ready (db=%s)", cfg.DBPath)

	<-ctx.Done()
	return nil
}
