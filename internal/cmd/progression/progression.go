// Package progression parses progression command flags and launches the
// progression service runtime.
package progression

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/hearthbound/internal/platform/cmd"
	server "github.com/louisbranch/hearthbound/internal/services/progression/app"
)

// Config holds progression command configuration.
type Config struct {
	DBPath string `env:"HEARTHBOUND_PROGRESSION_DB_PATH" envDefault:"data/progression.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The progression SQLite database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the progression service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceProgression, func(ctx context.Context) error {
		return server.Run(ctx, server.RuntimeConfig{DBPath: cfg.DBPath})
	})
}
