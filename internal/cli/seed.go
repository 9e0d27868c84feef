package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"camp-portal/internal/config"
	"camp-portal/internal/content"
)

// NewSeedCmd loads the embedded camp bundle into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed Postgres with the embedded camp content",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	data, err := json.Marshal(content.Camp())
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO camp_content (id, data, updated_at)
		VALUES ('camp', $1, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`, data)
	if err != nil {
		return err
	}
	log.Printf("camp content seeded")
	return nil
}
