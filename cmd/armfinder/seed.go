package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
	"github.com/MikeSquared-Agency/ArmFinder/internal/config"
	"github.com/MikeSquared-Agency/ArmFinder/internal/store"
)

func seedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the catalog into Postgres",
		Long: `Seed creates the ArmFinder tables if needed and upserts the robot arm
catalog. The built-in catalog is used unless --file names a YAML catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Database.URL == "" {
				return fmt.Errorf("database.url (or ARMFINDER_DATABASE_URL) is required")
			}

			c := catalog.Builtin()
			if file != "" {
				if c, err = catalog.LoadFile(file); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			if err := db.UpsertArms(ctx, c.Arms()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d arms\n", c.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to seed instead of the built-in one")
	return cmd
}
