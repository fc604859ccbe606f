package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/ArmFinder/internal/catalog"
	"github.com/MikeSquared-Agency/ArmFinder/internal/config"
	"github.com/MikeSquared-Agency/ArmFinder/internal/money"
	"github.com/MikeSquared-Agency/ArmFinder/internal/store"
)

// loadCatalog resolves the configured catalog source. db is only consulted
// for the database source and may be nil otherwise.
func loadCatalog(ctx context.Context, cfg *config.Config, db *store.PostgresStore) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.CatalogFile:
		return catalog.LoadFile(cfg.Catalog.Path)
	case config.CatalogDatabase:
		if db == nil {
			return nil, fmt.Errorf("catalog source %q needs database.url", config.CatalogDatabase)
		}
		if err := db.Migrate(ctx); err != nil {
			return nil, err
		}
		return catalog.Load(ctx, db)
	default:
		return catalog.Builtin(), nil
	}
}

// openCatalog loads the catalog for the one-shot commands, connecting to the
// database only when the catalog lives there.
func openCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Source != config.CatalogDatabase {
		return loadCatalog(ctx, cfg, nil)
	}
	db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return loadCatalog(ctx, cfg, db)
}

func catalogCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the robot arm catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			f, err := money.NewFormatter(cfg.Currency.Locale, cfg.Currency.Code)
			if err != nil {
				return err
			}
			c, err := openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPAYLOAD\tREACH\tPRECISION\tSPEED\tPRICE")
			for _, a := range c.Arms() {
				fmt.Fprintf(tw, "%s\t%s\t%gkg\t%gmm\t±%gmm\t%d\t%s\n",
					a.ID, a.Name, a.PayloadKg, a.ReachMm, a.PrecisionMm, a.Speed,
					f.FormatRange(a.Price.Min, a.Price.Max))
			}
			return tw.Flush()
		},
	}
}
