package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/ArmFinder/internal/config"
	"github.com/MikeSquared-Agency/ArmFinder/internal/matching"
	"github.com/MikeSquared-Agency/ArmFinder/internal/money"
	"github.com/MikeSquared-Agency/ArmFinder/internal/questionnaire"
)

func matchCmd(configPath *string) *cobra.Command {
	req := questionnaire.Defaults()
	var explain bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Recommend robot arms for a set of requirements",
		Example: `  armfinder match --application Packaging --payload 5 --reach 1000
  armfinder match --payload 12 --budget 80000 --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}
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
			m := matching.NewMatcher(cfg.Relaxation(), cfg.Matching.MaxResults)

			out := cmd.OutOrStdout()
			if explain {
				exp := m.Explain(req, c.Arms())
				if exp.Relaxed {
					fmt.Fprintln(out, "No exact match; scores below use relaxed limits.")
				}
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ARM\tTOTAL\tPAYLOAD\tREACH\tPRECISION\tSPEED\tBUDGET\tAPPLICATION")
				for _, s := range exp.Candidates {
					fmt.Fprintf(tw, "%s\t%.1f", s.ArmID, s.TotalScore)
					for _, fr := range s.Factors {
						fmt.Fprintf(tw, "\t%.1f", fr.Score)
					}
					fmt.Fprintln(tw)
				}
				return tw.Flush()
			}

			res := m.Match(req, c.Arms())
			if res.Empty() {
				fmt.Fprintln(out, "No matching robot arms found. Please adjust your requirements.")
				return nil
			}
			if res.Relaxed {
				fmt.Fprintln(out, "No exact match for your requirements; showing the closest options.")
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "RANK\tID\tNAME\tPRICE")
			for i, a := range res.Arms {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, a.ID, a.Name,
					f.FormatRange(a.Price.Min, a.Price.Max))
			}
			return tw.Flush()
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&req.Application, "application", req.Application, "Intended application, e.g. Packaging")
	fl.Float64Var(&req.PayloadKg, "payload", req.PayloadKg, "Required payload (kg)")
	fl.Float64Var(&req.ReachMm, "reach", req.ReachMm, "Required reach (mm)")
	fl.Float64Var(&req.PrecisionMm, "precision", req.PrecisionMm, "Required repeatability (mm)")
	fl.IntVar(&req.SpeedImportance, "speed", req.SpeedImportance, "Importance of speed (1-5)")
	fl.Float64Var(&req.BudgetMax, "budget", req.BudgetMax, "Maximum budget")
	fl.BoolVar(&explain, "explain", false, "Show the per-factor score breakdown")
	return cmd
}
