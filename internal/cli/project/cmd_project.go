package project

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/yieldtrack/internal/cli/rootcfg"
	"github.com/rustyeddy/yieldtrack/yield"
)

func New(rc *rootcfg.RootConfig) *cobra.Command {
	var (
		principal float64
		apy       float64
		days      int
		freq      float64
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project compounded yield over a holding period",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Resolve()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("principal") {
				principal = cfg.Simulation.Principal
			}
			if !cmd.Flags().Changed("apy") {
				apy = cfg.Simulation.APYPercent
			}
			if !cmd.Flags().Changed("days") {
				days = cfg.Simulation.Days
			}
			if !cmd.Flags().Changed("freq") && cfg.Simulation.Compounding > 0 {
				freq = cfg.Simulation.Compounding
			}

			final := yield.ProjectAt(principal, apy, days, freq)
			gain := final - principal

			fmt.Printf("principal: %.2f\n", principal)
			fmt.Printf("apy:       %.2f%%\n", apy)
			fmt.Printf("days:      %d\n", days)
			fmt.Printf("final:     %.2f\n", final)
			fmt.Printf("yield:     %+.2f\n", gain)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&principal, "principal", "p", 1000, "starting principal")
	cmd.Flags().Float64Var(&apy, "apy", 7.5, "annual percentage yield")
	cmd.Flags().IntVar(&days, "days", 365, "holding period in days")
	cmd.Flags().Float64Var(&freq, "freq", yield.DefaultCompounding, "compounding periods per year")

	return cmd
}
