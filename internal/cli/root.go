package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/yieldtrack/internal/cli/portfolio"
	"github.com/rustyeddy/yieldtrack/internal/cli/project"
	"github.com/rustyeddy/yieldtrack/internal/cli/rootcfg"
	"github.com/rustyeddy/yieldtrack/internal/cli/simulate"
	"github.com/rustyeddy/yieldtrack/internal/cli/trade"
)

func NewRootCmd() *cobra.Command {
	rc := &rootcfg.RootConfig{}

	cmd := &cobra.Command{
		Use:           "yieldtrack",
		Short:         "Yieldtrack — yield projection, Monte Carlo simulation, and trade analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rc.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rc.DBPath, "db", "", "SQLite snapshot database (overrides config)")

	// Subcommands
	cmd.AddCommand(
		project.New(rc),
		simulate.New(rc),
		trade.New(rc),
		portfolio.NewPositionCmd(rc),
		portfolio.NewPortfolioCmd(rc),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("yieldtrack (dev)")
		},
	})

	return cmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
