package portfolio

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/yieldtrack/internal/cli/rootcfg"
	"github.com/rustyeddy/yieldtrack/portfolio"
)

func openStore(rc *rootcfg.RootConfig) (*portfolio.SQLiteStore, error) {
	cfg, err := rc.Resolve()
	if err != nil {
		return nil, err
	}
	return portfolio.NewSQLite(cfg.Store.DBPath)
}

// NewPositionCmd manages individual positions.
func NewPositionCmd(rc *rootcfg.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Manage yield positions",
	}

	cmd.AddCommand(
		newSetCmd(rc),
		newRmCmd(rc),
		newListCmd(rc),
	)

	return cmd
}

func newSetCmd(rc *rootcfg.RootConfig) *cobra.Command {
	var (
		token   string
		balance float64
		price   float64
		apy     float64
		typ     string
		notes   string
	)

	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Create or overwrite a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			existing, err := store.ListPositions()
			if err != nil {
				return err
			}
			r := portfolio.NewRegistry(existing...)
			p := r.Upsert(args[0], token, balance, price, apy, portfolio.PositionType(typ), notes)
			if err := store.SavePosition(p); err != nil {
				return err
			}

			fmt.Printf("position %s: %s balance=%.4f price=%.4f value=%.2f apy=%.2f%%\n",
				p.Name, p.Token, p.Balance, p.Price, p.Value, p.APY)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "token symbol")
	cmd.Flags().Float64Var(&balance, "balance", 0, "token balance")
	cmd.Flags().Float64Var(&price, "price", 0, "token price")
	cmd.Flags().Float64Var(&apy, "apy", 0, "position APY percent")
	cmd.Flags().StringVar(&typ, "type", string(portfolio.TypeHold), "hold|stake|lp|lend")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newRmCmd(rc *rootcfg.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Remove a position (no-op if absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeletePosition(args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}

func newListCmd(rc *rootcfg.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			positions, err := store.ListPositions()
			if err != nil {
				return err
			}

			fmt.Printf("%-16s %-8s %-6s %12s %10s %12s %8s\n",
				"name", "token", "type", "balance", "price", "value", "apy")
			for _, p := range positions {
				fmt.Printf("%-16s %-8s %-6s %12.4f %10.4f %12.2f %7.2f%%\n",
					p.Name, p.Token, p.Type, p.Balance, p.Price, p.Value, p.APY)
			}
			return nil
		},
	}
}

// NewPortfolioCmd reports the portfolio rollup.
func NewPortfolioCmd(rc *rootcfg.RootConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Show total value, daily yield and blended APY",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			positions, err := store.ListPositions()
			if err != nil {
				return err
			}

			stats := portfolio.Compute(positions)
			fmt.Printf("positions:    %d\n", len(positions))
			fmt.Printf("total value:  %.2f\n", stats.TotalValue)
			fmt.Printf("daily yield:  %.4f\n", stats.TotalDailyYield)
			if stats.BlendedAPY != nil {
				fmt.Printf("blended apy:  %.2f%%\n", *stats.BlendedAPY)
			} else {
				fmt.Println("blended apy:  n/a")
			}
			return nil
		},
	}
}
