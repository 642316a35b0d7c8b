package trade

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/yieldtrack/internal/cli/rootcfg"
	"github.com/rustyeddy/yieldtrack/ledger"
)

func New(rc *rootcfg.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Record and analyze trades",
	}

	cmd.AddCommand(
		newAddCmd(rc),
		newListCmd(rc),
		newStatsCmd(rc),
		newExportCmd(rc),
	)

	return cmd
}

func openStore(rc *rootcfg.RootConfig) (*ledger.SQLiteStore, error) {
	cfg, err := rc.Resolve()
	if err != nil {
		return nil, err
	}
	return ledger.NewSQLite(cfg.Store.DBPath)
}

func newAddCmd(rc *rootcfg.RootConfig) *cobra.Command {
	var (
		symbol string
		side   string
		entry  float64
		exit   float64
		size   float64
		fees   float64
		tags   []string
		closed bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a trade to the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			in := ledger.TradeInput{
				Timestamp:  time.Now().UTC(),
				Symbol:     symbol,
				Side:       ledger.Side(side),
				EntryPrice: entry,
				Size:       size,
				Fees:       fees,
				Status:     ledger.StatusOpen,
				Tags:       tags,
			}
			if closed {
				in.Status = ledger.StatusClosed
				in.ExitPrice = &exit
			}

			// read latest snapshot, append, write back
			existing, err := store.ListTrades()
			if err != nil {
				return err
			}
			l := ledger.New(nil, existing...)
			t, err := l.Append(in)
			if err != nil {
				return err
			}
			if err := store.SaveTrade(t); err != nil {
				return err
			}

			if t.PnL != nil {
				fmt.Printf("recorded %s %s %s pnl=%+.2f\n", t.ID, t.Symbol, t.Side, *t.PnL)
			} else {
				fmt.Printf("recorded %s %s %s (open)\n", t.ID, t.Symbol, t.Side)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "traded symbol")
	cmd.Flags().StringVar(&side, "side", "long", "long or short")
	cmd.Flags().Float64Var(&entry, "entry", 0, "entry price")
	cmd.Flags().Float64Var(&exit, "exit", 0, "exit price (requires --closed)")
	cmd.Flags().Float64Var(&size, "size", 0, "position size")
	cmd.Flags().Float64Var(&fees, "fees", 0, "total fees paid")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tags (repeatable)")
	cmd.Flags().BoolVar(&closed, "closed", false, "record as closed with --exit")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func newListCmd(rc *rootcfg.RootConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades in chronological order",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			trades, err := store.ListTrades()
			if err != nil {
				return err
			}

			fmt.Printf("%-26s  %-20s %-8s %-5s %10s %10s %10s\n",
				"id", "time", "symbol", "side", "entry", "exit", "pnl")
			for _, t := range trades {
				exit, pnl := "-", "-"
				if t.ExitPrice != nil {
					exit = fmt.Sprintf("%.4f", *t.ExitPrice)
				}
				if t.PnL != nil {
					pnl = fmt.Sprintf("%+.2f", *t.PnL)
				}
				fmt.Printf("%-26s  %-20s %-8s %-5s %10.4f %10s %10s\n",
					t.ID, t.Timestamp.Format("2006-01-02 15:04:05"), t.Symbol, t.Side, t.EntryPrice, exit, pnl)
			}
			return nil
		},
	}
	return cmd
}

func newStatsCmd(rc *rootcfg.RootConfig) *cobra.Command {
	var (
		symbol string
		side   string
		tags   []string
		start  string
		end    string
		asYAML bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute performance analytics over the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(rc)
			if err != nil {
				return err
			}
			defer store.Close()

			trades, err := store.ListTrades()
			if err != nil {
				return err
			}

			filter := &ledger.Filter{
				Symbol: symbol,
				Side:   ledger.Side(side),
				Tags:   tags,
			}
			if start != "" {
				filter.Start, err = time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("bad --start: %w", err)
				}
			}
			if end != "" {
				filter.End, err = time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("bad --end: %w", err)
				}
			}

			a := ledger.ComputeAnalytics(trades, filter)

			if asYAML {
				out, err := yaml.Marshal(a)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
				return nil
			}

			fmt.Printf("closed trades: %d (%d wins / %d losses)\n", a.ClosedTrades, a.Wins, a.Losses)
			fmt.Printf("win rate:      %.1f%%\n", a.WinRate)
			fmt.Printf("total pnl:     %+.2f\n", a.TotalPnL)
			fmt.Printf("avg win/loss:  %+.2f / %+.2f\n", a.AvgWin, a.AvgLoss)
			fmt.Printf("profit factor: %.2f\n", a.ProfitFactor)
			fmt.Printf("max drawdown:  %.2f (%.1f%%)\n", a.MaxDrawdown, a.MaxDrawdownPercent)
			fmt.Printf("bias:          long %d (%.0f%%, %+.2f)  short %d (%.0f%%, %+.2f)\n",
				a.Long.Count, a.Long.Percent, a.Long.PnL,
				a.Short.Count, a.Short.Percent, a.Short.PnL)
			fmt.Printf("fees:          %.2f total, %.2f/trade, %.1f%% of pnl\n",
				a.Fees.TotalFees, a.Fees.AvgFeePerTrade, a.Fees.FeePercentOfPnL)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "filter by symbol")
	cmd.Flags().StringVar(&side, "side", "", "filter by side (long|short)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag (any match)")
	cmd.Flags().StringVar(&start, "start", "", "filter start date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "filter end date YYYY-MM-DD (inclusive)")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "emit analytics as YAML")

	return cmd
}

func newExportCmd(rc *rootcfg.RootConfig) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rc.Resolve()
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Export.TradesCSV
			}
			if out == "" {
				return fmt.Errorf("no output path: set --out or export.trades_csv")
			}

			store, err := ledger.NewSQLite(cfg.Store.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			trades, err := store.ListTrades()
			if err != nil {
				return err
			}

			e, err := ledger.NewCSV(out)
			if err != nil {
				return err
			}
			defer e.Close()

			for _, t := range trades {
				if err := e.WriteTrade(t); err != nil {
					return err
				}
			}

			fmt.Printf("exported %d trades to %s\n", len(trades), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "destination CSV path")
	return cmd
}
