package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/txnview/internal/cli"
	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/config"
	"github.com/Veraticus/txnview/internal/ledger"
	"github.com/Veraticus/txnview/internal/model"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/Veraticus/txnview/internal/tui/viewmodel"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type summaryOptions struct {
	Start    string
	End      string
	Format   string
	Page     int
	PageSize int
	Clamp    bool
}

// summaryJSON is the --format json document.
type summaryJSON struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	ledger.View
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the count, total and one page of transactions",
		Long: `Load the batch, apply --start/--end, and print the count, the total amount
and the requested page. Dates are inclusive; leave one out for an open range.`,
		Example: `  txnview summary --start 2025-04-12 --end 2025-04-14
  txnview summary --page 2 --format json`,
		RunE: runSummary,
	}

	cmd.Flags().Int("page", 1, "page to print (1-based)")
	cmd.Flags().String("format", "table", "output format (table, json)")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	format, _ := cmd.Flags().GetString("format")

	return printSummary(cmd.Context(), cmd.OutOrStdout(), newLoader(cfg), summaryOptions{
		Start:    cfg.Start,
		End:      cfg.End,
		Format:   format,
		Page:     page,
		PageSize: cfg.PageSize,
		Clamp:    cfg.ClampOnFilter,
	})
}

// printSummary loads the batch once and writes the derived view to w.
func printSummary(ctx context.Context, w io.Writer, loader source.Loader, opts summaryOptions) error {
	if opts.Format != "table" && opts.Format != "json" {
		return fmt.Errorf("%w: format must be table or json, got %q", common.ErrInvalidConfig, opts.Format)
	}

	start := model.ParseBound(opts.Start)
	if start.State() == model.BoundInvalid {
		return fmt.Errorf("%w: start %q", common.ErrInvalidDate, opts.Start)
	}
	end := model.ParseBound(opts.End)
	if end.State() == model.BoundInvalid {
		return fmt.Errorf("%w: end %q", common.ErrInvalidDate, opts.End)
	}

	transactions, err := loader.Load(ctx)
	if err != nil {
		return common.NewUserError(common.LoadFailedMessage, err)
	}

	filtered := ledger.Filter(transactions, start, end)
	pager := ledger.NewPager(opts.PageSize).Goto(opts.Page)
	if opts.Clamp {
		pager = pager.Clamp(ledger.TotalPages(len(filtered), pager.Size()))
	}
	view := ledger.Derive(filtered, pager.Page(), pager.Size())

	slog.Debug("summary computed",
		"loaded", len(transactions),
		"count", view.Count,
		"page", view.Page,
		"total_pages", view.TotalPages)

	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summaryJSON{Start: start.String(), End: end.String(), View: view})
	}
	return writeSummaryTable(w, view)
}

func writeSummaryTable(w io.Writer, view ledger.View) error {
	fmt.Fprintf(w, "Total Transactions: %d\n", view.Count)
	fmt.Fprintf(w, "Total Amount: %s\n\n", viewmodel.FormatAmount(view.Total))

	if view.Count == 0 {
		fmt.Fprintln(w, cli.SubtleStyle.Render("No transactions in this date range"))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("ID"),
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Description"),
		cli.HeaderStyle.Render("Amount (USD)"))
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 4),
		strings.Repeat("-", 10),
		strings.Repeat("-", 16),
		strings.Repeat("-", 12))

	for _, row := range viewmodel.NewRowViews(view.Rows) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.ID, row.Date, row.Description, row.Amount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if view.TotalPages > 1 {
		fmt.Fprintf(w, "\nPage %d of %d\n", view.Page, view.TotalPages)
	}
	return nil
}
