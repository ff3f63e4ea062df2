package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/config"
	"github.com/Veraticus/txnview/internal/tui"
	"github.com/Veraticus/txnview/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive transaction dashboard",
		Long: `Open the dashboard. The batch loads once, then the date inputs narrow it.

Keys:
  tab         switch between start and end date
  ctrl+u      clear the focused date
  [ / ]       previous / next page
  esc         quit`,
		RunE: runView,
	}
}

func runView(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	// The dashboard owns the terminal, so logs go to a file.
	if cfg.LogFile == "" {
		if err := redirectLogs(cfg); err != nil {
			return err
		}
	}

	slog.Info("starting dashboard",
		"theme", cfg.Theme,
		"page_size", cfg.PageSize,
		"clamp_on_filter", cfg.ClampOnFilter)

	return tui.Run(cmd.Context(),
		tui.WithLoader(newLoader(cfg)),
		tui.WithTheme(themes.GetTheme(cfg.Theme)),
		tui.WithPageSize(cfg.PageSize),
		tui.WithClampOnFilter(cfg.ClampOnFilter),
		tui.WithBounds(cfg.Start, cfg.End),
	)
}

// redirectLogs moves logging from stderr to txnview.log in the config directory.
func redirectLogs(cfg config.Config) error {
	dir, err := config.DefaultDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	if err := closeLogs(nil, nil); err != nil {
		return err
	}
	closer, err := common.SetupLogger(cfg.LogLevel, cfg.LogFormat, filepath.Join(dir, "txnview.log"))
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logCloser = closer
	return nil
}
