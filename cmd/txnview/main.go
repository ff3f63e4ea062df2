package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/txnview/internal/cli"
	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/config"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	version   = "dev"
	logCloser io.Closer
	rootCmd   = &cobra.Command{
		Use:   "txnview",
		Short: "Browse a batch of payment transactions",
		Long: `txnview: a terminal dashboard for payment transactions.

Narrow the batch with an inclusive date range, see the count and total of what
matches, and page through it five rows at a time.`,
		PersistentPreRunE:  initConfig,
		PersistentPostRunE: closeLogs,
		RunE:               runView,
		SilenceUsage:       true,
	}
)

func init() {
	config.SetDefaults(viper.GetViper())

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/txnview/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().Duration("delay", source.DefaultDelay, "simulated load delay")
	rootCmd.PersistentFlags().String("fixture", "", "YAML file with an alternative transaction batch")
	rootCmd.PersistentFlags().Bool("simulate-failure", false, "make the transaction load fail")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyLogFile, rootCmd.PersistentFlags().Lookup("log-file"))
	_ = viper.BindPFlag(config.KeySourceDelay, rootCmd.PersistentFlags().Lookup("delay"))
	_ = viper.BindPFlag(config.KeySourceFixture, rootCmd.PersistentFlags().Lookup("fixture"))
	_ = viper.BindPFlag(config.KeySimulateFailure, rootCmd.PersistentFlags().Lookup("simulate-failure"))

	// View flags, shared by the dashboard and summary
	rootCmd.PersistentFlags().String("start", "", "start date (inclusive), YYYY-MM-DD")
	rootCmd.PersistentFlags().String("end", "", "end date (inclusive), YYYY-MM-DD")
	rootCmd.PersistentFlags().Int("page-size", 5, "rows per page")
	rootCmd.PersistentFlags().Bool("clamp-on-filter", true, "pull the page back into range when the filter changes")
	rootCmd.PersistentFlags().String("theme", "default", "color theme (default, catppuccin-mocha)")

	_ = viper.BindPFlag(config.KeyStart, rootCmd.PersistentFlags().Lookup("start"))
	_ = viper.BindPFlag(config.KeyEnd, rootCmd.PersistentFlags().Lookup("end"))
	_ = viper.BindPFlag(config.KeyPageSize, rootCmd.PersistentFlags().Lookup("page-size"))
	_ = viper.BindPFlag(config.KeyClampOnFilter, rootCmd.PersistentFlags().Lookup("clamp-on-filter"))
	_ = viper.BindPFlag(config.KeyTheme, rootCmd.PersistentFlags().Lookup("theme"))

	// Add commands
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		slog.Debug("command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}

		// Search for config in standard locations
		viper.AddConfigPath(dir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("TXNVIEW")
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer())
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	closer, err := common.SetupLogger(
		viper.GetString(config.KeyLogLevel),
		viper.GetString(config.KeyLogFormat),
		config.ExpandPath(viper.GetString(config.KeyLogFile)),
	)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logCloser = closer

	return nil
}

func closeLogs(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "txnview %s\n", version)
		},
	}
}
