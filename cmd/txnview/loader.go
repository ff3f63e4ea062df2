package main

import (
	"log/slog"

	"github.com/Veraticus/txnview/internal/config"
	"github.com/Veraticus/txnview/internal/source"
)

// newLoader picks the transaction source for cfg.
func newLoader(cfg config.Config) source.Loader {
	switch {
	case cfg.SimulateFailure:
		slog.Warn("transaction load will fail on request")
		return source.FailingLoader{}
	case cfg.FixturePath != "":
		slog.Debug("loading transactions from file", "path", cfg.FixturePath)
		return source.NewFileLoader(cfg.FixturePath, cfg.Delay)
	default:
		return source.NewFixtureLoader(nil, cfg.Delay)
	}
}
