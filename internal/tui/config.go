package tui

import (
	"context"

	"github.com/Veraticus/txnview/internal/ledger"
	"github.com/Veraticus/txnview/internal/source"
	"github.com/Veraticus/txnview/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Context       context.Context
	Loader        source.Loader
	Theme         themes.Theme
	Start         string
	End           string
	Width         int
	Height        int
	PageSize      int
	ClampOnFilter bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:       context.Background(),
		Loader:        source.NewFixtureLoader(nil, source.DefaultDelay),
		Theme:         themes.Default,
		Width:         100,
		Height:        30,
		PageSize:      ledger.DefaultPageSize,
		ClampOnFilter: true,
	}
}

// WithContext sets the context passed to the loader.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		c.Context = ctx
	}
}

// WithLoader sets the transaction source.
func WithLoader(loader source.Loader) Option {
	return func(c *Config) {
		c.Loader = loader
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithPageSize sets the number of rows per page.
func WithPageSize(size int) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithClampOnFilter controls whether a filter change pulls the page back into range.
// When disabled, a page past the end shows no rows until the user navigates back.
func WithClampOnFilter(enabled bool) Option {
	return func(c *Config) {
		c.ClampOnFilter = enabled
	}
}

// WithBounds pre-fills the date inputs.
func WithBounds(start, end string) Option {
	return func(c *Config) {
		c.Start = start
		c.End = end
	}
}
