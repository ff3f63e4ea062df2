// Package source supplies the transaction batch the dashboard displays.
//
// The Loader interface is the only way the dashboard obtains data, so tests
// and the --simulate-failure flag can swap in synchronous or failing loaders.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/txnview/internal/common"
	"github.com/Veraticus/txnview/internal/model"
)

// DefaultDelay simulates a network round trip before the fixture arrives.
const DefaultDelay = 500 * time.Millisecond

// Loader produces the full transaction batch in one call.
type Loader interface {
	Load(ctx context.Context) ([]model.Transaction, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]model.Transaction, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) ([]model.Transaction, error) {
	return f(ctx)
}

// Static returns a loader that hands back a copy of transactions immediately.
func Static(transactions []model.Transaction) Loader {
	return LoaderFunc(func(context.Context) ([]model.Transaction, error) {
		return model.Clone(transactions), nil
	})
}

// FixtureLoader delivers a batch after a fixed delay.
type FixtureLoader struct {
	transactions []model.Transaction
	delay        time.Duration
}

// NewFixtureLoader returns a loader for transactions. A nil batch means the built-in fixture.
func NewFixtureLoader(transactions []model.Transaction, delay time.Duration) *FixtureLoader {
	if transactions == nil {
		transactions = Fixture()
	}
	return &FixtureLoader{
		transactions: transactions,
		delay:        max(delay, 0),
	}
}

// Load waits for the configured delay, then returns a copy of the batch.
func (l *FixtureLoader) Load(ctx context.Context) ([]model.Transaction, error) {
	if l.delay > 0 {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", common.ErrLoadFailed, ctx.Err())
		case <-timer.C:
		}
	}

	slog.Debug("fixture delivered", "count", len(l.transactions), "delay", l.delay)
	return model.Clone(l.transactions), nil
}

// FailingLoader always fails. It makes the load-failure path reachable on demand.
type FailingLoader struct {
	Cause error
}

// Load returns an error wrapping common.ErrLoadFailed.
func (l FailingLoader) Load(context.Context) ([]model.Transaction, error) {
	if l.Cause != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrLoadFailed, l.Cause)
	}
	return nil, common.ErrLoadFailed
}
