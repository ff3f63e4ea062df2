package ledger

import "github.com/Veraticus/txnview/internal/model"

// FilterCache memoizes the most recent Filter call.
//
// The key is the batch generation plus the raw text and state of both bounds.
// Callers bump the generation whenever they replace the batch.
type FilterCache struct {
	result []model.Transaction
	key    cacheKey
	valid  bool
}

type cacheKey struct {
	start      string
	end        string
	generation int
	startState model.BoundState
	endState   model.BoundState
}

// Filter returns the cached result when the inputs match the previous call.
func (c *FilterCache) Filter(generation int, transactions []model.Transaction, start, end model.Bound) []model.Transaction {
	key := cacheKey{
		generation: generation,
		start:      start.String(),
		startState: start.State(),
		end:        end.String(),
		endState:   end.State(),
	}
	if c.valid && c.key == key {
		return c.result
	}
	c.result = Filter(transactions, start, end)
	c.key = key
	c.valid = true
	return c.result
}

// Hit reports whether the given inputs would be served from the cache.
func (c *FilterCache) Hit(generation int, start, end model.Bound) bool {
	return c.valid && c.key == cacheKey{
		generation: generation,
		start:      start.String(),
		startState: start.State(),
		end:        end.String(),
		endState:   end.State(),
	}
}

// Reset drops the cached result.
func (c *FilterCache) Reset() {
	*c = FilterCache{}
}
