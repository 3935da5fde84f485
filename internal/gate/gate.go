// Package gate rate-limits decoded records per sentence type.
package gate

import (
	"sync"
	"time"
)

// Policy maps a sentence-type code to the minimum interval between
// published records of that type. Types not present are never published.
type Policy map[string]time.Duration

// Gate tracks when each sentence type was last allowed through. It is
// the only mutable shared state in the pipeline; the decision and the
// state update happen under one lock so concurrent decoders of the same
// type cannot both pass.
type Gate struct {
	policy Policy

	mu   sync.Mutex
	last map[string]int64 // unix millis of last accepted record
}

func New(policy Policy) *Gate {
	return &Gate{
		policy: policy,
		last:   make(map[string]int64),
	}
}

// Configured reports whether the policy names the given sentence type.
func (g *Gate) Configured(sentenceType string) bool {
	_, ok := g.policy[sentenceType]
	return ok
}

// Offer decides whether a record with the given timestamp is due for
// publication. A type without a configured interval is silently dropped.
// The first record of a configured type is always accepted.
func (g *Gate) Offer(sentenceType string, unixMilli int64) bool {
	interval, ok := g.policy[sentenceType]
	if !ok {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	last, seen := g.last[sentenceType]
	if seen && unixMilli-last < interval.Milliseconds() {
		return false
	}
	g.last[sentenceType] = unixMilli
	return true
}
