// Package bridge wires the feed reader to the decoding core, the
// publish gate, and the sinks.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"nmea-bridge/internal/gate"
	"nmea-bridge/internal/nmea"
	"nmea-bridge/internal/sink"
	"nmea-bridge/internal/udp"
)

type Bridge struct {
	gate     *gate.Gate
	sinks    []sink.Sink
	repeater *udp.Repeater

	// now is swappable for tests.
	now func() time.Time

	lines      atomic.Uint64
	decoded    atomic.Uint64
	published  atomic.Uint64
	suppressed atomic.Uint64
	failures   atomic.Uint64
}

type Snapshot struct {
	Lines      uint64 `json:"lines"`
	Decoded    uint64 `json:"decoded"`
	Published  uint64 `json:"published"`
	Suppressed uint64 `json:"suppressed"`
	Failures   uint64 `json:"failures"`
}

type Option func(*Bridge)

// WithRepeater re-broadcasts every raw sentence over UDP.
func WithRepeater(r *udp.Repeater) Option {
	return func(b *Bridge) { b.repeater = r }
}

func WithClock(now func() time.Time) Option {
	return func(b *Bridge) { b.now = now }
}

func New(g *gate.Gate, sinks []sink.Sink, opts ...Option) *Bridge {
	b := &Bridge{
		gate:  g,
		sinks: sinks,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// HandleLine processes one raw sentence to completion: tokenize, decode,
// gate, marshal, publish. Decode failures are logged and skipped; they
// never stop the feed.
func (b *Bridge) HandleLine(ctx context.Context, raw []byte) error {
	b.lines.Add(1)

	if b.repeater != nil {
		if err := b.repeater.Repeat(raw); err != nil {
			log.Printf("udp repeat failed: %v", err)
		}
	}

	rec, err := nmea.Parse(string(raw), b.now().UTC())
	if err != nil {
		var unknown *nmea.UnknownTypeError
		if errors.As(err, &unknown) {
			// Only worth a warning when the user asked for this type.
			if b.gate.Configured(unknown.SentenceType) {
				log.Printf("no decoder for sentence type %s", unknown.SentenceType)
			}
			return nil
		}
		b.failures.Add(1)
		log.Printf("nmea error: %v", err)
		return nil
	}
	b.decoded.Add(1)

	if !b.gate.Offer(rec.Type(), rec.UnixMilli()) {
		b.suppressed.Add(1)
		return nil
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		b.failures.Add(1)
		log.Printf("marshal %s failed: %v", rec.Type(), err)
		return nil
	}

	for _, s := range b.sinks {
		if err := s.Publish(ctx, rec.Type(), payload); err != nil {
			log.Printf("publish %s failed: %v", rec.Type(), err)
		}
	}
	b.published.Add(1)
	return nil
}

func (b *Bridge) Snapshot() Snapshot {
	return Snapshot{
		Lines:      b.lines.Load(),
		Decoded:    b.decoded.Load(),
		Published:  b.published.Load(),
		Suppressed: b.suppressed.Load(),
		Failures:   b.failures.Load(),
	}
}
