package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"nmea-bridge/internal/gate"
	"nmea-bridge/internal/sink"
)

type capturedPublish struct {
	SentenceType string
	Payload      []byte
}

type fakeSink struct {
	mu        sync.Mutex
	published []capturedPublish
}

var _ sink.Sink = (*fakeSink)(nil)

func (s *fakeSink) Publish(ctx context.Context, sentenceType string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, capturedPublish{sentenceType, payload})
	return nil
}

func (s *fakeSink) Close() error { return nil }

func (s *fakeSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.published)
}

func nmeaLine(payload string) []byte {
	ck := byte(0)
	for i := 0; i < len(payload); i++ {
		ck ^= payload[i]
	}
	return []byte(fmt.Sprintf("$%s*%02X", payload, ck))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestHandleLine_PublishesAcceptedRecord(t *testing.T) {
	fs := &fakeSink{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := New(
		gate.New(gate.Policy{"HDT": 10 * time.Second}),
		[]sink.Sink{fs},
		WithClock(fixedClock(now)),
	)

	if err := b.HandleLine(context.Background(), nmeaLine("IIHDT,274.07,T")); err != nil {
		t.Fatalf("HandleLine: %v", err)
	}
	if fs.count() != 1 {
		t.Fatalf("published=%d want 1", fs.count())
	}

	got := fs.published[0]
	if got.SentenceType != "HDT" {
		t.Fatalf("sentence type=%q want HDT", got.SentenceType)
	}

	var out map[string]any
	if err := json.Unmarshal(got.Payload, &out); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if out["sentence_type"] != "HDT" {
		t.Fatalf("payload sentence_type=%v", out["sentence_type"])
	}
	if out["hdg_true"] != 274.07 {
		t.Fatalf("payload hdg_true=%v", out["hdg_true"])
	}
	if int64(out["timestamp"].(float64)) != now.UnixMilli() {
		t.Fatalf("payload timestamp=%v", out["timestamp"])
	}
}

func TestHandleLine_GateSuppressesRepeat(t *testing.T) {
	fs := &fakeSink{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := New(
		gate.New(gate.Policy{"HDT": 10 * time.Second}),
		[]sink.Sink{fs},
		WithClock(fixedClock(now)),
	)

	line := nmeaLine("IIHDT,274.07,T")
	_ = b.HandleLine(context.Background(), line)
	_ = b.HandleLine(context.Background(), line)

	if fs.count() != 1 {
		t.Fatalf("published=%d want 1", fs.count())
	}
	snap := b.Snapshot()
	if snap.Suppressed != 1 {
		t.Fatalf("suppressed=%d want 1", snap.Suppressed)
	}
	if snap.Decoded != 2 {
		t.Fatalf("decoded=%d want 2", snap.Decoded)
	}
}

func TestHandleLine_UnconfiguredTypeNotPublished(t *testing.T) {
	fs := &fakeSink{}
	b := New(gate.New(gate.Policy{"GGA": time.Second}), []sink.Sink{fs})

	if err := b.HandleLine(context.Background(), nmeaLine("IIHDT,274.07,T")); err != nil {
		t.Fatalf("HandleLine: %v", err)
	}
	if fs.count() != 0 {
		t.Fatalf("published=%d want 0", fs.count())
	}
}

func TestHandleLine_BadSentenceIsNonFatal(t *testing.T) {
	fs := &fakeSink{}
	b := New(gate.New(gate.Policy{"GGA": time.Second}), []sink.Sink{fs})

	for _, raw := range []string{
		"garbage",
		"$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*00", // bad checksum
		string(nmeaLine("GPGLL,4916.45,N,12311.12,W,225444,V,A")),           // bad status
	} {
		if err := b.HandleLine(context.Background(), []byte(raw)); err != nil {
			t.Fatalf("HandleLine(%q): %v", raw, err)
		}
	}

	if fs.count() != 0 {
		t.Fatalf("published=%d want 0", fs.count())
	}
	if snap := b.Snapshot(); snap.Failures != 3 {
		t.Fatalf("failures=%d want 3", snap.Failures)
	}
}

func TestHandleLine_UnknownTypeIsSilentlySkipped(t *testing.T) {
	fs := &fakeSink{}
	b := New(gate.New(gate.Policy{"GGA": time.Second}), []sink.Sink{fs})

	if err := b.HandleLine(context.Background(), nmeaLine("GPZDA,160012.71,11,03,2004,-1,00")); err != nil {
		t.Fatalf("HandleLine: %v", err)
	}
	if snap := b.Snapshot(); snap.Failures != 0 {
		t.Fatalf("failures=%d want 0 for unknown type", snap.Failures)
	}
}
