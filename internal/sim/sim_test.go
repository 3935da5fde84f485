package sim

import (
	"testing"
	"time"

	"nmea-bridge/internal/nmea"
)

var simNow = time.Date(2025, 8, 23, 15, 12, 9, 0, time.UTC)

func TestSentences_AllDecode(t *testing.T) {
	v := NewVessel(1)
	v.Advance(simNow)

	sentences := v.Sentences(simNow)
	if len(sentences) != len(SentenceTypes) {
		t.Fatalf("got %d sentences, want %d", len(sentences), len(SentenceTypes))
	}

	for _, line := range sentences {
		rec, err := nmea.Parse(line, simNow)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", line, err)
		}
		if !nmea.Supported(rec.Type()) {
			t.Fatalf("Parse(%q) produced unsupported type %q", line, rec.Type())
		}
	}
}

func TestSentence_TypesMatch(t *testing.T) {
	v := NewVessel(1)
	for _, st := range SentenceTypes {
		line, ok := v.Sentence(st, simNow)
		if !ok {
			t.Fatalf("Sentence(%q) not generated", st)
		}
		rec, err := nmea.Parse(line, simNow)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", line, err)
		}
		if rec.Type() != st {
			t.Fatalf("Parse(%q) type=%q want %q", line, rec.Type(), st)
		}
	}
}

func TestSentence_UnknownType(t *testing.T) {
	v := NewVessel(1)
	if _, ok := v.Sentence("ZZZ", simNow); ok {
		t.Fatal("Sentence(ZZZ) should not be generated")
	}
}

func TestToDM(t *testing.T) {
	cases := []struct {
		deg       float64
		degDigits int
		pos, neg  string
		wantDM    string
		wantDir   string
	}{
		{45.5, 2, "N", "S", "4530.000", "N"},
		{-45.5, 2, "N", "S", "4530.000", "S"},
		{-122.666, 3, "E", "W", "12239.960", "W"},
		{0.0, 2, "N", "S", "0000.000", "N"},
	}
	for _, tc := range cases {
		dm, dir := toDM(tc.deg, tc.degDigits, tc.pos, tc.neg)
		if dm != tc.wantDM || dir != tc.wantDir {
			t.Fatalf("toDM(%v)=%q,%q want %q,%q", tc.deg, dm, dir, tc.wantDM, tc.wantDir)
		}
	}
}

func TestAdvance_StaysInBounds(t *testing.T) {
	v := NewVessel(7)
	now := simNow
	for i := 0; i < 1000; i++ {
		now = now.Add(10 * time.Second)
		v.Advance(now)
		if v.SOGKnots < 0 || v.SOGKnots > 20 {
			t.Fatalf("sog=%v out of range", v.SOGKnots)
		}
		if v.COGDeg < 0 || v.COGDeg >= 360 {
			t.Fatalf("cog=%v out of range", v.COGDeg)
		}
		if v.DepthM < 0 {
			t.Fatalf("depth=%v negative", v.DepthM)
		}
	}
}

func TestAdvance_MovesNorthEast(t *testing.T) {
	v := NewVessel(3)
	v.COGDeg = 45
	v.SOGKnots = 10

	v.Advance(simNow)
	lat0, lon0 := v.LatDeg, v.LonDeg

	// Hold course and speed for a deterministic direction check.
	v.COGDeg = 45
	v.SOGKnots = 10
	v.Advance(simNow.Add(time.Hour))

	if v.LatDeg <= lat0 {
		t.Fatalf("latitude did not increase: %v -> %v", lat0, v.LatDeg)
	}
	if v.LonDeg <= lon0 {
		t.Fatalf("longitude did not increase: %v -> %v", lon0, v.LonDeg)
	}
}
