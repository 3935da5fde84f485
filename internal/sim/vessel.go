// Package sim generates a synthetic NMEA instrument feed for
// development and testing.
package sim

import (
	"math"
	"math/rand"
	"time"
)

// Vessel is a simulated boat: position advanced dead-reckoning style
// from speed and course, with small random fluctuations each step.
type Vessel struct {
	LatDeg     float64
	LonDeg     float64
	SOGKnots   float64
	COGDeg     float64
	HeadingDeg float64
	DepthM     float64

	rng  *rand.Rand
	last time.Time
}

func NewVessel(seed int64) *Vessel {
	return &Vessel{
		// Off Portland, OR: 45 degrees 30.0 minutes N, 122 degrees
		// 40.0 minutes W.
		LatDeg:     45.5,
		LonDeg:     -122.666,
		SOGKnots:   6.0,
		COGDeg:     45.0,
		HeadingDeg: 45.0,
		DepthM:     15.0,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Advance moves the vessel forward to now.
func (v *Vessel) Advance(now time.Time) {
	var dt float64
	if !v.last.IsZero() {
		dt = now.Sub(v.last).Seconds()
	}
	v.last = now

	v.SOGKnots += v.uniform(-0.1, 0.1)
	v.SOGKnots = math.Max(0, math.Min(v.SOGKnots, 20))

	v.COGDeg += v.uniform(-1.0, 1.0)
	v.COGDeg = math.Mod(v.COGDeg+360, 360)

	// Heading follows COG with some deviation.
	v.HeadingDeg = math.Mod(v.COGDeg+v.uniform(-2.0, 2.0)+360, 360)

	// 1 knot = 1 nautical mile per hour; 1 NM = 1 minute of latitude.
	distanceNm := v.SOGKnots * dt / 3600.0

	// COG is compass convention (0=N, 90=E); convert to math convention.
	angle := (90.0 - v.COGDeg) * math.Pi / 180.0
	v.LatDeg += distanceNm * math.Sin(angle) / 60.0
	v.LonDeg += distanceNm * math.Cos(angle) / (60.0 * math.Cos(v.LatDeg*math.Pi/180.0))

	v.DepthM += v.uniform(-1.0, 1.0)
	if v.DepthM < 0 {
		v.DepthM = 15.0
	}
}

func (v *Vessel) uniform(lo, hi float64) float64 {
	return lo + v.rng.Float64()*(hi-lo)
}
