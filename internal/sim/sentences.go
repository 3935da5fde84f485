package sim

import (
	"fmt"
	"math"
	"time"
)

// SentenceTypes lists every type the simulator can generate.
var SentenceTypes = []string{
	"GGA", "RMC", "GLL", "VTG", "HDT", "DPT", "MWV", "VWR", "ROT", "RSA", "MDA", "VLW",
}

// Sentence builds one checksummed sentence of the given type from the
// current vessel state. The second return is false for types the
// simulator does not know.
func (v *Vessel) Sentence(sentenceType string, now time.Time) (string, bool) {
	hhmmss := now.UTC().Format("150405")
	ddmmyy := now.UTC().Format("020106")

	latDM, latDir := toDM(v.LatDeg, 2, "N", "S")
	lonDM, lonDir := toDM(v.LonDeg, 3, "E", "W")

	var payload string
	switch sentenceType {
	case "GGA":
		payload = fmt.Sprintf("GPGGA,%s.00,%s,%s,%s,%s,1,08,0.9,10.0,M,-30.0,M,,",
			hhmmss, latDM, latDir, lonDM, lonDir)
	case "RMC":
		payload = fmt.Sprintf("GPRMC,%s.00,A,%s,%s,%s,%s,%.1f,%.1f,%s,15.0,E",
			hhmmss, latDM, latDir, lonDM, lonDir, v.SOGKnots, v.COGDeg, ddmmyy)
	case "GLL":
		payload = fmt.Sprintf("GPGLL,%s,%s,%s,%s,%s.00,A,A",
			latDM, latDir, lonDM, lonDir, hhmmss)
	case "VTG":
		payload = fmt.Sprintf("GPVTG,%.1f,T,%.1f,M,%.1f,N,%.1f,K,A",
			v.COGDeg, math.Mod(v.COGDeg-15.0+360, 360), v.SOGKnots, v.SOGKnots*1.852)
	case "HDT":
		payload = fmt.Sprintf("IIHDT,%.1f,T", v.HeadingDeg)
	case "DPT":
		payload = fmt.Sprintf("IIDPT,%.1f,1.5,100.0", v.DepthM)
	case "MWV":
		angle := v.uniform(0, 360)
		speed := v.uniform(0, 30)
		payload = fmt.Sprintf("IIMWV,%.1f,R,%.1f,N,A", angle, speed)
	case "VWR":
		angle := v.uniform(0, 180)
		speed := v.uniform(0, 30)
		payload = fmt.Sprintf("IIVWR,%.1f,L,%.1f,N,%.1f,M,%.1f,K",
			angle, speed, speed*0.514, speed*1.852)
	case "ROT":
		payload = fmt.Sprintf("IIROT,%.1f,A", v.uniform(-5, 5))
	case "RSA":
		rudder := v.uniform(-30, 30)
		payload = fmt.Sprintf("IIRSA,%.1f,A,%.1f,A", rudder, rudder)
	case "MDA":
		temp := 20.0 + v.uniform(-5, 5)
		press := 1013.0 + v.uniform(-10, 10)
		payload = fmt.Sprintf("IIMDA,30.0,I,%.3f,B,%.1f,C,,,,,15.0,C,,,,,,,,",
			press/1000, temp)
	case "VLW":
		payload = "IIVLW,123.4,N,12.3,N,110.0,N,11.0,N"
	default:
		return "", false
	}

	return wrap(payload), true
}

// Sentences builds one sentence of every supported type.
func (v *Vessel) Sentences(now time.Time) []string {
	out := make([]string, 0, len(SentenceTypes))
	for _, st := range SentenceTypes {
		if s, ok := v.Sentence(st, now); ok {
			out = append(out, s)
		}
	}
	return out
}

// toDM converts signed decimal degrees to NMEA degrees/minutes text
// plus a hemisphere letter. degDigits is 2 for latitude, 3 for
// longitude.
func toDM(deg float64, degDigits int, pos, neg string) (string, string) {
	dir := pos
	if deg < 0 {
		dir = neg
		deg = -deg
	}
	whole := int(deg)
	minutes := (deg - float64(whole)) * 60
	return fmt.Sprintf("%0*d%06.3f", degDigits, whole, minutes), dir
}

// wrap frames a payload with '$' and its checksum.
func wrap(payload string) string {
	var cs byte
	for i := 0; i < len(payload); i++ {
		cs ^= payload[i]
	}
	return fmt.Sprintf("$%s*%02X", payload, cs)
}
