package nmea

import "strings"

// Knots per unit of the other MWV speed units.
const (
	mpsToKnots = 1.94384
	kphToKnots = 0.539957
)

// MWV: Wind Speed and Angle
// Fields: 1: wind angle, 2: reference (T=true, R=relative), 3: speed,
// 4: speed unit (N/M/K), 5: status (A=valid).
//
// The reference letter selects the record variant: true wind reports
// twa/tws_knots, apparent wind awa/aws_knots. An empty reference is
// treated as apparent.
func decodeMWV(f []string) (Record, error) {
	if len(f) < 6 {
		return nil, tooShort("MWV")
	}

	status := strings.ToUpper(f[5])
	if status != "A" {
		return nil, &StatusError{SentenceType: "MWV", Status: status}
	}

	reference := strings.ToUpper(f[2])
	if reference != "T" && reference != "R" && reference != "" {
		return nil, &FieldError{SentenceType: "MWV", Field: "reference", Value: reference, Expected: "'T' or 'R'"}
	}

	speed := parseFloat(f[3])
	unit := strings.ToUpper(f[4])
	switch unit {
	case "N":
		// Already knots.
	case "M":
		if speed != nil {
			*speed *= mpsToKnots
		}
	case "K":
		if speed != nil {
			*speed *= kphToKnots
		}
	default:
		return nil, &FieldError{SentenceType: "MWV", Field: "unit", Value: unit, Expected: "'M', 'K', or 'N'"}
	}

	if reference == "T" {
		return &MWVTrue{TWA: parseFloat(f[1]), TWSKnots: speed}, nil
	}
	return &MWVApparent{AWA: parseFloat(f[1]), AWSKnots: speed}, nil
}

// VWR: Relative Wind Speed and Angle
// Fields: 1: wind angle, 2: side (L/R of bow), 3: speed knots,
// 5: speed m/s, 7: speed km/h. A port-side angle is reported negative.
func decodeVWR(f []string) (Record, error) {
	if len(f) < 8 {
		return nil, tooShort("VWR")
	}

	angle := parseFloat(f[1])
	if angle != nil && strings.ToUpper(f[2]) == "L" {
		*angle = -*angle
	}

	return &VWR{
		AWA:      angle,
		AWSKnots: parseFloat(f[3]),
		AWSMps:   parseFloat(f[5]),
		AWSKph:   parseFloat(f[7]),
	}, nil
}

// MDA: Meteorological Composite
// Every sub-measurement sits at a fixed offset and is independently
// optional; a missing one is nil, never a decode failure.
//
// Fields: 1: pressure inches, 3: pressure bars, 5: air temp C,
// 7: water temp C, 9: relative humidity, 11: dew point C, 13: true wind
// direction, 15: magnetic wind direction, 17: wind speed knots,
// 19: wind speed m/s.
func decodeMDA(f []string) (Record, error) {
	rec := &MDA{
		PressureInches:   parseFloat(at(f, 1)),
		PressureBars:     parseFloat(at(f, 3)),
		AirTempCelsius:   parseFloat(at(f, 5)),
		WaterTempCelsius: parseFloat(at(f, 7)),
		RelativeHumidity: parseFloat(at(f, 9)),
		DewPointCelsius:  parseFloat(at(f, 11)),
		TWDTrue:          parseFloat(at(f, 13)),
		TWDMagnetic:      parseFloat(at(f, 15)),
		TWSKnots:         parseFloat(at(f, 17)),
		TWSMps:           parseFloat(at(f, 19)),
	}
	if rec.PressureBars != nil {
		mb := *rec.PressureBars * 1000
		rec.PressureMillibars = &mb
	}
	return rec, nil
}
