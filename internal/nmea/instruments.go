package nmea

import "strings"

// HDT: Heading True
// Fields: 1: heading, 2: reference (must be T).
func decodeHDT(f []string) (Record, error) {
	if len(f) < 3 {
		return nil, tooShort("HDT")
	}
	reference := strings.ToUpper(f[2])
	if reference != "T" {
		return nil, &FieldError{SentenceType: "HDT", Field: "reference", Value: reference, Expected: "'T'"}
	}
	return &HDT{HeadingTrue: parseFloat(f[1])}, nil
}

// ROT: Rate of Turn
// Fields: 1: rate of turn (deg/min, negative = port), 2: status.
// A non-A status means the reading is unusable, not that the sentence
// failed to decode.
func decodeROT(f []string) (Record, error) {
	if len(f) < 3 {
		return nil, tooShort("ROT")
	}
	rec := &ROT{}
	if strings.ToUpper(f[2]) == "A" {
		rec.RateOfTurn = parseFloat(f[1])
	}
	return rec, nil
}

// RSA: Rudder Sensor Angle
// Fields: 1: starboard rudder angle, 2: status.
func decodeRSA(f []string) (Record, error) {
	if len(f) < 3 {
		return nil, tooShort("RSA")
	}
	rec := &RSA{}
	if strings.ToUpper(f[2]) == "A" {
		rec.RudderAngle = parseFloat(f[1])
	}
	return rec, nil
}

// DPT: Depth of Water
// Fields: 1: depth below transducer, 2: transducer offset. Total water
// depth is their sum, or nil when either input is missing.
func decodeDPT(f []string) (Record, error) {
	if len(f) < 3 {
		return nil, tooShort("DPT")
	}
	rec := &DPT{
		DepthBelowTransducerMeters: parseFloat(f[1]),
		TransducerDepthMeters:      parseFloat(f[2]),
	}
	if rec.DepthBelowTransducerMeters != nil && rec.TransducerDepthMeters != nil {
		total := *rec.DepthBelowTransducerMeters + *rec.TransducerDepthMeters
		rec.WaterDepthMeters = &total
	}
	return rec, nil
}

// VLW: Distance Traveled through Water
// Fields: 1: total water distance nm, 3: water distance since reset nm,
// 5: total ground distance nm, 7: ground distance since reset nm.
func decodeVLW(f []string) (Record, error) {
	if len(f) < 8 {
		return nil, tooShort("VLW")
	}
	return &VLW{
		WaterTotalNm:       parseFloat(f[1]),
		WaterSinceResetNm:  parseFloat(f[3]),
		GroundTotalNm:      parseFloat(f[5]),
		GroundSinceResetNm: parseFloat(f[7]),
	}, nil
}
