package nmea

import "strings"

// GGA: Global Positioning System Fix Data
// Fields:
//
//	1: time (hhmmss.ss)
//	2: latitude (ddmm.mmmm)
//	3: N/S
//	4: longitude (dddmm.mmmm)
//	5: E/W
//	6: fix quality (0=invalid)
//	7: number of satellites
//	8: HDOP
//	9: altitude
//
// 10: altitude units (must be M)
func decodeGGA(f []string) (Record, error) {
	if len(f) < 11 {
		return nil, tooShort("GGA")
	}

	unit := strings.ToUpper(f[10])
	if unit != "M" {
		return nil, &FieldError{SentenceType: "GGA", Field: "altitude unit", Value: unit, Expected: "'M'"}
	}

	// Time is truncated to whole seconds for the fix record.
	timeField := f[1]
	if len(timeField) > 6 {
		timeField = timeField[:6]
	}

	lat, err := parseLatitude(f[2], f[3])
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(f[4], f[5])
	if err != nil {
		return nil, err
	}

	return &GGA{
		TimeUTC:       parseTime(timeField),
		Latitude:      lat,
		Longitude:     lon,
		FixQuality:    f[6],
		NumSatellites: parseInt(f[7]),
		HDOP:          parseFloat(f[8]),
		AltitudeMeter: parseFloat(f[9]),
	}, nil
}

// GLL: Geographic Position
// Fields: 1: lat, 2: N/S, 3: lon, 4: E/W, 5: time, 6: status (A=valid),
// 7: FAA mode (optional).
func decodeGLL(f []string) (Record, error) {
	if len(f) < 7 {
		return nil, tooShort("GLL")
	}

	status := strings.ToUpper(f[6])
	if status != "A" {
		return nil, &StatusError{SentenceType: "GLL", Status: status}
	}

	lat, err := parseLatitude(f[1], f[2])
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(f[3], f[4])
	if err != nil {
		return nil, err
	}

	rec := &GLL{
		Latitude:  lat,
		Longitude: lon,
		TimeUTC:   parseTime(f[5]),
	}
	if mode := at(f, 7); mode != "" {
		m := mode[:1]
		rec.Mode = &m
	}
	return rec, nil
}

// GSV: Satellites in View
// Fields: 1: total messages, 2: message number, 3: satellites in view,
// then repeating groups of PRN/elevation/azimuth/SNR. Only complete
// 4-field groups are emitted; trailing remainders are dropped.
func decodeGSV(f []string) (Record, error) {
	if len(f) < 4 {
		return nil, tooShort("GSV")
	}

	rec := &GSV{
		Messages:         parseInt(f[1]),
		MessageNumber:    parseInt(f[2]),
		SatellitesInView: parseInt(f[3]),
		Satellites:       []Satellite{},
	}
	for i := 4; i+4 <= len(f); i += 4 {
		rec.Satellites = append(rec.Satellites, Satellite{
			PRN:       parseInt(f[i]),
			Elevation: parseInt(f[i+1]),
			Azimuth:   parseInt(f[i+2]),
			SNR:       parseInt(f[i+3]),
		})
	}
	return rec, nil
}

// RMC: Recommended Minimum Navigation Information
// Fields: 1: time, 2: status (A=active, V=void), 3: lat, 4: N/S, 5: lon,
// 6: E/W, 7: SOG knots, 8: COG true, 9: date (ddmmyy), 10: magnetic
// variation, 11: variation direction (E/W).
func decodeRMC(f []string) (Record, error) {
	if len(f) < 12 {
		return nil, tooShort("RMC")
	}

	status := strings.ToUpper(f[2])
	if status != "A" {
		return nil, &StatusError{SentenceType: "RMC", Status: status}
	}

	dt, err := parseDateTime("RMC", f[9], f[1])
	if err != nil {
		return nil, err
	}

	lat, err := parseLatitude(f[3], f[4])
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(f[5], f[6])
	if err != nil {
		return nil, err
	}

	variation := parseFloat(f[10])
	if variation != nil && strings.ToUpper(f[11]) == "W" {
		*variation = -*variation
	}

	return &RMC{
		DatetimeUTC:       dt,
		Status:            f[2],
		Latitude:          lat,
		Longitude:         lon,
		SOGKnots:          parseFloat(f[7]),
		COGTrue:           parseFloat(f[8]),
		MagneticVariation: variation,
	}, nil
}

// VTG: Track Made Good and Ground Speed
// Fields: 1: COG true, 3: COG magnetic, 5: SOG knots, 7: SOG km/h,
// 9: FAA mode (optional).
func decodeVTG(f []string) (Record, error) {
	if len(f) < 8 {
		return nil, tooShort("VTG")
	}

	rec := &VTG{
		COGTrue:     parseFloat(f[1]),
		COGMagnetic: parseFloat(f[3]),
		SOGKnots:    parseFloat(f[5]),
		SOGKph:      parseFloat(f[7]),
	}
	if mode := at(f, 9); mode != "" {
		m := mode[:1]
		rec.Mode = &m
	}
	return rec, nil
}
