package nmea

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Absent or unparseable numeric fields decode to nil rather than an
// error; numeric noise must not abort a decode with other usable fields.

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// parseTime converts an HHMMSS.SS time-of-day field to "HH:MM:SS",
// rounding fractional seconds to the nearest whole second.
func parseTime(s string) *string {
	s = strings.TrimSpace(s)
	if len(s) < 6 {
		return nil
	}
	hours, err1 := strconv.Atoi(s[0:2])
	minutes, err2 := strconv.Atoi(s[2:4])
	seconds, err3 := strconv.ParseFloat(s[4:], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}
	out := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, int(math.Round(seconds)))
	return &out
}

// parseDateTime combines a DDMMYY date field with an HHMMSS.SS time field
// into an ISO-8601 timestamp. Unlike parseTime it fails hard: it is only
// called where a valid fix is mandatory (RMC).
func parseDateTime(sentenceType, dateStr, timeStr string) (string, error) {
	badField := func(field, value string) error {
		return &FieldError{
			SentenceType: sentenceType,
			Field:        field,
			Value:        value,
			Expected:     "DDMMYY date with HHMMSS.SS time",
		}
	}

	dateStr = strings.TrimSpace(dateStr)
	timeStr = strings.TrimSpace(timeStr)
	if len(dateStr) < 6 {
		return "", badField("date", dateStr)
	}
	if len(timeStr) < 6 {
		return "", badField("time", timeStr)
	}

	day, err1 := strconv.Atoi(dateStr[0:2])
	month, err2 := strconv.Atoi(dateStr[2:4])
	year, err3 := strconv.Atoi(dateStr[4:])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", badField("date", dateStr)
	}
	// Two-digit years are in the 2000s.
	if year < 2000 {
		year += 2000
	}

	hours, err1 := strconv.Atoi(timeStr[0:2])
	minutes, err2 := strconv.Atoi(timeStr[2:4])
	seconds, err3 := strconv.ParseFloat(timeStr[4:], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", badField("time", timeStr)
	}

	dt := time.Date(year, time.Month(month), day, hours, minutes, int(math.Round(seconds)), 0, time.UTC)
	return dt.Format("2006-01-02T15:04:05"), nil
}

// dmPattern matches degrees/minutes coordinate text: one or more degree
// digits followed by two minute digits and a decimal fraction.
var dmPattern = regexp.MustCompile(`^(\d+)(\d\d\.\d+)$`)

// parseDM converts a DDDMM.MMMM degrees/minutes field to unsigned decimal
// degrees. An empty field is nil; the literal "0" is exactly 0.0; anything
// else that fails the grammar is a CoordinateError.
func parseDM(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if s == "0" {
		zero := 0.0
		return &zero, nil
	}
	m := dmPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, &CoordinateError{Value: s}
	}
	deg, _ := strconv.ParseFloat(m[1], 64)
	min, _ := strconv.ParseFloat(m[2], 64)
	v := deg + min/60
	return &v, nil
}

func parseLatitude(value, hemisphere string) (*float64, error) {
	v, err := parseDM(value)
	if err != nil || v == nil {
		return v, err
	}
	if strings.ToUpper(strings.TrimSpace(hemisphere)) == "S" {
		*v = -*v
	}
	return v, nil
}

func parseLongitude(value, hemisphere string) (*float64, error) {
	v, err := parseDM(value)
	if err != nil || v == nil {
		return v, err
	}
	if strings.ToUpper(strings.TrimSpace(hemisphere)) == "W" {
		*v = -*v
	}
	return v, nil
}

// at returns field i or "" when the sentence is shorter; used where
// trailing fields are optional by the sentence definition.
func at(f []string, i int) string {
	if i < len(f) {
		return f[i]
	}
	return ""
}
