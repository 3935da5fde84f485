package nmea

import (
	"strconv"
	"strings"
	"time"
)

type sentence struct {
	Type string
	// Fields is the comma-split payload. Fields[0] is the talker+type
	// field; decoders index their data fields from 1, matching the
	// NMEA 0183 field numbering.
	Fields []string
}

// Parse decodes one raw NMEA 0183 line into a typed record stamped with
// now in Unix milliseconds. The returned error is one of the types in
// errors.go; callers log and move on to the next line.
func Parse(line string, now time.Time) (Record, error) {
	sent, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	decode, ok := decoders[sent.Type]
	if !ok {
		return nil, &UnknownTypeError{SentenceType: sent.Type}
	}

	rec, err := decode(sent.Fields)
	if err != nil {
		return nil, err
	}
	rec.stamp(sent.Type, now.UnixMilli())
	return rec, nil
}

// tokenize validates the framing of a sentence and splits it into the
// 3-character type code plus ordered fields. Empty fields are preserved;
// several decoders address fields by fixed offset.
func tokenize(line string) (sentence, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return sentence{}, &MalformedError{Sentence: line, Reason: "missing '$'"}
	}

	payload := line[1:]

	// The checksum is optional. When present it covers everything
	// between '$' and '*'.
	if star := strings.LastIndexByte(payload, '*'); star != -1 {
		body := payload[:star]
		suffix := strings.TrimSpace(payload[star+1:])
		want, err := strconv.ParseUint(suffix, 16, 8)
		if err != nil {
			return sentence{}, &MalformedError{Sentence: line, Reason: "bad checksum suffix"}
		}
		got := checksum(body)
		if got != byte(want) {
			return sentence{}, &ChecksumError{Sentence: line, Want: byte(want), Got: got}
		}
		payload = body
	}

	parts := strings.Split(payload, ",")
	typeField := parts[0]
	if len(typeField) < 3 {
		return sentence{}, &MalformedError{Sentence: line, Reason: "short type field"}
	}
	// Dispatch on the last 3 characters; the leading talker ID
	// (GP, GN, II, ...) identifies the instrument, not the sentence.
	t := typeField[len(typeField)-3:]
	return sentence{Type: strings.ToUpper(t), Fields: parts}, nil
}

// checksum is the running XOR of every byte between '$' and '*'.
func checksum(body string) byte {
	var cs byte
	for i := 0; i < len(body); i++ {
		cs ^= body[i]
	}
	return cs
}
