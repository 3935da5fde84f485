package nmea

import "fmt"

// MalformedError reports a sentence that is structurally unusable:
// missing '$', too few fields, or an unparseable checksum suffix.
type MalformedError struct {
	Sentence string
	Reason   string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("invalid NMEA sentence %q: %s", e.Sentence, e.Reason)
}

// ChecksumError reports a present checksum that does not match the
// XOR of the sentence body.
type ChecksumError struct {
	Sentence string
	Want     byte
	Got      byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch for sentence %q: computed %02X, sentence says %02X", e.Sentence, e.Got, e.Want)
}

// UnknownTypeError reports a sentence type with no registered decoder.
type UnknownTypeError struct {
	SentenceType string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unsupported NMEA sentence type %s", e.SentenceType)
}

// StatusError reports a sentence whose validity letter marks the data
// invalid (e.g. an RMC fix status of 'V').
type StatusError struct {
	SentenceType string
	Status       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status %q for sentence type %q", e.Status, e.SentenceType)
}

// FieldError reports a structural discriminator (unit letter, reference
// letter) holding an unrecognized value.
type FieldError struct {
	SentenceType string
	Field        string
	Value        string
	Expected     string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown %s %s %q (expected %s)", e.SentenceType, e.Field, e.Value, e.Expected)
}

// CoordinateError reports a non-empty coordinate field that does not
// match the DDDMM.MMMM degrees/minutes grammar.
type CoordinateError struct {
	Value string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("geographic coordinate value %q is not valid DDDMM.MMM", e.Value)
}
