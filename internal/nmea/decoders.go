package nmea

// decodeFunc turns the ordered fields of one sentence into a record.
// Fields[0] is the talker+type field; data fields start at 1.
type decodeFunc func(f []string) (Record, error)

// decoders is the fixed dispatch table. Adding a sentence type means
// adding an entry here; there is no runtime discovery.
var decoders = map[string]decodeFunc{
	"DPT": decodeDPT,
	"GGA": decodeGGA,
	"GLL": decodeGLL,
	"GSV": decodeGSV,
	"HDT": decodeHDT,
	"MDA": decodeMDA,
	"MWV": decodeMWV,
	"RMC": decodeRMC,
	"ROT": decodeROT,
	"RSA": decodeRSA,
	"VLW": decodeVLW,
	"VTG": decodeVTG,
	"VWR": decodeVWR,
}

// Supported reports whether a decoder is registered for the given
// sentence type code.
func Supported(sentenceType string) bool {
	_, ok := decoders[sentenceType]
	return ok
}

func tooShort(sentenceType string) error {
	return &MalformedError{
		Sentence: sentenceType,
		Reason:   "too few fields",
	}
}
