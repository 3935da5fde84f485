package nmea

// Record is one decoded sentence. The concrete types below form a closed
// set: one variant per sentence type (two for MWV, whose field names
// depend on the wind reference). Nil pointer fields mean "the instrument
// sent no value" and marshal to JSON null.
type Record interface {
	Type() string
	UnixMilli() int64

	stamp(sentenceType string, unixMilli int64)
}

// Header carries the fields common to every record. Embedding it keeps
// sentence_type and timestamp flat in the published JSON object.
type Header struct {
	SentenceType string `json:"sentence_type"`
	Timestamp    int64  `json:"timestamp"`
}

func (h *Header) Type() string     { return h.SentenceType }
func (h *Header) UnixMilli() int64 { return h.Timestamp }

func (h *Header) stamp(sentenceType string, unixMilli int64) {
	h.SentenceType = sentenceType
	h.Timestamp = unixMilli
}

// GGA - Global Positioning System Fix Data
type GGA struct {
	Header
	TimeUTC       *string  `json:"timeUTC"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	FixQuality    string   `json:"fix_quality"`
	NumSatellites *int     `json:"num_satellites"`
	HDOP          *float64 `json:"hdop"`
	AltitudeMeter *float64 `json:"altitude_meter"`
}

// GLL - Geographic Position Latitude/Longitude
type GLL struct {
	Header
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	TimeUTC   *string  `json:"timeUTC"`
	Mode      *string  `json:"gll_mode"`
}

// GSV - Satellites in View
type GSV struct {
	Header
	Messages         *int        `json:"gsv_messages"`
	MessageNumber    *int        `json:"message_number"`
	SatellitesInView *int        `json:"satellites_in_view"`
	Satellites       []Satellite `json:"satellites"`
}

// Satellite is one complete 4-field group of a GSV sentence.
type Satellite struct {
	PRN       *int `json:"satellite_prn"`
	Elevation *int `json:"elevation_angle"`
	Azimuth   *int `json:"azimuth_angle"`
	SNR       *int `json:"snr"`
}

// HDT - Heading True
type HDT struct {
	Header
	HeadingTrue *float64 `json:"hdg_true"`
}

// MDA - Meteorological Composite
type MDA struct {
	Header
	PressureInches    *float64 `json:"pressure_inches"`
	PressureBars      *float64 `json:"pressure_bars"`
	PressureMillibars *float64 `json:"pressure_millibars"`
	AirTempCelsius    *float64 `json:"temperature_air_celsius"`
	WaterTempCelsius  *float64 `json:"temperature_water_celsius"`
	RelativeHumidity  *float64 `json:"humidity_relative"`
	DewPointCelsius   *float64 `json:"dew_point_celsius"`
	TWDTrue           *float64 `json:"twd_true"`
	TWDMagnetic       *float64 `json:"twd_magnetic"`
	TWSKnots          *float64 `json:"tws_knots"`
	TWSMps            *float64 `json:"tws_mps"`
}

// MWVTrue - Wind Speed and Angle, true wind reference
type MWVTrue struct {
	Header
	TWA      *float64 `json:"twa"`
	TWSKnots *float64 `json:"tws_knots"`
}

// MWVApparent - Wind Speed and Angle, apparent (relative) wind reference
type MWVApparent struct {
	Header
	AWA      *float64 `json:"awa"`
	AWSKnots *float64 `json:"aws_knots"`
}

// RMC - Recommended Minimum Navigation Information
type RMC struct {
	Header
	DatetimeUTC       string   `json:"datetimeUTC"`
	Status            string   `json:"status"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	SOGKnots          *float64 `json:"sog_knots"`
	COGTrue           *float64 `json:"cog_true"`
	MagneticVariation *float64 `json:"magnetic_variation"`
}

// ROT - Rate of Turn
type ROT struct {
	Header
	RateOfTurn *float64 `json:"rate_of_turn"`
}

// RSA - Rudder Sensor Angle
type RSA struct {
	Header
	RudderAngle *float64 `json:"rudder_angle"`
}

// VTG - Track Made Good and Ground Speed
type VTG struct {
	Header
	COGTrue     *float64 `json:"cog_true"`
	COGMagnetic *float64 `json:"cog_magnetic"`
	SOGKnots    *float64 `json:"sog_knots"`
	SOGKph      *float64 `json:"sog_kph"`
	Mode        *string  `json:"mode"`
}

// VWR - Relative Wind Speed and Angle
type VWR struct {
	Header
	AWA      *float64 `json:"awa"`
	AWSKnots *float64 `json:"aws_knots"`
	AWSMps   *float64 `json:"aws_mps"`
	AWSKph   *float64 `json:"aws_kph"`
}

// DPT - Depth of Water
type DPT struct {
	Header
	DepthBelowTransducerMeters *float64 `json:"depth_below_transducer_meters"`
	TransducerDepthMeters      *float64 `json:"transducer_depth_meters"`
	WaterDepthMeters           *float64 `json:"water_depth_meters"`
}

// VLW - Distance Traveled through Water
type VLW struct {
	Header
	WaterTotalNm       *float64 `json:"water_total_nm"`
	WaterSinceResetNm  *float64 `json:"water_since_reset_nm"`
	GroundTotalNm      *float64 `json:"ground_total_nm"`
	GroundSinceResetNm *float64 `json:"ground_since_reset_nm"`
}
