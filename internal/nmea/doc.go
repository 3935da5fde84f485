// Package nmea decodes NMEA 0183 sentences into typed records.
//
// It is intentionally small and geared toward marine instrument feeds:
// - Tokenize a sentence and verify its optional checksum
// - Dispatch by the 3-character sentence type to a fixed decoder table
// - Convert fields to typed values; absent/unparseable values become nil
package nmea
