// Package sink publishes decoded NMEA records to downstream systems.
package sink

import "context"

// Sink receives the JSON payload of one accepted record. Implementations
// own their connection lifecycle; Publish must be safe to call from the
// pipeline goroutine.
type Sink interface {
	Publish(ctx context.Context, sentenceType string, payload []byte) error
	Close() error
}
