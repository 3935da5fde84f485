// Package source reads raw NMEA sentences from an instrument feed.
package source

import (
	"context"
	"time"
)

// Client is a line-oriented feed reader. Start returns immediately;
// reading happens on a background goroutine until the context is
// cancelled or Close is called. onLine receives each non-empty line with
// terminators stripped and should be fast.
type Client interface {
	Start(ctx context.Context, onLine func(line []byte) error) error
	Close()
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
