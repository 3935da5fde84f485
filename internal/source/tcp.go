package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

type TCPConfig struct {
	Addr string

	ReconnectDelay time.Duration
	MaxLineBytes   int

	// DialTimeout is used for the initial TCP connect.
	DialTimeout time.Duration
}

// TCPClient reads newline-delimited NMEA sentences from a TCP feed
// (e.g. a multiplexer on port 10110) and reconnects on failure.
type TCPClient struct {
	cfg TCPConfig

	started atomic.Bool
	closed  atomic.Bool

	mu       sync.RWMutex
	state    string
	lastErr  string
	lastSeen time.Time
	count    uint64

	cancel context.CancelFunc
	done   chan struct{}
}

type TCPSnapshot struct {
	Addr        string `json:"addr"`
	State       string `json:"state"`
	LastError   string `json:"last_error,omitempty"`
	LastSeenUTC string `json:"last_seen_utc,omitempty"`
	Lines       uint64 `json:"lines"`
}

func NewTCPClient(cfg TCPConfig) (*TCPClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("nmea feed addr is required")
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 5 * time.Second
	}
	if cfg.MaxLineBytes <= 0 {
		// NMEA sentences are < 82 chars; allow generous headroom for
		// chatty multiplexers.
		cfg.MaxLineBytes = 4096
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}

	return &TCPClient{cfg: cfg, state: "stopped", done: make(chan struct{})}, nil
}

func (c *TCPClient) Start(ctx context.Context, onLine func(line []byte) error) error {
	if c == nil {
		return fmt.Errorf("tcp client is nil")
	}
	if c.closed.Load() {
		return fmt.Errorf("tcp client is closed")
	}
	if onLine == nil {
		return fmt.Errorf("onLine is nil")
	}
	if c.started.Swap(true) {
		return fmt.Errorf("tcp client already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.setState("connecting", "")

	go func() {
		defer close(c.done)
		c.runLoop(runCtx, onLine)
	}()
	return nil
}

func (c *TCPClient) Close() {
	if c == nil {
		return
	}
	if c.closed.Swap(true) {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	<-c.done
}

func (c *TCPClient) Snapshot() TCPSnapshot {
	if c == nil {
		return TCPSnapshot{}
	}
	c.mu.RLock()
	state := c.state
	lastErr := c.lastErr
	lastSeen := c.lastSeen
	count := c.count
	c.mu.RUnlock()

	out := TCPSnapshot{
		Addr:      c.cfg.Addr,
		State:     state,
		LastError: lastErr,
		Lines:     count,
	}
	if !lastSeen.IsZero() {
		out.LastSeenUTC = lastSeen.UTC().Format(time.RFC3339Nano)
	}
	return out
}

func (c *TCPClient) runLoop(ctx context.Context, onLine func(line []byte) error) {
	dialer := &net.Dialer{Timeout: c.cfg.DialTimeout}

	for {
		select {
		case <-ctx.Done():
			c.setState("stopped", "")
			return
		default:
		}

		c.setState("connecting", "")
		conn, err := dialer.DialContext(ctx, "tcp", c.cfg.Addr)
		if err != nil {
			c.setState("error", err.Error())
			if !sleepCtx(ctx, c.cfg.ReconnectDelay) {
				c.setState("stopped", "")
				return
			}
			continue
		}

		c.setState("connected", "")
		reader := bufio.NewReader(conn)

		for {
			select {
			case <-ctx.Done():
				_ = conn.Close()
				c.setState("stopped", "")
				return
			default:
			}

			line, err := reader.ReadBytes('\n')
			if err != nil {
				_ = conn.Close()
				if errors.Is(err, net.ErrClosed) {
					c.setState("disconnected", "")
				} else {
					c.setState("disconnected", err.Error())
				}
				break
			}

			if len(line) > c.cfg.MaxLineBytes {
				c.setState("error", fmt.Sprintf("line too large (%d bytes)", len(line)))
				continue
			}

			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}

			raw := append([]byte(nil), line...)
			if err := onLine(raw); err != nil {
				c.setState("error", "handler: "+err.Error())
				continue
			}

			now := time.Now().UTC()
			c.mu.Lock()
			c.lastSeen = now
			c.count++
			c.mu.Unlock()
		}

		if !sleepCtx(ctx, c.cfg.ReconnectDelay) {
			c.setState("stopped", "")
			return
		}
	}
}

func (c *TCPClient) setState(state string, lastErr string) {
	c.mu.Lock()
	c.state = state
	if lastErr != "" {
		c.lastErr = lastErr
	} else {
		// Clear stale errors on healthy/neutral states so status output
		// doesn't look broken after a transient startup failure.
		if state == "connected" || state == "connecting" || state == "stopped" {
			c.lastErr = ""
		}
	}
	c.mu.Unlock()
}
