package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

type SerialConfig struct {
	// Device may be empty to auto-detect /dev/ttyUSB* or /dev/ttyACM*.
	Device string
	// Baud must be a rate supported by the platform implementation.
	// NMEA 0183 instruments typically run at 4800.
	Baud int
}

// SerialClient reads NMEA sentences from a serial tty. Unlike the TCP
// client it does not reconnect: a dead serial device needs operator
// attention, so the read loop ends and the last error is kept.
type SerialClient struct {
	cfg SerialConfig

	started atomic.Bool
	closed  atomic.Bool

	mu      sync.RWMutex
	lastErr string
	closer  io.Closer

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSerialClient(cfg SerialConfig) (*SerialClient, error) {
	if cfg.Baud == 0 {
		cfg.Baud = 4800
	}
	return &SerialClient{cfg: cfg, done: make(chan struct{})}, nil
}

func (c *SerialClient) Start(ctx context.Context, onLine func(line []byte) error) error {
	if c == nil {
		return fmt.Errorf("serial client is nil")
	}
	if onLine == nil {
		return fmt.Errorf("onLine is nil")
	}
	if c.started.Swap(true) {
		return fmt.Errorf("serial client already started")
	}

	device := strings.TrimSpace(c.cfg.Device)
	if device == "" {
		device = autoDetectDevice()
		if device == "" {
			// The goroutine that owns done never launches on a failed
			// Start; close it here so Close does not wait forever.
			close(c.done)
			return fmt.Errorf("serial auto-detect failed: no /dev/ttyACM* or /dev/ttyUSB* found")
		}
	}

	f, err := openSerial(device, c.cfg.Baud)
	if err != nil {
		close(c.done)
		return fmt.Errorf("serial open failed device=%s baud=%d: %w", device, c.cfg.Baud, err)
	}
	c.mu.Lock()
	c.closer = f
	c.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go func() {
		defer close(c.done)
		defer func() {
			_ = f.Close()
		}()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 256), 4096)

		for {
			select {
			case <-runCtx.Done():
				return
			default:
			}

			if !scanner.Scan() {
				err := scanner.Err()
				if err == nil {
					err = io.EOF
				}
				c.setErr(fmt.Sprintf("serial read stopped: %v", err))
				return
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			if err := onLine([]byte(line)); err != nil {
				c.setErr("handler: " + err.Error())
			}
		}
	}()
	return nil
}

func (c *SerialClient) Close() {
	if c == nil {
		return
	}
	if c.closed.Swap(true) {
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Lock()
	closer := c.closer
	c.closer = nil
	c.mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	if c.started.Load() {
		<-c.done
	}
}

func (c *SerialClient) LastError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

func (c *SerialClient) setErr(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}

func autoDetectDevice() string {
	// Keep it intentionally tiny and predictable.
	candidates := []string{}
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyACM%d", i))
	}
	for i := 0; i < 10; i++ {
		candidates = append(candidates, fmt.Sprintf("/dev/ttyUSB%d", i))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
