package source

import (
	"context"
	"testing"
	"time"
)

func TestSerialStart_BadDeviceFails(t *testing.T) {
	c, err := NewSerialClient(SerialConfig{Device: "/dev/does-not-exist-nmea-test"})
	if err != nil {
		t.Fatalf("NewSerialClient: %v", err)
	}
	if err := c.Start(context.Background(), func([]byte) error { return nil }); err == nil {
		t.Fatalf("Start should fail for a missing device")
	}
}

func TestSerialClose_ReturnsAfterFailedStart(t *testing.T) {
	c, err := NewSerialClient(SerialConfig{Device: "/dev/does-not-exist-nmea-test"})
	if err != nil {
		t.Fatalf("NewSerialClient: %v", err)
	}
	if err := c.Start(context.Background(), func([]byte) error { return nil }); err == nil {
		t.Fatalf("Start should fail for a missing device")
	}

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatalf("Close() hung after failed Start")
	}
}

func TestSerialClose_WithoutStart(t *testing.T) {
	c, err := NewSerialClient(SerialConfig{Device: "/dev/does-not-exist-nmea-test"})
	if err != nil {
		t.Fatalf("NewSerialClient: %v", err)
	}

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatalf("Close() hung without Start")
	}
}
