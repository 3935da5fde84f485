package udp

import (
	"errors"
	"net"
	"testing"
)

type fakeConn struct {
	writes    [][]byte
	writeErr  error
	closed    bool
	writeHits int
}

func (c *fakeConn) Write(p []byte) (int, error) {
	c.writeHits++
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	cp := append([]byte(nil), p...)
	c.writes = append(c.writes, cp)
	return len(p), nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func TestNewRepeater_DialsResolvedAddr(t *testing.T) {
	var gotNetwork string
	var gotRaddr *net.UDPAddr
	fc := &fakeConn{}

	resolve := func(network, address string) (*net.UDPAddr, error) {
		return net.ResolveUDPAddr(network, address)
	}
	dial := func(network string, laddr, raddr *net.UDPAddr) (udpConn, error) {
		gotNetwork = network
		gotRaddr = raddr
		return fc, nil
	}

	r, err := newRepeater("127.0.0.1:10110", resolve, dial)
	if err != nil {
		t.Fatalf("newRepeater() error: %v", err)
	}
	defer r.Close()

	if gotNetwork != "udp" {
		t.Fatalf("network=%q want %q", gotNetwork, "udp")
	}
	if gotRaddr == nil || gotRaddr.Port != 10110 || !gotRaddr.IP.Equal(net.IPv4(127, 0, 0, 1)) {
		t.Fatalf("raddr=%v want 127.0.0.1:10110", gotRaddr)
	}
}

func TestNewRepeater_ResolveFailure(t *testing.T) {
	resolveErr := errors.New("nope")
	resolve := func(network, address string) (*net.UDPAddr, error) {
		return nil, resolveErr
	}
	dial := func(network string, laddr, raddr *net.UDPAddr) (udpConn, error) {
		return &fakeConn{}, nil
	}

	_, err := newRepeater("bad:addr", resolve, dial)
	if !errors.Is(err, resolveErr) {
		t.Fatalf("err=%v want %v", err, resolveErr)
	}
}

func TestRepeat_AppendsCRLF(t *testing.T) {
	fc := &fakeConn{}
	r := &Repeater{dest: "x", conn: fc}

	if err := r.Repeat([]byte("$IIHDT,45.0,T")); err != nil {
		t.Fatalf("Repeat() error: %v", err)
	}
	if len(fc.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(fc.writes))
	}
	if string(fc.writes[0]) != "$IIHDT,45.0,T\r\n" {
		t.Fatalf("write=%q", fc.writes[0])
	}
}

func TestRepeat_EmptyNoWrite(t *testing.T) {
	fc := &fakeConn{}
	r := &Repeater{dest: "x", conn: fc}

	if err := r.Repeat(nil); err != nil {
		t.Fatalf("Repeat(nil) error: %v", err)
	}
	if fc.writeHits != 0 {
		t.Fatalf("expected no writes, got %d", fc.writeHits)
	}
}

func TestRepeat_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	fc := &fakeConn{writeErr: wantErr}
	r := &Repeater{dest: "x", conn: fc}

	if err := r.Repeat([]byte("$IIHDT,45.0,T")); !errors.Is(err, wantErr) {
		t.Fatalf("err=%v want %v", err, wantErr)
	}
}

func TestClose_NilConnNoPanic(t *testing.T) {
	r := &Repeater{}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}
