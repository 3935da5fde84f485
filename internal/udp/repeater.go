// Package udp re-broadcasts raw NMEA sentences over UDP so chart
// plotters and other listeners can share the feed.
package udp

import (
	"fmt"
	"io"
	"net"
)

type udpConn interface {
	io.Writer
	io.Closer
}

type resolveFunc func(network, address string) (*net.UDPAddr, error)
type dialFunc func(network string, laddr, raddr *net.UDPAddr) (udpConn, error)

type Repeater struct {
	dest string
	conn udpConn
}

func NewRepeater(dest string) (*Repeater, error) {
	return newRepeater(dest, net.ResolveUDPAddr, func(network string, laddr, raddr *net.UDPAddr) (udpConn, error) {
		return net.DialUDP(network, laddr, raddr)
	})
}

func newRepeater(dest string, resolve resolveFunc, dial dialFunc) (*Repeater, error) {
	addr, err := resolve("udp", dest)
	if err != nil {
		return nil, fmt.Errorf("resolve dest: %w", err)
	}

	// DialUDP selects a suitable local address automatically.
	conn, err := dial("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}

	return &Repeater{dest: dest, conn: conn}, nil
}

// Repeat sends one raw sentence, re-adding the CRLF line terminator the
// feed reader stripped.
func (r *Repeater) Repeat(sentence []byte) error {
	if len(sentence) == 0 {
		return nil
	}
	out := make([]byte, 0, len(sentence)+2)
	out = append(out, sentence...)
	out = append(out, '\r', '\n')
	_, err := r.conn.Write(out)
	return err
}

func (r *Repeater) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}
