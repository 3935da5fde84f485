package sim

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type ServerConfig struct {
	Addr     string
	Interval time.Duration
	Seed     int64
}

// Server serves the simulated feed over TCP: every Interval it advances
// the vessel and writes one sentence of each type to every connected
// client, newline-delimited like a real NMEA multiplexer.
type Server struct {
	cfg ServerConfig

	mu     sync.Mutex
	vessel *Vessel
}

func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("sim server addr is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Server{cfg: cfg, vessel: NewVessel(cfg.Seed)}, nil
}

// Run blocks until the context is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("sim listen: %w", err)
	}
	log.Printf("sim feed listening addr=%s interval=%s", ln.Addr(), s.cfg.Interval)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		return ln.Close()
	})

	g.Go(func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("sim accept: %w", err)
			}
			log.Printf("sim client connected remote=%s", conn.RemoteAddr())
			g.Go(func() error {
				defer conn.Close()
				s.stream(gctx, conn)
				return nil
			})
		}
	})

	err = g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *Server) stream(ctx context.Context, conn net.Conn) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := s.writeBatch(conn, time.Now()); err != nil {
			log.Printf("sim client dropped remote=%s: %v", conn.RemoteAddr(), err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) writeBatch(conn net.Conn, now time.Time) error {
	s.mu.Lock()
	s.vessel.Advance(now)
	sentences := s.vessel.Sentences(now)
	s.mu.Unlock()

	for _, sentence := range sentences {
		if _, err := fmt.Fprintf(conn, "%s\r\n", sentence); err != nil {
			return err
		}
	}
	return nil
}
