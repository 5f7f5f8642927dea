// Package listener receives RADIUS datagrams on a UDP socket and decodes
// them without ever replying.
package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/vitalvas/radwire/pkg/log"
	"github.com/vitalvas/radwire/pkg/metrics"
	"github.com/vitalvas/radwire/pkg/packet"
)

// DefaultBufferSize fits the largest packet RFC 2865 allows.
const DefaultBufferSize = packet.MaxPacketLength

// Handler is called for every datagram that decodes. The view owns its
// bytes and may be retained.
type Handler func(ctx context.Context, view *packet.PacketView, from net.Addr)

// Config holds listener options
type Config struct {
	BufferSize int
	Logger     log.Logger
	Handler    Handler
}

// Listener is a passive UDP receiver
type Listener struct {
	conn    net.PacketConn
	pool    sync.Pool
	logger  log.Logger
	handler Handler

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// Listen opens a UDP socket on address
func Listen(address string, cfg Config) (*Listener, error) {
	conn, err := net.ListenPacket("udp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	return New(conn, cfg), nil
}

// New wraps an existing PacketConn. The listener takes ownership of conn.
func New(conn net.PacketConn, cfg Config) *Listener {
	size := cfg.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}

	l := &Listener{
		conn:    conn,
		logger:  logger,
		handler: cfg.Handler,
	}
	l.pool.New = func() any {
		b := make([]byte, size)
		return &b
	}

	return l
}

// Serve reads until ctx is canceled or Close is called. Each datagram is
// decoded in its own goroutine.
func (l *Listener) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		l.Close()
	})
	defer stop()

	l.logger.WithFields(map[string]interface{}{
		"address": l.conn.LocalAddr().String(),
	}).Info("listening for RADIUS datagrams")

	for {
		bufPtr := l.pool.Get().(*[]byte)
		buffer := *bufPtr

		n, addr, err := l.conn.ReadFrom(buffer)
		if err != nil {
			l.pool.Put(bufPtr)

			if l.isClosed() {
				return nil
			}

			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			return err
		}

		data := make([]byte, n)
		copy(data, buffer[:n])
		l.pool.Put(bufPtr)

		l.mu.RLock()
		if l.closed {
			l.mu.RUnlock()
			return nil
		}
		l.wg.Add(1)
		l.mu.RUnlock()

		go func() {
			defer l.wg.Done()
			l.handle(ctx, data, addr)
		}()
	}
}

func (l *Listener) handle(ctx context.Context, data []byte, from net.Addr) {
	view, rest, err := packet.Decode(data)
	metrics.RecordDecode(metrics.SourceUDP, view, err, len(data))

	logger := l.logger.WithFields(map[string]interface{}{
		"from": from.String(),
		"size": len(data),
	})

	if err != nil {
		logger.WithFields(map[string]interface{}{
			"kind": packet.KindOf(err).String(),
		}).Warnf("dropping malformed datagram: %v", err)
		return
	}

	if len(rest) > 0 {
		logger.Debugf("ignoring %d bytes after declared length", len(rest))
	}

	logger.Debugf("received %s", view)

	if l.handler != nil {
		l.handler(ctx, view, from)
	}
}

// LocalAddr returns the bound address
func (l *Listener) LocalAddr() net.Addr {
	return l.conn.LocalAddr()
}

func (l *Listener) isClosed() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.closed
}

// Close closes the socket and waits for in-flight handlers
func (l *Listener) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	err := l.conn.Close()
	l.wg.Wait()
	return err
}
