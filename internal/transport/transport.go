// Package transport establishes the single byte stream between two peers,
// either as a raw TCP connection or as binary WebSocket frames.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/bloops-games/sketchy/internal/protocol"
)

const (
	KindTCP = "tcp"
	KindWS  = "ws"
)

var ErrUnknownTransport = errors.New("unknown transport")

type Config struct {
	Transport string
	Addr      string
	// Host listens for the peer instead of dialling it.
	Host bool
	// Discovery advertises a hosted game over mDNS, or finds one to join.
	Discovery bool
}

// Connector is satisfied by Listener and Dialer.
type Connector interface {
	Connect(ctx context.Context) (io.ReadWriteCloser, error)
}

func New(config Config) (Connector, error) {
	if config.Transport != KindTCP && config.Transport != KindWS {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, config.Transport)
	}

	if config.Host {
		return &Listener{Transport: config.Transport, Addr: config.Addr, Advertise: config.Discovery}, nil
	}

	return &Dialer{Transport: config.Transport, Addr: config.Addr, Discover: config.Discovery}, nil
}

// Listener accepts exactly one peer and then stops listening.
type Listener struct {
	Transport string
	Addr      string
	Advertise bool
	// OnListen, if set, is called with the bound address before waiting.
	OnListen func(addr net.Addr)
}

func (l *Listener) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	logger := logging.FromContext(ctx).Named("transport.Listen")

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", l.Addr)
	if err != nil {
		return nil, &protocol.ConnectionError{Op: "listen", Err: err}
	}

	defer ln.Close()
	logger.Infof("waiting for a peer on %s (%s)", ln.Addr(), l.Transport)

	if l.Advertise {
		shutdown, err := Advertise(ln.Addr().(*net.TCPAddr).Port, l.Transport)
		if err != nil {
			return nil, fmt.Errorf("advertise: %w", err)
		}
		defer shutdown()
	}

	if l.OnListen != nil {
		l.OnListen(ln.Addr())
	}

	if l.Transport == KindWS {
		return acceptWS(ctx, ln)
	}

	return acceptTCP(ctx, ln)
}

// Dialer connects to a hosting peer, optionally found over mDNS.
type Dialer struct {
	Transport string
	Addr      string
	Discover  bool
}

func (d *Dialer) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	logger := logging.FromContext(ctx).Named("transport.Dial")

	addr, kind := d.Addr, d.Transport
	if d.Discover {
		host, err := Lookup(ctx)
		if err != nil {
			return nil, fmt.Errorf("lookup: %w", err)
		}

		addr = host.Addr
		if host.Transport != "" {
			kind = host.Transport
		}
		logger.Infof("discovered %s at %s", host.Instance, addr)
	}

	logger.Infof("dialling %s (%s)", addr, kind)
	if kind == KindWS {
		return dialWS(ctx, addr)
	}

	return dialTCP(ctx, addr)
}

func acceptTCP(ctx context.Context, ln net.Listener) (io.ReadWriteCloser, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	conn, err := ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &protocol.ConnectionError{Op: "accept", Err: err}
	}

	return conn, nil
}

func dialTCP(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &protocol.ConnectionError{Op: "dial", Err: err}
	}

	return conn, nil
}
