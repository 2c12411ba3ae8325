package game

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/bloops-games/sketchy/internal/protocol"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Connector establishes the single link to the peer.
type Connector interface {
	Connect(ctx context.Context) (io.ReadWriteCloser, error)
}

// Consumer is a background loop draining its own queue, such as the canvas.
type Consumer interface {
	Run(ctx context.Context) error
}

type Session struct {
	ID uuid.UUID

	hub       *Hub
	canvas    Consumer
	connector Connector
	host      bool
}

func NewSession(hub *Hub, canvas Consumer, connector Connector, host bool) *Session {
	return &Session{
		ID:        uuid.New(),
		hub:       hub,
		canvas:    canvas,
		connector: connector,
		host:      host,
	}
}

func (s *Session) Hub() *Hub {
	return s.hub
}

// Run starts the canvas consumer, the action dispatcher and the network
// receiver and waits for them. The first failure stops the others and is
// returned; cancelling ctx stops everything and returns nil.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("session", s.ID.String()))
	logger := logging.FromContext(ctx).Named("session.Run")
	logger.Infof("session started, host: %t", s.host)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.canvas.Run(gctx); err != nil {
			return fmt.Errorf("canvas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return s.hub.Run(gctx)
	})
	g.Go(func() error {
		return s.serve(gctx)
	})

	err := g.Wait()
	if err != nil {
		logger.Errorf("session stopped: %v", err)
		return err
	}

	logger.Info("session stopped")
	return nil
}

func (s *Session) serve(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("session.serve")

	conn, err := s.connector.Connect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connect: %w", err)
	}

	defer conn.Close()
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	if ra, ok := conn.(interface{ RemoteAddr() net.Addr }); ok {
		logger.Infow("peer connected", "peer", ra.RemoteAddr().String())
	} else {
		logger.Info("peer connected")
	}

	// Connected must be queued before anything the peer sends.
	s.hub.Attach(conn)
	s.hub.SendAction(Connected{Host: s.host})

	return s.receive(ctx, conn)
}

func (s *Session) receive(ctx context.Context, r io.Reader) error {
	for {
		m, err := protocol.Decode(r)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("receive: %w", err)
		}

		a, ok := FromMessage(m)
		if !ok {
			return &protocol.ProtocolError{Tag: m.Tag(), Err: protocol.ErrUnknownMessage}
		}

		s.hub.SendAction(a)
	}
}
