package game

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/bloops-games/sketchy/internal/canvas"
	"github.com/bloops-games/sketchy/internal/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pipeConnector struct {
	conn net.Conn
	err  error
}

func (c pipeConnector) Connect(context.Context) (io.ReadWriteCloser, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.conn, nil
}

type peer struct {
	hub     *Hub
	canvas  *canvas.Canvas
	session *Session
	errCh   chan error
}

func startPeer(ctx context.Context, conn net.Conn, host bool) *peer {
	cv := canvas.New(20, 20)
	hub := NewHub(HubConfig{
		Canvas:    cv,
		Words:     fixedWords{"tree", "book", "bike"},
		RoundTime: 60,
		CellSize:  1,
	})

	p := &peer{
		hub:     hub,
		canvas:  cv,
		session: NewSession(hub, cv, pipeConnector{conn: conn}, host),
		errCh:   make(chan error, 1),
	}
	go func() {
		p.errCh <- p.session.Run(ctx)
	}()

	return p
}

func (p *peer) wait(t *testing.T) error {
	t.Helper()

	select {
	case err := <-p.errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond, msg)
}

func TestSessionRound(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, b := net.Pipe()
	drawer := startPeer(ctx, a, true)
	guesser := startPeer(ctx, b, false)

	eventually(t, func() bool {
		return drawer.hub.Role().Kind == RoleDrawer && guesser.hub.Role().Kind == RoleGuesser
	}, "roles assigned on connect")

	drawer.hub.SendAction(TypeNumber{N: 1})
	eventually(t, func() bool {
		return guesser.hub.Role().Guesser.Phase == GuesserGuessing
	}, "guesser receives the skeleton")
	assert.Equal(t, "____", guesser.hub.Role().Guesser.Skeleton)

	drawer.hub.SendAction(LeftClick{X: 2, Y: 3})
	eventually(t, func() bool {
		return drawer.canvas.At(2, 3) == canvas.Ink && guesser.canvas.At(2, 3) == canvas.Ink
	}, "stroke drawn on both canvases")

	for _, r := range "tree" {
		guesser.hub.SendAction(TypeLetter{Letter: r})
	}
	guesser.hub.SendAction(Enter{})

	eventually(t, func() bool {
		return guesser.hub.Role().Guesser.Phase == GuesserDone
	}, "guess resolved")
	assert.True(t, guesser.hub.Role().Guesser.Won)
	assert.Equal(t, "tree", guesser.hub.Role().Guesser.Word)
	assert.Equal(t, Role{Kind: RoleDrawer, Drawer: DrawerState{Phase: DrawerDone, Word: "tree", Won: true}},
		drawer.hub.Role())

	drawer.hub.SendAction(TypeLetter{Letter: 'y'})
	eventually(t, func() bool {
		return drawer.hub.Role().Kind == RoleGuesser && guesser.hub.Role().Kind == RoleDrawer
	}, "roles swapped on both peers")
	assert.Equal(t, NewGuesser(), drawer.hub.Role())
	assert.Equal(t, DrawerPickingWord, guesser.hub.Role().Drawer.Phase)

	eventually(t, func() bool {
		return drawer.canvas.At(2, 3) == canvas.White && guesser.canvas.At(2, 3) == canvas.White
	}, "canvases cleared on swap")

	cancel()
	require.NoError(t, drawer.wait(t))
	require.NoError(t, guesser.wait(t))
}

func TestSessionPeerDisconnect(t *testing.T) {
	t.Parallel()

	a, b := net.Pipe()
	p := startPeer(context.Background(), b, false)

	eventually(t, func() bool {
		return p.hub.Role().Kind == RoleGuesser
	}, "connected")

	require.NoError(t, a.Close())

	err := p.wait(t)
	require.Error(t, err)
	assert.True(t, protocol.IsFatal(err))
}

func TestSessionMalformedInput(t *testing.T) {
	t.Parallel()

	a, b := net.Pipe()
	p := startPeer(context.Background(), b, false)

	go func() {
		_, _ = a.Write([]byte{0xff})
	}()

	err := p.wait(t)
	var pErr *protocol.ProtocolError
	require.ErrorAs(t, err, &pErr)
	assert.ErrorIs(t, err, protocol.ErrUnknownTag)
	_ = a.Close()
}

func TestSessionConnectFailure(t *testing.T) {
	t.Parallel()

	cv := canvas.New(4, 4)
	hub := NewHub(HubConfig{Canvas: cv, Words: fixedWords{"a", "b", "c"}})
	connErr := errors.New("connection refused")
	s := NewSession(hub, cv, pipeConnector{err: connErr}, false)

	err := s.Run(context.Background())
	require.ErrorIs(t, err, connErr)
	assert.Equal(t, RoleWaiting, hub.Role().Kind)
}
