package transport

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/bloops-games/sketchy/internal/protocol"
	"github.com/grandcat/zeroconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type connected struct {
	conn io.ReadWriteCloser
	err  error
}

// pair hosts on a loopback port and dials it with the same transport.
func pair(t *testing.T, kind string) (io.ReadWriteCloser, io.ReadWriteCloser) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	addrCh := make(chan net.Addr, 1)
	l := &Listener{Transport: kind, Addr: "127.0.0.1:0", OnListen: func(addr net.Addr) {
		addrCh <- addr
	}}

	hosted := make(chan connected, 1)
	go func() {
		conn, err := l.Connect(ctx)
		hosted <- connected{conn: conn, err: err}
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-ctx.Done():
		t.Fatal("listener did not start")
	}

	d := &Dialer{Transport: kind, Addr: addr.String()}
	joined, err := d.Connect(ctx)
	require.NoError(t, err)

	h := <-hosted
	require.NoError(t, h.err)

	t.Cleanup(func() {
		_ = joined.Close()
		_ = h.conn.Close()
	})

	return h.conn, joined
}

func TestExchange(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{KindTCP, KindWS} {
		kind := kind
		t.Run(kind, func(t *testing.T) {
			t.Parallel()

			host, peer := pair(t, kind)

			sent := []protocol.Message{
				protocol.SetWordSkeleton{Skeleton: "____"},
				protocol.DrawLine{X1: 1, Y1: 2, X2: 3, Y2: 4},
				protocol.GuessResult{},
			}
			go func() {
				for _, m := range sent {
					_ = protocol.Write(host, m)
				}
			}()

			for _, want := range sent {
				got, err := protocol.Decode(peer)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			require.NoError(t, protocol.Write(peer, protocol.Guess{Word: "tree"}))
			got, err := protocol.Decode(host)
			require.NoError(t, err)
			assert.Equal(t, protocol.Guess{Word: "tree"}, got)
		})
	}
}

func TestWSMessageAcrossFrames(t *testing.T) {
	t.Parallel()

	host, peer := pair(t, KindWS)

	b, err := protocol.Encode(protocol.GameOver{Word: "snowman"})
	require.NoError(t, err)

	go func() {
		_, _ = host.Write(b[:3])
		_, _ = host.Write(b[3:])
	}()

	got, err := protocol.Decode(peer)
	require.NoError(t, err)
	assert.Equal(t, protocol.GameOver{Word: "snowman"}, got)
}

func TestPeerCloseIsConnectionError(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{KindTCP, KindWS} {
		kind := kind
		t.Run(kind, func(t *testing.T) {
			t.Parallel()

			host, peer := pair(t, kind)
			require.NoError(t, host.Close())

			_, err := protocol.Decode(peer)
			var cErr *protocol.ConnectionError
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, "read", cErr.Op)
		})
	}
}

func TestListenerCancel(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{KindTCP, KindWS} {
		kind := kind
		t.Run(kind, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithCancel(context.Background())
			l := &Listener{Transport: kind, Addr: "127.0.0.1:0", OnListen: func(net.Addr) {
				cancel()
			}}

			conn, err := l.Connect(ctx)
			require.ErrorIs(t, err, context.Canceled)
			assert.Nil(t, conn)
		})
	}
}

func TestDialRefused(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = (&Dialer{Transport: KindTCP, Addr: addr}).Connect(context.Background())
	var cErr *protocol.ConnectionError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "dial", cErr.Op)
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(Config{Transport: KindWS, Addr: ":7878", Host: true, Discovery: true})
	require.NoError(t, err)
	assert.Equal(t, &Listener{Transport: KindWS, Addr: ":7878", Advertise: true}, c)

	c, err = New(Config{Transport: KindTCP, Addr: "10.0.0.2:7878"})
	require.NoError(t, err)
	assert.Equal(t, &Dialer{Transport: KindTCP, Addr: "10.0.0.2:7878"}, c)

	_, err = New(Config{Transport: "udp"})
	require.ErrorIs(t, err, ErrUnknownTransport)
}

func TestHostFromEntry(t *testing.T) {
	t.Parallel()

	e := zeroconf.NewServiceEntry("sketchy-box", ServiceType, ServiceDomain)
	_, ok := hostFromEntry(e)
	assert.False(t, ok, "entries without addresses are skipped")

	e.AddrIPv4 = []net.IP{net.ParseIP("192.168.1.20")}
	e.Port = 7878
	e.Text = []string{"txtv=0", "transport=ws"}

	h, ok := hostFromEntry(e)
	require.True(t, ok)
	assert.Equal(t, Host{Instance: "sketchy-box", Addr: "192.168.1.20:7878", Transport: KindWS}, h)
}
