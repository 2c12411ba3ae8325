package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/bloops-games/sketchy/internal/protocol"
	"github.com/gorilla/websocket"
)

// Path is where the hosting peer upgrades the WebSocket.
const Path = "/play"

const closeTimeout = time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func acceptWS(ctx context.Context, ln net.Listener) (io.ReadWriteCloser, error) {
	logger := logging.FromContext(ctx).Named("transport.acceptWS")

	accepted := make(chan *websocket.Conn, 1)
	var claimed atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc(Path, func(w http.ResponseWriter, r *http.Request) {
		if claimed.Load() {
			http.Error(w, "game already has a peer", http.StatusConflict)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Errorf("upgrade %s: %v", r.RemoteAddr, err)
			return
		}

		if !claimed.CompareAndSwap(false, true) {
			_ = conn.Close()
			return
		}
		accepted <- conn
	})

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	select {
	case conn := <-accepted:
		return newWSConn(conn), nil
	case err := <-serveErr:
		return nil, &protocol.ConnectionError{Op: "accept", Err: err}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func dialWS(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, "ws://"+addr+Path, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, &protocol.ConnectionError{Op: "dial", Err: err}
	}

	return newWSConn(conn), nil
}

// wsConn presents binary WebSocket frames as one continuous byte stream.
// Frame boundaries carry no meaning.
type wsConn struct {
	conn *websocket.Conn
	r    io.Reader

	closeOnce sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{conn: conn}
}

func (c *wsConn) Read(p []byte) (int, error) {
	for {
		if c.r == nil {
			mt, r, err := c.conn.NextReader()
			if err != nil {
				return 0, err
			}
			if mt != websocket.BinaryMessage {
				continue
			}
			c.r = r
		}

		n, err := c.r.Read(p)
		if errors.Is(err, io.EOF) {
			c.r = nil
			if n > 0 {
				return n, nil
			}
			continue
		}

		return n, err
	}
}

func (c *wsConn) Write(p []byte) (int, error) {
	if err := c.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}

	return len(p), nil
}

func (c *wsConn) SetWriteDeadline(t time.Time) error {
	return c.conn.SetWriteDeadline(t)
}

func (c *wsConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *wsConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeTimeout))
		err = c.conn.Close()
	})

	return err
}
