package game

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bloops-games/sketchy/internal/canvas"
	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/bloops-games/sketchy/internal/protocol"
	"github.com/bloops-games/sketchy/internal/queue"
)

// CanvasSink accepts drawing operations for the canvas consumer.
type CanvasSink interface {
	Enqueue(op canvas.Operation)
}

// WordPicker supplies a fresh set of distinct candidate words.
type WordPicker interface {
	Pick() []string
}

type HubConfig struct {
	Canvas    CanvasSink
	Words     WordPicker
	RoundTime uint32
	// CellSize is the number of window pixels per canvas pixel.
	CellSize float64
	// Address is shown while waiting for the peer.
	Address string
	// WriteTimeout bounds each send to the peer when the stream supports
	// write deadlines. Zero means no bound.
	WriteTimeout time.Duration
}

type writeDeadliner interface {
	SetWriteDeadline(t time.Time) error
}

// Hub is the only path into the role: local input, timer events and peer
// messages are all queued as actions and applied one at a time by Run.
type Hub struct {
	mtx  sync.RWMutex
	role Role

	streamMtx sync.Mutex
	stream    io.Writer

	inputMtx sync.Mutex
	mouse    mouseState

	actions   *queue.Queue[Action]
	canvas    CanvasSink
	words     WordPicker
	roundTime uint32
	cellSize  float64

	writeTimeout time.Duration
}

var _ Env = (*Hub)(nil)

func NewHub(config HubConfig) *Hub {
	cellSize := config.CellSize
	if cellSize <= 0 {
		cellSize = 1
	}

	return &Hub{
		role:      NewWaiting(config.Address),
		actions:   queue.New[Action](),
		canvas:    config.Canvas,
		words:     config.Words,
		roundTime: config.RoundTime,
		cellSize:  cellSize,

		writeTimeout: config.WriteTimeout,
	}
}

// Attach sets the stream used by SendMessage.
func (h *Hub) Attach(w io.Writer) {
	h.streamMtx.Lock()
	defer h.streamMtx.Unlock()
	h.stream = w
}

// SendMessage writes m to the peer synchronously. Without a stream it does
// nothing. A write failure is fatal to the connection.
//
// Roles call it from Dispatch with the role lock held, so a peer that stops
// reading stalls Role until the write deadline fails the send.
func (h *Hub) SendMessage(m protocol.Message) error {
	h.streamMtx.Lock()
	defer h.streamMtx.Unlock()

	if h.stream == nil {
		return nil
	}

	if d, ok := h.stream.(writeDeadliner); ok && h.writeTimeout > 0 {
		if err := d.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
			return fmt.Errorf("send %s: %w", m.Tag(), &protocol.ConnectionError{Op: "write", Err: err})
		}
	}

	if err := protocol.Write(h.stream, m); err != nil {
		return fmt.Errorf("send %s: %w", m.Tag(), err)
	}

	return nil
}

// SendAction queues a for the dispatcher. It never blocks.
func (h *Hub) SendAction(a Action) {
	h.actions.Push(a)
}

func (h *Hub) PickWords() []string {
	return h.words.Pick()
}

func (h *Hub) RoundTime() uint32 {
	return h.roundTime
}

// Role returns the current role. The value is a copy and safe to keep.
func (h *Hub) Role() Role {
	h.mtx.RLock()
	defer h.mtx.RUnlock()
	return h.role
}

func (h *Hub) Status() Status {
	return h.Role().Status()
}

// Run dispatches queued actions until ctx is cancelled, Close is called, or
// a send to the peer fails.
func (h *Hub) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("hub.Run")
	h.actions.CloseOnDone(ctx)

	for {
		a, ok := h.actions.Pop()
		if !ok {
			logger.Debugf("action queue closed")
			return nil
		}

		if err := h.Dispatch(ctx, a); err != nil {
			if ctx.Err() != nil {
				logger.Debugf("dropping send failure after shutdown: %v", err)
				return nil
			}
			return fmt.Errorf("dispatch %T: %w", a, err)
		}
	}
}

// Close stops Run once the queued actions are dispatched.
func (h *Hub) Close() {
	h.actions.Close()
}

// Dispatch applies a to the current role under the role lock. Canvas side
// effects of a are enqueued before the role sees it.
func (h *Hub) Dispatch(ctx context.Context, a Action) error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	switch act := a.(type) {
	case Draw:
		h.canvas.Enqueue(canvas.Pixel{X: int(act.X), Y: int(act.Y), Color: canvas.Ink})
	case Erase:
		h.canvas.Enqueue(canvas.Erase{X: int(act.X), Y: int(act.Y)})
	case DrawLine:
		h.canvas.Enqueue(canvas.Line{X1: int(act.X1), Y1: int(act.Y1), X2: int(act.X2), Y2: int(act.Y2), Color: canvas.Ink})
	case EraseLine:
		h.canvas.Enqueue(canvas.EraseLine{X1: int(act.X1), Y1: int(act.Y1), X2: int(act.X2), Y2: int(act.Y2)})
	case SwapRoles:
		h.canvas.Enqueue(canvas.Clear{})
	}

	next, err := h.role.Process(h, a)
	if err != nil {
		return err
	}

	if next.Kind != h.role.Kind || next.phase() != h.role.phase() {
		logging.FromContext(ctx).Named("hub.Dispatch").Debugf("role %s/%s -> %s/%s on %T",
			h.role.Kind, h.role.phase(), next.Kind, next.phase(), a)
	}

	h.role = next
	return nil
}
