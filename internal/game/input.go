package game

// InputEvent is a raw event from the window, already classified: key
// mapping tables live with the window code.
type InputEvent interface {
	isInput()
}

type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
	MouseOther
)

type (
	// CursorMoved is in window pixels.
	CursorMoved    struct{ X, Y float64 }
	ButtonPressed  struct{ Button MouseButton }
	ButtonReleased struct{ Button MouseButton }
	KeyLetter      struct{ Letter rune }
	KeyNumber      struct{ N uint8 }
	KeyEnter       struct{}
	KeyBackspace   struct{}
	// Frame is emitted once per rendered frame with its delta in seconds.
	Frame struct{ DT float64 }
)

func (CursorMoved) isInput()    {}
func (ButtonPressed) isInput()  {}
func (ButtonReleased) isInput() {}
func (KeyLetter) isInput()      {}
func (KeyNumber) isInput()      {}
func (KeyEnter) isInput()       {}
func (KeyBackspace) isInput()   {}
func (Frame) isInput()          {}

type point struct {
	x, y uint32
}

type mouseState struct {
	last, current point
	left, right   bool
}

// ProcessEvent turns e into actions on the dispatch queue. While a button is
// held every cursor move becomes a drag from the previous to the current
// canvas position, so strokes arrive as segments.
func (h *Hub) ProcessEvent(e InputEvent) {
	h.inputMtx.Lock()
	defer h.inputMtx.Unlock()

	m := &h.mouse

	switch ev := e.(type) {
	case CursorMoved:
		m.last = m.current
		m.current = point{x: h.toCanvas(ev.X), y: h.toCanvas(ev.Y)}
		if m.left {
			h.SendAction(LeftClickDrag{X1: m.last.x, Y1: m.last.y, X2: m.current.x, Y2: m.current.y})
		}
		if m.right {
			h.SendAction(RightClickDrag{X1: m.last.x, Y1: m.last.y, X2: m.current.x, Y2: m.current.y})
		}
	case ButtonPressed:
		switch ev.Button {
		case MouseLeft:
			m.left = true
			h.SendAction(LeftClick{X: m.current.x, Y: m.current.y})
		case MouseRight:
			m.right = true
			h.SendAction(RightClick{X: m.current.x, Y: m.current.y})
		}
	case ButtonReleased:
		switch ev.Button {
		case MouseLeft:
			m.left = false
		case MouseRight:
			m.right = false
		}
	case KeyLetter:
		h.SendAction(TypeLetter{Letter: ev.Letter})
	case KeyNumber:
		h.SendAction(TypeNumber{N: ev.N})
	case KeyEnter:
		h.SendAction(Enter{})
	case KeyBackspace:
		h.SendAction(DeleteLetter{})
	case Frame:
		h.SendAction(Update{DT: ev.DT})
	}
}

func (h *Hub) toCanvas(v float64) uint32 {
	if v <= 0 {
		return 0
	}

	return uint32(v / h.cellSize)
}
