package game

import "github.com/bloops-games/sketchy/internal/protocol"

// Action is every event the active role can react to: local input, timer
// events and messages decoded from the peer.
type Action interface {
	isAction()
}

type (
	// Update carries the frame delta in seconds.
	Update struct{ DT float64 }
	Tick   struct{}

	TypeNumber   struct{ N uint8 }
	TypeLetter   struct{ Letter rune }
	DeleteLetter struct{}
	Enter        struct{}

	LeftClick      struct{ X, Y uint32 }
	RightClick     struct{ X, Y uint32 }
	LeftClickDrag  struct{ X1, Y1, X2, Y2 uint32 }
	RightClickDrag struct{ X1, Y1, X2, Y2 uint32 }

	// Connected is posted once the peer link is up. Host is true on the
	// listening side.
	Connected struct{ Host bool }

	Draw             struct{ X, Y uint32 }
	Erase            struct{ X, Y uint32 }
	DrawLine         struct{ X1, Y1, X2, Y2 uint32 }
	EraseLine        struct{ X1, Y1, X2, Y2 uint32 }
	SetTimeRemaining struct{ Seconds uint32 }
	SetWordSkeleton  struct{ Skeleton string }
	Guess            struct{ Word string }
	GuessResult      struct {
		Success bool
		Word    string
	}
	GameOver  struct{ Word string }
	SwapRoles struct{}
)

func (Update) isAction()           {}
func (Tick) isAction()             {}
func (TypeNumber) isAction()       {}
func (TypeLetter) isAction()       {}
func (DeleteLetter) isAction()     {}
func (Enter) isAction()            {}
func (LeftClick) isAction()        {}
func (RightClick) isAction()       {}
func (LeftClickDrag) isAction()    {}
func (RightClickDrag) isAction()   {}
func (Connected) isAction()        {}
func (Draw) isAction()             {}
func (Erase) isAction()            {}
func (DrawLine) isAction()         {}
func (EraseLine) isAction()        {}
func (SetTimeRemaining) isAction() {}
func (SetWordSkeleton) isAction()  {}
func (Guess) isAction()            {}
func (GuessResult) isAction()      {}
func (GameOver) isAction()         {}
func (SwapRoles) isAction()        {}

// FromMessage translates a message received from the peer.
func FromMessage(m protocol.Message) (Action, bool) {
	switch msg := m.(type) {
	case protocol.Draw:
		return Draw{X: msg.X, Y: msg.Y}, true
	case protocol.SetTimeRemaining:
		return SetTimeRemaining{Seconds: msg.Seconds}, true
	case protocol.SetWordSkeleton:
		return SetWordSkeleton{Skeleton: msg.Skeleton}, true
	case protocol.Guess:
		return Guess{Word: msg.Word}, true
	case protocol.GuessResult:
		return GuessResult{Success: msg.Success, Word: msg.Word}, true
	case protocol.GameOver:
		return GameOver{Word: msg.Word}, true
	case protocol.SwapRoles:
		return SwapRoles{}, true
	case protocol.Erase:
		return Erase{X: msg.X, Y: msg.Y}, true
	case protocol.DrawLine:
		return DrawLine{X1: msg.X1, Y1: msg.Y1, X2: msg.X2, Y2: msg.Y2}, true
	case protocol.EraseLine:
		return EraseLine{X1: msg.X1, Y1: msg.Y1, X2: msg.X2, Y2: msg.Y2}, true
	}

	return nil, false
}
