package game

import "github.com/bloops-games/sketchy/internal/protocol"

type RoleKind uint8

const (
	RoleWaiting RoleKind = iota + 1
	RoleDrawer
	RoleGuesser
)

func (k RoleKind) String() string {
	switch k {
	case RoleWaiting:
		return "waiting"
	case RoleDrawer:
		return "drawer"
	case RoleGuesser:
		return "guesser"
	default:
		return "unknown"
	}
}

type DrawerPhase uint8

const (
	DrawerPickingWord DrawerPhase = iota + 1
	DrawerDrawing
	DrawerDone
)

func (p DrawerPhase) String() string {
	switch p {
	case DrawerPickingWord:
		return "picking_word"
	case DrawerDrawing:
		return "drawing"
	case DrawerDone:
		return "done"
	default:
		return "unknown"
	}
}

type GuesserPhase uint8

const (
	GuesserWaitingForDrawer GuesserPhase = iota + 1
	GuesserGuessing
	GuesserDone
)

func (p GuesserPhase) String() string {
	switch p {
	case GuesserWaitingForDrawer:
		return "waiting_for_drawer"
	case GuesserGuessing:
		return "guessing"
	case GuesserDone:
		return "done"
	default:
		return "unknown"
	}
}

// DrawerState holds the fields of every drawer phase; only those of the
// current Phase are meaningful.
type DrawerState struct {
	Phase      DrawerPhase
	Candidates []string
	Word       string
	// Elapsed accumulates frame time towards the next Tick, in [0, 1].
	Elapsed   float64
	Remaining uint32
	Won       bool
}

type GuesserState struct {
	Phase     GuesserPhase
	Remaining uint32
	Skeleton  string
	Guess     string
	Won       bool
	// Word is the secret revealed when the round ends.
	Word string
}

// Role is the single game-state slot of a peer. It is a value: every
// transition returns a new Role and the old one is discarded.
type Role struct {
	Kind    RoleKind
	Address string
	Drawer  DrawerState
	Guesser GuesserState
}

// Env is everything a role can do besides returning its next state.
type Env interface {
	// SendMessage writes m to the peer; it is a no-op before the link is up.
	SendMessage(m protocol.Message) error
	// SendAction queues a for a later dispatch on this peer.
	SendAction(a Action)
	// PickWords returns the candidate words for a new drawer.
	PickWords() []string
	// RoundTime is the countdown, in seconds, of one drawing round.
	RoundTime() uint32
}

func NewWaiting(address string) Role {
	return Role{Kind: RoleWaiting, Address: address}
}

func NewDrawer(candidates []string) Role {
	return Role{Kind: RoleDrawer, Drawer: DrawerState{Phase: DrawerPickingWord, Candidates: candidates}}
}

func NewGuesser() Role {
	return Role{Kind: RoleGuesser, Guesser: GuesserState{Phase: GuesserWaitingForDrawer}}
}

// Process applies a to r. Pairs that mean nothing in the current phase
// return r unchanged; the only errors are failed sends to the peer.
func (r Role) Process(env Env, a Action) (Role, error) {
	if _, ok := a.(SwapRoles); ok {
		switch r.Kind {
		case RoleDrawer:
			return NewGuesser(), nil
		case RoleGuesser:
			return NewDrawer(env.PickWords()), nil
		}
	}

	switch r.Kind {
	case RoleWaiting:
		return r.processWaiting(env, a)
	case RoleDrawer:
		return r.processDrawer(env, a)
	case RoleGuesser:
		return r.processGuesser(env, a)
	}

	return r, nil
}

func (r Role) processWaiting(env Env, a Action) (Role, error) {
	switch act := a.(type) {
	case Connected:
		if act.Host {
			return NewDrawer(env.PickWords()), nil
		}
		return NewGuesser(), nil
	case LeftClick:
		env.SendAction(Draw{X: act.X, Y: act.Y})
	case LeftClickDrag:
		env.SendAction(DrawLine{X1: act.X1, Y1: act.Y1, X2: act.X2, Y2: act.Y2})
	}

	return r, nil
}
