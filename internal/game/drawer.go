package game

import (
	"fmt"

	"github.com/bloops-games/sketchy/internal/protocol"
)

// tickInterval is the frame time, in seconds, that makes up one Tick.
const tickInterval = 1.0

func (r Role) processDrawer(env Env, a Action) (Role, error) {
	switch r.Drawer.Phase {
	case DrawerPickingWord:
		return r.drawerPicking(env, a)
	case DrawerDrawing:
		return r.drawerDrawing(env, a)
	case DrawerDone:
		return r.drawerDone(env, a)
	}

	return r, nil
}

func (r Role) drawerPicking(env Env, a Action) (Role, error) {
	act, ok := a.(TypeNumber)
	if !ok {
		return r, nil
	}

	n := int(act.N)
	if n < 1 || n > len(r.Drawer.Candidates) {
		return r, nil
	}

	word := r.Drawer.Candidates[n-1]
	if err := env.SendMessage(protocol.SetWordSkeleton{Skeleton: Skeleton(word)}); err != nil {
		return r, fmt.Errorf("send skeleton: %w", err)
	}

	next := r
	next.Drawer = DrawerState{Phase: DrawerDrawing, Word: word, Remaining: env.RoundTime()}
	return next, nil
}

func (r Role) drawerDrawing(env Env, a Action) (Role, error) {
	d := r.Drawer

	switch act := a.(type) {
	case LeftClick:
		if err := env.SendMessage(protocol.Draw{X: act.X, Y: act.Y}); err != nil {
			return r, fmt.Errorf("send draw: %w", err)
		}
		env.SendAction(Draw{X: act.X, Y: act.Y})
	case RightClick:
		if err := env.SendMessage(protocol.Erase{X: act.X, Y: act.Y}); err != nil {
			return r, fmt.Errorf("send erase: %w", err)
		}
		env.SendAction(Erase{X: act.X, Y: act.Y})
	case LeftClickDrag:
		if err := env.SendMessage(protocol.DrawLine{X1: act.X1, Y1: act.Y1, X2: act.X2, Y2: act.Y2}); err != nil {
			return r, fmt.Errorf("send draw line: %w", err)
		}
		env.SendAction(DrawLine{X1: act.X1, Y1: act.Y1, X2: act.X2, Y2: act.Y2})
	case RightClickDrag:
		if err := env.SendMessage(protocol.EraseLine{X1: act.X1, Y1: act.Y1, X2: act.X2, Y2: act.Y2}); err != nil {
			return r, fmt.Errorf("send erase line: %w", err)
		}
		env.SendAction(EraseLine{X1: act.X1, Y1: act.Y1, X2: act.X2, Y2: act.Y2})
	case Update:
		d.Elapsed += act.DT
		if d.Elapsed > tickInterval {
			env.SendAction(Tick{})
			d.Elapsed = 0
		}
		return r.withDrawer(d), nil
	case Tick:
		if d.Remaining > 0 {
			d.Remaining--
		}
		if err := env.SendMessage(protocol.SetTimeRemaining{Seconds: d.Remaining}); err != nil {
			return r, fmt.Errorf("send time remaining: %w", err)
		}

		if d.Remaining > 0 {
			d.Elapsed = 0
			return r.withDrawer(d), nil
		}

		if err := env.SendMessage(protocol.GameOver{Word: d.Word}); err != nil {
			return r, fmt.Errorf("send game over: %w", err)
		}
		return r.withDrawer(DrawerState{Phase: DrawerDone, Word: d.Word}), nil
	case Guess:
		if act.Word != d.Word {
			if err := env.SendMessage(protocol.GuessResult{}); err != nil {
				return r, fmt.Errorf("send guess result: %w", err)
			}
			return r, nil
		}

		if err := env.SendMessage(protocol.GuessResult{Success: true, Word: d.Word}); err != nil {
			return r, fmt.Errorf("send guess result: %w", err)
		}
		return r.withDrawer(DrawerState{Phase: DrawerDone, Word: d.Word, Won: true}), nil
	}

	return r, nil
}

func (r Role) drawerDone(env Env, a Action) (Role, error) {
	if act, ok := a.(TypeLetter); ok && act.Letter == 'y' {
		env.SendAction(SwapRoles{})
		if err := env.SendMessage(protocol.SwapRoles{}); err != nil {
			return r, fmt.Errorf("send swap roles: %w", err)
		}
	}

	return r, nil
}

func (r Role) withDrawer(d DrawerState) Role {
	next := r
	next.Drawer = d
	return next
}
