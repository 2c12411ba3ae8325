package game

import (
	"fmt"
	"unicode/utf8"

	"github.com/bloops-games/sketchy/internal/protocol"
)

func (r Role) processGuesser(env Env, a Action) (Role, error) {
	switch r.Guesser.Phase {
	case GuesserWaitingForDrawer:
		if act, ok := a.(SetWordSkeleton); ok {
			return r.withGuesser(GuesserState{
				Phase:     GuesserGuessing,
				Remaining: env.RoundTime(),
				Skeleton:  act.Skeleton,
			}), nil
		}
	case GuesserGuessing:
		return r.guesserGuessing(env, a)
	}

	return r, nil
}

func (r Role) guesserGuessing(env Env, a Action) (Role, error) {
	g := r.Guesser

	switch act := a.(type) {
	case SetTimeRemaining:
		g.Remaining = act.Seconds
		return r.withGuesser(g), nil
	case TypeLetter:
		if utf8.RuneCountInString(g.Guess) >= utf8.RuneCountInString(g.Skeleton) {
			return r, nil
		}
		g.Guess += string(act.Letter)
		return r.withGuesser(g), nil
	case DeleteLetter:
		if g.Guess == "" {
			return r, nil
		}
		_, size := utf8.DecodeLastRuneInString(g.Guess)
		g.Guess = g.Guess[:len(g.Guess)-size]
		return r.withGuesser(g), nil
	case Enter:
		if utf8.RuneCountInString(g.Guess) != utf8.RuneCountInString(g.Skeleton) {
			return r, nil
		}
		if err := env.SendMessage(protocol.Guess{Word: g.Guess}); err != nil {
			return r, fmt.Errorf("send guess: %w", err)
		}
	case GuessResult:
		if act.Success {
			return r.withGuesser(GuesserState{Phase: GuesserDone, Won: true, Word: act.Word}), nil
		}
		g.Guess = ""
		return r.withGuesser(g), nil
	case GameOver:
		return r.withGuesser(GuesserState{Phase: GuesserDone, Word: act.Word}), nil
	}

	return r, nil
}

func (r Role) withGuesser(g GuesserState) Role {
	next := r
	next.Guesser = g
	return next
}
