package game

import (
	"fmt"
	"strconv"

	"github.com/bloops-games/sketchy/internal/strpool"
)

// TextSurface is the text capability of the window the roles are drawn on.
type TextSurface interface {
	// TextWidth is the total advance width of text at the given font size.
	TextWidth(text string, size float64) float64
	DrawText(text string, size, x, y float64)
}

// Layout positions captions on the surface.
type Layout struct {
	CenterX  float64
	FontSize float64
}

const (
	captionTop    = 50.0
	captionMiddle = 150.0
	captionBottom = 250.0
	listSpacing   = 50.0
	timerX        = 10.0
	timerY        = 30.0
)

const (
	textWaitingForConnection = "Waiting for Connection..."
	textWaitingForDrawer     = "Waiting for Drawer"
	textPickWord             = "Pick Word"
	textYouWin               = "You Win"
	textTimesUp              = "Time's Up"
	textPlayAgain            = "[y] Play Again?"
)

// DrawCenteredText draws text horizontally centred on x.
func DrawCenteredText(s TextSurface, size float64, text string, x, y float64) {
	w := s.TextWidth(text, size)
	s.DrawText(text, size, x-w*0.5, y)
}

// Render draws the captions of the current phase. It only reads r.
func (r Role) Render(s TextSurface, l Layout) {
	center := func(text string, y float64) {
		DrawCenteredText(s, l.FontSize, text, l.CenterX, y)
	}

	switch r.Kind {
	case RoleWaiting:
		center(textWaitingForConnection, captionMiddle)
		center(r.Address, captionBottom)
	case RoleDrawer:
		d := r.Drawer
		switch d.Phase {
		case DrawerPickingWord:
			center(textPickWord, captionTop)
			for i, w := range d.Candidates {
				center(fmt.Sprintf("[%d] %s", i+1, w), 100+listSpacing*float64(i))
			}
		case DrawerDrawing:
			center(fmt.Sprintf("Drawing '%s'", d.Word), captionTop)
			s.DrawText(strconv.FormatUint(uint64(d.Remaining), 10), l.FontSize, timerX, timerY)
		case DrawerDone:
			center(outcome(d.Won), captionMiddle)
			center(textPlayAgain, captionBottom)
		}
	case RoleGuesser:
		g := r.Guesser
		switch g.Phase {
		case GuesserWaitingForDrawer:
			center(textWaitingForDrawer, captionTop)
		case GuesserGuessing:
			center(overlay(g.Skeleton, g.Guess), captionTop)
			s.DrawText(strconv.FormatUint(uint64(g.Remaining), 10), l.FontSize, timerX, timerY)
		case GuesserDone:
			center(outcome(g.Won), captionMiddle)
			center(fmt.Sprintf("'%s'", g.Word), captionBottom)
		}
	}
}

func outcome(won bool) string {
	if won {
		return textYouWin
	}

	return textTimesUp
}

// overlay shows the typed letters over the skeleton, rune by rune.
func overlay(skeleton, guess string) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	typed := []rune(guess)
	i := 0
	for _, r := range skeleton {
		if i < len(typed) {
			buf.WriteRune(typed[i])
		} else {
			buf.WriteRune(r)
		}
		i++
	}

	return buf.String()
}
