// Package protocol implements the peer-to-peer wire format: a tag byte, a
// fixed payload whose size depends only on the tag, and for string messages
// a body of the length announced in that payload.
package protocol

// Tag identifies a message on the wire.
type Tag uint8

const (
	TagDraw Tag = iota
	TagSetTimeRemaining
	TagSetWordSkeleton
	TagGuess
	TagGuessResult
	TagGameOver
	TagSwapRoles
	TagErase
	TagDrawLine
	TagEraseLine
)

// payloadSize is the fixed payload length that follows each tag.
var payloadSize = [...]int{
	TagDraw:             8,
	TagSetTimeRemaining: 4,
	TagSetWordSkeleton:  4,
	TagGuess:            4,
	TagGuessResult:      5,
	TagGameOver:         4,
	TagSwapRoles:        0,
	TagErase:            8,
	TagDrawLine:         16,
	TagEraseLine:        16,
}

func (t Tag) Valid() bool {
	return int(t) < len(payloadSize)
}

func (t Tag) String() string {
	switch t {
	case TagDraw:
		return "Draw"
	case TagSetTimeRemaining:
		return "SetTimeRemaining"
	case TagSetWordSkeleton:
		return "SetWordSkeleton"
	case TagGuess:
		return "Guess"
	case TagGuessResult:
		return "GuessResult"
	case TagGameOver:
		return "GameOver"
	case TagSwapRoles:
		return "SwapRoles"
	case TagErase:
		return "Erase"
	case TagDrawLine:
		return "DrawLine"
	case TagEraseLine:
		return "EraseLine"
	default:
		return "Unknown"
	}
}

// Message is one of the types declared in this file.
type Message interface {
	Tag() Tag
}

type Draw struct {
	X, Y uint32
}

type SetTimeRemaining struct {
	Seconds uint32
}

type SetWordSkeleton struct {
	Skeleton string
}

type Guess struct {
	Word string
}

// GuessResult carries the secret word when Success is set; a failed guess
// has an empty Word.
type GuessResult struct {
	Success bool
	Word    string
}

type GameOver struct {
	Word string
}

type SwapRoles struct{}

type Erase struct {
	X, Y uint32
}

type DrawLine struct {
	X1, Y1, X2, Y2 uint32
}

type EraseLine struct {
	X1, Y1, X2, Y2 uint32
}

func (Draw) Tag() Tag             { return TagDraw }
func (SetTimeRemaining) Tag() Tag { return TagSetTimeRemaining }
func (SetWordSkeleton) Tag() Tag  { return TagSetWordSkeleton }
func (Guess) Tag() Tag            { return TagGuess }
func (GuessResult) Tag() Tag      { return TagGuessResult }
func (GameOver) Tag() Tag         { return TagGameOver }
func (SwapRoles) Tag() Tag        { return TagSwapRoles }
func (Erase) Tag() Tag            { return TagErase }
func (DrawLine) Tag() Tag         { return TagDrawLine }
func (EraseLine) Tag() Tag        { return TagEraseLine }
