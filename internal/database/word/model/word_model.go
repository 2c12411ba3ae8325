package model

import (
	"strings"
	"time"
)

func NewWord(text string) Word {
	return Word{Text: Normalize(text), AddedAt: time.Now()}
}

type Word struct {
	ID      uint64    `json:"id"`
	Text    string    `json:"text"`
	AddedAt time.Time `json:"addedAt"`
}

// Normalize lowercases text, trims it, and collapses inner whitespace runs
// to single spaces so skeletons stay predictable.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
