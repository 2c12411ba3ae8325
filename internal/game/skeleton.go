package game

import "github.com/bloops-games/sketchy/internal/strpool"

// MaskRune hides a letter of the secret word.
const MaskRune = '_'

// Skeleton masks every rune of word except spaces, which are kept so the
// guesser can count the words.
func Skeleton(word string) string {
	buf := strpool.Get()
	defer strpool.Put(buf)

	for _, r := range word {
		if r == ' ' {
			buf.WriteRune(' ')
			continue
		}
		buf.WriteRune(MaskRune)
	}

	return buf.String()
}
