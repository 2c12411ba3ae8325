// Package wordbank supplies the candidate words a Drawer picks from.
package wordbank

import (
	"context"
	"fmt"
	"sync"

	"github.com/bloops-games/sketchy/internal/cache"
	"github.com/bloops-games/sketchy/internal/database/word/model"
	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/valyala/fastrand"
)

// CandidateCount is the number of words offered to a Drawer.
const CandidateCount = 3

var DefaultWords = []string{
	"bike", "snowman", "tree", "flower", "basketball",
	"mountain", "turtle", "book",
}

var (
	ErrNotEnoughWords = fmt.Errorf("word bank needs at least %d distinct words", CandidateCount)
	ErrEmptyWord      = fmt.Errorf("empty word")
	ErrUnknownWord    = fmt.Errorf("word is not in the bank")
)

// Store persists words between runs.
type Store interface {
	Add(m model.Word) (model.Word, error)
	FetchAll() ([]model.Word, error)
	Delete(text string) error
}

type Bank struct {
	mtx sync.Mutex

	store  Store
	recent cache.Cache
	words  []string
	seen   map[string]struct{}
}

// New loads the stored words, seeding the store with DefaultWords when it is
// empty. store and recent may be nil.
func New(ctx context.Context, store Store, recent cache.Cache) (*Bank, error) {
	logger := logging.FromContext(ctx).Named("wordbank.New")
	b := &Bank{store: store, recent: recent, seen: map[string]struct{}{}}

	if store != nil {
		stored, err := store.FetchAll()
		if err != nil {
			return nil, fmt.Errorf("fetch words: %w", err)
		}

		if len(stored) == 0 {
			logger.Infof("seeding word bank with %d default words", len(DefaultWords))
			for _, w := range DefaultWords {
				m, err := store.Add(model.NewWord(w))
				if err != nil {
					return nil, fmt.Errorf("seed word %q: %w", w, err)
				}
				stored = append(stored, m)
			}
		}

		for _, m := range stored {
			b.insert(m.Text)
		}
	} else {
		for _, w := range DefaultWords {
			b.insert(model.Normalize(w))
		}
	}

	if len(b.words) < CandidateCount {
		return nil, ErrNotEnoughWords
	}

	logger.Debugf("word bank loaded %d words", len(b.words))
	return b, nil
}

func (b *Bank) insert(text string) bool {
	if text == "" {
		return false
	}
	if _, ok := b.seen[text]; ok {
		return false
	}

	b.seen[text] = struct{}{}
	b.words = append(b.words, text)
	return true
}

// Add persists a new word and makes it available to future picks.
func (b *Bank) Add(text string) error {
	m := model.NewWord(text)
	if m.Text == "" {
		return ErrEmptyWord
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	if _, ok := b.seen[m.Text]; ok {
		return nil
	}

	if b.store != nil {
		if _, err := b.store.Add(m); err != nil {
			return fmt.Errorf("store word: %w", err)
		}
	}

	b.insert(m.Text)
	return nil
}

// Remove deletes a word from the store and from future picks. The bank never
// shrinks below CandidateCount words.
func (b *Bank) Remove(text string) error {
	text = model.Normalize(text)
	if text == "" {
		return ErrEmptyWord
	}

	b.mtx.Lock()
	defer b.mtx.Unlock()

	if _, ok := b.seen[text]; !ok {
		return ErrUnknownWord
	}
	if len(b.words) <= CandidateCount {
		return ErrNotEnoughWords
	}

	if b.store != nil {
		if err := b.store.Delete(text); err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
	}

	delete(b.seen, text)
	for i, w := range b.words {
		if w == text {
			b.words = append(b.words[:i], b.words[i+1:]...)
			break
		}
	}
	if b.recent != nil {
		b.recent.Delete(text)
	}

	return nil
}

func (b *Bank) Words() []string {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

// Pick returns CandidateCount distinct words, preferring words that were not
// offered recently.
func (b *Bank) Pick() []string {
	return b.PickN(CandidateCount)
}

// PickN returns n distinct words, or every word when the bank holds fewer.
func (b *Bank) PickN(n int) []string {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	pool := make([]string, 0, len(b.words))
	for _, w := range b.words {
		if b.recent == nil || !b.recent.Contains(w) {
			pool = append(pool, w)
		}
	}

	if len(pool) < n {
		pool = append(pool[:0], b.words...)
	}

	if n > len(pool) {
		n = len(pool)
	}

	// partial Fisher-Yates over the head of pool
	for i := 0; i < n; i++ {
		j := i + int(fastrand.Uint32n(uint32(len(pool)-i)))
		pool[i], pool[j] = pool[j], pool[i]
	}

	picked := make([]string, n)
	copy(picked, pool[:n])

	if b.recent != nil {
		for _, w := range picked {
			b.recent.Add(w, struct{}{})
		}
	}

	return picked
}
