package game

import (
	"sync"

	"github.com/bloops-games/sketchy/internal/canvas"
	"github.com/bloops-games/sketchy/internal/protocol"
)

type fakeEnv struct {
	sent      []protocol.Message
	posted    []Action
	words     []string
	roundTime uint32
	sendErr   error
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{words: []string{"tree", "snowman", "book"}, roundTime: 100}
}

func (e *fakeEnv) SendMessage(m protocol.Message) error {
	if e.sendErr != nil {
		return e.sendErr
	}
	e.sent = append(e.sent, m)
	return nil
}

func (e *fakeEnv) SendAction(a Action) {
	e.posted = append(e.posted, a)
}

func (e *fakeEnv) PickWords() []string {
	return append([]string(nil), e.words...)
}

func (e *fakeEnv) RoundTime() uint32 {
	return e.roundTime
}

func (e *fakeEnv) reset() {
	e.sent = nil
	e.posted = nil
}

type fakeCanvas struct {
	mtx sync.Mutex
	ops []canvas.Operation
}

func (c *fakeCanvas) Enqueue(op canvas.Operation) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.ops = append(c.ops, op)
}

func (c *fakeCanvas) Ops() []canvas.Operation {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return append([]canvas.Operation(nil), c.ops...)
}

type fixedWords []string

func (w fixedWords) Pick() []string {
	return append([]string(nil), w...)
}
