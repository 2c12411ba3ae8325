// Package queue provides an unbounded FIFO with a blocking receive.
package queue

import (
	"container/list"
	"context"
	"sync"
)

// Queue is safe for any number of producers and consumers. Push never
// blocks; Pop waits on a condition variable until an item or Close arrives.
type Queue[T any] struct {
	mtx    sync.Mutex
	cond   *sync.Cond
	items  *list.List
	closed bool
}

func New[T any]() *Queue[T] {
	q := &Queue[T]{items: list.New()}
	q.cond = sync.NewCond(&q.mtx)
	return q
}

// Push appends v and wakes one waiting consumer. Pushing to a closed queue
// drops v and reports false.
func (q *Queue[T]) Push(v T) bool {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	if q.closed {
		return false
	}

	q.items.PushBack(v)
	q.cond.Signal()
	return true
}

// Pop removes the head item, blocking while the queue is empty. ok is false
// once the queue is closed and drained.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	for q.items.Len() == 0 {
		if q.closed {
			return v, false
		}
		q.cond.Wait()
	}

	return q.items.Remove(q.items.Front()).(T), true
}

// Close wakes every waiting consumer. Items already queued can still be popped.
func (q *Queue[T]) Close() {
	q.mtx.Lock()
	defer q.mtx.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// CloseOnDone closes q when ctx is cancelled.
func (q *Queue[T]) CloseOnDone(ctx context.Context) {
	if ctx.Done() == nil {
		return
	}

	go func() {
		<-ctx.Done()
		q.Close()
	}()
}

func (q *Queue[T]) Len() int {
	q.mtx.Lock()
	defer q.mtx.Unlock()
	return q.items.Len()
}
