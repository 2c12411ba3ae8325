package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	t.Parallel()

	q := New[int]()
	for i := 0; i < 5; i++ {
		require.True(t, q.Push(i))
	}
	assert.Equal(t, 5, q.Len())

	for i := 0; i < 5; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
}

func TestPopBlocksUntilPush(t *testing.T) {
	t.Parallel()

	q := New[string]()
	got := make(chan string, 1)
	go func() {
		v, _ := q.Pop()
		got <- v
	}()

	select {
	case v := <-got:
		t.Fatalf("pop returned %q before push", v)
	case <-time.After(50 * time.Millisecond):
	}

	q.Push("stroke")
	select {
	case v := <-got:
		assert.Equal(t, "stroke", v)
	case <-time.After(5 * time.Second):
		t.Fatal("pop did not wake after push")
	}
}

func TestCloseDrainsThenStops(t *testing.T) {
	t.Parallel()

	q := New[int]()
	q.Push(1)
	q.Close()
	assert.False(t, q.Push(2))

	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestCloseOnDone(t *testing.T) {
	t.Parallel()

	q := New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	q.CloseOnDone(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, ok := q.Pop()
		assert.False(t, ok)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer was not released by cancellation")
	}
}

func TestConcurrentProducersKeepPerProducerOrder(t *testing.T) {
	t.Parallel()

	const producers, perProducer = 4, 200
	q := New[[2]int]()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push([2]int{p, i})
			}
		}(p)
	}
	wg.Wait()

	last := map[int]int{}
	for i := 0; i < producers*perProducer; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		if prev, seen := last[v[0]]; seen {
			require.Greater(t, v[1], prev)
		}
		last[v[0]] = v[1]
	}
}
