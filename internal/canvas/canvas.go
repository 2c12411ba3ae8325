// Package canvas owns the shared raster buffer. Producers enqueue
// operations; a single consumer started with Run applies them in order.
package canvas

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"github.com/bloops-games/sketchy/internal/logging"
	"github.com/bloops-games/sketchy/internal/queue"
)

type Canvas struct {
	mtx sync.RWMutex

	img *image.RGBA
	ops *queue.Queue[Operation]
}

// New returns an all-white canvas of the given size.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, White)

	return &Canvas{img: img, ops: queue.New[Operation]()}
}

// Enqueue appends op for the consumer. It never blocks.
func (c *Canvas) Enqueue(op Operation) {
	c.ops.Push(op)
}

// Run applies queued operations until ctx is cancelled or Close is called
// and the queue is drained.
func (c *Canvas) Run(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("canvas.Run")
	c.ops.CloseOnDone(ctx)

	var applied int
	for {
		op, ok := c.ops.Pop()
		if !ok {
			logger.Debugf("canvas consumer stopped after %d operations", applied)
			return nil
		}

		c.apply(op)
		applied++
	}
}

// Close stops the consumer once pending operations are applied.
func (c *Canvas) Close() {
	c.ops.Close()
}

func (c *Canvas) Pending() int {
	return c.ops.Len()
}

func (c *Canvas) apply(op Operation) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	op.apply(c.img)
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// At returns the colour at x, y, or the zero colour outside the buffer.
func (c *Canvas) At(x, y int) color.RGBA {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return c.img.RGBAAt(x, y)
}

// View calls fn with the live buffer under the read lock. fn must not retain
// or modify img.
func (c *Canvas) View(fn func(img *image.RGBA)) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	fn(c.img)
}

func (c *Canvas) Snapshot() *image.RGBA {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	img := image.NewRGBA(c.img.Rect)
	copy(img.Pix, c.img.Pix)
	return img
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Snapshot()); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}

	return nil
}
