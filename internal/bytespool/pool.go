package bytespool

import (
	"bytes"
	"sync"
)

// buffers larger than this are not returned to the pool
const maxPooledSize = 64 << 10

var pool = sync.Pool{
	New: func() interface{} {
		return &bytes.Buffer{}
	},
}

// Get returns an empty buffer.
func Get() *bytes.Buffer {
	b := pool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func Put(b *bytes.Buffer) {
	if b == nil || b.Cap() > maxPooledSize {
		return
	}

	pool.Put(b)
}
