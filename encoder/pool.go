package encoder

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 1 << 16 // drop buffers that grew past 64 KB
	poolInitCap = 1024
)

// output buffer pool shared across Encode calls
var bufferPool = sync.Pool{
	New: func() any {
		return NewBuffer(poolInitCap)
	},
}

func getBuffer() *Buffer {
	return bufferPool.Get().(*Buffer)
}

func putBuffer(b *Buffer) {
	if b == nil || cap(b.buf) > poolMaxCap {
		return // reject oversized
	}
	b.Reset()
	bufferPool.Put(b)
}
