package handler

import (
	"bytes"
	"sync"
)

// bufferPool holds encode buffers; an inventory response for a typical
// account is a few kilobytes so buffers start larger than a status body needs
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool. Oversized buffers
// are dropped so one huge inventory does not pin memory.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
