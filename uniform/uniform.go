// Package uniform manages uniform buffer objects holding arrays of blocks.
//
// All functions require a current OpenGL 3.2 core context.
//
package uniform

import (
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/pkg/errors"
)

// BlockSize returns size rounded up to a multiple of alignment.
func BlockSize(size, alignment int) int {
	if alignment <= 0 {
		return size
	}
	return ((size-1)/alignment + 1) * alignment
}

// Buffer is a uniform buffer object holding a fixed number of T blocks. T
// must match the std140 layout of the uniform block it feeds.
//
// Blocks are spaced by the GL_UNIFORM_BUFFER_OFFSET_ALIGNMENT of the
// implementation so that each can be bound on its own with Select.
//
type Buffer[T any] struct {
	ubo       uint32
	blockSize int
	count     int
}

// New allocates a buffer of count blocks and fills it with data, which may be
// shorter than count.
//
func New[T any](data []T, count int) (*Buffer[T], error) {
	if count <= 0 {
		return nil, errors.Errorf("invalid uniform block count %d", count)
	}
	var alignment int32
	gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &alignment)
	b := &Buffer[T]{
		blockSize: BlockSize(sizeOf[T](), int(alignment)),
		count:     count,
	}
	gl.GenBuffers(1, &b.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, count*b.blockSize, nil, gl.STATIC_DRAW)
	if err := b.Set(data, 0); err != nil {
		b.Delete()
		return nil, err
	}
	return b, nil
}

func sizeOf[T any]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// Set stores data into consecutive blocks, starting at block start.
func (b *Buffer[T]) Set(data []T, start int) error {
	if start < 0 || start+len(data) > b.count {
		return errors.Errorf("blocks [%d, %d) out of range [0, %d)", start, start+len(data), b.count)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.ubo)
	b.upload(data, start)
	return nil
}

func (b *Buffer[T]) upload(data []T, start int) {
	sz := sizeOf[T]()
	for i := range data {
		gl.BufferSubData(gl.UNIFORM_BUFFER, (start+i)*b.blockSize, sz, unsafe.Pointer(&data[i]))
	}
}

// Select binds block i to the uniform buffer binding point bp.
func (b *Buffer[T]) Select(bp uint32, i int) {
	gl.BindBufferRange(gl.UNIFORM_BUFFER, bp, b.ubo, i*b.blockSize, sizeOf[T]())
}

func (b *Buffer[T]) Delete() {
	gl.DeleteBuffers(1, &b.ubo)
}
