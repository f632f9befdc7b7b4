// Package mem provides the raw storage block backing the dynamic array.
// A block reserves slots without managing element liveness; the owner is
// responsible for destroying live elements before releasing a block.
package mem

import "github.com/1Owel/cpp-advanced-vector/ut"

// Block owns a fixed-capacity span of element slots. A zero Block is the
// null block: capacity 0, no allocation. Blocks are move-only; transfer
// ownership with Move or Swap, never by copying the struct.
type Block[T any] struct {
	buf []T
}

// Alloc reserves a block of n slots. n == 0 yields the null block.
// Memory exhaustion propagates as the runtime's allocation panic.
func Alloc[T any](n int) Block[T] {
	ut.Assert(n >= 0, "mem: negative capacity")
	if n == 0 {
		return Block[T]{}
	}
	return Block[T]{buf: make([]T, n)}
}

// Cap returns the number of slots the block can hold.
func (b *Block[T]) Cap() int {
	return len(b.buf)
}

// IsNull reports whether the block holds no allocation.
func (b *Block[T]) IsNull() bool {
	return b.buf == nil
}

// Release frees the block without touching element liveness.
// Safe on the null block.
func (b *Block[T]) Release() {
	b.buf = nil
}

// Move transfers ownership of the allocation to the returned block,
// leaving the receiver null.
func (b *Block[T]) Move() Block[T] {
	out := Block[T]{buf: b.buf}
	b.buf = nil
	return out
}

// Swap exchanges the allocations of two blocks.
func (b *Block[T]) Swap(other *Block[T]) {
	b.buf, other.buf = other.buf, b.buf
}

// Index returns the slot at position i. Precondition: i < Cap().
func (b *Block[T]) Index(i int) *T {
	ut.Assert(i >= 0 && i < len(b.buf), "mem: index out of capacity")
	return &b.buf[i]
}

// Offset returns the slot window starting at position i. i == Cap() is
// allowed and yields the empty one-past-end window.
func (b *Block[T]) Offset(i int) []T {
	ut.Assert(i >= 0 && i <= len(b.buf), "mem: offset out of capacity")
	return b.buf[i:]
}
