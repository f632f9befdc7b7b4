// Package dyn implements a growable contiguous sequence container on top
// of a raw storage block. An Array owns exactly one mem.Block plus a live
// element count: slots [0, Len) hold live elements, slots [Len, Cap) hold
// the zero value. Capacity-changing operations build the replacement block
// fully, then commit with a single block swap, so a failed duplication or
// construction leaves the array in its prior state wherever the per-method
// doc says so.
//
// Arrays are not safe for concurrent use; callers serialize all access.
package dyn

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/1Owel/cpp-advanced-vector/mem"
	"github.com/1Owel/cpp-advanced-vector/ut"
)

// Array is a dynamic array of T. The zero value is a valid empty array.
type Array[T any] struct {
	data mem.Block[T]
	size int
}

// New creates an empty array with no allocation.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewSized creates an array of n default-valued elements.
func NewSized[T any](n int) *Array[T] {
	return &Array[T]{data: mem.Alloc[T](n), size: n}
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int {
	return a.data.Cap()
}

// At returns the element at index i. Precondition: i < Len().
func (a *Array[T]) At(i int) T {
	ut.Assert(i >= 0 && i < a.size, "dyn: index out of range")
	return *a.data.Index(i)
}

// Ref returns the address of the element at index i. Precondition: i < Len().
// The address stays valid until the next capacity-changing or shifting
// operation.
func (a *Array[T]) Ref(i int) *T {
	ut.Assert(i >= 0 && i < a.size, "dyn: index out of range")
	return a.data.Index(i)
}

// Set overwrites the element at index i. Precondition: i < Len().
func (a *Array[T]) Set(i int, v T) {
	ut.Assert(i >= 0 && i < a.size, "dyn: index out of range")
	*a.data.Index(i) = v
}

// Slice returns a mutable view of the live elements, valid until the next
// capacity-changing or shifting operation.
func (a *Array[T]) Slice() []T {
	return a.data.Offset(0)[:a.size]
}

// All returns a read-only index/element sequence over the live elements.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, *a.data.Index(i)) {
				return
			}
		}
	}
}

// Values returns a read-only element sequence over the live elements.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(*a.data.Index(i)) {
				return
			}
		}
	}
}

// Reserve grows capacity to at least n, preserving elements and order.
// A no-op when n <= Cap(). Relocation transfers the elements wholesale and
// cannot fail, so the array is never observed mid-reallocation.
func (a *Array[T]) Reserve(n int) {
	if n <= a.data.Cap() {
		return
	}
	nd := mem.Alloc[T](n)
	copy(nd.Offset(0), a.data.Offset(0)[:a.size])
	a.data.Swap(&nd)
	nd.Release()
}

// Resize sets the live count to n. Shrinking destroys the trailing
// elements; growing reserves capacity and appends default-valued elements.
func (a *Array[T]) Resize(n int) {
	ut.Assert(n >= 0, "dyn: negative size")
	switch {
	case n == a.size:
	case n < a.size:
		a.destroy(n, a.size)
		a.size = n
	default:
		a.Reserve(n)
		// Slots at or beyond size already hold the zero value.
		a.size = n
	}
}

// PushBack appends v and returns its address.
func (a *Array[T]) PushBack(v T) *T {
	ref, _ := a.Emplace(a.size, func() (T, error) { return v, nil })
	return ref
}

// EmplaceBack appends the element produced by build and returns its
// address. See Emplace.
func (a *Array[T]) EmplaceBack(build func() (T, error)) (*T, error) {
	return a.Emplace(a.size, build)
}

// PopBack destroys the last element. Precondition: Len() > 0.
func (a *Array[T]) PopBack() {
	ut.Assert(a.size > 0, "dyn: pop from empty array")
	a.destroy(a.size-1, a.size)
	a.size--
}

// Insert places v at position pos, shifting later elements toward the end,
// and returns its address. Precondition: pos <= Len().
func (a *Array[T]) Insert(pos int, v T) *T {
	ref, _ := a.Emplace(pos, func() (T, error) { return v, nil })
	return ref
}

// Emplace constructs an element via build at position pos, shifting later
// elements toward the end, and returns its address. Precondition:
// pos <= Len(). build runs before any visible mutation, so a build error
// leaves the array unchanged; the error is returned with the original
// cause intact.
func (a *Array[T]) Emplace(pos int, build func() (T, error)) (*T, error) {
	ut.Assert(pos >= 0 && pos <= a.size, "dyn: emplace position out of range")
	if a.size == a.data.Cap() {
		return a.emplaceGrow(pos, build)
	}
	return a.emplaceInPlace(pos, build)
}

// emplaceGrow builds the element into its final slot in a fresh block,
// transfers the prefix and suffix around it, then commits by swapping
// blocks. A build error discards the fresh block.
func (a *Array[T]) emplaceGrow(pos int, build func() (T, error)) (*T, error) {
	nd := mem.Alloc[T](max(1, 2*a.data.Cap()))
	v, err := build()
	if err != nil {
		nd.Release()
		return nil, errors.Wrap(err, "dyn: emplace construction")
	}
	*nd.Index(pos) = v
	copy(nd.Offset(0), a.data.Offset(0)[:pos])
	copy(nd.Offset(pos+1), a.data.Offset(pos)[:a.size-pos])
	a.data.Swap(&nd)
	nd.Release()
	a.size++
	return a.data.Index(pos), nil
}

// emplaceInPlace shifts [pos, size) one slot toward the end and assigns
// the built element into the opened slot. Requires size < capacity.
func (a *Array[T]) emplaceInPlace(pos int, build func() (T, error)) (*T, error) {
	v, err := build()
	if err != nil {
		return nil, errors.Wrap(err, "dyn: emplace construction")
	}
	if pos < a.size {
		buf := a.data.Offset(0)
		copy(buf[pos+1:a.size+1], buf[pos:a.size])
	}
	*a.data.Index(pos) = v
	a.size++
	return a.data.Index(pos), nil
}

// Erase removes the element at pos, shifting later elements toward the
// front and preserving relative order. Precondition: pos < Len().
func (a *Array[T]) Erase(pos int) {
	ut.Assert(pos >= 0 && pos < a.size, "dyn: erase position out of range")
	buf := a.data.Offset(0)
	copy(buf[pos:a.size-1], buf[pos+1:a.size])
	a.destroy(a.size-1, a.size)
	a.size--
}

// MoveFrom takes over rhs's storage and elements wholesale, leaving rhs
// empty with no allocation. A self-move is a no-op.
func (a *Array[T]) MoveFrom(rhs *Array[T]) {
	if a == rhs {
		return
	}
	a.data = rhs.data.Move()
	a.size = rhs.size
	rhs.size = 0
}

// Swap exchanges the entire state of two arrays in O(1).
func (a *Array[T]) Swap(rhs *Array[T]) {
	a.data.Swap(&rhs.data)
	a.size, rhs.size = rhs.size, a.size
}

// destroy resets slots [from, to) to the zero value, releasing any
// references they held.
func (a *Array[T]) destroy(from, to int) {
	clear(a.data.Offset(from)[:to-from])
}
