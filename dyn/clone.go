package dyn

import (
	"github.com/pkg/errors"

	"github.com/1Owel/cpp-advanced-vector/mem"
)

// Cloner is implemented by element types whose duplication is deep or can
// fail. Types that do not implement it duplicate by plain assignment,
// which never fails.
type Cloner[T any] interface {
	Clone() (T, error)
}

// cloneable reports whether T duplicates through Cloner. Resolved from the
// type alone, once per call site.
func cloneable[T any]() bool {
	var zero T
	_, ok := any(zero).(Cloner[T])
	return ok
}

// cloneVal duplicates a single element.
func cloneVal[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// Clone returns an independent deep duplicate of the array. On a failed
// element duplication the partial duplicate is discarded, the receiver is
// untouched, and the error is returned with the element index attached.
func (a *Array[T]) Clone() (*Array[T], error) {
	out := &Array[T]{data: mem.Alloc[T](a.size)}
	if !cloneable[T]() {
		copy(out.data.Offset(0), a.data.Offset(0)[:a.size])
		out.size = a.size
		return out, nil
	}
	for i := 0; i < a.size; i++ {
		v, err := cloneVal(*a.data.Index(i))
		if err != nil {
			return nil, errors.Wrapf(err, "dyn: clone element %d", i)
		}
		*out.data.Index(i) = v
		out.size++
	}
	return out, nil
}

// CopyFrom replaces the receiver's contents with a duplicate of rhs.
//
// When rhs does not fit the current capacity, a full duplicate is built
// first and swapped in, so a failure leaves the receiver untouched.
// Otherwise storage is reused in place: the common prefix is assigned
// element by element, then excess elements are destroyed or missing ones
// duplicated; a failure partway through leaves the receiver structurally
// valid with Len reflecting exactly the elements in place, and the error
// carries the failing index.
func (a *Array[T]) CopyFrom(rhs *Array[T]) error {
	if a == rhs {
		return nil
	}
	if rhs.size > a.data.Cap() {
		dup, err := rhs.Clone()
		if err != nil {
			return err
		}
		a.Swap(dup)
		return nil
	}
	if !cloneable[T]() {
		copy(a.data.Offset(0), rhs.data.Offset(0)[:rhs.size])
		if a.size > rhs.size {
			a.destroy(rhs.size, a.size)
		}
		a.size = rhs.size
		return nil
	}
	common := min(a.size, rhs.size)
	for i := 0; i < common; i++ {
		v, err := cloneVal(*rhs.data.Index(i))
		if err != nil {
			return errors.Wrapf(err, "dyn: copy element %d", i)
		}
		*a.data.Index(i) = v
	}
	if a.size > rhs.size {
		a.destroy(rhs.size, a.size)
		a.size = rhs.size
		return nil
	}
	for i := a.size; i < rhs.size; i++ {
		v, err := cloneVal(*rhs.data.Index(i))
		if err != nil {
			return errors.Wrapf(err, "dyn: copy element %d", i)
		}
		*a.data.Index(i) = v
		a.size = i + 1
	}
	return nil
}
