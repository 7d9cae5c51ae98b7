package peek

import (
	"fmt"

	"github.com/saylorsolutions/peekseq/pkg/seq"
)

func checkCapacity(capacity int) {
	if capacity < 1 {
		panic(fmt.Sprintf("capacity must be positive, got %d", capacity))
	}
}

// FixedPeeker is a forward peek buffer backed by a fixed-size ring instead of
// a growable cache. Capacity is a hard ceiling on peek depth: PeekNth at or
// beyond capacity returns ErrAtEnd no matter how much the source could
// supply. Memory use is bounded at construction and never grows.
type FixedPeeker[T any] struct {
	src  seq.Seq[T]
	buf  ring[T]
	done bool
}

// FixedForward creates a FixedPeeker over src with the given cache capacity,
// taking ownership of src. It panics if capacity is less than 1.
func FixedForward[T any](src seq.Seq[T], capacity int) *FixedPeeker[T] {
	if src == nil {
		panic("source is nil")
	}
	checkCapacity(capacity)
	return &FixedPeeker[T]{src: src, buf: newRing[T](capacity)}
}

// Capacity returns the fixed cache capacity, the deepest offset is Capacity()-1.
func (p *FixedPeeker[T]) Capacity() int {
	return p.buf.cap()
}

func (p *FixedPeeker[T]) pull() (T, error) {
	if p.done {
		return seq.End[T]()
	}
	item, err := p.src.Next()
	if err != nil {
		if seq.IsEnd(err) {
			p.done = true
		}
		return seq.Err[T](err)
	}
	return item, nil
}

func (p *FixedPeeker[T]) fill(target int) error {
	for p.buf.len() < target {
		item, err := p.pull()
		if err != nil {
			if seq.IsEnd(err) {
				return nil
			}
			return err
		}
		p.buf.pushBack(item)
	}
	return nil
}

// Peek returns the next element without consuming it.
func (p *FixedPeeker[T]) Peek() (T, error) {
	return p.PeekNth(0)
}

// PeekNth returns the element at offset n without consuming anything.
// Offsets at or beyond the capacity always return ErrAtEnd.
func (p *FixedPeeker[T]) PeekNth(n int) (T, error) {
	checkOffset(n)
	if n >= p.buf.cap() {
		return seq.End[T]()
	}
	if err := p.fill(n + 1); err != nil {
		return seq.Err[T](err)
	}
	if item, ok := p.buf.get(n); ok {
		return item, nil
	}
	return seq.End[T]()
}

// PeekRange behaves like Peeker.PeekRange with end additionally clamped to
// the capacity. It panics if start is negative or greater than end.
func (p *FixedPeeker[T]) PeekRange(start, end int) seq.Seq[T] {
	checkRange(start, end)
	if end > p.buf.cap() {
		end = p.buf.cap()
	}
	var fillErr error
	if end > start {
		fillErr = p.fill(end)
	}
	i := start
	return seq.Func(func() (T, error) {
		if i >= end {
			return seq.End[T]()
		}
		item, ok := p.buf.get(i)
		if !ok {
			if fillErr != nil {
				err := fillErr
				fillErr = nil
				return seq.Err[T](err)
			}
			return seq.End[T]()
		}
		i++
		return item, nil
	})
}

// Next consumes and returns the front element, serving from the cache first.
func (p *FixedPeeker[T]) Next() (T, error) {
	if item, ok := p.buf.popFront(); ok {
		return item, nil
	}
	return p.pull()
}

// NextIf consumes and returns the front element only if pred holds for it.
func (p *FixedPeeker[T]) NextIf(pred func(T) bool) (T, bool) {
	item, err := p.Peek()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.Next()
	return item, true
}

// PeekedLen returns the number of cached elements.
func (p *FixedPeeker[T]) PeekedLen() int {
	return p.buf.len()
}

// HasPeeked reports whether the cache already holds at least n+1 elements.
func (p *FixedPeeker[T]) HasPeeked(n int) bool {
	return p.buf.len() > n
}

// ClearPeeked discards all cached elements without consuming them.
func (p *FixedPeeker[T]) ClearPeeked() {
	p.buf.clear()
}

// DrainPeeked discards up to n cached elements from the front.
func (p *FixedPeeker[T]) DrainPeeked(n int) {
	if n > p.buf.len() {
		n = p.buf.len()
	}
	if n > 0 {
		p.buf.drop(n)
	}
}
