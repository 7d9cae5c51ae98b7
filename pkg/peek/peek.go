// Package peek provides lookahead and lookbehind buffering over the pull-based
// sequences in pkg/seq. Each buffer variant owns its source and pulls from it
// only as needed to answer a peek, caching pulled elements until they're
// consumed with Next or NextBack.
//
//   - Peeker buffers a forward-only source with unbounded lookahead depth.
//   - DoublePeeker buffers both ends of a DoubleEnded source.
//   - LitePeeker holds at most one element per end, for single-step peeking.
//   - FixedPeeker and FixedDoublePeeker bound the cache with a fixed ring, so
//     peek depth is capped by capacity and no reallocation ever happens.
package peek

import (
	"fmt"

	"github.com/saylorsolutions/peekseq/pkg/seq"
)

func checkOffset(n int) {
	if n < 0 {
		panic(fmt.Sprintf("peek offset must be non-negative, got %d", n))
	}
}

func checkRange(start, end int) {
	if start < 0 || start > end {
		panic(fmt.Sprintf("invalid peek range [%d, %d)", start, end))
	}
}

// Peeker buffers elements pulled from the front of a Seq so that any of them
// can be inspected by offset before being consumed.
type Peeker[T any] struct {
	src  seq.Seq[T]
	buf  deque[T]
	done bool
}

// Forward creates a Peeker over src, taking ownership of it.
func Forward[T any](src seq.Seq[T]) *Peeker[T] {
	if src == nil {
		panic("source is nil")
	}
	return &Peeker[T]{src: src}
}

func (p *Peeker[T]) pull() (T, error) {
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

// fill pulls until the cache holds target elements.
// Exhaustion stops the fill silently; any other source error is returned.
func (p *Peeker[T]) fill(target int) error {
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

// Peek returns the next element without consuming it, or ErrAtEnd if the source is exhausted.
func (p *Peeker[T]) Peek() (T, error) {
	return p.PeekNth(0)
}

// PeekNth returns the element at offset n from the current front without
// consuming anything, pulling and caching as needed. Offsets are relative to
// the current front: after a Next, offset 0 names the new front.
func (p *Peeker[T]) PeekNth(n int) (T, error) {
	checkOffset(n)
	if err := p.fill(n + 1); err != nil {
		return seq.Err[T](err)
	}
	if item, ok := p.buf.get(n); ok {
		return item, nil
	}
	return seq.End[T]()
}

// PeekRange pulls until the cache holds end elements or the source exhausts,
// then returns a lazy sequence over cache offsets [start, end). The sequence
// is silently shorter when the source exhausts before end.
// PeekRange panics if start is negative or greater than end.
func (p *Peeker[T]) PeekRange(start, end int) seq.Seq[T] {
	checkRange(start, end)
	fillErr := p.fill(end)
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
func (p *Peeker[T]) Next() (T, error) {
	if item, ok := p.buf.popFront(); ok {
		return item, nil
	}
	return p.pull()
}

// NextIf consumes and returns the front element only if pred holds for it.
// It returns false when the element doesn't match or none is available.
func (p *Peeker[T]) NextIf(pred func(T) bool) (T, bool) {
	item, err := p.Peek()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.Next()
	return item, true
}

// PeekedLen returns the number of cached elements.
func (p *Peeker[T]) PeekedLen() int {
	return p.buf.len()
}

// HasPeeked reports whether the cache already holds at least n+1 elements.
func (p *Peeker[T]) HasPeeked(n int) bool {
	return p.buf.len() > n
}

// ClearPeeked discards all cached elements without consuming them through Next.
func (p *Peeker[T]) ClearPeeked() {
	p.buf.clear()
}

// DrainPeeked discards up to n cached elements from the front.
func (p *Peeker[T]) DrainPeeked(n int) {
	if n > p.buf.len() {
		n = p.buf.len()
	}
	if n > 0 {
		p.buf.drop(n)
	}
}
