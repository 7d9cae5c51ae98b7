package peek

import (
	"github.com/saylorsolutions/peekseq/pkg/seq"
)

// DoublePeeker buffers both ends of a DoubleEnded source with independent
// front and back caches. The caches never hold the same element twice: when a
// pull from one end exhausts the source, deep peeks on that end are answered
// from the opposite cache instead of re-pulling.
type DoublePeeker[T any] struct {
	src       seq.DoubleEnded[T]
	front     deque[T]
	back      deque[T]
	frontDone bool
	backDone  bool
}

// DoubleEnded creates a DoublePeeker over src, taking ownership of it.
func DoubleEnded[T any](src seq.DoubleEnded[T]) *DoublePeeker[T] {
	if src == nil {
		panic("source is nil")
	}
	return &DoublePeeker[T]{src: src}
}

func (p *DoublePeeker[T]) pullFront() (T, error) {
	if p.frontDone {
		return seq.End[T]()
	}
	item, err := p.src.Next()
	if err != nil {
		if seq.IsEnd(err) {
			p.frontDone = true
		}
		return seq.Err[T](err)
	}
	return item, nil
}

func (p *DoublePeeker[T]) pullBack() (T, error) {
	if p.backDone {
		return seq.End[T]()
	}
	item, err := p.src.NextBack()
	if err != nil {
		if seq.IsEnd(err) {
			p.backDone = true
		}
		return seq.Err[T](err)
	}
	return item, nil
}

// frontAt reads the element at front offset i from whichever cache holds it,
// without pulling. Valid only after the caches have been filled for i.
func (p *DoublePeeker[T]) frontAt(i int) (T, bool) {
	if item, ok := p.front.get(i); ok {
		return item, true
	}
	// Once the source is drained, deep front offsets land in the back cache.
	// The element i steps from the front sits total-1-i steps from the back.
	idx := p.front.len() + p.back.len() - 1 - i
	if i >= p.front.len() && idx >= 0 {
		return p.back.get(idx)
	}
	var zero T
	return zero, false
}

func (p *DoublePeeker[T]) backAt(i int) (T, bool) {
	if item, ok := p.back.get(i); ok {
		return item, true
	}
	idx := p.front.len() + p.back.len() - 1 - i
	if i >= p.back.len() && idx >= 0 {
		return p.front.get(idx)
	}
	var zero T
	return zero, false
}

// PeekFront returns the next front element without consuming it.
func (p *DoublePeeker[T]) PeekFront() (T, error) {
	return p.PeekFrontNth(0)
}

// PeekBack returns the next back element without consuming it.
func (p *DoublePeeker[T]) PeekBack() (T, error) {
	return p.PeekBackNth(0)
}

// PeekFrontNth returns the element at offset n from the front without
// consuming anything. When the source exhausts before offset n, the remaining
// elements already cached on the back are consulted, so a fully buffered
// sequence answers every in-range offset from either end.
func (p *DoublePeeker[T]) PeekFrontNth(n int) (T, error) {
	checkOffset(n)
	if item, ok := p.front.get(n); ok {
		return item, nil
	}
	for p.front.len() <= n {
		item, err := p.pullFront()
		if err != nil {
			if seq.IsEnd(err) {
				if item, ok := p.frontAt(n); ok {
					return item, nil
				}
				return seq.End[T]()
			}
			return seq.Err[T](err)
		}
		p.front.pushBack(item)
	}
	item, _ := p.front.get(n)
	return item, nil
}

// PeekBackNth is the back-end analogue of PeekFrontNth.
func (p *DoublePeeker[T]) PeekBackNth(n int) (T, error) {
	checkOffset(n)
	if item, ok := p.back.get(n); ok {
		return item, nil
	}
	for p.back.len() <= n {
		item, err := p.pullBack()
		if err != nil {
			if seq.IsEnd(err) {
				if item, ok := p.backAt(n); ok {
					return item, nil
				}
				return seq.End[T]()
			}
			return seq.Err[T](err)
		}
		p.back.pushBack(item)
	}
	item, _ := p.back.get(n)
	return item, nil
}

// PeekNth is an alias for PeekFrontNth, satisfying Peekable.
func (p *DoublePeeker[T]) PeekNth(n int) (T, error) {
	return p.PeekFrontNth(n)
}

// PeekFrontRange fills the front cache up to end, then returns a lazy sequence
// over front offsets [start, end), truncated where the elements run out.
// It panics if start is negative or greater than end.
func (p *DoublePeeker[T]) PeekFrontRange(start, end int) seq.Seq[T] {
	checkRange(start, end)
	var fillErr error
	if end > start {
		if _, err := p.PeekFrontNth(end - 1); err != nil && !seq.IsEnd(err) {
			fillErr = err
		}
	}
	i := start
	return seq.Func(func() (T, error) {
		if i >= end {
			return seq.End[T]()
		}
		item, ok := p.frontAt(i)
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

// PeekBackRange is the back-end analogue of PeekFrontRange.
func (p *DoublePeeker[T]) PeekBackRange(start, end int) seq.Seq[T] {
	checkRange(start, end)
	var fillErr error
	if end > start {
		if _, err := p.PeekBackNth(end - 1); err != nil && !seq.IsEnd(err) {
			fillErr = err
		}
	}
	i := start
	return seq.Func(func() (T, error) {
		if i >= end {
			return seq.End[T]()
		}
		item, ok := p.backAt(i)
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

// Next consumes the next front element: the front cache first, then the
// source, and finally the innermost back-cache element once the source is
// drained, so both ends agree on what remains.
func (p *DoublePeeker[T]) Next() (T, error) {
	if item, ok := p.front.popFront(); ok {
		return item, nil
	}
	item, err := p.pullFront()
	if err == nil {
		return item, nil
	}
	if !seq.IsEnd(err) {
		return seq.Err[T](err)
	}
	if item, ok := p.back.popBack(); ok {
		return item, nil
	}
	return seq.End[T]()
}

// NextBack consumes the next back element, mirroring Next.
func (p *DoublePeeker[T]) NextBack() (T, error) {
	if item, ok := p.back.popFront(); ok {
		return item, nil
	}
	item, err := p.pullBack()
	if err == nil {
		return item, nil
	}
	if !seq.IsEnd(err) {
		return seq.Err[T](err)
	}
	if item, ok := p.front.popBack(); ok {
		return item, nil
	}
	return seq.End[T]()
}

// NextIf consumes and returns the next front element only if pred holds for it.
func (p *DoublePeeker[T]) NextIf(pred func(T) bool) (T, bool) {
	item, err := p.PeekFront()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.Next()
	return item, true
}

// NextBackIf consumes and returns the next back element only if pred holds for it.
func (p *DoublePeeker[T]) NextBackIf(pred func(T) bool) (T, bool) {
	item, err := p.PeekBack()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.NextBack()
	return item, true
}

// FrontPeekedLen returns the number of elements in the front cache.
func (p *DoublePeeker[T]) FrontPeekedLen() int {
	return p.front.len()
}

// BackPeekedLen returns the number of elements in the back cache.
func (p *DoublePeeker[T]) BackPeekedLen() int {
	return p.back.len()
}

// HasFrontPeeked reports whether the front cache holds at least n+1 elements.
func (p *DoublePeeker[T]) HasFrontPeeked(n int) bool {
	return p.front.len() > n
}

// HasBackPeeked reports whether the back cache holds at least n+1 elements.
func (p *DoublePeeker[T]) HasBackPeeked(n int) bool {
	return p.back.len() > n
}

// ClearFrontPeeked discards all front-cached elements.
func (p *DoublePeeker[T]) ClearFrontPeeked() {
	p.front.clear()
}

// ClearBackPeeked discards all back-cached elements.
func (p *DoublePeeker[T]) ClearBackPeeked() {
	p.back.clear()
}

// ClearPeeked discards all cached elements from both ends.
func (p *DoublePeeker[T]) ClearPeeked() {
	p.ClearFrontPeeked()
	p.ClearBackPeeked()
}

// DrainFrontPeeked discards up to n cached elements from the front.
func (p *DoublePeeker[T]) DrainFrontPeeked(n int) {
	if n > p.front.len() {
		n = p.front.len()
	}
	if n > 0 {
		p.front.drop(n)
	}
}

// DrainBackPeeked discards up to n cached elements from the back.
func (p *DoublePeeker[T]) DrainBackPeeked(n int) {
	if n > p.back.len() {
		n = p.back.len()
	}
	if n > 0 {
		p.back.drop(n)
	}
}
