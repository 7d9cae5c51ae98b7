package peek

import (
	"github.com/saylorsolutions/peekseq/pkg/seq"
)

// FixedDoublePeeker is the double-ended analogue of FixedPeeker, with
// independently sized fixed front and back caches. Each end's capacity caps
// that end's peek depth; convergence behaves as in DoublePeeker.
type FixedDoublePeeker[T any] struct {
	src       seq.DoubleEnded[T]
	front     ring[T]
	back      ring[T]
	frontDone bool
	backDone  bool
}

// FixedDoubleEnded creates a FixedDoublePeeker over src with the given front
// and back cache capacities, taking ownership of src. It panics if either
// capacity is less than 1.
func FixedDoubleEnded[T any](src seq.DoubleEnded[T], frontCap, backCap int) *FixedDoublePeeker[T] {
	if src == nil {
		panic("source is nil")
	}
	checkCapacity(frontCap)
	checkCapacity(backCap)
	return &FixedDoublePeeker[T]{
		src:   src,
		front: newRing[T](frontCap),
		back:  newRing[T](backCap),
	}
}

// FrontCapacity returns the fixed front cache capacity.
func (p *FixedDoublePeeker[T]) FrontCapacity() int {
	return p.front.cap()
}

// BackCapacity returns the fixed back cache capacity.
func (p *FixedDoublePeeker[T]) BackCapacity() int {
	return p.back.cap()
}

func (p *FixedDoublePeeker[T]) pullFront() (T, error) {
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

func (p *FixedDoublePeeker[T]) pullBack() (T, error) {
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

func (p *FixedDoublePeeker[T]) frontAt(i int) (T, bool) {
	if item, ok := p.front.get(i); ok {
		return item, true
	}
	idx := p.front.len() + p.back.len() - 1 - i
	if i >= p.front.len() && idx >= 0 {
		return p.back.get(idx)
	}
	var zero T
	return zero, false
}

func (p *FixedDoublePeeker[T]) backAt(i int) (T, bool) {
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
func (p *FixedDoublePeeker[T]) PeekFront() (T, error) {
	return p.PeekFrontNth(0)
}

// PeekBack returns the next back element without consuming it.
func (p *FixedDoublePeeker[T]) PeekBack() (T, error) {
	return p.PeekBackNth(0)
}

// PeekFrontNth returns the element at offset n from the front without
// consuming anything. Offsets at or beyond the front capacity always return
// ErrAtEnd, regardless of source length.
func (p *FixedDoublePeeker[T]) PeekFrontNth(n int) (T, error) {
	checkOffset(n)
	if n >= p.front.cap() {
		return seq.End[T]()
	}
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

// PeekBackNth is the back-end analogue of PeekFrontNth, capped by the back capacity.
func (p *FixedDoublePeeker[T]) PeekBackNth(n int) (T, error) {
	checkOffset(n)
	if n >= p.back.cap() {
		return seq.End[T]()
	}
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
func (p *FixedDoublePeeker[T]) PeekNth(n int) (T, error) {
	return p.PeekFrontNth(n)
}

// Next consumes the next front element: the front cache first, then the
// source, then the innermost back-cache element once the source is drained.
func (p *FixedDoublePeeker[T]) Next() (T, error) {
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
func (p *FixedDoublePeeker[T]) NextBack() (T, error) {
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
func (p *FixedDoublePeeker[T]) NextIf(pred func(T) bool) (T, bool) {
	item, err := p.PeekFront()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.Next()
	return item, true
}

// NextBackIf consumes and returns the next back element only if pred holds for it.
func (p *FixedDoublePeeker[T]) NextBackIf(pred func(T) bool) (T, bool) {
	item, err := p.PeekBack()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.NextBack()
	return item, true
}

// FrontPeekedLen returns the number of elements in the front cache.
func (p *FixedDoublePeeker[T]) FrontPeekedLen() int {
	return p.front.len()
}

// BackPeekedLen returns the number of elements in the back cache.
func (p *FixedDoublePeeker[T]) BackPeekedLen() int {
	return p.back.len()
}

// ClearPeeked discards all cached elements from both ends.
func (p *FixedDoublePeeker[T]) ClearPeeked() {
	p.front.clear()
	p.back.clear()
}
