package peek

import (
	"github.com/saylorsolutions/peekseq/pkg/seq"
)

// slot caches at most one pulled element. primed distinguishes "never pulled"
// from "pulled and found the source exhausted".
type slot[T any] struct {
	primed bool
	ok     bool
	val    T
}

// LitePeeker is a reduced double-ended peek buffer holding at most one cached
// element per end. Each element lives in exactly one slot, so with a single
// element remaining both PeekFront and PeekBack observe it, and consuming it
// from either end removes it for both.
type LitePeeker[T any] struct {
	src   seq.DoubleEnded[T]
	front slot[T]
	back  slot[T]
}

// Lightweight creates a LitePeeker over src, taking ownership of it.
func Lightweight[T any](src seq.DoubleEnded[T]) *LitePeeker[T] {
	if src == nil {
		panic("source is nil")
	}
	return &LitePeeker[T]{src: src}
}

func (p *LitePeeker[T]) primeFront() error {
	if p.front.primed {
		return nil
	}
	item, err := p.src.Next()
	if err != nil {
		if seq.IsEnd(err) {
			p.front = slot[T]{primed: true}
			return nil
		}
		return err
	}
	p.front = slot[T]{primed: true, ok: true, val: item}
	return nil
}

func (p *LitePeeker[T]) primeBack() error {
	if p.back.primed {
		return nil
	}
	item, err := p.src.NextBack()
	if err != nil {
		if seq.IsEnd(err) {
			p.back = slot[T]{primed: true}
			return nil
		}
		return err
	}
	p.back = slot[T]{primed: true, ok: true, val: item}
	return nil
}

// PeekFront returns the next front element without consuming it, pulling at
// most one element. When the source is exhausted from the front, the back
// slot's element (if any) is the next front element.
func (p *LitePeeker[T]) PeekFront() (T, error) {
	if err := p.primeFront(); err != nil {
		return seq.Err[T](err)
	}
	if p.front.ok {
		return p.front.val, nil
	}
	if p.back.ok {
		return p.back.val, nil
	}
	return seq.End[T]()
}

// PeekBack returns the next back element without consuming it, mirroring PeekFront.
func (p *LitePeeker[T]) PeekBack() (T, error) {
	if err := p.primeBack(); err != nil {
		return seq.Err[T](err)
	}
	if p.back.ok {
		return p.back.val, nil
	}
	if p.front.ok {
		return p.front.val, nil
	}
	return seq.End[T]()
}

// PeekNth supports offset 0 only; deeper offsets are beyond this variant's
// single-slot capacity and return ErrAtEnd, like a fixed buffer of capacity 1.
func (p *LitePeeker[T]) PeekNth(n int) (T, error) {
	checkOffset(n)
	if n > 0 {
		return seq.End[T]()
	}
	return p.PeekFront()
}

// PeekBackNth is the back-end analogue of PeekNth.
func (p *LitePeeker[T]) PeekBackNth(n int) (T, error) {
	checkOffset(n)
	if n > 0 {
		return seq.End[T]()
	}
	return p.PeekBack()
}

func (p *LitePeeker[T]) takeBack() (T, error) {
	if p.back.primed && p.back.ok {
		item := p.back.val
		p.back = slot[T]{}
		return item, nil
	}
	return seq.End[T]()
}

func (p *LitePeeker[T]) takeFront() (T, error) {
	if p.front.primed && p.front.ok {
		item := p.front.val
		p.front = slot[T]{}
		return item, nil
	}
	return seq.End[T]()
}

// Next consumes the next front element: the front slot first, then the source,
// and finally the back slot once the source is drained.
func (p *LitePeeker[T]) Next() (T, error) {
	if p.front.primed {
		taken := p.front
		p.front = slot[T]{}
		if taken.ok {
			return taken.val, nil
		}
		// Already saw front exhaustion, only the back slot may remain.
		return p.takeBack()
	}
	item, err := p.src.Next()
	if err == nil {
		return item, nil
	}
	if !seq.IsEnd(err) {
		return seq.Err[T](err)
	}
	return p.takeBack()
}

// NextBack consumes the next back element, mirroring Next.
func (p *LitePeeker[T]) NextBack() (T, error) {
	if p.back.primed {
		taken := p.back
		p.back = slot[T]{}
		if taken.ok {
			return taken.val, nil
		}
		return p.takeFront()
	}
	item, err := p.src.NextBack()
	if err == nil {
		return item, nil
	}
	if !seq.IsEnd(err) {
		return seq.Err[T](err)
	}
	return p.takeFront()
}

// NextIf consumes and returns the next front element only if pred holds for it.
func (p *LitePeeker[T]) NextIf(pred func(T) bool) (T, bool) {
	item, err := p.PeekFront()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.Next()
	return item, true
}

// NextBackIf consumes and returns the next back element only if pred holds for it.
func (p *LitePeeker[T]) NextBackIf(pred func(T) bool) (T, bool) {
	item, err := p.PeekBack()
	if err != nil || !pred(item) {
		var zero T
		return zero, false
	}
	item, _ = p.NextBack()
	return item, true
}

// HasFrontPeeked reports whether the front slot holds an element.
func (p *LitePeeker[T]) HasFrontPeeked() bool {
	return p.front.primed && p.front.ok
}

// HasBackPeeked reports whether the back slot holds an element.
func (p *LitePeeker[T]) HasBackPeeked() bool {
	return p.back.primed && p.back.ok
}

// ClearFrontPeeked discards the front slot without consuming it.
func (p *LitePeeker[T]) ClearFrontPeeked() {
	p.front = slot[T]{}
}

// ClearBackPeeked discards the back slot without consuming it.
func (p *LitePeeker[T]) ClearBackPeeked() {
	p.back = slot[T]{}
}

// ClearPeeked discards both slots.
func (p *LitePeeker[T]) ClearPeeked() {
	p.ClearFrontPeeked()
	p.ClearBackPeeked()
}
