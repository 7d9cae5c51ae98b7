package peek

import (
	"github.com/saylorsolutions/peekseq/pkg/seq"
)

// Peekable is the minimal front-end surface shared by every buffer variant,
// enough for the conditional consumption helpers.
type Peekable[T any] interface {
	// PeekNth returns the element at offset n from the front without consuming it.
	PeekNth(n int) (T, error)
	// Next consumes and returns the front element.
	Next() (T, error)
}

// BackPeekable is the back-end counterpart of Peekable, satisfied by the
// double-ended buffer variants.
type BackPeekable[T any] interface {
	PeekBackNth(n int) (T, error)
	NextBack() (T, error)
}

// WhileNext returns a lazy, single-pass sequence that consumes and yields
// front elements while pred holds for them. The first element failing pred is
// peeked but not consumed, so it remains available afterwards.
func WhileNext[T any](p Peekable[T], pred func(T) bool) seq.Seq[T] {
	return seq.Func(func() (T, error) {
		item, err := p.PeekNth(0)
		if err != nil {
			return seq.Err[T](err)
		}
		if !pred(item) {
			return seq.End[T]()
		}
		return p.Next()
	})
}

// WhilePeek returns a lazy sequence walking front offsets 0, 1, 2, ... while
// pred holds, yielding copies of the matching elements without consuming any.
// The buffer is left fully unconsumed, so running it twice yields identical
// results. Elements are duplicated by plain assignment, i.e. shallow copies.
func WhilePeek[T any](p Peekable[T], pred func(T) bool) seq.Seq[T] {
	n := 0
	return seq.Func(func() (T, error) {
		item, err := p.PeekNth(n)
		if err != nil {
			return seq.Err[T](err)
		}
		if !pred(item) {
			return seq.End[T]()
		}
		n++
		return item, nil
	})
}

// WhileNextBack is WhileNext operating on the back end of a double-ended buffer.
func WhileNextBack[T any](p BackPeekable[T], pred func(T) bool) seq.Seq[T] {
	return seq.Func(func() (T, error) {
		item, err := p.PeekBackNth(0)
		if err != nil {
			return seq.Err[T](err)
		}
		if !pred(item) {
			return seq.End[T]()
		}
		return p.NextBack()
	})
}

// WhilePeekBack is WhilePeek operating on the back end of a double-ended buffer.
func WhilePeekBack[T any](p BackPeekable[T], pred func(T) bool) seq.Seq[T] {
	n := 0
	return seq.Func(func() (T, error) {
		item, err := p.PeekBackNth(n)
		if err != nil {
			return seq.Err[T](err)
		}
		if !pred(item) {
			return seq.End[T]()
		}
		n++
		return item, nil
	})
}

// NextIfEq consumes and returns the front element only if it equals expected.
// It's a package-level function because the equality check needs a comparable
// element type, which the buffer types don't require.
func NextIfEq[T comparable](p Peekable[T], expected T) (T, bool) {
	item, err := p.PeekNth(0)
	if err != nil || item != expected {
		var zero T
		return zero, false
	}
	item, _ = p.Next()
	return item, true
}
