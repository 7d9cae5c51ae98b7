package seq

import (
	"errors"
)

var (
	// ErrAtEnd signals that a Seq has no more elements to produce from the
	// requested end. It's an expected condition, not a failure.
	ErrAtEnd = errors.New("end of sequence")
)

// Seq is a pull-based producer of elements.
// Implementations must be fused: once Next returns ErrAtEnd, every later call returns ErrAtEnd too.
type Seq[T any] interface {
	// Next produces the next element, or ErrAtEnd when the sequence is exhausted.
	Next() (T, error)
}

// DoubleEnded is a Seq that can also produce elements from its end.
// The two ends converge on the same underlying elements: each element is
// produced by exactly one end, and when the ends meet both report ErrAtEnd.
type DoubleEnded[T any] interface {
	Seq[T]
	// NextBack produces the next element from the end, or ErrAtEnd when exhausted.
	NextBack() (T, error)
}

// NextFunc adapts a plain function to the Seq contract.
type NextFunc[T any] func() (T, error)

type funcSeq[T any] struct {
	fn NextFunc[T]
}

func (f *funcSeq[T]) Next() (T, error) {
	return f.fn()
}

// Func wraps fn as a Seq.
func Func[T any](fn NextFunc[T]) Seq[T] {
	if fn == nil {
		panic("fn is nil")
	}
	return &funcSeq[T]{fn: fn}
}

// End returns the zero value and ErrAtEnd, for use in Func bodies.
func End[T any]() (T, error) {
	var zero T
	return zero, ErrAtEnd
}

// Err returns the zero value and err, for use in Func bodies.
func Err[T any](err error) (T, error) {
	var zero T
	return zero, err
}

// IsEnd reports whether err signals normal sequence exhaustion.
func IsEnd(err error) bool {
	return errors.Is(err, ErrAtEnd)
}

// Iterate will progress through all elements of s, calling fn for each one along with its offset.
// If fn returns ErrAtEnd, then iteration will cease, returning nil.
// If any other error is returned, then iteration will cease, and the error will be returned.
func Iterate[T any](s Seq[T], fn func(item T, i int) error) error {
	for i := 0; ; i++ {
		item, err := s.Next()
		if err != nil {
			if IsEnd(err) {
				return nil
			}
			return err
		}
		if err := fn(item, i); err != nil {
			if IsEnd(err) {
				return nil
			}
			return err
		}
	}
}

// Collect materializes all remaining elements of s.
// A non-end error from s is discarded along with any elements pulled after it; use Iterate when errors matter.
func Collect[T any](s Seq[T]) []T {
	var out []T
	_ = Iterate(s, func(item T, _ int) error {
		out = append(out, item)
		return nil
	})
	return out
}
