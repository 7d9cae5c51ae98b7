package seq

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// AsChannel exposes the elements of s on a channel, draining s in a new goroutine if needed.
func AsChannel[T any](s Seq[T]) <-chan T {
	if cs, ok := s.(*chanSeq[T]); ok {
		return cs.ch
	}
	if ss, ok := s.(*sliceSeq[T]); ok {
		ch := make(chan T, len(ss.items))
		defer close(ch)
		for {
			item, err := ss.Next()
			if err != nil {
				break
			}
			ch <- item
		}
		return ch
	}
	ch := make(chan T)
	go func() {
		defer close(ch)
		_ = Iterate(s, func(item T, _ int) error {
			ch <- item
			return nil
		})
	}()
	return ch
}

// Dupe will take control of and branch the duplicate Seq into two identical sequences.
// Any element produced by the source Seq will be sent to both of the returned sequences.
// It's not advised to read from a Seq that has been passed to Dupe, use one of the returned sequences instead.
func Dupe[T any](s Seq[T]) (Seq[T], Seq[T]) {
	if s == nil {
		ch := make(chan T)
		close(ch)
		return FromChannel(ch), FromChannel(ch)
	}

	a := make(chan T)
	b := make(chan T)
	aseq := FromChannel(a)
	bseq := FromChannel(b)

	go func() {
		sem := semaphore.NewWeighted(2)
		ctx := context.Background()

		defer func() {
			_ = sem.Acquire(ctx, 2)
			close(a)
			close(b)
		}()
		_ = Iterate(s, func(item T, _ int) error {
			_ = sem.Acquire(ctx, 1)
			go func() {
				defer sem.Release(1)
				a <- item
			}()
			_ = sem.Acquire(ctx, 1)
			go func() {
				defer sem.Release(1)
				b <- item
			}()
			return nil
		})
	}()
	return aseq, bseq
}

// Drain will consume all remaining elements of s in a new goroutine.
// This can be useful as an error fallback to prevent upstream blocking.
func Drain[T any](s Seq[T]) {
	ch := AsChannel(s)
	go func() {
		for range ch {
		}
	}()
}
