package seq

var _ Seq[int] = (*chanSeq[int])(nil)

type chanSeq[T any] struct {
	ch <-chan T
}

// FromChannel wraps ch as a Seq. The sequence ends when ch is closed.
func FromChannel[T any](ch <-chan T) Seq[T] {
	return &chanSeq[T]{ch: ch}
}

func (c *chanSeq[T]) Next() (T, error) {
	item, ok := <-c.ch
	if !ok {
		return End[T]()
	}
	return item, nil
}
