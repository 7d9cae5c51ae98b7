package seq

var _ DoubleEnded[int] = (*sliceSeq[int])(nil)

type sliceSeq[T any] struct {
	items []T
	front int
	back  int
}

// FromSlice wraps items as a DoubleEnded sequence. The slice is not copied;
// the caller should not modify it while the sequence is in use.
func FromSlice[T any](items []T) DoubleEnded[T] {
	return &sliceSeq[T]{
		items: items,
		back:  len(items) - 1,
	}
}

func (s *sliceSeq[T]) Next() (T, error) {
	if s.front > s.back {
		return End[T]()
	}
	item := s.items[s.front]
	s.front++
	return item, nil
}

func (s *sliceSeq[T]) NextBack() (T, error) {
	if s.front > s.back {
		return End[T]()
	}
	item := s.items[s.back]
	s.back--
	return item, nil
}
