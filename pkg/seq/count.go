package seq

// Count produces start, start+1, start+2, ... without end.
func Count(start int) Seq[int] {
	next := start
	return Func(func() (int, error) {
		cur := next
		next++
		return cur, nil
	})
}

var _ DoubleEnded[int] = (*rangeSeq)(nil)

type rangeSeq struct {
	front int
	back  int
}

// Range produces the integers in [start, end) as a DoubleEnded sequence.
func Range(start, end int) DoubleEnded[int] {
	return &rangeSeq{front: start, back: end - 1}
}

func (r *rangeSeq) Next() (int, error) {
	if r.front > r.back {
		return End[int]()
	}
	cur := r.front
	r.front++
	return cur, nil
}

func (r *rangeSeq) NextBack() (int, error) {
	if r.front > r.back {
		return End[int]()
	}
	cur := r.back
	r.back--
	return cur, nil
}
