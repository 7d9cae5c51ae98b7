package peek

import (
	"testing"

	"github.com/saylorsolutions/peekseq/pkg/seq"
	"github.com/stretchr/testify/assert"
)

func TestDoublePeeker_BothEnds(t *testing.T) {
	p := DoubleEnded[int](seq.Range(1, 6))

	front, err := p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err := p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, 5, back)

	front, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err = p.NextBack()
	assert.NoError(t, err)
	assert.Equal(t, 5, back)

	front, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, front)
}

func TestDoublePeeker_SingleElement(t *testing.T) {
	p := DoubleEnded[int](seq.FromSlice([]int{42}))

	front, err := p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, 42, front)

	back, err := p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, 42, back, "Both ends should observe the lone element")

	got, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = p.PeekBack()
	assert.ErrorIs(t, err, seq.ErrAtEnd, "Consuming from the front should remove the element for the back too")
	_, err = p.NextBack()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestDoublePeeker_FrontPeekReachesBackCache(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 6))

	back, err := p.PeekBackNth(0)
	assert.NoError(t, err)
	assert.Equal(t, 5, back)

	// Offset 5 from the front is the element the back cache already holds.
	got, err := p.PeekFrontNth(5)
	assert.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = p.PeekFrontNth(6)
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestDoublePeeker_BackPeekReachesFrontCache(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 5))

	_, err := p.PeekFrontNth(2)
	assert.NoError(t, err)

	got, err := p.PeekBackNth(4)
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = p.PeekBackNth(3)
	assert.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = p.PeekBackNth(5)
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestDoublePeeker_DisjointConsumption(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 4))
	_, err := p.PeekFrontNth(1)
	assert.NoError(t, err)
	_, err = p.PeekBackNth(1)
	assert.NoError(t, err)

	var got []int
	for _, op := range []func() (int, error){p.Next, p.NextBack, p.Next, p.NextBack} {
		item, err := op()
		assert.NoError(t, err)
		got = append(got, item)
	}
	assert.Equal(t, []int{0, 3, 1, 2}, got, "Each element should be delivered exactly once")

	_, err = p.Next()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
	_, err = p.NextBack()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestDoublePeeker_Ranges(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 6))

	assert.Equal(t, []int{1, 2, 3}, seq.Collect(p.PeekFrontRange(1, 4)))
	assert.Equal(t, []int{5, 4}, seq.Collect(p.PeekBackRange(0, 2)))

	front, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 0, front, "Range peeking should not consume")

	assert.Panics(t, func() {
		p.PeekFrontRange(2, 1)
	})
	assert.Panics(t, func() {
		p.PeekBackRange(-1, 1)
	})
}

func TestDoublePeeker_RangeTruncated(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 3))
	assert.Equal(t, []int{1, 2}, seq.Collect(p.PeekFrontRange(1, 10)))
	assert.Equal(t, []int{2, 1, 0}, seq.Collect(p.PeekBackRange(0, 10)))
}

func TestDoublePeeker_NextIf(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 5))

	got, ok := p.NextIf(func(v int) bool { return v == 0 })
	assert.True(t, ok)
	assert.Equal(t, 0, got)

	_, ok = p.NextIf(func(v int) bool { return v > 10 })
	assert.False(t, ok)

	got, ok = p.NextBackIf(func(v int) bool { return v == 4 })
	assert.True(t, ok)
	assert.Equal(t, 4, got)

	_, ok = p.NextBackIf(func(v int) bool { return v < 0 })
	assert.False(t, ok)

	back, err := p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, 3, back, "A rejected element should stay peekable")
}

func TestDoublePeeker_CacheManagement(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 10))

	_, err := p.PeekFrontNth(3)
	assert.NoError(t, err)
	_, err = p.PeekBackNth(2)
	assert.NoError(t, err)
	assert.Equal(t, 4, p.FrontPeekedLen())
	assert.Equal(t, 3, p.BackPeekedLen())
	assert.True(t, p.HasFrontPeeked(3))
	assert.False(t, p.HasFrontPeeked(4))
	assert.True(t, p.HasBackPeeked(2))

	p.DrainFrontPeeked(2)
	assert.Equal(t, 2, p.FrontPeekedLen())
	front, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, front)

	p.DrainBackPeeked(1)
	assert.Equal(t, 2, p.BackPeekedLen())
	back, err := p.NextBack()
	assert.NoError(t, err)
	assert.Equal(t, 8, back)

	p.ClearPeeked()
	assert.Equal(t, 0, p.FrontPeekedLen())
	assert.Equal(t, 0, p.BackPeekedLen())
}

func TestDoublePeeker_NilSourcePanics(t *testing.T) {
	assert.Panics(t, func() {
		DoubleEnded[int](nil)
	})
}
