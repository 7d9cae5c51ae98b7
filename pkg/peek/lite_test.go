package peek

import (
	"testing"

	"github.com/saylorsolutions/peekseq/pkg/seq"
	"github.com/stretchr/testify/assert"
)

func TestLitePeeker_Interleave(t *testing.T) {
	p := Lightweight[int](seq.Range(1, 4))

	front, err := p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, 1, front)

	front, err = p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err := p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, 3, back)

	back, err = p.NextBack()
	assert.NoError(t, err)
	assert.Equal(t, 3, back)

	front, err = p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, 2, front)

	back, err = p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, 2, back, "Both ends should observe the lone remaining element")

	mid, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, mid)

	_, err = p.Next()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
	_, err = p.NextBack()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestLitePeeker_SharedLastElement(t *testing.T) {
	p := Lightweight[int](seq.FromSlice([]int{7}))

	front, err := p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, 7, front)

	back, err := p.NextBack()
	assert.NoError(t, err)
	assert.Equal(t, 7, back, "The front-cached element should be consumable from the back")

	_, err = p.PeekFront()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
	_, err = p.PeekBack()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestLitePeeker_SingleSlotDepth(t *testing.T) {
	p := Lightweight[int](seq.Range(0, 5))

	_, err := p.PeekNth(1)
	assert.ErrorIs(t, err, seq.ErrAtEnd, "Offsets past the single slot should read as empty")
	_, err = p.PeekBackNth(1)
	assert.ErrorIs(t, err, seq.ErrAtEnd)

	got, err := p.PeekNth(0)
	assert.NoError(t, err)
	assert.Equal(t, 0, got)

	assert.Panics(t, func() {
		_, _ = p.PeekNth(-1)
	})
}

func TestLitePeeker_NextIf(t *testing.T) {
	p := Lightweight[int](seq.Range(1, 4))

	got, ok := p.NextIf(func(v int) bool { return v == 1 })
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = p.NextIf(func(v int) bool { return v == 3 })
	assert.False(t, ok)

	got, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, got)

	got, ok = p.NextBackIf(func(v int) bool { return v == 3 })
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestLitePeeker_SlotManagement(t *testing.T) {
	p := Lightweight[int](seq.Range(1, 4))
	assert.False(t, p.HasFrontPeeked())
	assert.False(t, p.HasBackPeeked())

	_, err := p.PeekFront()
	assert.NoError(t, err)
	assert.True(t, p.HasFrontPeeked())

	p.ClearFrontPeeked()
	assert.False(t, p.HasFrontPeeked())
	got, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, got, "Clearing should discard the cached element")

	_, err = p.PeekBack()
	assert.NoError(t, err)
	assert.True(t, p.HasBackPeeked())
	p.ClearPeeked()
	assert.False(t, p.HasBackPeeked())
}

func TestLitePeeker_NilSourcePanics(t *testing.T) {
	assert.Panics(t, func() {
		Lightweight[int](nil)
	})
}
