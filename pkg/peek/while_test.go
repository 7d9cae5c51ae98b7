package peek

import (
	"testing"

	"github.com/saylorsolutions/peekseq/pkg/seq"
	"github.com/stretchr/testify/assert"
)

func TestWhileNext(t *testing.T) {
	p := Forward[int](seq.Range(0, 6))

	got := seq.Collect(WhileNext[int](p, func(v int) bool { return v < 3 }))
	assert.Equal(t, []int{0, 1, 2}, got)

	next, err := p.Peek()
	assert.NoError(t, err)
	assert.Equal(t, 3, next, "The first failing element should stay unconsumed")
}

func TestWhileNext_ExhaustsSource(t *testing.T) {
	p := Forward[int](seq.Range(0, 3))
	got := seq.Collect(WhileNext[int](p, func(int) bool { return true }))
	assert.Equal(t, []int{0, 1, 2}, got)

	_, err := p.Next()
	assert.ErrorIs(t, err, seq.ErrAtEnd)
}

func TestWhileNext_NoMatch(t *testing.T) {
	p := Forward[int](seq.Range(5, 10))
	assert.Empty(t, seq.Collect(WhileNext[int](p, func(v int) bool { return v < 5 })))

	next, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 5, next)
}

func TestWhilePeek_Restartable(t *testing.T) {
	p := Forward[int](seq.Range(0, 6))
	pred := func(v int) bool { return v < 3 }

	first := seq.Collect(WhilePeek[int](p, pred))
	second := seq.Collect(WhilePeek[int](p, pred))
	assert.Equal(t, []int{0, 1, 2}, first)
	assert.Equal(t, first, second, "Peeking runs should be repeatable")

	next, err := p.Next()
	assert.NoError(t, err)
	assert.Equal(t, 0, next, "Nothing should have been consumed")
}

func TestWhilePeek_CappedByFixedCapacity(t *testing.T) {
	p := FixedForward[int](seq.Count(0), 3)
	got := seq.Collect(WhilePeek[int](p, func(int) bool { return true }))
	assert.Equal(t, []int{0, 1, 2}, got, "Peek depth should stop at the fixed capacity")
}

func TestWhileNextBack(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 6))

	got := seq.Collect(WhileNextBack[int](p, func(v int) bool { return v > 3 }))
	assert.Equal(t, []int{5, 4}, got)

	back, err := p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, 3, back)
}

func TestWhilePeekBack(t *testing.T) {
	p := DoubleEnded[int](seq.Range(0, 6))

	got := seq.Collect(WhilePeekBack[int](p, func(v int) bool { return v > 2 }))
	assert.Equal(t, []int{5, 4, 3}, got)

	back, err := p.NextBack()
	assert.NoError(t, err)
	assert.Equal(t, 5, back, "Nothing should have been consumed")
}

func TestWhileNext_LitePeeker(t *testing.T) {
	p := Lightweight[int](seq.Range(0, 5))
	got := seq.Collect(WhileNext[int](p, func(v int) bool { return v < 2 }))
	assert.Equal(t, []int{0, 1}, got)

	next, err := p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, 2, next)
}

func TestNextIfEq(t *testing.T) {
	p := Forward[string](seq.FromSlice([]string{"a", "b"}))

	got, ok := NextIfEq[string](p, "a")
	assert.True(t, ok)
	assert.Equal(t, "a", got)

	_, ok = NextIfEq[string](p, "a")
	assert.False(t, ok)

	got, ok = NextIfEq[string](p, "b")
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	_, ok = NextIfEq[string](p, "c")
	assert.False(t, ok, "An exhausted buffer never matches")
}
