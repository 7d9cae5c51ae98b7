package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/saylorsolutions/peekseq/pkg/peek"
	"github.com/saylorsolutions/peekseq/pkg/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	src, err := Source("lines.log")
	require.NoError(t, err)
	require.NotNil(t, src)

	first, err := src.Next()
	assert.NoError(t, err)
	assert.Equal(t, "A", first)

	last, err := src.NextBack()
	assert.NoError(t, err)
	assert.Equal(t, "C", last)

	assert.Equal(t, []string{"B"}, seq.Collect[string](src))
}

func TestSource_PeekBothEnds(t *testing.T) {
	src, err := Source("lines.log")
	require.NoError(t, err)

	p := peek.DoubleEnded[string](src)
	first, err := p.PeekFront()
	assert.NoError(t, err)
	assert.Equal(t, "A", first)
	last, err := p.PeekBack()
	assert.NoError(t, err)
	assert.Equal(t, "C", last)
	assert.Equal(t, []string{"A", "B", "C"}, seq.Collect(seq.Func(p.Next)))
}

func TestTailSource(t *testing.T) {
	_tail, src, err := ctxTail(context.Background(), "lines.log")
	require.NoError(t, err)
	require.NotNil(t, _tail)
	require.NotNil(t, src)

	count := 0
	err = seq.Iterate(src, func(line string, i int) error {
		count++
		switch count {
		case 1:
			assert.Equal(t, "A", line)
		case 2:
			assert.Equal(t, "B", line)
		case 3:
			assert.Equal(t, "C", line)
		default:
			t.Error("Should not have consumed 4+ lines")
		}
		if count == 3 {
			return _tail.Stop()
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTailSource_MissingFile(t *testing.T) {
	_, err := TailSource("does-not-exist.log")
	assert.Error(t, err)
}

func TestSink(t *testing.T) {
	td, err := os.MkdirTemp("", "TestSink-*")
	require.NoError(t, err)
	t.Log("Using temp directory:", td)
	defer func() {
		err := os.RemoveAll(td)
		if err != nil {
			t.Error("Failed to remove temp directory:", td)
		} else {
			t.Log("Removed temp directory")
		}
	}()

	target := filepath.Join(td, "test.log")
	err = Sink(seq.FromSlice([]string{"one", "two"}), target, 0600)
	assert.NoError(t, err)

	src, err := Source(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, seq.Collect[string](src))
}
