package stdstream

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/peekseq/pkg/seq"
)

// SourceIn reads each line of STDIN as a sequence element.
// The sequence ends when STDIN is closed or the context is cancelled.
func SourceIn(ctx context.Context) seq.Seq[string] {
	ch := make(chan string)
	go func() {
		defer func() {
			close(ch)
		}()
		scanner := bufio.NewScanner(os.Stdin)

		var hasClosed bool
		go func() {
			<-ctx.Done()
			hasClosed = true
		}()

		for scanner.Scan() {
			if hasClosed {
				return
			}
			ch <- scanner.Text()
		}
	}()
	return seq.FromChannel(ch)
}

// SinkOut writes each element of the sequence as a line to STDOUT.
// In case of an error, the sequence is drained to prevent upstream blocking.
func SinkOut(ctx context.Context, src seq.Seq[string]) error {
	return sinkTo(ctx, src, os.Stdout)
}

// SinkErr writes each element of the sequence as a line to STDERR.
// In case of an error, the sequence is drained to prevent upstream blocking.
func SinkErr(ctx context.Context, src seq.Seq[string]) error {
	return sinkTo(ctx, src, os.Stderr)
}

func sinkTo(ctx context.Context, src seq.Seq[string], w io.Writer) error {
	var hasCancelled bool
	go func() {
		<-ctx.Done()
		hasCancelled = true
	}()
	err := seq.Iterate(src, func(line string, i int) error {
		if hasCancelled {
			return seq.ErrAtEnd
		}
		_, err := fmt.Fprintf(w, "%s\n", line)
		return err
	})
	if err != nil {
		seq.Drain(src)
		return err
	}
	return nil
}
