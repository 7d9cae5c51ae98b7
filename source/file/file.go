package file

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/nxadm/tail"
	"github.com/saylorsolutions/peekseq/pkg/seq"
)

// Source reads every line of the named file into memory and returns them as a
// double-ended sequence, so lines can be consumed from either end or handed to
// a double-ended peek buffer.
func Source(filename string) (seq.DoubleEnded[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return seq.FromSlice(lines), nil
}

// TailSource behaves the same as CtxTailSource, except that it will use context.Background as the context.
func TailSource(filename string) (seq.Seq[string], error) {
	_, s, err := ctxTail(context.Background(), filename)
	return s, err
}

// CtxTailSource will create a sequence of lines from the provided file, following it as it grows.
// The sequence ends when the context is cancelled or the tail is stopped.
func CtxTailSource(ctx context.Context, filename string) (seq.Seq[string], error) {
	_, s, err := ctxTail(ctx, filename)
	return s, err
}

func ctxTail(ctx context.Context, filename string) (*tail.Tail, seq.Seq[string], error) {
	t, err := tail.TailFile(filename, tail.Config{
		ReOpen:    true,
		MustExist: true,
		Follow:    true,
	})
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan string)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case l, ok := <-t.Lines:
				if !ok {
					return
				}
				ch <- l.Text
			}
		}
	}()
	return t, seq.FromChannel(ch), nil
}

// Sink will append each line in the sequence to the specified file, creating it if necessary.
// If Sink is called asynchronously, it's recommended to wait until it returns to close down the application.
// In case of an error, Sink will drain the sequence to prevent upstream blocking.
func Sink(src seq.Seq[string], filename string, perms os.FileMode) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perms)
	if err != nil {
		seq.Drain(src)
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	err = seq.Iterate(src, func(line string, _ int) error {
		_, err := fmt.Fprintln(f, line)
		return err
	})
	if err != nil {
		seq.Drain(src)
		return err
	}
	return nil
}
