package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/peekseq/pkg/peek"
	"github.com/saylorsolutions/peekseq/pkg/seq"
	"github.com/saylorsolutions/peekseq/source/file"
	"github.com/saylorsolutions/peekseq/source/stdstream"
	"github.com/saylorsolutions/peekseq/source/store"
)

func main() {
	log := hclog.Default()
	if len(os.Args) <= 1 {
		usage()
		return
	}
	args := os.Args[1:]
	switch args[0] {
	case "ends":
		if err := doEnds(args[1:]...); err != nil {
			exitError("Failed to show file ends: %v", err)
		}
	case "grep":
		if err := doGrep(args[1:]...); err != nil {
			exitError("Failed to search file: %v", err)
		}
	case "save":
		if err := doSave(log, args[1:]...); err != nil {
			exitError("Failed to save file: %v", err)
		}
	case "show":
		if err := doShow(log, args[1:]...); err != nil {
			exitError("Failed to show table: %v", err)
		}
	case "help":
		usage()
	default:
		exitError("Unrecognized command: '%s'", args[0])
	}
}

func exitError(format string, args ...any) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	fmt.Printf("Error: "+format, args...)
	usage()
	os.Exit(-1)
}

func usage() {
	text := `
peekseq is a line sequence tool built around peekable sequences.

  peekseq help
  peekseq ends [-n NUM] FILE
  peekseq grep [-A NUM] PATTERN FILE
  peekseq save [-db DB] FILE TABLE
  peekseq show [-db DB] TABLE

The 'help' subcommand will print this usage information.
The 'ends' subcommand will print the first and last NUM lines of FILE (5 by default), consuming from both ends of the file so no line is printed twice.
The 'grep' subcommand will print each line of FILE matching PATTERN, followed by up to NUM lines of trailing context. Context lines are peeked rather than consumed, so matches within the context are still found.
The 'save' subcommand will append each line of FILE to TABLE in the SQLite database DB ('peekseq.db' by default).
The 'show' subcommand will print each line of TABLE from the SQLite database DB to STDOUT.
`
	fmt.Print(text)
}

func doEnds(args ...string) error {
	count := 5
	var filename string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-n":
			if i+1 >= len(args) {
				return errors.New("missing value for -n")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid value for -n: %s", args[i+1])
			}
			count = n
			i++
		default:
			filename = args[i]
		}
	}
	if len(filename) == 0 {
		return errors.New("not enough arguments for ends")
	}

	src, err := file.Source(filename)
	if err != nil {
		return err
	}
	p := peek.DoubleEnded[string](src)
	var head, tail []string
	for i := 0; i < count; i++ {
		line, err := p.Next()
		if err != nil {
			if seq.IsEnd(err) {
				break
			}
			return err
		}
		head = append(head, line)
	}
	for i := 0; i < count; i++ {
		line, err := p.NextBack()
		if err != nil {
			if seq.IsEnd(err) {
				break
			}
			return err
		}
		tail = append([]string{line}, tail...)
	}
	_, err = p.PeekFront()
	hasMiddle := err == nil

	for _, line := range head {
		fmt.Println(line)
	}
	if hasMiddle {
		fmt.Println("...")
	}
	for _, line := range tail {
		fmt.Println(line)
	}
	return nil
}

func doGrep(args ...string) error {
	after := 0
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-A":
			if i+1 >= len(args) {
				return errors.New("missing value for -A")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value for -A: %s", args[i+1])
			}
			after = n
			i++
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) < 2 {
		return errors.New("not enough arguments for grep")
	}
	re, err := regexp.Compile(positional[0])
	if err != nil {
		return err
	}

	src, err := file.Source(positional[1])
	if err != nil {
		return err
	}
	p := peek.Forward[string](src)
	for {
		line, err := p.Next()
		if err != nil {
			if seq.IsEnd(err) {
				return nil
			}
			return err
		}
		if !re.MatchString(line) {
			continue
		}
		fmt.Println(line)
		if after > 0 {
			err := seq.Iterate(p.PeekRange(0, after), func(context string, _ int) error {
				fmt.Println(context)
				return nil
			})
			if err != nil {
				return err
			}
		}
	}
}

func doSave(log hclog.Logger, args ...string) error {
	db, positional, err := dbArgs(args)
	if err != nil {
		return err
	}
	if len(positional) < 2 {
		return errors.New("not enough arguments for save")
	}
	src, err := file.Source(positional[0])
	if err != nil {
		return err
	}
	st, err := store.NewStore(log, db)
	if err != nil {
		seq.Drain[string](src)
		return err
	}
	defer func() {
		_ = st.Close()
	}()
	return st.Sink(src, positional[1])
}

func doShow(log hclog.Logger, args ...string) error {
	db, positional, err := dbArgs(args)
	if err != nil {
		return err
	}
	if len(positional) < 1 {
		return errors.New("not enough arguments for show")
	}
	st, err := store.NewStore(log, db)
	if err != nil {
		return err
	}
	defer func() {
		_ = st.Close()
	}()
	lines, err := st.Lines(positional[0])
	if err != nil {
		return err
	}
	return stdstream.SinkOut(context.Background(), lines)
}

func dbArgs(args []string) (string, []string, error) {
	db := "peekseq.db"
	var positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "-db" {
			if i+1 >= len(args) {
				return "", nil, errors.New("missing value for -db")
			}
			db = args[i+1]
			i++
			continue
		}
		positional = append(positional, args[i])
	}
	return db, positional, nil
}
