// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package repl is the terminal front end of tutorbook.

It reads one command per line, prints the result box text, and re-renders the
filtered person list whenever it changes. The list is the one INDEX arguments
refer to, so it is printed with 1-based positions.
*/
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/taibuivan/tutorbook/internal/core/person"
	"github.com/taibuivan/tutorbook/internal/logic"
	"github.com/taibuivan/tutorbook/internal/platform/ctxutil"
)

// Prompt precedes every input line.
const Prompt = "> "

// MaxLineBytes bounds one command line. Longer lines are skipped with [MessageLineTooLong].
const MaxLineBytes = 64 << 10

// MessageLineTooLong is printed for a skipped line.
const MessageLineTooLong = "Input line is too long and was ignored"

// Shell drives a [logic.Manager] from a line-oriented stream.
type Shell struct {
	manager *logic.Manager
	in      io.Reader
	out     io.Writer
}

// New constructs a [Shell] reading from in and writing to out.
func New(manager *logic.Manager, in io.Reader, out io.Writer) *Shell {
	return &Shell{manager: manager, in: in, out: out}
}

// Run loops until exit, end of input or cancellation of context.
//
// Command failures are printed and the loop continues; only an I/O error on
// the input stream is returned.
func (shell *Shell) Run(context context.Context) error {
	unsubscribe := shell.manager.SubscribeFiltered(shell.render)
	defer unsubscribe()

	shell.render(shell.manager.FilteredPersons())

	reader := bufio.NewReader(shell.in)
	for {
		if context.Err() != nil {
			return nil
		}

		fmt.Fprint(shell.out, Prompt)
		raw, tooLong, err := readLine(reader)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if tooLong {
			fmt.Fprintln(shell.out, MessageLineTooLong)
			continue
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		result, err := shell.manager.Execute(ctxutil.WithSource(context, ctxutil.SourceREPL), line)
		if err != nil {
			fmt.Fprintln(shell.out, err.Error())
			continue
		}
		fmt.Fprintln(shell.out, result.Feedback)
		if result.Exit {
			return nil
		}
	}
}

// readLine reads up to the next newline. Past [MaxLineBytes] the rest of the line
// is consumed and dropped, and tooLong is set.
func readLine(reader *bufio.Reader) (line string, tooLong bool, err error) {
	var buffer []byte
	for {
		chunk, isPrefix, readErr := reader.ReadLine()
		if readErr != nil {
			return "", false, readErr
		}
		if len(buffer)+len(chunk) > MaxLineBytes {
			tooLong = true
		} else if !tooLong {
			buffer = append(buffer, chunk...)
		}
		if !isPrefix {
			return string(buffer), tooLong, nil
		}
	}
}

// render prints the filtered list. It runs inside the command that changed it.
func (shell *Shell) render(persons []person.Person) {
	if len(persons) == 0 {
		fmt.Fprintln(shell.out, "(no persons to show)")
		return
	}
	for i, p := range persons {
		fmt.Fprintf(shell.out, "%d. %s\n", i+1, p)
	}
}
