// Package console provides the line-oriented prompt source the interactive
// flows read through. The reader is injected, so tests drive prompt loops
// with a queued sequence of lines instead of a live terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
)

type Console struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// EOF reports whether the input source is exhausted. Prompt loops check it
// so a closed input cannot spin forever.
func (c *Console) EOF() bool {
	return c.eof
}

// ReadLine prints prompt without a trailing newline and returns the next
// input line. Returns "" once the input is exhausted.
func (c *Console) ReadLine(prompt string) string {
	if c.eof {
		return ""
	}
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return c.in.Text()
}

// ReadValid blocks until valid returns true for an input line, printing
// reprompt before every retry. This is the only recovery path for
// input-format errors: the user proceeds by supplying valid data.
func (c *Console) ReadValid(prompt, reprompt string, valid func(string) bool) string {
	line := c.ReadLine(prompt)
	for !valid(line) && !c.eof {
		line = c.ReadLine(reprompt)
	}
	return line
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Writer exposes the output stream for table rendering.
func (c *Console) Writer() io.Writer {
	return c.out
}
