// Package console drives the interactive admin and kiosk sessions over line-based I/O.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads one answer per line and writes prompts without a trailing newline
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// ask shows prompt and returns the next input line. ok is false at end of input.
func (p *prompter) ask(prompt string) (line string, ok bool) {
	p.printf("%s", prompt)
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// askFields reads a line and splits it into exactly n whitespace-separated fields
func (p *prompter) askFields(prompt string, n int) ([]string, bool, error) {
	line, ok := p.ask(prompt)
	if !ok {
		return nil, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, true, fmt.Errorf("expected %d values, got %d", n, len(fields))
	}
	return fields, true, nil
}

// askInt reads a single integer
func (p *prompter) askInt(prompt string) (int, bool, error) {
	line, ok := p.ask(prompt)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, true, fmt.Errorf("not a number: %q", line)
	}
	return n, true, nil
}

// err reports the scanner's read error, if any
func (p *prompter) err() error {
	return p.in.Err()
}

func atoi2(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("not a number: %q", a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("not a number: %q", b)
	}
	return x, y, nil
}
