// Package prompt reads operator answers line by line from a console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"earmouse-tools/internal/domain"
)

// InvalidInputMessage is printed before re-asking a numeric question.
const InvalidInputMessage = "Invalid input, try again..."

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Say prints a line of text.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Line prints question and returns the answer without its line ending.
// A final line without a newline is still returned; end of input with
// nothing read is an ErrInputClosed domain error.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	s, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if s == "" {
			return "", domain.NewInputClosedError()
		}
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// Int asks until the answer parses as an integer.
func (p *Prompter) Int(question string) (int, error) {
	for {
		answer, err := p.Line(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return n, nil
		}
		p.Say(InvalidInputMessage)
	}
}

// IntWithDefault is like Int but an empty answer yields def.
func (p *Prompter) IntWithDefault(question string, def int) (int, error) {
	for {
		answer, err := p.Line(question)
		if err != nil {
			return 0, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return def, nil
		}
		n, err := strconv.Atoi(answer)
		if err == nil {
			return n, nil
		}
		p.Say(InvalidInputMessage)
	}
}

// ParseIntList parses comma-separated integers such as "0, 4,7".
func ParseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, domain.NewError(domain.ErrInvalidInput, fmt.Sprintf("%q is not an integer", part), err)
		}
		values = append(values, n)
	}
	return values, nil
}
