// Package console implements the interactive text interface: a numbered
// main menu reading answers line by line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

// ErrInputClosed is returned once the input has no more lines.
var ErrInputClosed = errors.New("console: input closed")

// Prompter asks questions on out and reads one answer line from in.
// Share one Prompter per input stream; the scanner buffers ahead.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Out returns the output writer.
func (p *Prompter) Out() io.Writer { return p.out }

// Printf writes formatted text to the output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Ask prints prompt and returns the trimmed answer.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskInt asks for a whole number.
func (p *Prompter) AskInt(prompt string) (int, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, &InputError{Input: answer, Want: "a whole number"}
	}
	return n, nil
}

// AskFloat asks for a decimal number. A decimal comma is accepted.
func (p *Prompter) AskFloat(prompt string) (float64, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.Replace(answer, ",", ".", 1), 64)
	if err != nil {
		return 0, &InputError{Input: answer, Want: "a number"}
	}
	return f, nil
}

// AskDate asks for a YYYY-MM-DD date. An empty answer yields the zero time.
func (p *Prompter) AskDate(prompt string) (time.Time, error) {
	answer, err := p.Ask(prompt)
	if err != nil || answer == "" {
		return time.Time{}, err
	}
	d, err := timeutil.ParseDate(answer)
	if err != nil {
		return time.Time{}, &InputError{Input: answer, Want: "a date in the form YYYY-MM-DD"}
	}
	return d, nil
}

// Confirm asks a yes/no question. Only "y" and "yes" count as yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.Ask(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// InputError reports an answer that could not be parsed.
type InputError struct {
	Input string
	Want  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: expected %s", e.Input, e.Want)
}
