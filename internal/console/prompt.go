package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned by every prompt once the input reaches EOF.
var ErrInputClosed = errors.New("input closed")

// Bounds limits an integer prompt. Nil ends are open.
type Bounds struct {
	Min *int
	Max *int
}

// AtLeast returns Bounds with only a lower limit.
func AtLeast(n int) Bounds {
	return Bounds{Min: &n}
}

func (b Bounds) contains(v int) bool {
	return (b.Min == nil || v >= *b.Min) && (b.Max == nil || v <= *b.Max)
}

func (b Bounds) message() string {
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("Value must be between %d and %d.", *b.Min, *b.Max)
	case b.Min != nil:
		return fmt.Sprintf("Value must be at least %d.", *b.Min)
	default:
		return fmt.Sprintf("Value must be at most %d.", *b.Max)
	}
}

// Prompter reads line-oriented answers from an input stream, re-prompting on
// invalid answers.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter that writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Line prints prompt and returns the next line with surrounding space removed.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// NonEmpty repeats prompt until a non-blank line is entered.
func (p *Prompter) NonEmpty(prompt string) (string, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, "Input cannot be empty.")
	}
}

// Int repeats prompt until an integer inside bounds is entered.
func (p *Prompter) Int(prompt string, bounds Bounds) (int, error) {
	for {
		s, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if !bounds.contains(v) {
			fmt.Fprintln(p.out, bounds.message())
			continue
		}
		return v, nil
	}
}

// OptionalString returns nil for a blank answer, meaning "keep current value".
func (p *Prompter) OptionalString(prompt string) (*string, error) {
	s, err := p.Line(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

// OptionalInt returns nil unless the answer is made only of digits, so blank,
// negative and malformed answers all keep the current value.
func (p *Prompter) OptionalInt(prompt string) (*int, error) {
	s, err := p.Line(prompt)
	if err != nil || !isDigits(s) {
		return nil, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Digits only, so the value overflowed int.
		return nil, nil
	}
	return &v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
