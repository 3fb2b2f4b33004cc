package tilelight

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt asks the operator for scalar inputs, one line per answer.
type Prompt struct {
	in       *bufio.Scanner
	out      io.Writer
	Attempts int
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewScanner(in), out: out, Attempts: PromptAttempts}
}

func (p *Prompt) ask(question string, parse func(string) error) error {
	for i := 0; i < p.Attempts; i++ {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return err
			}
			return fmt.Errorf("%w: input closed", ErrNoInput)
		}
		err := parse(strings.TrimSpace(p.in.Text()))
		if err == nil {
			return nil
		}
		fmt.Fprintf(p.out, "Invalid value: %v\n", err)
	}
	return fmt.Errorf("%w: %d attempts", ErrNoInput, p.Attempts)
}

// Int asks until it reads an integer >= min.
func (p *Prompt) Int(question string, min int) (int, error) {
	var v int
	err := p.ask(question, func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if n < min {
			return fmt.Errorf("must be at least %d", min)
		}
		v = n
		return nil
	})
	return v, err
}

// Float asks until it reads a finite number >= min.
func (p *Prompt) Float(question string, min Real) (Real, error) {
	var v Real
	err := p.ask(question, func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if !isFinite(f) || f < min {
			return fmt.Errorf("must be a finite number >= %g", min)
		}
		v = f
		return nil
	})
	return v, err
}
