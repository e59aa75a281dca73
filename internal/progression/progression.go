// Package progression provides lazy numeric sequence generators that advance
// one term per call. A progression is restartable only by constructing a new
// instance; once it reports exhaustion it stays exhausted.
package progression

import (
	"errors"
	"strconv"
	"strings"
)

// ErrExhausted is returned by Next once a progression has produced its final
// term. The condition is terminal.
var ErrExhausted = errors.New("progression exhausted")

// Stepper computes the successor of the current term. Returning ok=false
// designates the end of a finite progression; none of the built-in variants
// ever do.
type Stepper interface {
	Step(current int64) (next int64, ok bool)
}

// Progression produces the terms of a sequence defined by its Stepper.
type Progression struct {
	current   int64
	exhausted bool
	step      Stepper
}

// NewCustom creates a progression starting at start and advancing with step.
// The built-in constructors below are thin wrappers over it.
func NewCustom(start int64, step Stepper) *Progression {
	return &Progression{current: start, step: step}
}

// New creates the default progression: whole numbers start, start+1, ...
func New(start int64) *Progression {
	return NewCustom(start, unitStep{})
}

// NewArithmetic creates a progression adding a fixed increment to each term.
func NewArithmetic(increment, start int64) *Progression {
	return NewCustom(start, arithmeticStep{increment: increment})
}

// NewGeometric creates a progression multiplying each term by a fixed base.
func NewGeometric(base, start int64) *Progression {
	return NewCustom(start, geometricStep{base: base})
}

// NewFibonacci creates a generalized Fibonacci progression whose first two
// terms are first and second.
func NewFibonacci(first, second int64) *Progression {
	// Fictitious predecessor so the recurrence yields second next.
	return NewCustom(first, &fibonacciStep{prev: second - first})
}

// Next returns the next term of the progression, or ErrExhausted once the
// sequence has ended.
func (p *Progression) Next() (int64, error) {
	if p.exhausted {
		return 0, ErrExhausted
	}
	term := p.current
	next, ok := p.step.Step(p.current)
	if !ok {
		p.exhausted = true
	} else {
		p.current = next
	}
	return term, nil
}

// Emit produces the next n terms as a space-separated string. If the
// progression exhausts mid-run, the terms collected so far are returned
// together with ErrExhausted.
func (p *Progression) Emit(n int) (string, error) {
	terms := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, err := p.Next()
		if err != nil {
			return strings.Join(terms, " "), err
		}
		terms = append(terms, strconv.FormatInt(v, 10))
	}
	return strings.Join(terms, " "), nil
}

type unitStep struct{}

func (unitStep) Step(current int64) (int64, bool) { return current + 1, true }

type arithmeticStep struct {
	increment int64
}

func (s arithmeticStep) Step(current int64) (int64, bool) { return current + s.increment, true }

type geometricStep struct {
	base int64
}

func (s geometricStep) Step(current int64) (int64, bool) { return current * s.base, true }

type fibonacciStep struct {
	prev int64
}

func (s *fibonacciStep) Step(current int64) (int64, bool) {
	next := s.prev + current
	s.prev = current
	return next, true
}
