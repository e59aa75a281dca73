// Package demo runs the fixed wallet-and-progressions demonstration sequence.
package demo

import (
	"fmt"
	"io"
	"strconv"

	"github.com/abelyaev/cardsim/internal/card"
	"github.com/abelyaev/cardsim/internal/progression"
	"github.com/sirupsen/logrus"
)

const termCount = 10

// Runner executes the demonstration and writes its report to out. Progress is
// logged separately so the report stays clean.
type Runner struct {
	out io.Writer
	log *logrus.Logger
}

// NewRunner initializes a new runner.
func NewRunner(out io.Writer, log *logrus.Logger) *Runner {
	return &Runner{out: out, log: log}
}

// Run charges and pays down a wallet of three cards, then prints ten terms of
// each progression variant. It returns an error only if the output sink fails.
func (r *Runner) Run() error {
	w := &sinkWriter{out: r.out}

	wallet := []card.Card{
		card.New("John Bowman", "California Savings", "5391 0375 9387 5309", 2500),
		card.New("John Bowman", "California Federal", "3485 0399 3395 1954", 3500),
		card.New("John Bowman", "California Finance", "5391 0375 9387 5309", 5000),
	}

	for val := 1; val <= 16; val++ {
		for i, c := range wallet {
			price := float64((i + 1) * val)
			if !c.Charge(price) {
				r.log.WithFields(logrus.Fields{
					"account": card.MaskNumber(c.Account()),
					"price":   price,
				}).Debug("charge denied")
			}
		}
	}

	for _, c := range wallet {
		r.log.WithFields(logrus.Fields{
			"account": card.MaskNumber(c.Account()),
			"balance": c.Balance(),
		}).Info("card charged")

		w.printf("Customer = %s\n", c.Customer())
		w.printf("Bank = %s\n", c.Bank())
		w.printf("Account = %s\n", c.Account())
		w.printf("Limit = %s\n", amount(c.Limit()))
		w.printf("Balance = %s\n", amount(c.Balance()))
		for c.Balance() > 100 {
			c.MakePayment(100)
			w.printf("New balance = %s\n", amount(c.Balance()))
		}
		w.printf("\n")
	}
	w.printf("\n")

	sections := []struct {
		label string
		prog  *progression.Progression
	}{
		{"Default progression:", progression.New(0)},
		{"Arithmetic progression with increment 5:", progression.NewArithmetic(5, 0)},
		{"Arithmetic progression with increment 5 and start 2:", progression.NewArithmetic(5, 2)},
		{"Geometric progression with default base:", progression.NewGeometric(2, 1)},
		{"Geometric progression with base 3:", progression.NewGeometric(3, 1)},
		{"Fibonacci progression with default start values:", progression.NewFibonacci(0, 1)},
		{"Fibonacci progression with start values 4 and 6:", progression.NewFibonacci(4, 6)},
	}
	for _, s := range sections {
		terms, err := s.prog.Emit(termCount)
		if err != nil {
			return fmt.Errorf("emit %q: %w", s.label, err)
		}
		w.printf("%s\n%s\n", s.label, terms)
	}

	if w.err != nil {
		return w.err
	}
	r.log.Info("demo finished")
	return nil
}

// amount renders a monetary value without trailing zeros, so integral
// balances print the way the report expects.
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sinkWriter keeps the first write error and drops writes after it.
type sinkWriter struct {
	out io.Writer
	err error
}

func (w *sinkWriter) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.out, format, args...); err != nil {
		w.err = fmt.Errorf("write demo output: %w", err)
	}
}
