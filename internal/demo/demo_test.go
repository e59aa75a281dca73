package demo

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewRunner(&buf, quietLogger()).Run())

	want := strings.Join([]string{
		"Customer = John Bowman",
		"Bank = California Savings",
		"Account = 5391 0375 9387 5309",
		"Limit = 2500",
		"Balance = 136",
		"New balance = 36",
		"",
		"Customer = John Bowman",
		"Bank = California Federal",
		"Account = 3485 0399 3395 1954",
		"Limit = 3500",
		"Balance = 272",
		"New balance = 172",
		"New balance = 72",
		"",
		"Customer = John Bowman",
		"Bank = California Finance",
		"Account = 5391 0375 9387 5309",
		"Limit = 5000",
		"Balance = 408",
		"New balance = 308",
		"New balance = 208",
		"New balance = 108",
		"New balance = 8",
		"",
		"",
		"Default progression:",
		"0 1 2 3 4 5 6 7 8 9",
		"Arithmetic progression with increment 5:",
		"0 5 10 15 20 25 30 35 40 45",
		"Arithmetic progression with increment 5 and start 2:",
		"2 7 12 17 22 27 32 37 42 47",
		"Geometric progression with default base:",
		"1 2 4 8 16 32 64 128 256 512",
		"Geometric progression with base 3:",
		"1 3 9 27 81 243 729 2187 6561 19683",
		"Fibonacci progression with default start values:",
		"0 1 1 2 3 5 8 13 21 34",
		"Fibonacci progression with start values 4 and 6:",
		"4 6 10 16 26 42 68 110 178 288",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRunIsRepeatable(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	require.NoError(t, NewRunner(&first, quietLogger()).Run())
	require.NoError(t, NewRunner(&second, quietLogger()).Run())
	assert.Equal(t, first.String(), second.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestRunReportsSinkFailure(t *testing.T) {
	t.Parallel()

	err := NewRunner(failingWriter{}, quietLogger()).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink closed")
}

func TestAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2500", amount(2500))
	assert.Equal(t, "8", amount(8))
	assert.Equal(t, "-50.5", amount(-50.5))
}
