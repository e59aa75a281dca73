package card

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// MintNumber generates a card number with the specified prefix and length.
// The last digit is a Luhn check digit, so minted numbers satisfy ValidNumber.
func MintNumber(prefix string, length int) (string, error) {
	if length <= len(prefix) || length > 19 {
		return "", fmt.Errorf("invalid card number length: %d", length)
	}

	// Generate random digits, leaving room for the check digit
	digits := make([]byte, length-len(prefix)-1)
	_, err := rand.Read(digits)
	if err != nil {
		return "", fmt.Errorf("failed to generate random digits: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(prefix)
	for _, b := range digits {
		builder.WriteByte(b%10 + '0')
	}
	partial := builder.String()
	builder.WriteByte(luhnCheckDigit(partial) + '0')

	number := builder.String()
	if len(number) != length {
		return "", fmt.Errorf("generated card number has incorrect length: got %d, want %d", len(number), length)
	}
	return number, nil
}

// ValidNumber reports whether number passes the Luhn check. Spaces are
// ignored; any other non-digit fails the check.
func ValidNumber(number string) bool {
	digits, ok := stripSpaces(number)
	if !ok || len(digits) == 0 {
		return false
	}
	return luhnSum(digits)%10 == 0
}

// MaskNumber replaces all but the last four digits with asterisks, keeping
// spacing intact. Used for account fields in log output.
func MaskNumber(number string) string {
	digitCount := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digitCount++
		}
	}
	var builder strings.Builder
	seen := 0
	for _, r := range number {
		switch {
		case r < '0' || r > '9':
			builder.WriteRune(r)
		case seen >= digitCount-4:
			builder.WriteRune(r)
			seen++
		default:
			builder.WriteByte('*')
			seen++
		}
	}
	return builder.String()
}

// luhnCheckDigit returns the digit that makes partial+digit pass the Luhn
// check. partial must already be digits only.
func luhnCheckDigit(partial string) byte {
	sum := luhnSum(partial + "0")
	return byte((10 - sum%10) % 10)
}

// luhnSum doubles every second digit from the right, summing digit values.
func luhnSum(digits string) int {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum
}

func stripSpaces(number string) (string, bool) {
	var builder strings.Builder
	for _, r := range number {
		switch {
		case r == ' ':
		case r >= '0' && r <= '9':
			builder.WriteRune(r)
		default:
			return "", false
		}
	}
	return builder.String(), true
}
