package models

import (
	"errors"
	"math"
)

// Money is held in integer cents everywhere inside the core; decimal amounts
// exist only at the HTTP boundary. ErrInvalidAmount covers zero, negative and
// non-finite amounts as well as fractions smaller than one cent.
var ErrInvalidAmount = errors.New("invalid amount")

// ToCents converts a decimal currency amount into cents.
func ToCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(amount * 100)
	if cents <= 0 || cents > math.MaxInt64 {
		return 0, ErrInvalidAmount
	}
	if math.Abs(amount*100-cents) > 1e-6 {
		return 0, ErrInvalidAmount
	}
	return int64(cents), nil
}

// FromCents converts cents back to a decimal amount for responses.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
