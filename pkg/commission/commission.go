package commission

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultRate is the platform commission rate applied when no rate is
// configured.
var DefaultRate = decimal.NewFromFloat(0.07)

// ErrInvalidAmount is returned when a booking amount is negative.
var ErrInvalidAmount = errors.New("booking amount must be non-negative")

// ErrInvalidRate is returned when the commission rate is outside (0, 1).
var ErrInvalidRate = errors.New("commission rate must be between 0 and 1 exclusive")

// Split is the platform/realtor division of a booking's total amount,
// in currency minor units.
type Split struct {
	PlatformCommission int64
	RealtorEarnings    int64
}

// Calculator computes commission splits at a fixed configured rate.
type Calculator struct {
	rate decimal.Decimal
}

// NewCalculator validates the rate and returns a Calculator.
func NewCalculator(rate decimal.Decimal) (*Calculator, error) {
	if rate.LessThanOrEqual(decimal.Zero) || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidRate, rate)
	}
	return &Calculator{rate: rate}, nil
}

// Rate returns the configured commission rate.
func (c *Calculator) Rate() decimal.Decimal {
	return c.rate
}

// Split divides totalAmount (minor units) into platform commission and
// realtor earnings. The commission is rounded half-up to the nearest minor
// unit; the earnings are the exact remainder, so the two always sum back to
// totalAmount.
func (c *Calculator) Split(totalAmount int64) (Split, error) {
	if totalAmount < 0 {
		return Split{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, totalAmount)
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts permitted here.
	platform := decimal.NewFromInt(totalAmount).Mul(c.rate).Round(0).IntPart()

	return Split{
		PlatformCommission: platform,
		RealtorEarnings:    totalAmount - platform,
	}, nil
}

// ParseRate parses a configured rate string such as "0.07".
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse commission rate %q: %w", s, err)
	}
	return rate, nil
}
