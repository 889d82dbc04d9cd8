package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalculator(t *testing.T) {
	t.Run("Valid Rate", func(t *testing.T) {
		c, err := NewCalculator(decimal.NewFromFloat(0.07))
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("Zero Rate", func(t *testing.T) {
		_, err := NewCalculator(decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("Rate Of One", func(t *testing.T) {
		_, err := NewCalculator(decimal.NewFromInt(1))
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("Negative Rate", func(t *testing.T) {
		_, err := NewCalculator(decimal.NewFromFloat(-0.05))
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestSplit(t *testing.T) {
	c, err := NewCalculator(decimal.NewFromFloat(0.07))
	require.NoError(t, err)

	t.Run("Documented Example", func(t *testing.T) {
		// Booking total 100,000 minor units at 7%.
		split, err := c.Split(100_000)
		require.NoError(t, err)
		assert.Equal(t, int64(7_000), split.PlatformCommission)
		assert.Equal(t, int64(93_000), split.RealtorEarnings)
	})

	t.Run("Rounds Half Up", func(t *testing.T) {
		// 50 * 0.07 = 3.5 -> commission 4.
		split, err := c.Split(50)
		require.NoError(t, err)
		assert.Equal(t, int64(4), split.PlatformCommission)
		assert.Equal(t, int64(46), split.RealtorEarnings)
	})

	t.Run("Zero Amount", func(t *testing.T) {
		split, err := c.Split(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), split.PlatformCommission)
		assert.Equal(t, int64(0), split.RealtorEarnings)
	})

	t.Run("Negative Amount", func(t *testing.T) {
		_, err := c.Split(-1)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("Sum Is Always Exact", func(t *testing.T) {
		rates := []string{"0.07", "0.05", "0.033", "0.125", "0.999"}
		amounts := []int64{1, 7, 13, 99, 100, 101, 9_999, 100_000, 123_456_789}
		for _, rs := range rates {
			rate, err := ParseRate(rs)
			require.NoError(t, err)
			calc, err := NewCalculator(rate)
			require.NoError(t, err)
			for _, amount := range amounts {
				split, err := calc.Split(amount)
				require.NoError(t, err)
				assert.Equal(t, amount, split.PlatformCommission+split.RealtorEarnings,
					"rate %s amount %d", rs, amount)
				assert.GreaterOrEqual(t, split.PlatformCommission, int64(0))
				assert.GreaterOrEqual(t, split.RealtorEarnings, int64(0))
			}
		}
	})
}

func TestParseRate(t *testing.T) {
	rate, err := ParseRate("0.07")
	assert.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromFloat(0.07)))

	_, err = ParseRate("seven percent")
	assert.Error(t, err)
}
