package oddsmath

import (
	"fmt"
	"math"
)

// ImpliedProbability converts American odds to the win probability the
// price encodes, as a fraction in (0, 1)
// +150 → 0.40
// -150 → 0.60
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}

	if american > 0 {
		// Positive odds: 100 / (price + 100)
		return 100.0 / (float64(american) + 100.0), nil
	}

	// Negative odds: |price| / (|price| + 100)
	abs := float64(-american)
	return abs / (abs + 100.0), nil
}

// AmericanToDecimal converts American odds to decimal odds
// American +150 → Decimal 2.50
// American -150 → Decimal 1.67
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, fmt.Errorf("invalid American odds: cannot be 0")
	}

	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}

	return (100.0 / float64(-american)) + 1.0, nil
}

// DecimalToAmerican converts decimal odds to American odds
// Decimal 2.50 → American +150
// Decimal 1.67 → American -150
func DecimalToAmerican(decimal float64) (int, error) {
	if decimal <= 1.0 {
		return 0, fmt.Errorf("invalid decimal odds: must be > 1.0")
	}

	if decimal >= 2.0 {
		return int(math.Round((decimal - 1.0) * 100.0)), nil
	}

	return int(math.Round(-100.0 / (decimal - 1.0))), nil
}

// Payout returns the total return (stake included) of a winning bet
// placed at the given American odds
func Payout(stake float64, american int) (float64, error) {
	decimal, err := AmericanToDecimal(american)
	if err != nil {
		return 0, err
	}

	return stake * decimal, nil
}
