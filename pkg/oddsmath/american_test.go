package oddsmath_test

import (
	"math"
	"testing"

	"github.com/mina-p1/Open-Bet/pkg/oddsmath"
)

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Even odds +100", 100, 0.50},
		{"Even odds -100", -100, 0.50},
		{"Favorite -110", -110, 0.5238},
		{"Heavy favorite -200", -200, 0.6667},
		{"Underdog +150", 150, 0.40},
		{"Heavy underdog +300", 300, 0.25},
		{"Underdog +120", 120, 0.4545},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.ImpliedProbability(tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Allow small floating point differences
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("ImpliedProbability(%d) = %f, want %f", tt.american, got, tt.want)
			}
		})
	}
}

func TestImpliedProbabilitySymmetry(t *testing.T) {
	// +N and -N are the same price from opposite sides; their implied
	// probabilities must sum to 1
	for _, n := range []int{100, 110, 150, 200, 300, 450} {
		pPlus, err := oddsmath.ImpliedProbability(n)
		if err != nil {
			t.Fatalf("error for +%d: %v", n, err)
		}
		pMinus, err := oddsmath.ImpliedProbability(-n)
		if err != nil {
			t.Fatalf("error for -%d: %v", n, err)
		}

		if math.Abs(pPlus+pMinus-1.0) > 0.0001 {
			t.Errorf("implied(+%d) + implied(-%d) = %f, want 1.0", n, n, pPlus+pMinus)
		}
	}
}

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		american int
		want     float64
	}{
		{"Positive odds +100", 100, 2.0},
		{"Positive odds +150", 150, 2.5},
		{"Positive odds +200", 200, 3.0},
		{"Negative odds -110", -110, 1.909090909},
		{"Negative odds -150", -150, 1.666666667},
		{"Negative odds -200", -200, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.AmericanToDecimal(tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("AmericanToDecimal(%d) = %f, want %f", tt.american, got, tt.want)
			}
		})
	}
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name    string
		decimal float64
		want    int
	}{
		{"Even odds 2.0", 2.0, 100},
		{"Underdog 2.5", 2.5, 150},
		{"Underdog 3.0", 3.0, 200},
		{"Favorite 1.909", 1.909, -110},
		{"Favorite 1.667", 1.667, -150},
		{"Favorite 1.5", 1.5, -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.DecimalToAmerican(tt.decimal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Allow ±2 for rounding
			if math.Abs(float64(got-tt.want)) > 2 {
				t.Errorf("DecimalToAmerican(%f) = %d, want %d", tt.decimal, got, tt.want)
			}
		})
	}
}

func TestPayout(t *testing.T) {
	tests := []struct {
		name     string
		stake    float64
		american int
		want     float64
	}{
		{"$100 at +150", 100, 150, 250},
		{"$100 at -150", 100, -150, 166.667},
		{"$50 at +100", 50, 100, 100},
		{"$55 at -110", 55, -110, 105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oddsmath.Payout(tt.stake, tt.american)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Payout(%f, %d) = %f, want %f", tt.stake, tt.american, got, tt.want)
			}
		})
	}
}

func TestInvalidInputs(t *testing.T) {
	t.Run("ImpliedProbability zero", func(t *testing.T) {
		_, err := oddsmath.ImpliedProbability(0)
		if err == nil {
			t.Error("expected error for zero American odds")
		}
	})

	t.Run("AmericanToDecimal zero", func(t *testing.T) {
		_, err := oddsmath.AmericanToDecimal(0)
		if err == nil {
			t.Error("expected error for zero American odds")
		}
	})

	t.Run("DecimalToAmerican at or below 1.0", func(t *testing.T) {
		_, err := oddsmath.DecimalToAmerican(1.0)
		if err == nil {
			t.Error("expected error for decimal odds 1.0")
		}

		_, err = oddsmath.DecimalToAmerican(0.5)
		if err == nil {
			t.Error("expected error for decimal odds below 1.0")
		}
	})
}
