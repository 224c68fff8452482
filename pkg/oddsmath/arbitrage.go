package oddsmath

// MoneylineQuote is the best available price on one side of a two-outcome
// market, together with the book offering it
type MoneylineQuote struct {
	Book  string
	Price int // American odds; 0 means no quote available
}

// Arbitrage is a sized two-way arbitrage opportunity. Stakes are split so
// each side's payout-if-win equals the same guaranteed total.
type Arbitrage struct {
	Away MoneylineQuote
	Home MoneylineQuote

	// CombinedImplied is the sum of both sides' implied probabilities,
	// as a fraction. An opportunity only exists below 1.0.
	CombinedImplied float64

	Bankroll  float64
	StakeAway float64
	StakeHome float64

	// GuaranteedProfit is the profit locked in regardless of outcome,
	// in bankroll units
	GuaranteedProfit float64
	ProfitPercent    float64
}

// FindArbitrage checks whether the two best moneyline prices form a
// guaranteed-profit opportunity and sizes the stakes across the bankroll.
//
// Returns nil when no opportunity exists: a side without a valid price,
// both prices from the same book, or combined implied probability >= 100%.
// None of those are errors, the game is simply not an arb.
//
// Stake split: stake_side = bankroll × implied_side / combined. Each side's
// payout-if-win is then stake_side / implied_side = bankroll / combined,
// identical for both sides, so profit = bankroll/combined − bankroll.
func FindArbitrage(away, home MoneylineQuote, bankroll float64) *Arbitrage {
	if bankroll <= 0 {
		return nil
	}

	if away.Book == home.Book {
		// A single book pricing both sides below 100% is a pricing
		// error we don't trade on; distinct books are required.
		return nil
	}

	pAway, err := ImpliedProbability(away.Price)
	if err != nil {
		return nil
	}

	pHome, err := ImpliedProbability(home.Price)
	if err != nil {
		return nil
	}

	combined := pAway + pHome
	if combined >= 1.0 {
		// Market is round or book-favored
		return nil
	}

	stakeAway := bankroll * (pAway / combined)
	stakeHome := bankroll * (pHome / combined)

	profit := bankroll/combined - bankroll

	return &Arbitrage{
		Away:             away,
		Home:             home,
		CombinedImplied:  combined,
		Bankroll:         bankroll,
		StakeAway:        stakeAway,
		StakeHome:        stakeHome,
		GuaranteedProfit: profit,
		ProfitPercent:    profit / bankroll * 100.0,
	}
}
