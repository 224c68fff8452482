// Package lines flattens a game's bookmaker quotes into the per-side rows
// the odds views render: one moneyline price, spread point+price, and total
// point+price per team or Over/Under side. It replaces the formatting logic
// the page variants each reimplemented on their own.
package lines

import (
	"math"

	"github.com/mina-p1/Open-Bet/pkg/models"
)

// Market keys as The Odds API names them
const (
	MarketMoneyline = "h2h"
	MarketSpreads   = "spreads"
	MarketTotals    = "totals"
)

// Totals side labels
const (
	SideOver  = "Over"
	SideUnder = "Under"
)

// GoodValueThreshold is the minimum model-vs-market price differential for
// a moneyline to be flagged as good value
const GoodValueThreshold = 1.0

// Selection is one priced side pulled out of a market, with the book it
// came from. The zero Selection means no quote (rendered as "-").
type Selection struct {
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
	Book  string   `json:"book,omitempty"`
}

// Valid reports whether the selection carries a real quote. A price of 0
// is absent data, never a real price.
func (s Selection) Valid() bool {
	return s.Price != 0
}

// GameLines is the flat per-side view of one game. Keys are team names for
// Moneyline and Spread, "Over"/"Under" for Total. A missing key means the
// market had no quote for that side; callers render the absent sentinel.
type GameLines struct {
	Moneyline map[string]Selection `json:"moneyline"`
	Spread    map[string]Selection `json:"spread"`
	Total     map[string]Selection `json:"total"`
}

// ExtractBookLines flattens a single bookmaker's markets. A book that
// lacks a market contributes nothing for it; that is not an error, the
// row simply renders absent values.
func ExtractBookLines(g models.Game, bookKey string) GameLines {
	out := newGameLines()

	for _, book := range g.Bookmakers {
		if book.Key != bookKey && book.Title != bookKey {
			continue
		}
		for _, market := range book.Markets {
			dest := out.marketMap(market.Key)
			if dest == nil {
				continue
			}
			for _, o := range market.Outcomes {
				if o.Price == 0 {
					continue
				}
				dest[o.Name] = Selection{Price: o.Price, Point: o.Point, Book: book.Title}
			}
		}
		break
	}

	return out
}

// ExtractBestLines scans every bookmaker and keeps, per side and market,
// the quote a bettor would prefer:
//   - moneyline: highest price
//   - spread: higher signed point (−2.5 beats −3.5, +3.5 beats +2.5);
//     equal points break on price
//   - total: Over prefers the lower threshold, Under the higher; equal
//     points break on price
func ExtractBestLines(g models.Game) GameLines {
	out := newGameLines()

	for _, book := range g.Bookmakers {
		for _, market := range book.Markets {
			dest := out.marketMap(market.Key)
			if dest == nil {
				continue
			}
			for _, o := range market.Outcomes {
				if o.Price == 0 {
					continue
				}
				cand := Selection{Price: o.Price, Point: o.Point, Book: book.Title}
				cur, ok := dest[o.Name]
				if !ok || better(market.Key, o.Name, cand, cur) {
					dest[o.Name] = cand
				}
			}
		}
	}

	return out
}

// better reports whether cand beats cur for the given market and side
func better(marketKey, side string, cand, cur Selection) bool {
	switch marketKey {
	case MarketSpreads:
		return betterByPoint(cand, cur, false)
	case MarketTotals:
		// Over wants the bar low, Under wants it high
		return betterByPoint(cand, cur, side == SideOver)
	default:
		return cand.Price > cur.Price
	}
}

func betterByPoint(cand, cur Selection, lowerIsBetter bool) bool {
	if cand.Point == nil || cur.Point == nil {
		// A quote without a point is unusable for points markets;
		// prefer whichever side has one
		return cand.Point != nil
	}

	if *cand.Point != *cur.Point {
		if lowerIsBetter {
			return *cand.Point < *cur.Point
		}
		return *cand.Point > *cur.Point
	}

	return cand.Price > cur.Price
}

// MoneylineValue is the model-vs-market differential for a best price
type MoneylineValue struct {
	Diff float64 `json:"value"`
	Good bool    `json:"good_value"`
}

// ValueAgainstModel compares the best available moneyline price to the
// model's projected price. The differential is absolute: a mispricing in
// either direction is interesting.
func ValueAgainstModel(modelPrice float64, best Selection) *MoneylineValue {
	if !best.Valid() {
		return nil
	}

	diff := math.Abs(modelPrice - float64(best.Price))
	return &MoneylineValue{Diff: diff, Good: diff >= GoodValueThreshold}
}

func newGameLines() GameLines {
	return GameLines{
		Moneyline: make(map[string]Selection),
		Spread:    make(map[string]Selection),
		Total:     make(map[string]Selection),
	}
}

func (gl GameLines) marketMap(key string) map[string]Selection {
	switch key {
	case MarketMoneyline:
		return gl.Moneyline
	case MarketSpreads:
		return gl.Spread
	case MarketTotals:
		return gl.Total
	default:
		return nil
	}
}
