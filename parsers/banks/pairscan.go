// pairscan.go holds the shared scan for banks whose forward tables carry
// no per-row dates or spot rates at all: just forward rates in (bid, ask)
// pairs against the standard tenor ladder. The pairing is an unverified
// token-order heuristic; if one of these banks reshuffles its layout the
// values land on the wrong tenor silently.

package banks

import (
	"time"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

// tenor is one rung of the standard quote ladder.
type tenor struct {
	label  string
	months int
}

var standardTenors = []tenor{
	{"1M", 1}, {"3M", 3}, {"6M", 6}, {"9M", 9}, {"12M", 12},
}

// pairScanForwards pairs rate tokens (bid, ask, bid, ask, ...) against the
// standard tenors. dates supplies a per-tenor trading date when the email
// prints one; otherwise the bank's fallback quoting date is used. The
// emitted rows have no spot, gap or value date; those columns stay empty
// in the workbook and the derived formulas fall back to zero.
func pairScanForwards(bank string, tokens []string, dates []time.Time, fallback time.Time) fxquote.ForwardTable {
	var rows fxquote.ForwardTable
	idx := 0
	for i, tn := range standardTenors {
		if idx+1 >= len(tokens) {
			break
		}
		bidRate := fxquote.ParseRate(tokens[idx])
		askRate := fxquote.ParseRate(tokens[idx+1])
		idx += 2
		if bidRate == nil || askRate == nil {
			continue
		}

		trd := fallback
		if i < len(dates) && !dates[i].IsZero() {
			trd = dates[i]
		}

		for _, q := range []struct {
			side fxquote.Side
			rate *int
		}{{fxquote.Bid, bidRate}, {fxquote.Ask, askRate}} {
			rows = append(rows, fxquote.ForwardQuote{
				No:          len(rows) + 1,
				Side:        q.side,
				Bank:        bank,
				QuotingDate: trd,
				TradingDate: trd,
				Forward:     q.rate,
				TermDays:    tn.months * 30,
				TermMonths:  tn.months,
			})
		}
	}
	return rows
}

// spotTriples splits the first six rate tokens into a Bid triple then an
// Ask triple (low, high, close). Returns nil when fewer than six tokens
// were found.
func spotTriples(bank string, tokens []string, quoting time.Time) fxquote.SpotTable {
	if len(tokens) < 6 {
		return nil
	}
	var rows fxquote.SpotTable
	for i, side := range []fxquote.Side{fxquote.Bid, fxquote.Ask} {
		triple := tokens[i*3 : i*3+3]
		rows = append(rows, fxquote.SpotQuote{
			No:          i + 1,
			Side:        side,
			Bank:        bank,
			QuotingDate: quoting,
			WeekLow:     fxquote.ParseRate(triple[0]),
			WeekHigh:    fxquote.ParseRate(triple[1]),
			FridayClose: fxquote.ParseRate(triple[2]),
		})
	}
	return rows
}
