// acb.go extracts quotes from ACB (Asia Commercial Bank) emails. ACB mails
// a Spot section followed by a Forward section whose Bid/Ask blocks carry
// one whole quote per line, with the spot rate present only on the first
// line of each block.

package banks

import (
	"regexp"
	"strconv"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(acb{})
}

type acb struct{}

func (acb) Code() string { return "ACB" }

// acbRowRe spans one forward quote: trading date, value date, optional
// 5-digit spot, tenor with an empty "( )" marker, signed gap percent, and
// the forward rate with optional thousands commas.
var acbRowRe = regexp.MustCompile(`(?i)\s*(` + fxquote.DateDMY + `)\s+(` + fxquote.DateDMY + `)\s+(?:(\d{5})\s+)?(\d+)\s*([DMWY])?\s*\(\s*\)\s+(-?\d+(?:\.\d+)?)%\s+([\d,]+)\s*`)

var fiveDigitRe = regexp.MustCompile(`\b\d{5}\b`)

func (b acb) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	return b.parseForwards(text), b.parseSpot(text), b.centralStub(text)
}

func (b acb) parseForwards(text string) fxquote.ForwardTable {
	tail := fxquote.ForwardTail(text)
	if tail == "" {
		return nil
	}
	bidText, askText, ok := fxquote.SplitSides(tail)
	if !ok {
		return nil
	}

	var rows fxquote.ForwardTable
	rows = append(rows, b.parseSide(bidText, fxquote.Bid)...)
	rows = append(rows, b.parseSide(askText, fxquote.Ask)...)
	return fxquote.SortForward(rows)
}

func (b acb) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	var rows fxquote.ForwardTable
	var carriedSpot *int

	for _, idx := range acbRowRe.FindAllStringSubmatchIndex(text, -1) {
		group := func(n int) string {
			if idx[2*n] < 0 {
				return ""
			}
			return text[idx[2*n]:idx[2*n+1]]
		}

		trd := fxquote.ParseDateDMY(group(1))
		val := fxquote.ParseDateDMY(group(2))
		if trd.IsZero() || val.IsZero() {
			continue
		}

		if s := group(3); s != "" {
			carriedSpot = fxquote.ParseRate(s)
		}
		if carriedSpot == nil {
			// Backfill from the last 5-digit token before this row; ACB
			// sometimes prints the spot on its own line above the table.
			if prev := fiveDigitRe.FindAllString(text[:idx[0]], -1); len(prev) > 0 {
				carriedSpot = fxquote.ParseRate(prev[len(prev)-1])
			}
		}

		gap, err := strconv.ParseFloat(group(6), 64)
		if err != nil {
			continue
		}
		fwd := fxquote.ParseRate(group(7))
		if fwd == nil {
			continue
		}

		if val.Before(trd) {
			trd, val = val, trd
		}

		rows = append(rows, fxquote.ForwardQuote{
			Side:        side,
			Bank:        b.Code(),
			QuotingDate: trd,
			TradingDate: trd,
			ValueDate:   val,
			Spot:        carriedSpot,
			GapPct:      fxquote.FloatPtr(gap),
			Forward:     fwd,
			TermDays:    fxquote.DaysBetween(trd, val),
			TermMonths:  fxquote.TermMonths(trd, val),
		})
	}
	return rows
}

// parseSpot reads the first two distinct 5-digit tokens in the spot section
// as the Bid and Ask Friday closings. ACB does not quote the week's low or
// high, so those stay nil.
func (b acb) parseSpot(text string) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}

	var tokens []string
	seen := map[string]bool{}
	for _, tok := range fiveDigitRe.FindAllString(section, -1) {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	var bidClose, askClose *int
	switch {
	case len(tokens) >= 2:
		bidClose = fxquote.ParseRate(tokens[0])
		askClose = fxquote.ParseRate(tokens[1])
	case len(tokens) == 1:
		bidClose = fxquote.ParseRate(tokens[0])
		askClose = fxquote.ParseRate(tokens[0])
	}

	quoting := fxquote.FirstDate(text)
	return fxquote.SpotTable{
		{No: 1, Side: fxquote.Bid, Bank: b.Code(), QuotingDate: quoting, FridayClose: bidClose},
		{No: 2, Side: fxquote.Ask, Bank: b.Code(), QuotingDate: quoting, FridayClose: askClose},
	}
}

func (b acb) centralStub(text string) fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fxquote.FirstDate(text)},
	}
}
