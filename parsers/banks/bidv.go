// bidv.go extracts quotes from BIDV emails. BIDV quotes American-style
// mm/dd/yyyy dates and decimal-tail rates ("26,284.00"), flattens forward
// rows to one token per line with the spot only on the first row, and
// lists its spot table as interleaved pairs: low bid/ask, high bid/ask,
// close bid/ask.

package banks

import (
	"regexp"
	"strconv"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(bidv{})
}

type bidv struct{}

func (bidv) Code() string { return "BIDV" }

const dateMDY = `(?:0[1-9]|1[0-2])/(?:0[1-9]|[12]\d|3[01])/(?:19|20)\d\d`

var (
	bidvDateLineRe = regexp.MustCompile(`^` + dateMDY)
	bidvSpotRe     = regexp.MustCompile(`^\d{2},\d{3}\.\d{2}`)
	bidvTermRe     = regexp.MustCompile(`^(\d+)\s*([DMWY])`)
	bidvGapRe      = regexp.MustCompile(`^-?\d+\.\d+`)
	bidvFwdRe      = regexp.MustCompile(`^\d{2},\d{3}`)

	bidvSpotTokenRe = regexp.MustCompile(`\b\d{2},\d{3}\.\d{2}\b`)
)

func (b bidv) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	return b.parseForwards(text), b.parseSpot(text), b.centralStub(text)
}

func (b bidv) parseForwards(text string) fxquote.ForwardTable {
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

// parseSide walks the vertical token stream: trading date, value date,
// optional spot, tenor, gap percent, forward rate. The spot carries
// forward from the last row that printed one.
func (b bidv) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	lines := fxquote.Lines(text)

	start := -1
	for i, ln := range lines {
		if bidvDateLineRe.MatchString(ln) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	lines = lines[start:]

	var rows fxquote.ForwardTable
	var carriedSpot *int

	i := 0
	for i < len(lines) {
		if !bidvDateLineRe.MatchString(lines[i]) {
			i++
			continue
		}
		if i+4 >= len(lines) {
			break
		}

		trdS := lines[i]
		valS := lines[i+1]

		termIdx, gapIdx, fwdIdx, next := i+2, i+3, i+4, i+5
		if bidvSpotRe.MatchString(lines[i+2]) {
			carriedSpot = fxquote.ParseRate(lines[i+2])
			termIdx, gapIdx, fwdIdx, next = i+3, i+4, i+5, i+6
		}
		if fwdIdx >= len(lines) {
			break
		}

		if !bidvTermRe.MatchString(lines[termIdx]) {
			i = next
			continue
		}
		if !bidvGapRe.MatchString(lines[gapIdx]) {
			i = next
			continue
		}
		gap, err := strconv.ParseFloat(bidvGapRe.FindString(lines[gapIdx]), 64)
		if err != nil {
			i = next
			continue
		}
		if !bidvFwdRe.MatchString(lines[fwdIdx]) {
			i = next
			continue
		}
		fwd := fxquote.ParseRate(lines[fwdIdx])
		if fwd == nil {
			i = next
			continue
		}

		trd := fxquote.ParseDateMDY(trdS)
		val := fxquote.ParseDateMDY(valS)
		if trd.IsZero() || val.IsZero() {
			i = next
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
		i = next
	}
	return rows
}

// parseSpot assigns the first six decimal-tail tokens positionally:
// low bid, low ask, high bid, high ask, close bid, close ask. This is an
// unverified positional heuristic; a layout change in BIDV's mail would
// misassign values silently.
func (b bidv) parseSpot(text string) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}

	tokens := bidvSpotTokenRe.FindAllString(section, -1)
	var lowBid, lowAsk, highBid, highAsk, closeBid, closeAsk *int
	if len(tokens) >= 6 {
		lowBid = fxquote.ParseRate(tokens[0])
		lowAsk = fxquote.ParseRate(tokens[1])
		highBid = fxquote.ParseRate(tokens[2])
		highAsk = fxquote.ParseRate(tokens[3])
		closeBid = fxquote.ParseRate(tokens[4])
		closeAsk = fxquote.ParseRate(tokens[5])
	}

	quoting := fxquote.FirstDateMDY(text)
	return fxquote.SpotTable{
		{No: 1, Side: fxquote.Bid, Bank: b.Code(), QuotingDate: quoting,
			WeekLow: lowBid, WeekHigh: highBid, FridayClose: closeBid},
		{No: 2, Side: fxquote.Ask, Bank: b.Code(), QuotingDate: quoting,
			WeekLow: lowAsk, WeekHigh: highAsk, FridayClose: closeAsk},
	}
}

func (b bidv) centralStub(text string) fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fxquote.FirstDateMDY(text)},
	}
}
