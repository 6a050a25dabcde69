// vcb.go extracts quotes from VCB (Vietcombank) emails. VCB flattens its
// forward table to one token per line, quotes rates with a dot thousands
// separator ("26.090"), and prints the spot only on the first row of each
// side; later rows reuse the last seen spot. VCB supplies no gap column,
// so a non-annualized estimate is derived from the forward/spot pair.

package banks

import (
	"math"
	"regexp"
	"time"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(vcb{})
}

type vcb struct{}

func (vcb) Code() string { return "VCB" }

var (
	vcbDateLineRe = regexp.MustCompile(`^` + fxquote.DateDMY)
	vcbRateRe     = regexp.MustCompile(`^\d{2}\.\d{3}\b`)
	vcbTermRe     = regexp.MustCompile(`^(\d+)\s*([DMWY])\s*\(\s*\)`)

	vcbLowLabelRe   = regexp.MustCompile(`(?i)Lowest\s+rate\s+of\s+the\s+pre(?:c|cc)eding\s+week`)
	vcbHighLabelRe  = regexp.MustCompile(`(?i)Highest\s+rate\s+of\s+the\s+pre(?:c|cc)eding\s+week`)
	vcbCloseLabelRe = regexp.MustCompile(`(?i)Closing\s+rate\s+of\s+Friday\s*\(last\s*week\)`)

	// 26.090 / 26,090 / 26090 all appear in VCB spot tables.
	vcbSpotTokenRe = regexp.MustCompile(`\b\d{2}[.,]?\d{3}\b`)
)

func (b vcb) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	forward := b.parseForwards(text)

	// Quoting date for the Spot and CentralBank rows follows the earliest
	// forward trading date; the first date in the email is the fallback.
	quoting := minTradingDate(forward)
	if quoting.IsZero() {
		quoting = fxquote.FirstDate(text)
	}

	spot := b.parseSpot(text, quoting)
	central := fxquote.CentralBankTable{{No: 1, Bank: b.Code(), QuotingDate: quoting}}
	return forward, spot, central
}

func minTradingDate(rows fxquote.ForwardTable) time.Time {
	var min time.Time
	for _, r := range rows {
		if min.IsZero() || r.TradingDate.Before(min) {
			min = r.TradingDate
		}
	}
	return min
}

func (b vcb) parseForwards(text string) fxquote.ForwardTable {
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
// optional spot, tenor marker, forward rate. The spot carries forward by
// explicit last-seen-value propagation, never by defaulting.
func (b vcb) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	lines := fxquote.Lines(text)

	start := -1
	for i, ln := range lines {
		if vcbDateLineRe.MatchString(ln) {
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
		if !vcbDateLineRe.MatchString(lines[i]) {
			i++
			continue
		}
		if i+2 >= len(lines) {
			break
		}

		trdS := lines[i]
		valS := lines[i+1]

		// The third token is either this row's spot or already the tenor.
		termIdx, fwdIdx, next := i+2, i+3, i+4
		if vcbRateRe.MatchString(lines[i+2]) {
			carriedSpot = fxquote.ParseRateDotted(lines[i+2])
			termIdx, fwdIdx, next = i+3, i+4, i+5
		}
		if fwdIdx >= len(lines) {
			break
		}

		if !vcbTermRe.MatchString(lines[termIdx]) {
			i = next
			continue
		}
		if !vcbRateRe.MatchString(lines[fwdIdx]) {
			i = next
			continue
		}
		fwd := fxquote.ParseRateDotted(lines[fwdIdx])
		if fwd == nil {
			i = next
			continue
		}

		trd := fxquote.ParseDateDMY(trdS)
		val := fxquote.ParseDateDMY(valS)
		if trd.IsZero() || val.IsZero() {
			i = next
			continue
		}
		if val.Before(trd) {
			trd, val = val, trd
		}

		gap := 0.0
		if carriedSpot != nil && *carriedSpot != 0 {
			gap = math.Round(float64(*fwd-*carriedSpot)/float64(*carriedSpot)*100*100) / 100
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

// parseSpot reads the three labeled rows, gathering up to two numbers in
// the block between one label and the next (capped at six lines). A lone
// number maps to Bid only; it is not copied to Ask.
func (b vcb) parseSpot(text string, quoting time.Time) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}
	lines := fxquote.Lines(section)

	findIdx := func(label *regexp.Regexp) int {
		for i, ln := range lines {
			if label.MatchString(ln) {
				return i
			}
		}
		return -1
	}

	idxLow := findIdx(vcbLowLabelRe)
	idxHigh := findIdx(vcbHighLabelRe)
	idxClose := findIdx(vcbCloseLabelRe)

	extractPair := func(start, end int) (*int, *int) {
		if start == -1 {
			return nil, nil
		}
		if end == -1 || end < start {
			end = start + 6
			if end > len(lines) {
				end = len(lines)
			}
		}
		var block string
		for _, ln := range lines[start:end] {
			block += ln + " "
		}
		nums := vcbSpotTokenRe.FindAllString(block, -1)
		switch {
		case len(nums) >= 2:
			return fxquote.ParseRateDotted(nums[0]), fxquote.ParseRateDotted(nums[1])
		case len(nums) == 1:
			return fxquote.ParseRateDotted(nums[0]), nil
		}
		return nil, nil
	}

	endLow := idxHigh
	if endLow == -1 {
		endLow = idxClose
	}
	endHigh := idxClose

	lowBid, lowAsk := extractPair(idxLow, endLow)
	highBid, highAsk := extractPair(idxHigh, endHigh)
	closeBid, closeAsk := extractPair(idxClose, -1)

	return fxquote.SpotTable{
		{No: 1, Side: fxquote.Bid, Bank: b.Code(), QuotingDate: quoting,
			WeekLow: lowBid, WeekHigh: highBid, FridayClose: closeBid},
		{No: 2, Side: fxquote.Ask, Bank: b.Code(), QuotingDate: quoting,
			WeekLow: lowAsk, WeekHigh: highAsk, FridayClose: closeAsk},
	}
}
