// tcb.go extracts quotes from TCB (Techcombank) emails. TCB quotes a full
// row per line with the spot always present, and labels its spot table
// rows (Lowest / Highest / Closing) with Bid and Ask side by side.

package banks

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(tcb{})
}

type tcb struct{}

func (tcb) Code() string { return "TCB" }

// A TCB forward row looks like:
//
//	25/08/2025  22/09/2025  26,300  1M ( )  1.20  26,324
//
// Commas in rates are optional and the gap may be an integer or carry a
// decimal comma.
var tcbRowRe = regexp.MustCompile(`(?i)(` + fxquote.DateDMY + `)\s+(` + fxquote.DateDMY + `)\s+(\d{2},?\d{3})\s+(\d+)\s*([DMWY])?\s*\(\s*\)\s+(-?\d+(?:[.,]\d+)?)\s+(\d{2},?\d{3})`)

var (
	tcbLowLabelRe   = regexp.MustCompile(`(?i)Lowest\s+rate\s+of\s+the\s+pre(?:c|cc)eding\s+week`)
	tcbHighLabelRe  = regexp.MustCompile(`(?i)Highest\s+rate\s+of\s+the\s+pre(?:c|cc)eding\s+week`)
	tcbCloseLabelRe = regexp.MustCompile(`(?i)Closing\s+rate\s+of\s+Friday\s*\(last\s*week\)`)

	tcbRateTokenRe = regexp.MustCompile(`\b\d{2},?\d{3}\b`)
)

func (b tcb) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	return b.parseForwards(text), b.parseSpot(text), b.centralStub(text)
}

func (b tcb) parseForwards(text string) fxquote.ForwardTable {
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

func (b tcb) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	var rows fxquote.ForwardTable
	for _, m := range tcbRowRe.FindAllStringSubmatch(text, -1) {
		trd := fxquote.ParseDateDMY(m[1])
		val := fxquote.ParseDateDMY(m[2])
		if trd.IsZero() || val.IsZero() {
			continue
		}
		spot := fxquote.ParseRate(m[3])
		gap, err := strconv.ParseFloat(strings.ReplaceAll(m[6], ",", "."), 64)
		if err != nil {
			continue
		}
		fwd := fxquote.ParseRate(m[7])
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
			Spot:        spot,
			GapPct:      fxquote.FloatPtr(gap),
			Forward:     fwd,
			TermDays:    fxquote.DaysBetween(trd, val),
			TermMonths:  fxquote.TermMonths(trd, val),
		})
	}
	return rows
}

// parseSpot reads the Bid and Ask rates adjacent to each of the three row
// labels. The label line plus the following line are searched together
// because mail clients wrap the table cells.
func (b tcb) parseSpot(text string) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}
	lines := fxquote.Lines(section)

	grabPair := func(label *regexp.Regexp) (*int, *int) {
		for i, ln := range lines {
			if !label.MatchString(ln) {
				continue
			}
			window := ln
			if i+1 < len(lines) {
				window += " " + lines[i+1]
			}
			nums := tcbRateTokenRe.FindAllString(window, -1)
			switch {
			case len(nums) >= 2:
				return fxquote.ParseRate(nums[0]), fxquote.ParseRate(nums[1])
			case len(nums) == 1:
				v := fxquote.ParseRate(nums[0])
				return v, v
			}
			return nil, nil
		}
		return nil, nil
	}

	lowBid, lowAsk := grabPair(tcbLowLabelRe)
	highBid, highAsk := grabPair(tcbHighLabelRe)
	closeBid, closeAsk := grabPair(tcbCloseLabelRe)

	quoting := fxquote.FirstDate(text)
	return fxquote.SpotTable{
		{No: 1, Side: fxquote.Bid, Bank: b.Code(), QuotingDate: quoting,
			WeekLow: lowBid, WeekHigh: highBid, FridayClose: closeBid},
		{No: 2, Side: fxquote.Ask, Bank: b.Code(), QuotingDate: quoting,
			WeekLow: lowAsk, WeekHigh: highAsk, FridayClose: closeAsk},
	}
}

func (b tcb) centralStub(text string) fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fxquote.FirstDate(text)},
	}
}
