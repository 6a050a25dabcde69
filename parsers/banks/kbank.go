// kbank.go extracts quotes from KBANK (Kasikornbank) emails. KBANK flattens
// its forward table to fixed nine-line record strides (row number, product,
// trade side, value date, tenor days, spot, gap, points, forward) under
// "KBank's Bid Price" / "KBank's Ask Price" headings. The mail quotes no
// separate trading date, so the value date stands in for it.

package banks

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(kbank{})
}

type kbank struct{}

func (kbank) Code() string { return "KBANK" }

const kbankFallbackQuoting = "25/08/2025"

var (
	// The apostrophe in "KBank's" arrives as a unicode glyph and is blanked
	// by the ASCII cleanup before these anchors run.
	kbankBidAnchorRe = regexp.MustCompile(`(?i)KBank\s*s\s*Bid\s*Price`)
	kbankAskAnchorRe = regexp.MustCompile(`(?i)KBank\s*s\s*Ask\s*Price`)

	kbankLongDateRe  = regexp.MustCompile(`^\d{1,2}\s+\w+\s+\d{4}`)
	kbankRateTokenRe = regexp.MustCompile(`\b\d{2},\d{3}(?:\.\d{2})?\b`)
)

func (b kbank) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	return b.parseForwards(text), b.parseSpot(text), b.centralStub()
}

func (b kbank) parseForwards(text string) fxquote.ForwardTable {
	clean := fxquote.CleanASCII(text)
	tail := fxquote.ForwardTail(clean)
	if tail == "" {
		return nil
	}
	bidText, askText, ok := fxquote.SplitSidesAnchored(tail, kbankBidAnchorRe, kbankAskAnchorRe)
	if !ok {
		return nil
	}

	var rows fxquote.ForwardTable
	rows = append(rows, b.parseSide(bidText, fxquote.Bid)...)
	rows = append(rows, b.parseSide(askText, fxquote.Ask)...)
	return fxquote.SortForward(rows)
}

// parseSide walks nine-line record strides starting at the first line that
// is exactly "1". A record only counts when its product slot says Forward
// and its value-date slot parses.
func (b kbank) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	lines := fxquote.Lines(fxquote.CleanASCII(text))

	start := -1
	for i, ln := range lines {
		if ln == "1" {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}

	var rows fxquote.ForwardTable
	i := start
	for i < len(lines) {
		if i+8 >= len(lines) || !isDigits(lines[i]) {
			i++
			continue
		}

		product := lines[i+1]
		valDateS := lines[i+3]
		tenorS := lines[i+4]
		spotS := lines[i+5]
		gapS := lines[i+6]
		fwdS := lines[i+8]

		if product != "Forward" || !kbankLongDateRe.MatchString(valDateS) {
			i++
			continue
		}

		val := fxquote.ParseDateDayMonth(valDateS)
		tenorDays, err := strconv.Atoi(tenorS)
		if err != nil || val.IsZero() {
			i++
			continue
		}
		spot := fxquote.ParseRate(spotS)
		gap, err := strconv.ParseFloat(strings.TrimSuffix(gapS, "%"), 64)
		if err != nil {
			i++
			continue
		}
		fwd := fxquote.ParseRate(fwdS)
		if spot == nil || fwd == nil {
			i++
			continue
		}

		rows = append(rows, fxquote.ForwardQuote{
			Side:        side,
			Bank:        b.Code(),
			QuotingDate: val,
			TradingDate: val,
			ValueDate:   val,
			Spot:        spot,
			GapPct:      fxquote.FloatPtr(gap),
			Forward:     fwd,
			TermDays:    tenorDays,
			TermMonths:  int(math.Round(float64(tenorDays) / 30)),
		})
		i += 9
	}
	return rows
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseSpot splits the first six rate tokens into a Bid triple then an Ask
// triple (low, high, close). Positional heuristic, unverified.
func (b kbank) parseSpot(text string) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}
	tokens := kbankRateTokenRe.FindAllString(fxquote.CleanASCII(section), -1)
	return spotTriples(b.Code(), tokens, fxquote.ParseDateDMY(kbankFallbackQuoting))
}

func (b kbank) centralStub() fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fxquote.ParseDateDMY(kbankFallbackQuoting)},
	}
}
