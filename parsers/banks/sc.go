// sc.go extracts quotes from SC (Standard Chartered) emails. SC writes
// "25 Aug 2025" dates and plain 5-digit rates one token per line, marks
// unavailable tenors "Cant offer", and supplies no gap column.

package banks

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(sc{})
}

type sc struct{}

func (sc) Code() string { return "SC" }

// SC fallback constants: the spot used when a row omits it, and the
// quoting date stamped on spot/central rows (SC mails carry no parseable
// dd/mm/yyyy date).
const (
	scFallbackSpot    = 26300
	scFallbackQuoting = "25/08/2025"
)

var (
	scDateLineRe  = regexp.MustCompile(`^\d{1,2}\s+\w+\s+\d{4}`)
	scRateLineRe  = regexp.MustCompile(`^\d{5}`)
	scTermMonthRe = regexp.MustCompile(`(\d+)M`)
	scRateTokenRe = regexp.MustCompile(`\b\d{5}\b`)
)

func (b sc) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	return b.parseForwards(text), b.parseSpot(text), b.centralStub()
}

func (b sc) parseForwards(text string) fxquote.ForwardTable {
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

// parseSide scans six-line record strides: trading date, value date, spot,
// tenor, then the forward rate somewhere in the next few lines. Rows whose
// forward slot reads "Cant offer" are skipped.
func (b sc) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	lines := fxquote.Lines(fxquote.CleanASCII(text))

	var rows fxquote.ForwardTable
	i := 0
	for i < len(lines) {
		if !scDateLineRe.MatchString(lines[i]) {
			i++
			continue
		}
		if i+5 >= len(lines) {
			break
		}

		trd := fxquote.ParseDateDayMonth(lines[i])
		val := fxquote.ParseDateDayMonth(lines[i+1])

		spot := scFallbackSpot
		if scRateLineRe.MatchString(lines[i+2]) {
			if v := fxquote.ParseRate(scRateTokenRe.FindString(lines[i+2])); v != nil {
				spot = *v
			}
		}
		termLine := lines[i+2]
		if strings.Contains(lines[i+3], "M") {
			termLine = lines[i+3]
		}

		var fwd *int
		for j := i + 3; j < i+7 && j < len(lines); j++ {
			if scRateLineRe.MatchString(lines[j]) && !strings.Contains(strings.ToLower(lines[j]), "cant") {
				fwd = fxquote.ParseRate(scRateTokenRe.FindString(lines[j]))
				break
			}
		}

		if fwd != nil && !trd.IsZero() && !val.IsZero() {
			if val.Before(trd) {
				trd, val = val, trd
			}
			termDays := fxquote.DaysBetween(trd, val)
			termMonths := int(math.Round(float64(termDays) / 30))
			if m := scTermMonthRe.FindStringSubmatch(termLine); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					termMonths = n
				}
			}

			rows = append(rows, fxquote.ForwardQuote{
				Side:        side,
				Bank:        b.Code(),
				QuotingDate: trd,
				TradingDate: trd,
				ValueDate:   val,
				Spot:        fxquote.IntPtr(spot),
				Forward:     fwd,
				TermDays:    termDays,
				TermMonths:  termMonths,
			})
		}
		i += 6
	}
	return rows
}

// parseSpot splits the first six 5-digit tokens into a Bid triple then an
// Ask triple (low, high, close). Positional heuristic, unverified.
func (b sc) parseSpot(text string) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}
	tokens := scRateTokenRe.FindAllString(fxquote.CleanASCII(section), -1)
	return spotTriples(b.Code(), tokens, fxquote.ParseDateDMY(scFallbackQuoting))
}

func (b sc) centralStub() fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fxquote.ParseDateDMY(scFallbackQuoting)},
	}
}
