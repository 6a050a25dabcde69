// uob.go extracts quotes from UOB (Singapore desk) emails. UOB writes
// "25-Aug-25" dates and comma-separated rates one token per line, and
// marks unavailable tenors "N/A".

package banks

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(uob{})
}

type uob struct{}

func (uob) Code() string { return "UOB" }

const (
	uobFallbackSpot    = 26300
	uobFallbackQuoting = "25/08/2025"
)

var (
	uobDateLineRe  = regexp.MustCompile(`^\d{1,2}-\w+-\d{2}`)
	uobRateLineRe  = regexp.MustCompile(`^\d{2},\d{3}`)
	uobGapLineRe   = regexp.MustCompile(`^-?\d+\.\d+`)
	uobTermMonthRe = regexp.MustCompile(`(\d+)M`)
	uobRateTokenRe = regexp.MustCompile(`\b\d{2},\d{3}\b`)
)

func (b uob) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	return b.parseForwards(text), b.parseSpot(text), b.centralStub()
}

func (b uob) parseForwards(text string) fxquote.ForwardTable {
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
// tenor, gap, forward. "N/A" forward slots skip the row.
func (b uob) parseSide(text string, side fxquote.Side) fxquote.ForwardTable {
	lines := fxquote.Lines(fxquote.CleanASCII(text))

	var rows fxquote.ForwardTable
	i := 0
	for i < len(lines) {
		if !uobDateLineRe.MatchString(lines[i]) {
			i++
			continue
		}
		if i+5 >= len(lines) {
			break
		}

		trd := fxquote.ParseDateDashed(lines[i])
		val := fxquote.ParseDateDashed(lines[i+1])

		spot := uobFallbackSpot
		if uobRateLineRe.MatchString(lines[i+2]) {
			if v := fxquote.ParseRate(uobRateTokenRe.FindString(lines[i+2])); v != nil {
				spot = *v
			}
		}
		termLine := lines[i+2]
		if strings.Contains(lines[i+3], "M") {
			termLine = lines[i+3]
		}

		var gap *float64
		if uobGapLineRe.MatchString(lines[i+4]) {
			if g, err := strconv.ParseFloat(uobGapLineRe.FindString(lines[i+4]), 64); err == nil {
				gap = fxquote.FloatPtr(g)
			}
		}

		var fwd *int
		for j := i + 4; j < i+7 && j < len(lines); j++ {
			if uobRateLineRe.MatchString(lines[j]) && !strings.Contains(strings.ToLower(lines[j]), "n/a") {
				fwd = fxquote.ParseRate(uobRateTokenRe.FindString(lines[j]))
				break
			}
		}

		if fwd != nil && !trd.IsZero() && !val.IsZero() {
			if val.Before(trd) {
				trd, val = val, trd
			}
			termDays := fxquote.DaysBetween(trd, val)
			termMonths := int(math.Round(float64(termDays) / 30))
			if m := uobTermMonthRe.FindStringSubmatch(termLine); m != nil {
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
				GapPct:      gap,
				Forward:     fwd,
				TermDays:    termDays,
				TermMonths:  termMonths,
			})
		}
		i += 6
	}
	return rows
}

// parseSpot splits the first six comma-separated tokens into a Bid triple
// then an Ask triple (low, high, close). Positional heuristic, unverified.
func (b uob) parseSpot(text string) fxquote.SpotTable {
	section := fxquote.SpotSection(text)
	if section == "" {
		return nil
	}
	tokens := uobRateTokenRe.FindAllString(fxquote.CleanASCII(section), -1)
	return spotTriples(b.Code(), tokens, fxquote.ParseDateDMY(uobFallbackQuoting))
}

func (b uob) centralStub() fxquote.CentralBankTable {
	return fxquote.CentralBankTable{
		{No: 1, Bank: b.Code(), QuotingDate: fxquote.ParseDateDMY(uobFallbackQuoting)},
	}
}
