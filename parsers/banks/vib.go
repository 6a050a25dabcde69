// vib.go extracts quotes from VIB emails: forward rates in (bid, ask)
// pairs against the standard tenor ladder, quoted either comma-separated
// or as plain 5-digit tokens, with per-tenor trading dates when the email
// prints them.

package banks

import (
	"regexp"
	"time"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(vib{})
}

type vib struct{}

func (vib) Code() string { return "VIB" }

const vibFallbackQuoting = "25/08/2025"

var (
	vibCommaRateRe = regexp.MustCompile(`\b\d{2},\d{3}(?:\.\d{2})?\b`)
	vibPlainRateRe = regexp.MustCompile(`\b\d{5}\b`)
	vibLooseDateRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
)

func (b vib) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	fallback := fxquote.ParseDateDMY(vibFallbackQuoting)

	var forward fxquote.ForwardTable
	if section := fxquote.ForwardSection(text); section != "" {
		clean := fxquote.CleanASCII(section)
		tokens := append(vibCommaRateRe.FindAllString(clean, -1), vibPlainRateRe.FindAllString(clean, -1)...)

		var dates []time.Time
		for _, d := range vibLooseDateRe.FindAllString(clean, -1) {
			dates = append(dates, fxquote.ParseDateDMY(d))
		}
		forward = pairScanForwards(b.Code(), tokens, dates, fallback)
	}

	quoting := fxquote.FirstDate(text)
	if quoting.IsZero() {
		quoting = fallback
	}

	var spot fxquote.SpotTable
	if section := fxquote.SpotSection(text); section != "" {
		clean := fxquote.CleanASCII(section)
		tokens := append(vibCommaRateRe.FindAllString(clean, -1), vibPlainRateRe.FindAllString(clean, -1)...)
		spot = spotTriples(b.Code(), tokens, quoting)
	}

	central := fxquote.CentralBankTable{{No: 1, Bank: b.Code(), QuotingDate: quoting}}
	return forward, spot, central
}
