// woori.go extracts quotes from WOORI emails: forward rates in (bid, ask)
// pairs against the standard tenor ladder. Woori quotes decimal-tail rates
// ("26,449.32") in most mails and plain comma rates in the rest; when both
// appear the decimal style wins, since the plain matcher also hits the
// integer part of every decimal token.

package banks

import (
	"regexp"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(woori{})
}

type woori struct{}

func (woori) Code() string { return "WOORI" }

const wooriFallbackQuoting = "25/08/2025"

var (
	wooriDecimalRateRe = regexp.MustCompile(`\b\d{2},\d{3}\.\d{2}\b`)
	wooriSimpleRateRe  = regexp.MustCompile(`\b\d{2},\d{3}\b`)
)

func wooriTokens(clean string) []string {
	if tokens := wooriDecimalRateRe.FindAllString(clean, -1); len(tokens) > 0 {
		return tokens
	}
	return wooriSimpleRateRe.FindAllString(clean, -1)
}

func (b woori) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	fallback := fxquote.ParseDateDMY(wooriFallbackQuoting)

	var forward fxquote.ForwardTable
	if section := fxquote.ForwardSection(text); section != "" {
		forward = pairScanForwards(b.Code(), wooriTokens(fxquote.CleanASCII(section)), nil, fallback)
	}

	var spot fxquote.SpotTable
	if section := fxquote.SpotSection(text); section != "" {
		spot = spotTriples(b.Code(), wooriTokens(fxquote.CleanASCII(section)), fallback)
	}

	central := fxquote.CentralBankTable{{No: 1, Bank: b.Code(), QuotingDate: fallback}}
	return forward, spot, central
}
