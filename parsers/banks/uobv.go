// uobv.go extracts quotes from UOBV (UOB Vietnam) emails: comma-separated
// forward rates in (bid, ask) pairs against the standard tenor ladder,
// with the Forward section ahead of the Spot section.

package banks

import (
	"regexp"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func init() {
	Register(uobv{})
}

type uobv struct{}

func (uobv) Code() string { return "UOBV" }

const uobvFallbackQuoting = "25/08/2025"

var uobvRateTokenRe = regexp.MustCompile(`\b\d{2},\d{3}\b`)

func (b uobv) Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable) {
	if blankInput(text) {
		return nil, nil, nil
	}
	fallback := fxquote.ParseDateDMY(uobvFallbackQuoting)

	var forward fxquote.ForwardTable
	if section := fxquote.ForwardSection(text); section != "" {
		tokens := uobvRateTokenRe.FindAllString(fxquote.CleanASCII(section), -1)
		forward = pairScanForwards(b.Code(), tokens, nil, fallback)
	}

	var spot fxquote.SpotTable
	if section := fxquote.SpotSection(text); section != "" {
		tokens := uobvRateTokenRe.FindAllString(fxquote.CleanASCII(section), -1)
		spot = spotTriples(b.Code(), tokens, fallback)
	}

	central := fxquote.CentralBankTable{{No: 1, Bank: b.Code(), QuotingDate: fallback}}
	return forward, spot, central
}
