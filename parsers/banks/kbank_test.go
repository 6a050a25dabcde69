package banks

import (
	"testing"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

// The apostrophes below are the unicode glyphs KBANK's mail client emits.
const kbankSampleMail = `Dear all,

Forward Exchange Rates
KBank’s Bid Price
1
Forward
Buy
24 September 2025
30
26,284.00
1.10%
32.5
26,316.00
2
Forward
Buy
24 November 2025
91
26,284.00
1.20%
79.7
26,364.00
KBank’s Ask Price
1
Forward
Sell
24 September 2025
30
26,294.00
1.15%
33.1
26,327.00
`

func TestKBANKParse(t *testing.T) {
	forward, spot, central := Lookup("KBANK").Parse(kbankSampleMail)

	if len(forward) != 3 {
		t.Fatalf("forward rows = %d, want 3", len(forward))
	}

	first := forward[0]
	if first.Side != fxquote.Bid || first.Bank != "KBANK" {
		t.Errorf("first row = %+v", first)
	}
	// KBANK quotes no trading date; the value date stands in.
	if !first.TradingDate.Equal(first.ValueDate) {
		t.Error("trading date should equal value date")
	}
	if got := first.ValueDate.Format("02/01/2006"); got != "24/09/2025" {
		t.Errorf("value date = %s", got)
	}
	if first.Spot == nil || *first.Spot != 26284 {
		t.Errorf("spot = %v", first.Spot)
	}
	if first.GapPct == nil || *first.GapPct != 1.10 {
		t.Errorf("gap = %v", first.GapPct)
	}
	if first.Forward == nil || *first.Forward != 26316 {
		t.Errorf("forward = %v", first.Forward)
	}
	if first.TermDays != 30 || first.TermMonths != 1 {
		t.Errorf("term = %d days / %d months", first.TermDays, first.TermMonths)
	}

	second := forward[1]
	if second.TermDays != 91 || second.TermMonths != 3 {
		t.Errorf("second term = %d days / %d months", second.TermDays, second.TermMonths)
	}
	if second.Forward == nil || *second.Forward != 26364 {
		t.Errorf("second forward = %v", second.Forward)
	}

	third := forward[2]
	if third.Side != fxquote.Ask || third.Forward == nil || *third.Forward != 26327 {
		t.Errorf("ask row = %+v", third)
	}

	// No spot section in KBANK mails.
	if len(spot) != 0 {
		t.Errorf("spot rows = %d, want 0", len(spot))
	}
	if len(central) != 1 || central[0].Bank != "KBANK" {
		t.Fatalf("central = %+v", central)
	}
}

// Records whose product slot is not "Forward" are skipped.
func TestKBANKSkipsNonForwardProducts(t *testing.T) {
	const mail = `Forward Exchange Rates
KBank’s Bid Price
1
Swap
Buy
24 September 2025
30
26,284.00
1.10%
32.5
26,316.00
`
	forward, _, _ := Lookup("KBANK").Parse(mail)
	if len(forward) != 0 {
		t.Errorf("forward rows = %d, want 0", len(forward))
	}
}
