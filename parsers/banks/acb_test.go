package banks

import (
	"testing"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

const acbSampleMail = `Dear all,

Spot Exchange Rates
Closing rate: 26370 / 26380

Forward Exchange Rates
Bid Price:
25/08/2025   24/09/2025   26303   1M ( )   1.11%   26,327
25/08/2025   24/11/2025   3M ( )   1.25%   26,385
Ask Price:
25/08/2025   24/09/2025   26313   1M ( )   1.15%   26,340
`

func TestACBParse(t *testing.T) {
	forward, spot, central := Lookup("ACB").Parse(acbSampleMail)

	if len(forward) != 3 {
		t.Fatalf("forward rows = %d, want 3", len(forward))
	}

	first := forward[0]
	if first.No != 1 || first.Side != fxquote.Bid || first.Bank != "ACB" {
		t.Errorf("first row = %+v", first)
	}
	if got := first.TradingDate.Format("02/01/2006"); got != "25/08/2025" {
		t.Errorf("trading date = %s", got)
	}
	if got := first.ValueDate.Format("02/01/2006"); got != "24/09/2025" {
		t.Errorf("value date = %s", got)
	}
	if first.Spot == nil || *first.Spot != 26303 {
		t.Errorf("spot = %v", first.Spot)
	}
	if first.GapPct == nil || *first.GapPct != 1.11 {
		t.Errorf("gap = %v", first.GapPct)
	}
	if first.Forward == nil || *first.Forward != 26327 {
		t.Errorf("forward = %v", first.Forward)
	}
	if first.TermDays != 30 || first.TermMonths != 1 {
		t.Errorf("term = %d days / %d months", first.TermDays, first.TermMonths)
	}

	// The 3M row prints no spot of its own and inherits the 1M row's.
	second := forward[1]
	if second.Spot == nil || *second.Spot != 26303 {
		t.Errorf("carried spot = %v", second.Spot)
	}
	if second.TermDays != 91 || second.TermMonths != 3 {
		t.Errorf("3M term = %d days / %d months", second.TermDays, second.TermMonths)
	}

	// Bid rows come before Ask rows, numbered densely.
	third := forward[2]
	if third.Side != fxquote.Ask || third.No != 3 {
		t.Errorf("third row = %+v", third)
	}
	if third.Spot == nil || *third.Spot != 26313 {
		t.Errorf("ask spot = %v", third.Spot)
	}

	if len(spot) != 2 {
		t.Fatalf("spot rows = %d, want 2", len(spot))
	}
	if spot[0].Side != fxquote.Bid || spot[0].FridayClose == nil || *spot[0].FridayClose != 26370 {
		t.Errorf("bid spot row = %+v", spot[0])
	}
	if spot[1].Side != fxquote.Ask || spot[1].FridayClose == nil || *spot[1].FridayClose != 26380 {
		t.Errorf("ask spot row = %+v", spot[1])
	}
	if spot[0].WeekLow != nil || spot[0].WeekHigh != nil {
		t.Error("ACB quotes no weekly low/high; fields should stay nil")
	}

	if len(central) != 1 {
		t.Fatalf("central rows = %d, want 1", len(central))
	}
	if got := central[0].QuotingDate.Format("02/01/2006"); got != "25/08/2025" {
		t.Errorf("central quoting date = %s", got)
	}
	if central[0].Rate != nil {
		t.Error("central rate should stay nil")
	}
}

// Reversed trading/value dates are swapped rather than producing a
// negative term.
func TestACBSwapsReversedDates(t *testing.T) {
	const mail = `Forward Exchange Rates
Bid Price:
24/09/2025   25/08/2025   26303   1M ( )   1.11%   26,327
`
	forward, _, _ := Lookup("ACB").Parse(mail)
	if len(forward) != 1 {
		t.Fatalf("forward rows = %d, want 1", len(forward))
	}
	row := forward[0]
	if got := row.TradingDate.Format("02/01/2006"); got != "25/08/2025" {
		t.Errorf("trading date = %s", got)
	}
	if row.TermDays != 30 {
		t.Errorf("term days = %d, want 30", row.TermDays)
	}
}
