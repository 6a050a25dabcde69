package banks

import (
	"testing"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

func TestVTBParse(t *testing.T) {
	// Rates in the plausible band are paired against the ladder; the year
	// and reference number fall outside it and are ignored.
	const mail = `Quotes as of 2025, ref 123456789
26310 26360 26330 26380
`
	forward, spot, central := Lookup("VTB").Parse(mail)

	// Five tenors, bid and ask each.
	if len(forward) != 10 {
		t.Fatalf("forward rows = %d, want 10", len(forward))
	}
	if forward[0].Side != fxquote.Bid || *forward[0].Forward != 26310 {
		t.Errorf("1M bid = %+v", forward[0])
	}
	if forward[1].Side != fxquote.Ask || *forward[1].Forward != 26360 {
		t.Errorf("1M ask = %+v", forward[1])
	}
	if *forward[2].Forward != 26330 || *forward[3].Forward != 26380 {
		t.Errorf("3M pair = %+v %+v", forward[2], forward[3])
	}
	// Tenors beyond the supplied tokens fall back to the stepped defaults.
	if *forward[4].Forward != 26320 || *forward[5].Forward != 26370 {
		t.Errorf("6M fallback pair = %+v %+v", forward[4], forward[5])
	}
	if forward[9].TermMonths != 12 || *forward[9].Forward != 26390 {
		t.Errorf("12M ask = %+v", forward[9])
	}

	// VTB quotes no weekly spot summary; fixed fallback rows stand in.
	if len(spot) != 2 {
		t.Fatalf("spot rows = %d, want 2", len(spot))
	}
	if *spot[0].FridayClose != 26300 || *spot[1].FridayClose != 26350 {
		t.Errorf("spot closes = %+v", spot)
	}

	if len(central) != 1 || central[0].Bank != "VTB" {
		t.Fatalf("central = %+v", central)
	}
}

func TestVTBAllFallback(t *testing.T) {
	forward, _, _ := Lookup("VTB").Parse("nothing numeric here")
	if len(forward) != 10 {
		t.Fatalf("forward rows = %d, want 10", len(forward))
	}
	if *forward[0].Forward != 26300 || *forward[1].Forward != 26350 {
		t.Errorf("1M fallback pair = %+v %+v", forward[0], forward[1])
	}
	if *forward[8].Forward != 26340 || *forward[9].Forward != 26390 {
		t.Errorf("12M fallback pair = %+v %+v", forward[8], forward[9])
	}
}
