package fxquote

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

const sectionedMail = `Dear all,

Spot Exchange Rates
closing 26370 / 26380

Forward Exchange Rates
Bid Price:
row one
Ask Price:
row two
`

func TestForwardSection(t *testing.T) {
	got := ForwardSection(sectionedMail)
	if !strings.Contains(got, "Bid Price") {
		t.Errorf("ForwardSection missing bid block: %q", got)
	}
	if ForwardSection("no headers at all") != "" {
		t.Error("ForwardSection found a section in headerless text")
	}
}

func TestForwardSectionTrimsAtSpot(t *testing.T) {
	text := "Forward Exchange Rates\nforward rows\nSpot Exchange Rates\nspot rows"
	got := ForwardSection(text)
	if strings.Contains(got, "spot rows") {
		t.Errorf("ForwardSection leaked spot content: %q", got)
	}
	if ForwardTail(text) == got {
		t.Error("ForwardTail should keep the spot content that ForwardSection trims")
	}
}

func TestSpotSection(t *testing.T) {
	got := SpotSection(sectionedMail)
	if !strings.Contains(got, "26370") {
		t.Errorf("SpotSection missing rates: %q", got)
	}
	if strings.Contains(got, "Bid Price") {
		t.Errorf("SpotSection leaked forward content: %q", got)
	}
}

func TestSplitSides(t *testing.T) {
	bid, ask, ok := SplitSides("Bid Price: alpha Ask Price: beta")
	if !ok {
		t.Fatal("SplitSides failed on well-formed input")
	}
	if !strings.Contains(bid, "alpha") || strings.Contains(bid, "beta") {
		t.Errorf("bid block = %q", bid)
	}
	if !strings.Contains(ask, "beta") {
		t.Errorf("ask block = %q", ask)
	}

	if _, _, ok := SplitSides("no anchors"); ok {
		t.Error("SplitSides reported ok without a bid anchor")
	}

	bid, ask, ok = SplitSides("Bid Price: alpha only")
	if !ok || ask != "" || !strings.Contains(bid, "alpha") {
		t.Errorf("bid-only split = (%q, %q, %v)", bid, ask, ok)
	}
}

func TestCleanASCII(t *testing.T) {
	got := CleanASCII("KBank’s Bid Price")
	if got != "KBank s Bid Price" {
		t.Errorf("CleanASCII = %q", got)
	}
}

func TestLines(t *testing.T) {
	got := Lines("  one  \n\n\ttwo   words \n")
	want := []string{"one", "two words"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %v, want %v", got, want)
	}
}

func TestSortForward(t *testing.T) {
	d := func(s string) time.Time { return ParseDateDMY(s) }
	rows := ForwardTable{
		{Side: Ask, Bank: "X", TradingDate: d("25/08/2025"), TermDays: 30},
		{Side: Bid, Bank: "X", TradingDate: d("26/08/2025"), TermDays: 30},
		{Side: Bid, Bank: "X", TradingDate: d("25/08/2025"), TermDays: 91},
		{Side: Bid, Bank: "X", TradingDate: d("25/08/2025"), TermDays: 30},
	}
	sorted := SortForward(rows)

	wantOrder := []struct {
		side Side
		trd  string
		days int
	}{
		{Bid, "25/08/2025", 30},
		{Bid, "25/08/2025", 91},
		{Bid, "26/08/2025", 30},
		{Ask, "25/08/2025", 30},
	}
	for i, w := range wantOrder {
		r := sorted[i]
		if r.Side != w.side || !r.TradingDate.Equal(d(w.trd)) || r.TermDays != w.days {
			t.Errorf("row %d = {%s %s %d}, want {%s %s %d}",
				i, r.Side, r.TradingDate.Format("02/01/2006"), r.TermDays, w.side, w.trd, w.days)
		}
		if r.No != i+1 {
			t.Errorf("row %d numbered %d", i, r.No)
		}
	}
}
