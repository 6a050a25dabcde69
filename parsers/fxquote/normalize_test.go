package fxquote

import (
	"testing"
	"time"
)

func TestParseRate(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"26,327", IntPtr(26327)},
		{"26303", IntPtr(26303)},
		{"26,295.00", IntPtr(26295)},
		{" 26,300 ", IntPtr(26300)},
		{"", nil},
		{"abc", nil},
		{"1M", nil},
	}
	for _, tt := range tests {
		got := ParseRate(tt.input)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("ParseRate(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("ParseRate(%q) = %d, want %d", tt.input, *got, *tt.want)
		}
	}
}

func TestParseRateDotted(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"26.090", IntPtr(26090)},
		{"26,090", IntPtr(26090)},
		{"26090", IntPtr(26090)},
		{"", nil},
		{"n/a", nil},
	}
	for _, tt := range tests {
		got := ParseRateDotted(tt.input)
		if (got == nil) != (tt.want == nil) {
			t.Errorf("ParseRateDotted(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		if got != nil && *got != *tt.want {
			t.Errorf("ParseRateDotted(%q) = %d, want %d", tt.input, *got, *tt.want)
		}
	}
}

func TestParseDateDMY(t *testing.T) {
	got := ParseDateDMY("25/08/2025")
	want := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateDMY = %v, want %v", got, want)
	}
	if !ParseDateDMY("31/02/2025").IsZero() {
		t.Error("ParseDateDMY accepted an impossible date")
	}
	if !ParseDateDMY("garbage").IsZero() {
		t.Error("ParseDateDMY accepted garbage")
	}
}

func TestParseDateMDY(t *testing.T) {
	want := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"08/25/2025", "8/25/2025"} {
		if got := ParseDateMDY(input); !got.Equal(want) {
			t.Errorf("ParseDateMDY(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseDateDayMonth(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"25 Aug 2025", time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)},
		{"24 September 2025", time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := ParseDateDayMonth(tt.input); !got.Equal(tt.want) {
			t.Errorf("ParseDateDayMonth(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDateDashed(t *testing.T) {
	got := ParseDateDashed("25-Aug-25")
	want := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateDashed = %v, want %v", got, want)
	}
}

func TestFirstDate(t *testing.T) {
	text := "quotes as of 25/08/2025 and later 26/08/2025"
	want := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	if got := FirstDate(text); !got.Equal(want) {
		t.Errorf("FirstDate = %v, want %v", got, want)
	}
	if !FirstDate("no dates here").IsZero() {
		t.Error("FirstDate found a date in dateless text")
	}
}

func TestFirstDateMDY(t *testing.T) {
	want := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	if got := FirstDateMDY("sent 08/25/2025"); !got.Equal(want) {
		t.Errorf("FirstDateMDY = %v, want %v", got, want)
	}
}

func TestTermMonths(t *testing.T) {
	d := func(s string) time.Time { return ParseDateDMY(s) }
	tests := []struct {
		from, to string
		want     int
	}{
		// 29 30/360 days, just under one month, rounds up.
		{"25/08/2025", "24/09/2025", 1},
		// 355 30/360 days, just under a year, rounds to 12.
		{"25/08/2025", "20/08/2026", 12},
		{"25/08/2025", "24/11/2025", 3},
		{"25/08/2025", "25/08/2025", 0},
	}
	for _, tt := range tests {
		if got := TermMonths(d(tt.from), d(tt.to)); got != tt.want {
			t.Errorf("TermMonths(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestYearFrac30360EndOfMonth(t *testing.T) {
	d := func(s string) time.Time { return ParseDateDMY(s) }
	tests := []struct {
		from, to string
		want     float64
	}{
		// Both days clamp to 30: exactly one 30/360 month.
		{"31/07/2025", "31/08/2025", 30.0 / 360},
		// End day stays 31 when the start day is below 30.
		{"15/07/2025", "31/07/2025", 16.0 / 360},
	}
	for _, tt := range tests {
		if got := YearFrac30360(d(tt.from), d(tt.to)); got != tt.want {
			t.Errorf("YearFrac30360(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	from := ParseDateDMY("25/08/2025")
	to := ParseDateDMY("24/09/2025")
	if got := DaysBetween(from, to); got != 30 {
		t.Errorf("DaysBetween = %d, want 30", got)
	}
}
