// normalize.go converts bank-specific textual tokens into canonical
// integers, dates and day-count values.

package fxquote

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateDMY matches a strict dd/mm/yyyy calendar date.
const DateDMY = `(?:0[1-9]|[12]\d|3[01])/(?:0[1-9]|1[0-2])/(?:19|20)\d\d`

var (
	dateDMYRe = regexp.MustCompile(DateDMY)
	looseDate = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`)
)

// ParseRate strips comma thousands separators and parses the remainder as
// an integer. Returns nil for empty or non-numeric input. A decimal tail
// ("26,295.00") is truncated, matching the source workbook's integer rates.
func ParseRate(s string) *int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseRateDotted handles dot-thousands formats ("26.090" → 26090) as well
// as comma-separated ones. Used by banks that quote with either style.
func ParseRateDotted(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseDateDMY parses a dd/mm/yyyy date. The zero time signals failure.
func ParseDateDMY(s string) time.Time {
	t, err := time.Parse("02/01/2006", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseDateMDY parses a mm/dd/yyyy date (single-digit fields accepted).
func ParseDateMDY(s string) time.Time {
	for _, layout := range []string{"01/02/2006", "1/2/2006"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseDateDayMonth parses "25 Aug 2025" and "24 September 2025" styles.
func ParseDateDayMonth(s string) time.Time {
	for _, layout := range []string{"2 Jan 2006", "2 January 2006"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ParseDateDashed parses the "25-Aug-25" style.
func ParseDateDashed(s string) time.Time {
	t, err := time.Parse("2-Jan-06", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// FirstDate returns the first dd/mm/yyyy date found anywhere in text, or
// the zero time if none appears.
func FirstDate(text string) time.Time {
	if m := dateDMYRe.FindString(text); m != "" {
		return ParseDateDMY(m)
	}
	return time.Time{}
}

// FirstDateMDY returns the first loosely-formatted slash date in text read
// as mm/dd/yyyy. Banks that quote American-style dates use this for the
// quoting-date fallback.
func FirstDateMDY(text string) time.Time {
	if m := looseDate.FindString(text); m != "" {
		return ParseDateMDY(m)
	}
	return time.Time{}
}

// YearFrac30360 computes the 30/360 (US) year fraction between two dates:
// day-of-month 31 clamps to 30, the end day clamping only when the start
// day already sits at 30.
func YearFrac30360(d1, d2 time.Time) float64 {
	d1d := d1.Day()
	if d1d == 31 {
		d1d = 30
	}
	d2d := d2.Day()
	if d2d == 31 && d1d >= 30 {
		d2d = 30
	}
	months := (d2.Year()-d1.Year())*12 + int(d2.Month()) - int(d1.Month())
	days := d2d - d1d
	return float64(months*30+days) / 360.0
}

// TermMonths is the whole-month term between two dates under 30/360.
// Rounding is half away from zero, the same rule as the spreadsheet ROUND
// the Term (lookup) formula applies, so the stored value and the live
// formula agree.
func TermMonths(d1, d2 time.Time) int {
	return int(math.Round(YearFrac30360(d1, d2) * 12))
}

// DaysBetween is the calendar-day count from d1 to d2.
func DaysBetween(d1, d2 time.Time) int {
	return int(d2.Sub(d1).Hours() / 24)
}
