// Package fxquote defines the common quote schema shared by every bank
// extractor, the normalization helpers that convert bank-specific tokens
// into canonical values, the merger that consolidates per-bank results,
// and the Excel workbook emitter.
package fxquote

import "time"

// Side is the quote direction: the bank buys at Bid and sells at Ask.
type Side string

const (
	Bid Side = "Bid"
	Ask Side = "Ask"
)

// ForwardQuote is one row of the Forward sheet. Spot, Gap and Forward are
// nil when the source email did not supply them; the spreadsheet formulas
// for the two derived percent columns are injected at emit time.
type ForwardQuote struct {
	No          int
	Side        Side
	Bank        string
	QuotingDate time.Time
	TradingDate time.Time
	ValueDate   time.Time
	Spot        *int     // minor-unit-free integer rate, e.g. 26303
	GapPct      *float64 // bank-quoted annualized premium, 1.11 means 1.11%
	Forward     *int
	TermDays    int
	TermMonths  int // 30/360 year fraction times 12, rounded
}

// SpotQuote is one row of the Spot sheet. All rate fields are nullable;
// no cross-field invariant is enforced.
type SpotQuote struct {
	No          int
	Side        Side
	Bank        string
	QuotingDate time.Time
	WeekLow     *int
	WeekHigh    *int
	FridayClose *int
}

// CentralBankQuote is one row of the CentralBank sheet. No bank in the
// observed corpus supplies the rate, so Rate stays nil.
type CentralBankQuote struct {
	No          int
	Bank        string
	QuotingDate time.Time
	Rate        *int
}

// Tables are ordered: insertion order is display order until the forward
// sort and renumbering pass runs.
type (
	ForwardTable     []ForwardQuote
	SpotTable        []SpotQuote
	CentralBankTable []CentralBankQuote
)

// Fixed output column headers. The "preceeding" spelling is intentional:
// it matches the reviewed workbook these sheets replace.
var (
	ForwardColumns = []string{
		"No.", "Bid/Ask", "Bank", "Quoting date", "Trading date", "Value date",
		"Spot Exchange rate", "Gap(%)", "Forward Exchange rate",
		"Term (days)", "% forward (cal)", "Diff.", "Term (lookup)",
	}
	SpotColumns = []string{
		"No.", "Bid/Ask", "Bank", "Quoting date",
		"Lowest rate of preceeding week",
		"Highest rate of preceeding week",
		"Closing rate of Friday (last week)",
	}
	CentralBankColumns = []string{
		"No.", "Bank", "Quoting date", "Central Bank Rate",
	}
)

// IntPtr returns a pointer to v. Extractors use it for optional rates.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }
