// section.go locates the loosely-tabular sections inside a bank email:
// the Forward / Spot headers and the Bid / Ask side blocks within Forward.

package fxquote

import (
	"regexp"
	"sort"
	"strings"
)

var (
	forwardHeaderRe = regexp.MustCompile(`(?i)forward\s+exchange\s+rates?`)
	spotHeaderRe    = regexp.MustCompile(`(?i)spot\s+exchange\s+rates?`)
	// Side anchors tolerate a missing colon and the full-width colon some
	// mail clients substitute.
	bidAnchorRe = regexp.MustCompile(`(?i)\bBid\s*Price\b\s*[:：]?`)
	askAnchorRe = regexp.MustCompile(`(?i)\bAsk\s*Price\b\s*[:：]?`)

	nonASCIIRe = regexp.MustCompile(`[^\x00-\x7F]+`)
	spacesRe   = regexp.MustCompile(`\s+`)
)

// ForwardSection returns the text after the "Forward Exchange Rates"
// header, trimmed at the Spot header when Spot follows Forward. An empty
// string means the section is absent.
func ForwardSection(text string) string {
	loc := forwardHeaderRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	tail := text[loc[1]:]
	if spot := spotHeaderRe.FindStringIndex(tail); spot != nil {
		tail = tail[:spot[0]]
	}
	return tail
}

// ForwardTail returns everything after the Forward header without trimming
// at the Spot header, for layouts that place Spot before Forward.
func ForwardTail(text string) string {
	loc := forwardHeaderRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return text[loc[1]:]
}

// SpotSection returns the text after the "Spot Exchange Rates" header,
// trimmed at the Forward header when Forward follows Spot.
func SpotSection(text string) string {
	loc := spotHeaderRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	tail := text[loc[1]:]
	if fwd := forwardHeaderRe.FindStringIndex(tail); fwd != nil {
		tail = tail[:fwd[0]]
	}
	return tail
}

// SplitSides splits a forward section into its Bid and Ask blocks using the
// "Bid Price" / "Ask Price" anchors. ok is false when no Bid anchor exists;
// a missing Ask anchor yields an empty ask block.
func SplitSides(tail string) (bidText, askText string, ok bool) {
	bid := bidAnchorRe.FindStringIndex(tail)
	if bid == nil {
		return "", "", false
	}
	afterBid := tail[bid[1]:]
	if ask := askAnchorRe.FindStringIndex(afterBid); ask != nil {
		return afterBid[:ask[0]], afterBid[ask[1]:], true
	}
	return afterBid, "", true
}

// SplitSidesAnchored is SplitSides with caller-supplied anchors, for banks
// that label the blocks their own way (e.g. "KBank's Bid Price").
func SplitSidesAnchored(tail string, bidAnchor, askAnchor *regexp.Regexp) (string, string, bool) {
	bid := bidAnchor.FindStringIndex(tail)
	if bid == nil {
		return "", "", false
	}
	afterBid := tail[bid[1]:]
	if ask := askAnchor.FindStringIndex(afterBid); ask != nil {
		return afterBid[:ask[0]], afterBid[ask[1]:], true
	}
	return afterBid, "", true
}

// CleanASCII replaces non-ASCII runs with a single space. Several banks
// draw table borders and labels with unicode glyphs that would otherwise
// break the line-stride scans.
func CleanASCII(text string) string {
	return nonASCIIRe.ReplaceAllString(text, " ")
}

// Lines splits text into trimmed, space-normalized, non-empty lines.
func Lines(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		ln = spacesRe.ReplaceAllString(strings.TrimSpace(ln), " ")
		if ln != "" {
			out = append(out, ln)
		}
	}
	return out
}

// SortForward orders forward rows by side (Bid before Ask), then trading
// date, then term length, and assigns sequence numbers from 1. Extractors
// call this once per email; the merger renumbers again after concatenation.
func SortForward(rows ForwardTable) ForwardTable {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Side != b.Side {
			return a.Side == Bid
		}
		if !a.TradingDate.Equal(b.TradingDate) {
			return a.TradingDate.Before(b.TradingDate)
		}
		return a.TermDays < b.TermDays
	})
	for i := range rows {
		rows[i].No = i + 1
	}
	return rows
}
