// Package banks holds one extractor per supported bank and a registry for
// looking them up by mnemonic code. To add a bank, create a file that
// implements Extractor and calls Register from its init function; nothing
// outside that file changes.
package banks

import (
	"sort"
	"strings"

	"github.com/avaropoint/fxrates/parsers/fxquote"
)

// Extractor parses one bank's raw email text into the three normalized
// quote tables. Implementations are pure functions of the input: no state
// survives between calls, malformed rows are skipped rather than reported,
// and an absent section yields an empty table, never an error.
type Extractor interface {
	// Code returns the bank's short mnemonic (e.g. "ACB").
	Code() string

	// Parse extracts the forward, spot and central-bank tables from the
	// email body. Best effort by design: the output is reviewed by a
	// human afterward.
	Parse(text string) (fxquote.ForwardTable, fxquote.SpotTable, fxquote.CentralBankTable)
}

var registry = map[string]Extractor{}

// blankInput reports whether the email text holds nothing to parse.
// Extractors return three empty tables for blank input instead of
// emitting their central-bank stub rows.
func blankInput(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Register adds an extractor to the global registry. Call this from an
// init function in the bank's file.
func Register(e Extractor) {
	registry[strings.ToUpper(e.Code())] = e
}

// Lookup returns the extractor for a bank code (case-insensitive), or nil
// when the bank is not supported.
func Lookup(code string) Extractor {
	return registry[strings.ToUpper(code)]
}

// Codes returns every registered bank code, sorted.
func Codes() []string {
	out := make([]string, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// All returns every registered extractor in code order.
func All() []Extractor {
	var out []Extractor
	for _, code := range Codes() {
		out = append(out, registry[code])
	}
	return out
}
