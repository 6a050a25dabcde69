// merge.go consolidates per-bank extraction results into the three
// combined tables written to the output workbook.

package fxquote

// Merger accumulates per-bank table triples in the order the banks are
// added and produces combined, densely renumbered tables. Empty
// contributions are skipped; a table nobody contributed to still comes out
// as an empty table with the full column schema, so emission never fails.
type Merger struct {
	forward ForwardTable
	spot    SpotTable
	central CentralBankTable
	banks   int
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Add appends one bank's tables. Per-bank row order is preserved; banks
// are concatenated in call order.
func (m *Merger) Add(forward ForwardTable, spot SpotTable, central CentralBankTable) {
	if len(forward) > 0 {
		m.forward = append(m.forward, forward...)
	}
	if len(spot) > 0 {
		m.spot = append(m.spot, spot...)
	}
	if len(central) > 0 {
		m.central = append(m.central, central...)
	}
	m.banks++
}

// Banks reports how many banks have been added, empty or not.
func (m *Merger) Banks() int { return m.banks }

// Merge returns the combined tables with each sequence-number column
// reassigned as a dense 1..N range, overwriting per-bank numbering.
func (m *Merger) Merge() (ForwardTable, SpotTable, CentralBankTable) {
	forward := make(ForwardTable, len(m.forward))
	copy(forward, m.forward)
	for i := range forward {
		forward[i].No = i + 1
	}

	spot := make(SpotTable, len(m.spot))
	copy(spot, m.spot)
	for i := range spot {
		spot[i].No = i + 1
	}

	central := make(CentralBankTable, len(m.central))
	copy(central, m.central)
	for i := range central {
		central[i].No = i + 1
	}

	return forward, spot, central
}
