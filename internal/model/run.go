package model

// Scenario labels used in comparison mode.
const (
	LabelA = "A"
	LabelB = "B"
)

// Run pairs a labelled input with the ledger it produced.
type Run struct {
	Label   string        `json:"label"`
	Input   ScenarioInput `json:"input"`
	Ledger  Ledger        `json:"ledger"`
	Summary Summary       `json:"summary"`
}
