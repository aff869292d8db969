package models

// Warning kinds.
const (
	WarningExcessIngredient      = "EXCESS_INGREDIENT"
	WarningMaillardThreshold     = "MAILLARD_THRESHOLD"
	WarningYeastThermalShock     = "YEAST_THERMAL_SHOCK"
	WarningStretchAndFoldOverrun = "STRETCH_AND_FOLD_OVERRUN"
)

// Warning is a non-fatal physical-feasibility notice accompanying a still-valid result.
type Warning struct {
	Type        string `json:"type"`        // one of the Warning* kinds
	Description string `json:"description"` // human-readable
	Metadata    any    `json:"metadata,omitempty"`
}
