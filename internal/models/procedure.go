package models

import (
	"fmt"
	"time"
)

// LeaveningStage is one temperature plateau of the leavening schedule.
type LeaveningStage struct {
	Temperature    float64       `json:"temperature_c"`              // °C
	Duration       time.Duration `json:"duration"`                   // > 0
	AfterStageWork time.Duration `json:"after_stage_work,omitempty"` // e.g. balling, shaping
}

// StretchAndFoldStage is a stretch-and-fold performed Lapse after the previous one
// (the first one is measured from the start of the first leavening stage).
type StretchAndFoldStage struct {
	Lapse time.Duration `json:"lapse"`
}

// Procedure is the ordered leavening schedule together with the target it must reach.
type Procedure struct {
	Stages                     []LeaveningStage      `json:"stages"`
	TargetVolumeExpansionRatio float64               `json:"target_volume_expansion_ratio"`
	TargetStageIndex           int                   `json:"target_stage_index"`
	StretchAndFolds            []StretchAndFoldStage `json:"stretch_and_folds,omitempty"`

	DoughMaking time.Duration `json:"dough_making,omitempty"`
	Seasoning   time.Duration `json:"seasoning,omitempty"`
	TimeToBake  time.Time     `json:"time_to_bake,omitempty"` // zero means no wall-clock schedule
}

// Validate checks the structural invariants of the procedure.
func (p Procedure) Validate() error {
	if len(p.Stages) == 0 {
		return fmt.Errorf("%w: procedure needs at least one leavening stage", ErrValidation)
	}
	if p.TargetStageIndex < 0 || p.TargetStageIndex >= len(p.Stages) {
		return fmt.Errorf("%w: target stage index %d outside [0, %d)", ErrValidation, p.TargetStageIndex, len(p.Stages))
	}
	if !(p.TargetVolumeExpansionRatio > 0) {
		return fmt.Errorf("%w: target volume expansion ratio %g must be > 0", ErrValidation, p.TargetVolumeExpansionRatio)
	}
	for i, st := range p.Stages {
		if st.Duration <= 0 {
			return fmt.Errorf("%w: stage %d duration %s must be positive", ErrValidation, i, st.Duration)
		}
		if st.AfterStageWork < 0 {
			return fmt.Errorf("%w: stage %d after-stage work %s must not be negative", ErrValidation, i, st.AfterStageWork)
		}
	}
	for i, sf := range p.StretchAndFolds {
		if sf.Lapse <= 0 {
			return fmt.Errorf("%w: stretch-and-fold %d lapse %s must be positive", ErrValidation, i, sf.Lapse)
		}
	}
	if p.DoughMaking < 0 || p.Seasoning < 0 {
		return fmt.Errorf("%w: dough making (%s) and seasoning (%s) must not be negative", ErrValidation, p.DoughMaking, p.Seasoning)
	}
	return nil
}

// LeaveningDuration is the sum of all stage durations.
func (p Procedure) LeaveningDuration() time.Duration {
	var total time.Duration
	for _, st := range p.Stages {
		total += st.Duration
	}
	return total
}

// StretchAndFoldDuration is the sum of all stretch-and-fold lapses.
func (p Procedure) StretchAndFoldDuration() time.Duration {
	var total time.Duration
	for _, sf := range p.StretchAndFolds {
		total += sf.Lapse
	}
	return total
}

// StretchAndFoldOverrun reports whether the stretch-and-fold series outlasts leavening.
func (p Procedure) StretchAndFoldOverrun() bool {
	return p.StretchAndFoldDuration() > p.LeaveningDuration()
}
