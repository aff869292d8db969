package service

import (
	"fmt"
	"time"

	"pizza_dough/internal/models"
)

// BuildSchedule anchors the procedure on the wall clock, walking backwards from TimeToBake:
// seasoning, then each stage with its after-stage work from the last to the first, then
// dough making.
//
// Stretch-and-fold instants are placed once the stage windows are fixed. The first one falls
// Lapse after the start of the first stage and each following one Lapse after its predecessor,
// so their sum is subtracted from no other anchor and after-stage work never shifts them.
// When the lapses outlast leavening the last instants fall past the end of the last stage;
// CreateRecipe reports that as a STRETCH_AND_FOLD_OVERRUN warning.
func BuildSchedule(p models.Procedure) (models.Schedule, error) {
	if err := p.Validate(); err != nil {
		return models.Schedule{}, err
	}
	if p.TimeToBake.IsZero() {
		return models.Schedule{}, fmt.Errorf("%w: time to bake is not set", models.ErrValidation)
	}

	s := models.Schedule{
		Bake:   p.TimeToBake,
		Stages: make([]models.StageWindow, len(p.Stages)),
	}
	cursor := p.TimeToBake.Add(-p.Seasoning)
	s.Seasoning = cursor
	for i := len(p.Stages) - 1; i >= 0; i-- {
		st := p.Stages[i]
		cursor = cursor.Add(-st.AfterStageWork)
		s.Stages[i].End = cursor
		cursor = cursor.Add(-st.Duration)
		s.Stages[i].Start = cursor
	}
	s.DoughMaking = cursor.Add(-p.DoughMaking)

	if len(p.StretchAndFolds) > 0 {
		s.StretchAndFolds = make([]time.Time, len(p.StretchAndFolds))
		at := s.Stages[0].Start
		for i, sf := range p.StretchAndFolds {
			at = at.Add(sf.Lapse)
			s.StretchAndFolds[i] = at
		}
	}
	return s, nil
}
