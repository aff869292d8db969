package cli

import (
	"fmt"
	"strings"
	"time"

	"pizza_dough/internal/config"
	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/models"
	"pizza_dough/internal/service"
	"pizza_dough/internal/yeast"
)

// Fat density used when the request leaves it out [kg/m³].
const defaultFatDensity = 920.

// Composition maps the ingredient section onto the builder. Omitted environment values come
// from the configuration.
func (r Request) Composition(cfg config.Config) (ingredients.Composition, error) {
	in := r.Ingredients
	b := ingredients.NewBuilder().
		WithFlourPH(orDefault(in.FlourPH, cfg.Environment.FlourPH)).
		WithAtmosphericPressure(orDefault(in.AtmosphericPressure, cfg.Environment.AtmosphericPressure))

	correct := cfg.Mass.CorrectForIngredients
	if in.CorrectForIngredients != nil {
		correct = *in.CorrectForIngredients
	}
	b.CorrectForIngredients(correct)

	for _, w := range in.Water {
		b.AddWater(w.Fraction, w.ChlorineDioxide, w.PH)
	}
	for _, s := range in.Sugar {
		typ := ingredients.SugarType(strings.ToLower(s.Type))
		carbohydrate, water := s.Carbohydrate, s.Water
		if carbohydrate == 0 && water == 0 {
			carbohydrate = 1
			if typ == ingredients.SugarHoney {
				carbohydrate, water = ingredients.HoneyCarbohydrate, ingredients.HoneyWater
			}
		}
		b.AddSugar(s.Fraction, typ, carbohydrate, water)
	}
	for _, f := range in.Fat {
		b.AddFat(f.Fraction, ingredients.FatType(strings.ToLower(f.Type)),
			orDefault(f.Density, defaultFatDensity), f.Water, f.Salt, f.PH)
	}
	b.AddSalt(in.Salt)

	typ := yeast.TypeFresh
	if in.Yeast.Type != "" {
		typ = yeast.Type(strings.ToUpper(in.Yeast.Type))
	}
	b.WithYeast(typ, orDefault(in.Yeast.RawContent, 1))

	return b.Build()
}

// ProcedureModel maps the leavening schedule.
func (r Request) ProcedureModel() (models.Procedure, error) {
	pr := r.Procedure
	p := models.Procedure{
		Stages:                     make([]models.LeaveningStage, len(pr.Stages)),
		TargetVolumeExpansionRatio: pr.TargetVolumeExpansionRatio,
		TargetStageIndex:           pr.TargetStageIndex,
		DoughMaking:                pr.DoughMaking,
		Seasoning:                  pr.Seasoning,
	}
	for i, st := range pr.Stages {
		p.Stages[i] = models.LeaveningStage{
			Temperature:    st.Temperature,
			Duration:       st.Duration,
			AfterStageWork: st.AfterStageWork,
		}
	}
	for _, lapse := range pr.StretchAndFolds {
		p.StretchAndFolds = append(p.StretchAndFolds, models.StretchAndFoldStage{Lapse: lapse})
	}
	if pr.TimeToBake != "" {
		at, err := time.Parse(time.RFC3339, pr.TimeToBake)
		if err != nil {
			return models.Procedure{}, fmt.Errorf("%w: time to bake %q is not RFC 3339", models.ErrValidation, pr.TimeToBake)
		}
		p.TimeToBake = at
	}
	return p, nil
}

// RecipeRequest assembles the full input of the recipe pipeline.
func (r Request) RecipeRequest(cfg config.Config) (service.RecipeRequest, error) {
	p, err := r.ProcedureModel()
	if err != nil {
		return service.RecipeRequest{}, err
	}
	c, err := r.Composition(cfg)
	if err != nil {
		return service.RecipeRequest{}, err
	}
	return service.RecipeRequest{
		Procedure:              p,
		Composition:            c,
		DoughWeight:            r.DoughWeight,
		IngredientsTemperature: r.IngredientsTemperature,
		DoughTemperature:       r.DoughTemperature,
	}, nil
}

// Instruments maps the bake section. Both heating elements default to on.
func (r Request) Instruments() models.BakingInstruments {
	b := r.Bake
	oven := models.OvenForcedAir
	if b.OvenType != "" {
		oven = models.OvenType(strings.ToLower(b.OvenType))
	}
	return models.BakingInstruments{
		OvenType:             oven,
		TopHeating:           b.TopHeating == nil || *b.TopHeating,
		BottomHeating:        b.BottomHeating == nil || *b.BottomHeating,
		MaxBakingTemperature: b.MaxBakingTemperature,
		Pan: models.Pan{
			Material:  strings.ToLower(b.Pan.Material),
			Thickness: b.Pan.Thickness,
			Diameter:  b.Pan.Diameter,
			Width:     b.Pan.Width,
			Length:    b.Pan.Length,
		},
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
