package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_dough/internal/config"
	"pizza_dough/internal/ingredients"
	"pizza_dough/internal/models"
)

const requestYAML = `
strain: saccharomyces_cerevisiae_cect10131
dough_weight: 700
ingredients_temperature: 20
dough_temperature: 25
ingredients:
  water:
    - fraction: 0.6
      chlorine_dioxide: 0
      ph: 7
  sugar:
    - fraction: 0.01
      type: honey
  fat:
    - fraction: 0.02
      type: olive_oil
  salt: 0.025
  yeast:
    type: idy
procedure:
  stages:
    - temperature: 35
      duration: 5h
    - temperature: 25
      duration: 1h
      after_stage_work: 10m
  target_volume_expansion_ratio: 2
  target_stage_index: 1
  stretch_and_folds: [30m, 30m]
  dough_making: 20m
  seasoning: 10m
  time_to_bake: "2025-06-01T20:00:00Z"
bake:
  target_height: 0.03
  oven_type: natural_convection
  bottom_heating: false
  max_baking_temperature: 300
  pan:
    material: Aluminum
    thickness: 0.001
    diameter: 0.32
`

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "request.yml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadRequest(t *testing.T) {
	r, err := LoadRequest(writeRequest(t, requestYAML))
	require.NoError(t, err)

	assert.Equal(t, 700., r.DoughWeight)
	require.NotNil(t, r.IngredientsTemperature)
	assert.Equal(t, 20., *r.IngredientsTemperature)
	require.Len(t, r.Procedure.Stages, 2)
	assert.Equal(t, 5*time.Hour, r.Procedure.Stages[0].Duration)
	assert.Equal(t, 10*time.Minute, r.Procedure.Stages[1].AfterStageWork)
	assert.Equal(t, []time.Duration{30 * time.Minute, 30 * time.Minute}, r.Procedure.StretchAndFolds)
	assert.Equal(t, "idy", r.Ingredients.Yeast.Type)
	require.NotNil(t, r.Bake.BottomHeating)
	assert.False(t, *r.Bake.BottomHeating)
	assert.Nil(t, r.Bake.TopHeating)
}

func TestLoadRequest_Errors(t *testing.T) {
	_, err := LoadRequest("")
	assert.Error(t, err)

	_, err = LoadRequest(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestRequestMapping(t *testing.T) {
	r, err := LoadRequest(writeRequest(t, requestYAML))
	require.NoError(t, err)
	cfg := config.Default()

	in, err := r.RecipeRequest(cfg)
	require.NoError(t, err)
	assert.Equal(t, 700., in.DoughWeight)
	assert.Equal(t, 1, in.Procedure.TargetStageIndex)
	assert.Equal(t, time.Date(2025, time.June, 1, 20, 0, 0, 0, time.UTC), in.Procedure.TimeToBake.UTC())
	require.Len(t, in.Procedure.StretchAndFolds, 2)

	c := in.Composition
	assert.InDelta(t, 0.6, c.Water, 1e-12)
	assert.InDelta(t, ingredients.HoneyWater, c.SugarWater, 1e-12)
	assert.InDelta(t, 0.01*ingredients.HoneyCarbohydrate, c.SugarGlucose, 1e-12)
	assert.InDelta(t, 920., c.FatDensity, 1e-9)
	assert.InDelta(t, cfg.Environment.FlourPH, c.FlourPH, 1e-12)
	assert.True(t, c.CorrectForIngredients)

	inst := r.Instruments()
	assert.Equal(t, models.OvenNaturalConvection, inst.OvenType)
	assert.True(t, inst.TopHeating)
	assert.False(t, inst.BottomHeating)
	assert.Equal(t, "aluminum", inst.Pan.Material)
	assert.NoError(t, inst.Validate())
}

func TestRequestMapping_CorrectForIngredients(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name    string
		config  bool
		request *bool
		want    bool
	}{
		{"config default", true, nil, true},
		{"config off", false, nil, false},
		{"request overrides config off", true, &no, false},
		{"request overrides config on", false, &yes, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Mass.CorrectForIngredients = tt.config
			r := Request{Ingredients: IngredientsRequest{
				Water:                 []WaterRequest{{Fraction: 0.6, PH: 7}},
				Sugar:                 []SugarRequest{{Fraction: 0.01, Type: "honey"}},
				CorrectForIngredients: tt.request,
			}}
			c, err := r.Composition(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.CorrectForIngredients)

			water := 0.6
			if !tt.want {
				water += 0.01 * ingredients.HoneyWater
			}
			assert.InDelta(t, water, c.DoughWater(), 1e-12)
		})
	}
}

func TestRequestMapping_Invalid(t *testing.T) {
	r := Request{Procedure: ProcedureRequest{TimeToBake: "tonight"}}
	_, err := r.ProcedureModel()
	assert.True(t, errors.Is(err, models.ErrValidation))

	r = Request{Ingredients: IngredientsRequest{Sugar: []SugarRequest{{Fraction: 0.1, Type: "stevia"}}}}
	_, err = r.Composition(config.Default())
	assert.True(t, errors.Is(err, models.ErrValidation))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestScheduleCommand(t *testing.T) {
	out, err := run(t, "schedule", "--request", writeRequest(t, requestYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "stage 2")
	assert.Contains(t, out, "stretch & fold 2")
	assert.Contains(t, out, "Sun 01 Jun 20:00")
}

func TestRecipeCommand(t *testing.T) {
	out, err := run(t, "recipe", "--request", writeRequest(t, requestYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "Recipe")
	assert.Contains(t, out, "yeast fraction")
	assert.Contains(t, out, "water temperature")
	assert.Contains(t, out, "Schedule")
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "recipe")
	assert.Error(t, err)

	bad := writeRequest(t, "strain: unknown_strain\n")
	_, err = run(t, "schedule", "--request", bad)
	assert.True(t, errors.Is(err, models.ErrValidation))
}
