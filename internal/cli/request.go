package cli

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Request is the YAML document accepted by every command.
type Request struct {
	Strain                 string   `mapstructure:"strain"`
	DoughWeight            float64  `mapstructure:"dough_weight"`
	IngredientsTemperature *float64 `mapstructure:"ingredients_temperature"`
	DoughTemperature       *float64 `mapstructure:"dough_temperature"`

	Ingredients IngredientsRequest `mapstructure:"ingredients"`
	Procedure   ProcedureRequest   `mapstructure:"procedure"`
	Bake        BakeRequest        `mapstructure:"bake"`
}

type IngredientsRequest struct {
	Water               []WaterRequest `mapstructure:"water"`
	Sugar               []SugarRequest `mapstructure:"sugar"`
	Fat                 []FatRequest   `mapstructure:"fat"`
	Salt                float64        `mapstructure:"salt"`
	Yeast               YeastRequest   `mapstructure:"yeast"`
	FlourPH             float64        `mapstructure:"flour_ph"`
	AtmosphericPressure float64        `mapstructure:"atmospheric_pressure"` // Pa
	// CorrectForIngredients falls back to mass.correct_for_ingredients when absent.
	CorrectForIngredients *bool `mapstructure:"correct_for_ingredients"`
}

type WaterRequest struct {
	Fraction        float64 `mapstructure:"fraction"`
	ChlorineDioxide float64 `mapstructure:"chlorine_dioxide"` // mg/l
	PH              float64 `mapstructure:"ph"`
}

type SugarRequest struct {
	Fraction     float64 `mapstructure:"fraction"`
	Type         string  `mapstructure:"type"`
	Carbohydrate float64 `mapstructure:"carbohydrate"`
	Water        float64 `mapstructure:"water"`
}

type FatRequest struct {
	Fraction float64 `mapstructure:"fraction"`
	Type     string  `mapstructure:"type"`
	Density  float64 `mapstructure:"density"` // kg/m³
	Water    float64 `mapstructure:"water"`
	Salt     float64 `mapstructure:"salt"`
	PH       float64 `mapstructure:"ph"`
}

type YeastRequest struct {
	Type       string  `mapstructure:"type"`
	RawContent float64 `mapstructure:"raw_content"`
}

type StageRequest struct {
	Temperature    float64       `mapstructure:"temperature"`
	Duration       time.Duration `mapstructure:"duration"`
	AfterStageWork time.Duration `mapstructure:"after_stage_work"`
}

type ProcedureRequest struct {
	Stages                     []StageRequest  `mapstructure:"stages"`
	TargetVolumeExpansionRatio float64         `mapstructure:"target_volume_expansion_ratio"`
	TargetStageIndex           int             `mapstructure:"target_stage_index"`
	StretchAndFolds            []time.Duration `mapstructure:"stretch_and_folds"`
	DoughMaking                time.Duration   `mapstructure:"dough_making"`
	Seasoning                  time.Duration   `mapstructure:"seasoning"`
	TimeToBake                 string          `mapstructure:"time_to_bake"` // RFC 3339
}

type PanRequest struct {
	Material  string  `mapstructure:"material"`
	Thickness float64 `mapstructure:"thickness"` // m
	Diameter  float64 `mapstructure:"diameter"`  // m
	Width     float64 `mapstructure:"width"`     // m
	Length    float64 `mapstructure:"length"`    // m
}

type BakeRequest struct {
	TargetHeight         float64    `mapstructure:"target_height"` // m
	OvenType             string     `mapstructure:"oven_type"`
	TopHeating           *bool      `mapstructure:"top_heating"`
	BottomHeating        *bool      `mapstructure:"bottom_heating"`
	MaxBakingTemperature float64    `mapstructure:"max_baking_temperature"` // °C
	Pan                  PanRequest `mapstructure:"pan"`
}

// LoadRequest reads a request file; the format follows the file extension.
func LoadRequest(path string) (Request, error) {
	if path == "" {
		return Request{}, fmt.Errorf("request: --request is required")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Request{}, fmt.Errorf("request: read %s: %w", path, err)
	}
	var r Request
	if err := v.Unmarshal(&r); err != nil {
		return Request{}, fmt.Errorf("request: decode %s: %w", path, err)
	}
	return r, nil
}
