// Package config loads the solver settings from configs/config.yml, PIZZA_* environment
// variables and built-in defaults, in that order of precedence (environment first).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix       = "PIZZA"
	defaultDir      = "configs"
	defaultName     = "config"
	defaultLogLevel = "info"
)

type Config struct {
	LogLevel    string            `mapstructure:"log_level"`
	Leavening   LeaveningConfig   `mapstructure:"leavening"`
	Mass        MassConfig        `mapstructure:"mass"`
	Environment EnvironmentConfig `mapstructure:"environment"`
	Oven        OvenConfig        `mapstructure:"oven"`
}

type LeaveningConfig struct {
	YeastMax          float64 `mapstructure:"yeast_max"`
	Tolerance         float64 `mapstructure:"tolerance"`
	ResidualTolerance float64 `mapstructure:"residual_tolerance"`
	MaxEvaluations    int     `mapstructure:"max_evaluations"`
	Strain            string  `mapstructure:"strain"`
}

type MassConfig struct {
	Tolerance             float64 `mapstructure:"tolerance"` // g
	Damping               float64 `mapstructure:"damping"`
	MaxIterations         int     `mapstructure:"max_iterations"`
	CorrectForIngredients bool    `mapstructure:"correct_for_ingredients"`
}

type EnvironmentConfig struct {
	AtmosphericPressure float64 `mapstructure:"atmospheric_pressure"` // Pa
	FlourPH             float64 `mapstructure:"flour_ph"`
}

type OvenConfig struct {
	DonenessTemperature float64          `mapstructure:"doneness_temperature"` // °C
	MaillardTemperature float64          `mapstructure:"maillard_temperature"` // °C
	MaxBakingDuration   time.Duration    `mapstructure:"max_baking_duration"`
	DurationTolerance   time.Duration    `mapstructure:"duration_tolerance"`
	MaxEvaluations      int              `mapstructure:"max_evaluations"`
	CheeseThickness     float64          `mapstructure:"cheese_thickness"` // m
	TomatoThickness     float64          `mapstructure:"tomato_thickness"` // m
	DoughLayers         int              `mapstructure:"dough_layers"`
	AmbientTemperature  float64          `mapstructure:"ambient_temperature"` // °C
	EquilibriumMoisture float64          `mapstructure:"equilibrium_moisture"`
	Integrator          IntegratorConfig `mapstructure:"integrator"`
}

type IntegratorConfig struct {
	RelativeTolerance float64       `mapstructure:"relative_tolerance"`
	AbsoluteTolerance float64       `mapstructure:"absolute_tolerance"`
	InitialStep       time.Duration `mapstructure:"initial_step"`
	MaxSteps          int           `mapstructure:"max_steps"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", defaultLogLevel)

	v.SetDefault("leavening.yeast_max", 0.2)
	v.SetDefault("leavening.tolerance", 1e-5)
	v.SetDefault("leavening.residual_tolerance", 1e-5)
	v.SetDefault("leavening.max_evaluations", 100)
	v.SetDefault("leavening.strain", "saccharomyces_cerevisiae_cect10131")

	v.SetDefault("mass.tolerance", 0.01)
	v.SetDefault("mass.damping", 0.6)
	v.SetDefault("mass.max_iterations", 1000)
	v.SetDefault("mass.correct_for_ingredients", true)

	v.SetDefault("environment.atmospheric_pressure", 101325.)
	v.SetDefault("environment.flour_ph", 6.1)

	v.SetDefault("oven.doneness_temperature", 74.)
	v.SetDefault("oven.maillard_temperature", 140.)
	v.SetDefault("oven.max_baking_duration", 30*time.Minute)
	v.SetDefault("oven.duration_tolerance", 500*time.Millisecond)
	v.SetDefault("oven.max_evaluations", 100)
	v.SetDefault("oven.cheese_thickness", 0.002)
	v.SetDefault("oven.tomato_thickness", 0.002)
	v.SetDefault("oven.dough_layers", 3)
	v.SetDefault("oven.ambient_temperature", 20.)
	v.SetDefault("oven.equilibrium_moisture", 0.05)
	v.SetDefault("oven.integrator.relative_tolerance", 1e-5)
	v.SetDefault("oven.integrator.absolute_tolerance", 1e-5)
	v.SetDefault("oven.integrator.initial_step", time.Second)
	v.SetDefault("oven.integrator.max_steps", 100_000)
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, _ := decode(newViper())
	return cfg
}

// Load reads path (or configs/config.yml when path is empty). A missing default file is not an error.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(defaultDir) // configs/config.yml
		v.SetConfigName(defaultName)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings no solver can run with.
func (c Config) Validate() error {
	switch {
	case !(c.Leavening.YeastMax > 0):
		return fmt.Errorf("config: leavening.yeast_max %g must be > 0", c.Leavening.YeastMax)
	case !(c.Leavening.Tolerance > 0):
		return fmt.Errorf("config: leavening.tolerance %g must be > 0", c.Leavening.Tolerance)
	case c.Leavening.ResidualTolerance < 0:
		return fmt.Errorf("config: leavening.residual_tolerance %g must be >= 0", c.Leavening.ResidualTolerance)
	case c.Leavening.MaxEvaluations < 2:
		return fmt.Errorf("config: leavening.max_evaluations %d must be >= 2", c.Leavening.MaxEvaluations)
	case !(c.Mass.Tolerance > 0):
		return fmt.Errorf("config: mass.tolerance %g must be > 0", c.Mass.Tolerance)
	case !(c.Mass.Damping > 0 && c.Mass.Damping <= 1):
		return fmt.Errorf("config: mass.damping %g outside (0, 1]", c.Mass.Damping)
	case c.Mass.MaxIterations < 1:
		return fmt.Errorf("config: mass.max_iterations %d must be >= 1", c.Mass.MaxIterations)
	case c.Oven.MaxBakingDuration <= 0:
		return fmt.Errorf("config: oven.max_baking_duration %s must be > 0", c.Oven.MaxBakingDuration)
	case c.Oven.DoughLayers < 1:
		return fmt.Errorf("config: oven.dough_layers %d must be >= 1", c.Oven.DoughLayers)
	case !(c.Oven.CheeseThickness > 0 && c.Oven.TomatoThickness > 0):
		return fmt.Errorf("config: oven cheese (%g) and tomato (%g) thickness must be > 0",
			c.Oven.CheeseThickness, c.Oven.TomatoThickness)
	}
	return nil
}
