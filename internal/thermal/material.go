package thermal

import (
	"fmt"
	"strings"

	"pizza_dough/internal/models"
)

// Polynomial holds coefficients in increasing order: p[0] + p[1]·x + p[2]·x² ...
type Polynomial []float64

// At evaluates the polynomial with Horner's scheme.
func (p Polynomial) At(x float64) float64 {
	v := 0.
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

// Material describes one layer of the stack. Properties are functions of temperature in °C.
type Material struct {
	Name string

	Density      Polynomial // kg/m³
	SpecificHeat Polynomial // J/(kg·K)
	Conductivity Polynomial // W/(m·K)

	MoistureDiffusivity float64 // m²/s; zero means impermeable
	InitialMoisture     float64 // kg water / kg dry matter
	Emissivity          float64
}

// DryDensity is the density of the dry matter at temperature [kg/m³].
func (m Material) DryDensity(temperature float64) float64 {
	return m.Density.At(temperature) / (1 + m.InitialMoisture)
}

// Food layers.
var (
	Cheese = Material{
		Name:                "cheese",
		Density:             Polynomial{1140, -0.3},
		SpecificHeat:        Polynomial{2500, 2},
		Conductivity:        Polynomial{0.35, 0.0006},
		MoistureDiffusivity: 2e-10,
		InitialMoisture:     1.0,
		Emissivity:          0.9,
	}
	Tomato = Material{
		Name:                "tomato",
		Density:             Polynomial{1050, -0.2},
		SpecificHeat:        Polynomial{3800, 1},
		Conductivity:        Polynomial{0.55, 0.0011},
		MoistureDiffusivity: 1e-9,
		InitialMoisture:     5.0,
		Emissivity:          0.9,
	}
)

// Dough returns the dough material for a given density [kg/m³] and moisture (dry basis).
func Dough(density, moisture float64) Material {
	return Material{
		Name:                "dough",
		Density:             Polynomial{density},
		SpecificHeat:        Polynomial{2600, 3},
		Conductivity:        Polynomial{0.40, 0.0008},
		MoistureDiffusivity: 1e-9,
		InitialMoisture:     moisture,
		Emissivity:          0.85,
	}
}

// Pan materials.
const (
	PanAluminum = "aluminum"
	PanSteel    = "steel"
	PanCastIron = "cast_iron"
)

var pans = map[string]Material{
	PanAluminum: {Name: PanAluminum, Density: Polynomial{2700}, SpecificHeat: Polynomial{897, 0.4}, Conductivity: Polynomial{237}, Emissivity: 0.2},
	PanSteel:    {Name: PanSteel, Density: Polynomial{7850}, SpecificHeat: Polynomial{460, 0.3}, Conductivity: Polynomial{45, -0.02}, Emissivity: 0.6},
	PanCastIron: {Name: PanCastIron, Density: Polynomial{7200}, SpecificHeat: Polynomial{460, 0.25}, Conductivity: Polynomial{52, -0.03}, Emissivity: 0.8},
}

// Pan looks up a pan material by name.
func Pan(name string) (Material, error) {
	m, ok := pans[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, fmt.Errorf("%w: unknown pan material %q", models.ErrValidation, name)
	}
	return m, nil
}
