// Package thermal models transient one-dimensional heat conduction and moisture diffusion
// through a baked pizza: cheese, tomato, a number of dough sub-layers and the pan, each a
// single node. The top and bottom nodes exchange heat with the oven by convection and
// radiation; the top node also dries, and the latent heat of the evaporated water leaves
// its energy balance.
package thermal

import (
	"fmt"

	"pizza_dough/internal/models"
	"pizza_dough/internal/numeric"
)

// Layer is one node of the stack.
type Layer struct {
	Material  Material
	Thickness float64 // m
}

// Config fixes every physical constant of a simulation.
type Config struct {
	Layers   []Layer // top to bottom
	OvenType models.OvenType

	// Oven temperatures seen by the top and bottom surfaces [°C].
	TopTemperature    float64
	BottomTemperature float64
	// Heating elements radiate onto the surface they face; a disabled element leaves convection only.
	TopHeating    bool
	BottomHeating bool

	InitialTemperature  float64 // °C, uniform
	EquilibriumMoisture float64 // surface moisture in equilibrium with the oven air

	Integrator numeric.IntegratorOptions
}

// Stack builds the layer sequence cheese, tomato, doughLayers equal dough sub-layers, pan.
func Stack(cheese, tomato, dough float64, doughLayers int, doughMaterial Material, pan float64, panMaterial Material) []Layer {
	layers := make([]Layer, 0, doughLayers+3)
	layers = append(layers, Layer{Cheese, cheese}, Layer{Tomato, tomato})
	for i := 0; i < doughLayers; i++ {
		layers = append(layers, Layer{doughMaterial, dough / float64(doughLayers)})
	}
	return append(layers, Layer{panMaterial, pan})
}

// Simulator integrates the heat and moisture balance of a stack. It keeps no state between
// calls besides its configuration.
type Simulator struct {
	cfg    Config
	hTop   float64
	hBot   float64
	epsTop float64
	epsBot float64
}

// NewSimulator validates cfg and precomputes the boundary coefficients.
func NewSimulator(cfg Config) (*Simulator, error) {
	if len(cfg.Layers) < 2 {
		return nil, fmt.Errorf("%w: stack needs at least 2 layers, got %d", models.ErrValidation, len(cfg.Layers))
	}
	for i, l := range cfg.Layers {
		if !(l.Thickness > 0) {
			return nil, fmt.Errorf("%w: layer %d (%s) thickness %g must be > 0", models.ErrValidation, i, l.Material.Name, l.Thickness)
		}
	}
	if !(cfg.EquilibriumMoisture >= 0) {
		return nil, fmt.Errorf("%w: equilibrium moisture %g must be >= 0", models.ErrValidation, cfg.EquilibriumMoisture)
	}
	hTop, err := ConvectiveCoefficient(cfg.OvenType, cfg.TopTemperature)
	if err != nil {
		return nil, err
	}
	hBot, err := ConvectiveCoefficient(cfg.OvenType, cfg.BottomTemperature)
	if err != nil {
		return nil, err
	}
	s := &Simulator{cfg: cfg, hTop: hTop, hBot: hBot}
	if cfg.TopHeating {
		s.epsTop = cfg.Layers[0].Material.Emissivity
	}
	if cfg.BottomHeating {
		s.epsBot = cfg.Layers[len(cfg.Layers)-1].Material.Emissivity
	}
	return s, nil
}

// Nodes is the number of layers.
func (s *Simulator) Nodes() int { return len(s.cfg.Layers) }

// InitialState is the uniform starting temperature with each material's initial moisture.
func (s *Simulator) InitialState() State {
	st := NewState(s.Nodes())
	for i, l := range s.cfg.Layers {
		st.Temperature[i] = s.cfg.InitialTemperature
		st.Moisture[i] = l.Material.InitialMoisture
	}
	return st
}

// ComputeDerivatives returns dT/dt [K/s] and dX/dt [1/s] for every node at (t, state).
func (s *Simulator) ComputeDerivatives(t float64, state State) (State, error) {
	if state.Len() != s.Nodes() || len(state.Moisture) != s.Nodes() {
		return State{}, fmt.Errorf("%w: state has %d nodes, stack has %d", models.ErrValidation, state.Len(), s.Nodes())
	}
	d := NewState(s.Nodes())
	s.derivatives(state, d)
	return d, nil
}

func (s *Simulator) derivatives(st, d State) {
	layers := s.cfg.Layers
	n := len(layers)
	T, X := st.Temperature, st.Moisture
	q, dX := d.Temperature, d.Moisture
	for i := range q {
		q[i] = 0
		dX[i] = 0
	}

	// interfaces: series resistance of the two half layers
	for i := 0; i < n-1; i++ {
		a, b := layers[i], layers[i+1]
		r := a.Thickness/(2*a.Material.Conductivity.At(T[i])) + b.Thickness/(2*b.Material.Conductivity.At(T[i+1]))
		flux := (T[i] - T[i+1]) / r
		q[i] -= flux
		q[i+1] += flux

		if a.Material.MoistureDiffusivity > 0 && b.Material.MoistureDiffusivity > 0 {
			da, db := a.Material.DryDensity(T[i]), b.Material.DryDensity(T[i+1])
			rm := a.Thickness/(2*a.Material.MoistureDiffusivity*da) + b.Thickness/(2*b.Material.MoistureDiffusivity*db)
			w := (X[i] - X[i+1]) / rm
			dX[i] -= w / (da * a.Thickness)
			dX[i+1] += w / (db * b.Thickness)
		}
	}

	// top surface: convection, radiation, drying
	top := layers[0]
	q[0] += s.hTop*(s.cfg.TopTemperature-T[0]) + radiation(s.epsTop, s.cfg.TopTemperature, T[0])
	if top.Material.MoistureDiffusivity > 0 && X[0] > s.cfg.EquilibriumMoisture {
		evaporation := DryingConstant(T[0]) * (X[0] - s.cfg.EquilibriumMoisture)
		dX[0] -= evaporation
		q[0] -= LatentHeat * top.Material.DryDensity(T[0]) * top.Thickness * evaporation
	}

	// bottom surface: convection, radiation
	q[n-1] += s.hBot*(s.cfg.BottomTemperature-T[n-1]) + radiation(s.epsBot, s.cfg.BottomTemperature, T[n-1])

	for i, l := range layers {
		q[i] /= l.Material.Density.At(T[i]) * l.Material.SpecificHeat.At(T[i]) * l.Thickness
	}
}

// Simulate integrates from the initial state over duration [s] and returns the final state.
func (s *Simulator) Simulate(duration float64) (State, error) {
	start := s.InitialState()
	if duration <= 0 {
		return start, nil
	}
	n := s.Nodes()
	y0 := make([]float64, 2*n)
	start.pack(y0)

	st, d := NewState(n), NewState(n)
	f := func(_ float64, y, dydt []float64) error {
		st.unpack(y)
		s.derivatives(st, d)
		d.pack(dydt)
		return nil
	}
	y, _, err := numeric.Integrate(f, y0, 0, duration, s.cfg.Integrator)
	if err != nil {
		return State{}, fmt.Errorf("simulate %gs: %w", duration, err)
	}
	out := NewState(n)
	out.unpack(y)
	return out, nil
}

// MinimumTemperature is the coldest node temperature after baking for duration [s].
func (s *Simulator) MinimumTemperature(duration float64) (float64, error) {
	st, err := s.Simulate(duration)
	if err != nil {
		return 0, err
	}
	return st.MinimumTemperature(), nil
}
