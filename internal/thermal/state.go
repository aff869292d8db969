package thermal

import "math"

// State holds one temperature [°C] and one moisture content [kg water / kg dry matter]
// per node, ordered from the top surface to the pan.
type State struct {
	Temperature []float64
	Moisture    []float64
}

// NewState allocates a state for n nodes.
func NewState(n int) State {
	return State{Temperature: make([]float64, n), Moisture: make([]float64, n)}
}

// Len is the number of nodes.
func (s State) Len() int { return len(s.Temperature) }

// Clone returns a deep copy.
func (s State) Clone() State {
	return State{
		Temperature: append([]float64(nil), s.Temperature...),
		Moisture:    append([]float64(nil), s.Moisture...),
	}
}

// MinimumTemperature is the coldest node temperature.
func (s State) MinimumTemperature() float64 {
	m := math.Inf(1)
	for _, t := range s.Temperature {
		m = math.Min(m, t)
	}
	return m
}

// pack interleaves the state as (T0, X0, T1, X1, ...) into dst.
func (s State) pack(dst []float64) {
	for i := range s.Temperature {
		dst[2*i] = s.Temperature[i]
		dst[2*i+1] = s.Moisture[i]
	}
}

// unpack is the inverse of pack.
func (s State) unpack(src []float64) {
	for i := range s.Temperature {
		s.Temperature[i] = src[2*i]
		s.Moisture[i] = src[2*i+1]
	}
}
