package yeast

import (
	"fmt"
	"sort"
	"strings"

	"pizza_dough/internal/models"
)

// Strain names known to the catalog.
const (
	StrainCECT10131 = "saccharomyces_cerevisiae_cect10131"
	StrainBaker     = "saccharomyces_cerevisiae_baker"
)

// CECT10131 cardinal values are fitted to dough leavening at 25 °C and 35 °C.
var catalog = map[string]Model{
	StrainCECT10131: {
		Name:                      StrainCECT10131,
		TemperatureMin:            4.,
		TemperatureOpt:            39.2,
		TemperatureMax:            45.9,
		MaximumSpecificGrowthRate: 0.484794,
	},
	StrainBaker: {
		Name:                      StrainBaker,
		TemperatureMin:            4.,
		TemperatureOpt:            32.,
		TemperatureMax:            45.,
		MaximumSpecificGrowthRate: 0.42,
		PHMin:                     2.,
		PHOpt:                     4.5,
		PHMax:                     8.,
	},
}

// Lookup returns the strain registered under name.
func Lookup(name string) (Model, error) {
	m, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Model{}, fmt.Errorf("%w: unknown yeast strain %q (known: %s)",
			models.ErrValidation, name, strings.Join(Strains(), ", "))
	}
	return m, nil
}

// Strains lists the catalog names in order.
func Strains() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
