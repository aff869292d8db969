package yeast

import (
	"fmt"
	"strings"

	"pizza_dough/internal/models"
)

// Type is the commercial form of the yeast.
type Type string

const (
	TypeFresh      Type = "FY"
	TypeActiveDry  Type = "ADY"
	TypeInstantDry Type = "IDY"
)

// FreshEquivalence is the mass of this yeast type replacing one unit of fresh yeast.
func (t Type) FreshEquivalence() (float64, error) {
	switch Type(strings.ToUpper(string(t))) {
	case TypeFresh, "":
		return 1, nil
	case TypeActiveDry:
		return 0.4, nil
	case TypeInstantDry:
		return 1. / 3., nil
	default:
		return 0, fmt.Errorf("%w: unknown yeast type %q", models.ErrValidation, string(t))
	}
}
