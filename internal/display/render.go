package display

import (
	"fmt"
	"strings"
	"time"

	"pizza_dough/internal/models"
)

const timeLayout = "Mon 02 Jan 15:04"

func grams(v float64) string { return fmt.Sprintf("%.1f", v) }

// Recipe renders the ingredient masses and derived dough properties.
func Recipe(r models.Recipe) string {
	var sb strings.Builder
	sb.WriteString(Title.Render("Recipe") + " " + Dim.Render(r.ID) + "\n")

	t := NewTable(
		Column{Name: "Ingredient", Width: 12},
		Column{Name: "Mass [g]", Width: 10, Align: AlignRight},
		Column{Name: "% flour", Width: 8, Align: AlignRight},
	)
	for _, row := range []struct {
		name string
		mass float64
	}{
		{"flour", r.Flour}, {"water", r.Water}, {"sugar", r.Sugar},
		{"fat", r.Fat}, {"salt", r.Salt}, {"yeast", r.Yeast},
	} {
		if row.mass == 0 && row.name != "flour" && row.name != "yeast" {
			continue
		}
		percent := 0.
		if r.Flour > 0 {
			percent = 100 * row.mass / r.Flour
		}
		t.AddRow(row.name, grams(row.mass), fmt.Sprintf("%.2f", percent))
	}
	t.AddRow(Bold.Render("total"), Bold.Render(grams(r.DoughWeight())), "")
	sb.WriteString(t.Render())

	sb.WriteString(fmt.Sprintf("  yeast fraction          %.5f\n", r.YeastFraction))
	sb.WriteString(fmt.Sprintf("  volume expansion ratio  %.3f\n", r.VolumeExpansionRatio))
	sb.WriteString(fmt.Sprintf("  dough density           %.0f %s\n", r.DoughDensity, Dim.Render("kg/m³")))
	if r.WaterTemperature != nil {
		sb.WriteString(fmt.Sprintf("  water temperature       %.1f %s\n", *r.WaterTemperature, Dim.Render("°C")))
	}
	if r.Schedule != nil {
		sb.WriteString(Schedule(*r.Schedule))
	}
	sb.WriteString(Warnings(r.Warnings))
	return sb.String()
}

// Bake renders the baking instructions.
func Bake(b models.BakingInstructions) string {
	var sb strings.Builder
	sb.WriteString(Title.Render("Bake") + " " + Dim.Render(b.ID) + "\n")
	sb.WriteString(fmt.Sprintf("  temperature  %.0f %s\n", b.BakingTemperature, Dim.Render("°C")))
	d := time.Duration(b.BakingDuration * float64(time.Second)).Round(time.Second)
	sb.WriteString(fmt.Sprintf("  duration     %s\n", d))
	sb.WriteString(fmt.Sprintf("  core reaches %.1f %s\n", b.MinimumTemperature, Dim.Render("°C")))
	sb.WriteString(Warnings(b.Warnings))
	return sb.String()
}

// Schedule renders the wall-clock plan.
func Schedule(s models.Schedule) string {
	var sb strings.Builder
	sb.WriteString(Title.Render("Schedule") + "\n")
	t := NewTable(
		Column{Name: "Step", Width: 16},
		Column{Name: "Start", Width: 16},
		Column{Name: "End", Width: 16},
	)
	t.AddRow("dough making", s.DoughMaking.Format(timeLayout), "")
	for i, st := range s.Stages {
		t.AddRow(fmt.Sprintf("stage %d", i+1), st.Start.Format(timeLayout), st.End.Format(timeLayout))
	}
	for i, at := range s.StretchAndFolds {
		t.AddRow(fmt.Sprintf("stretch & fold %d", i+1), at.Format(timeLayout), "")
	}
	t.AddRow("seasoning", s.Seasoning.Format(timeLayout), "")
	t.AddRow("bake", s.Bake.Format(timeLayout), "")
	sb.WriteString(t.Render())
	return sb.String()
}

// Warnings renders one line per warning, or nothing.
func Warnings(ws []models.Warning) string {
	var sb strings.Builder
	for _, w := range ws {
		sb.WriteString(fmt.Sprintf("%s %s %s\n", WarningPrefix, Warning.Render(w.Type), w.Description))
	}
	return sb.String()
}
