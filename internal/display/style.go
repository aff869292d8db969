// Package display renders recipes, bakes and schedules for the terminal using Lipgloss.
package display

import "github.com/charmbracelet/lipgloss"

var (
	// Title style for section headers
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB454")).
		Bold(true)

	// Warning style for feasibility notices (yellow)
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E6B450")).
		Bold(true)

	// Dim style for units and secondary information
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5C6773"))

	// Bold style for labels
	Bold = lipgloss.NewStyle().
		Bold(true)

	// WarningPrefix precedes every warning line
	WarningPrefix = Warning.Render("⚠")
)
