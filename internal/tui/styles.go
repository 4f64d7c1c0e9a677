package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // cyan, epics
	colorAccent  = lipgloss.Color("#FFD700") // gold, estimates
	colorSuccess = lipgloss.Color("#00E676") // green, Easy
	colorWarn    = lipgloss.Color("#FFB74D") // orange, Medium
	colorDanger  = lipgloss.Color("#FF5252") // red, Hard
	colorMuted   = lipgloss.Color("#636363") // gray, de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // off-white, primary text
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleEpic = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleStory = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleSubtask = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleEstimate = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleSelected = lipgloss.NewStyle().
			Bold(true)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// difficultyStyle maps a difficulty value to its color.
func difficultyStyle(difficulty string) lipgloss.Style {
	switch difficulty {
	case "Easy":
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case "Hard":
		return lipgloss.NewStyle().Foreground(colorDanger)
	default:
		return lipgloss.NewStyle().Foreground(colorWarn)
	}
}
