package cli

import "github.com/charmbracelet/lipgloss"

// Terminal styles for list and duel output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0115F"))

	mediumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFBF00"))

	lowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50C878"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	tiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0F52BA")).
			Bold(true)
)

func priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return highStyle
	case "low":
		return lowStyle
	default:
		return mediumStyle
	}
}
